package utils

import (
    "fmt"
    "strconv"
    "strings"
)

// Key prefixes for different object types
const (
    PrefixRecord           = "RECORD"
    PrefixStats            = "STATS"
    PrefixAccess           = "ACCESS"
    PrefixPhysicianRecords = "PHYSICIAN~RECORDS"

    // SystemStateKey is the singleton key for the global system state
    SystemStateKey = "SYSTEM"
)

// CreateRecordKey creates the world-state key for a medical record
func CreateRecordKey(recordID uint64) string {
    return fmt.Sprintf("%s~%d", PrefixRecord, recordID)
}

// CreateStatsKey creates the world-state key for a physician's aggregate stats
func CreateStatsKey(physician string) string {
    return fmt.Sprintf("%s~%s", PrefixStats, physician)
}

// CreateAccessKey creates the world-state key for an access grant
func CreateAccessKey(recordID uint64, staff string) string {
    return fmt.Sprintf("%s~%d~%s", PrefixAccess, recordID, staff)
}

// ParseRecordKey parses a record key back into its record id
func ParseRecordKey(key string) (uint64, error) {
    parts := strings.Split(key, "~")
    if len(parts) != 2 || parts[0] != PrefixRecord {
        return 0, fmt.Errorf("invalid record key format: %s", key)
    }
    id, err := strconv.ParseUint(parts[1], 10, 64)
    if err != nil {
        return 0, fmt.Errorf("invalid record id in key %s: %v", key, err)
    }
    return id, nil
}

// FormatRecordID renders a record id the way composite key attributes expect
func FormatRecordID(recordID uint64) string {
    return strconv.FormatUint(recordID, 10)
}

// ParseCompositeRecordID parses a record id attribute from a composite key
func ParseCompositeRecordID(attribute string) (uint64, error) {
    id, err := strconv.ParseUint(attribute, 10, 64)
    if err != nil {
        return 0, fmt.Errorf("invalid record id attribute %q: %v", attribute, err)
    }
    return id, nil
}
