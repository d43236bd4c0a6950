package utils

import (
    "strings"
)

// Validation constants
const (
    MaxCategoryLength = 64
)

// ValidCategory reports whether a category label fits the schema limit
func ValidCategory(category string) bool {
    return len(category) <= MaxCategoryLength
}

// ValidDataVolume reports whether a data volume is usable for creation or access
func ValidDataVolume(volume uint64) bool {
    return volume > 0
}

// SanitizeString removes potentially harmful characters
func SanitizeString(input string) string {
    // Remove control characters
    input = strings.TrimSpace(input)
    // Additional sanitization can be added here
    return input
}
