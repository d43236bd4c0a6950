package models

// AccessGrant represents a staff member's privilege on one medical record
type AccessGrant struct {
    RecordID    uint64 `json:"recordId"`
    Staff       string `json:"staff"`
    CanAccess   bool   `json:"canAccess"`
    AccessLimit uint64 `json:"accessLimit"`
    ObjectType  string `json:"objectType"`
}

// NewAccessGrant creates an active grant with a per-call volume ceiling
func NewAccessGrant(recordID uint64, staff string, accessLimit uint64) *AccessGrant {
    return &AccessGrant{
        RecordID:    recordID,
        Staff:       staff,
        CanAccess:   true,
        AccessLimit: accessLimit,
        ObjectType:  "accessGrant",
    }
}

// Allows reports whether the grant covers a single access of the given volume.
// The limit bounds each individual call, not cumulative consumption.
func (ag *AccessGrant) Allows(volume uint64) bool {
    return ag.CanAccess && volume <= ag.AccessLimit
}
