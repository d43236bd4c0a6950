package models

// SystemState is the singleton ledger document holding the global counters
// and the maintenance gate. ChiefMedicalOfficer is fixed at initialization
// and never reassigned.
type SystemState struct {
    TotalRecords        uint64 `json:"totalRecords"`
    MaintenanceActive   bool   `json:"maintenanceActive"`
    ChiefMedicalOfficer string `json:"chiefMedicalOfficer"`
    ObjectType          string `json:"objectType"`
}

// NewSystemState creates the initial system state for a freshly deployed ledger
func NewSystemState(chiefMedicalOfficer string) *SystemState {
    return &SystemState{
        TotalRecords:        0,
        MaintenanceActive:   false,
        ChiefMedicalOfficer: chiefMedicalOfficer,
        ObjectType:          "systemState",
    }
}

// IsChiefMedicalOfficer checks an identity against the fixed administrator
func (ss *SystemState) IsChiefMedicalOfficer(identity string) bool {
    return identity == ss.ChiefMedicalOfficer
}

// NextRecordID returns the id the next created record will receive
func (ss *SystemState) NextRecordID() uint64 {
    return ss.TotalRecords + 1
}
