package models

// MedicalRecord represents one unit of patient data stewarded by a physician
type MedicalRecord struct {
    ID             uint64 `json:"id"`
    Physician      string `json:"physician"`
    Category       string `json:"category"`
    DataVolume     uint64 `json:"dataVolume"`
    AccessedVolume uint64 `json:"accessedVolume"`
    CreatedAt      int64  `json:"createdAt"`
    Active         bool   `json:"active"`
    ObjectType     string `json:"objectType"`
}

// PhysicianStats holds the aggregate counters for one physician
type PhysicianStats struct {
    Physician        string `json:"physician"`
    RecordCount      uint64 `json:"recordCount"`
    TotalDataManaged uint64 `json:"totalDataManaged"`
    ObjectType       string `json:"objectType"`
}

// NewMedicalRecord creates a new medical record instance
func NewMedicalRecord(id uint64, physician, category string, dataVolume uint64, createdAt int64) *MedicalRecord {
    return &MedicalRecord{
        ID:             id,
        Physician:      physician,
        Category:       category,
        DataVolume:     dataVolume,
        AccessedVolume: 0,
        CreatedAt:      createdAt,
        Active:         true,
        ObjectType:     "medicalRecord",
    }
}

// NewPhysicianStats creates a zero-valued stats entry for a physician
func NewPhysicianStats(physician string) *PhysicianStats {
    return &PhysicianStats{
        Physician:  physician,
        ObjectType: "physicianStats",
    }
}

// RemainingVolume returns the data volume still available for access
func (mr *MedicalRecord) RemainingVolume() uint64 {
    return mr.DataVolume - mr.AccessedVolume
}

// RecordCreated folds one successful record creation into the counters
func (ps *PhysicianStats) RecordCreated(dataVolume uint64) {
    ps.RecordCount++
    ps.TotalDataManaged += dataVolume
}
