package contracts

import (
    "fmt"

    "github.com/hyperledger/fabric-contract-api-go/contractapi"

    "github.com/medledger/chaincode/medical-records/models"
    "github.com/medledger/chaincode/medical-records/utils"
)

// MedicalRecordContract provides functions for managing medical records and
// the per-physician aggregate statistics derived from them.
type MedicalRecordContract struct {
    contractapi.Contract
}

// CreateMedicalRecord creates a new medical record owned by the caller and
// returns its id. Ids are assigned sequentially starting at 1.
func (mrc *MedicalRecordContract) CreateMedicalRecord(
    ctx contractapi.TransactionContextInterface,
    category string,
    dataVolume uint64,
) (uint64, error) {
    state, err := loadSystemState(ctx)
    if err != nil {
        return 0, err
    }
    if state.MaintenanceActive {
        return 0, ErrMaintenanceActive
    }

    if !utils.ValidDataVolume(dataVolume) {
        return 0, ErrInvalidDataSize
    }
    category = utils.SanitizeString(category)
    if !utils.ValidCategory(category) {
        return 0, ErrCategoryTooLong
    }

    caller, err := ctx.GetClientIdentity().GetID()
    if err != nil {
        return 0, fmt.Errorf("failed to get caller identity: %v", err)
    }

    ts, err := ctx.GetStub().GetTxTimestamp()
    if err != nil {
        return 0, fmt.Errorf("failed to get transaction timestamp: %v", err)
    }

    recordID := state.NextRecordID()
    record := models.NewMedicalRecord(recordID, caller, category, dataVolume, ts.Seconds)
    if err := saveRecord(ctx, record); err != nil {
        return 0, err
    }

    // Physician index for QueryRecordsByPhysician
    indexKey, err := ctx.GetStub().CreateCompositeKey(
        utils.PrefixPhysicianRecords,
        []string{caller, utils.FormatRecordID(recordID)},
    )
    if err != nil {
        return 0, fmt.Errorf("failed to create physician index: %v", err)
    }
    if err := ctx.GetStub().PutState(indexKey, []byte{0x00}); err != nil {
        return 0, fmt.Errorf("failed to put physician index: %v", err)
    }

    stats, err := loadStats(ctx, caller)
    if err != nil {
        return 0, err
    }
    stats.RecordCreated(dataVolume)
    if err := saveStats(ctx, stats); err != nil {
        return 0, err
    }

    state.TotalRecords = recordID
    if err := saveSystemState(ctx, state); err != nil {
        return 0, err
    }

    err = emitEvent(ctx, "RecordCreated", map[string]interface{}{
        "recordId":   recordID,
        "physician":  caller,
        "category":   category,
        "dataVolume": dataVolume,
    })
    if err != nil {
        return 0, err
    }

    return recordID, nil
}

// AccessMedicalData meters an access of the given volume against a record's
// quota. The caller must be the record's physician or hold a grant whose
// limit covers this single call.
func (mrc *MedicalRecordContract) AccessMedicalData(
    ctx contractapi.TransactionContextInterface,
    recordID uint64,
    accessVolume uint64,
) error {
    state, err := loadSystemState(ctx)
    if err != nil {
        return err
    }
    if state.MaintenanceActive {
        return ErrMaintenanceActive
    }

    if !utils.ValidDataVolume(accessVolume) {
        return ErrInvalidDataSize
    }

    record, err := loadRecord(ctx, recordID)
    if err != nil {
        return err
    }
    if record == nil {
        return ErrRecordNotFound
    }
    if !record.Active {
        return ErrRecordInactive
    }
    if accessVolume > record.RemainingVolume() {
        return ErrInsufficientClearance
    }

    caller, err := ctx.GetClientIdentity().GetID()
    if err != nil {
        return fmt.Errorf("failed to get caller identity: %v", err)
    }
    if caller != record.Physician {
        grant, err := loadGrant(ctx, recordID, caller)
        if err != nil {
            return err
        }
        if grant == nil || !grant.Allows(accessVolume) {
            return ErrUnauthorizedAccess
        }
    }

    record.AccessedVolume += accessVolume
    if err := saveRecord(ctx, record); err != nil {
        return err
    }

    return emitEvent(ctx, "DataAccessed", map[string]interface{}{
        "recordId":       recordID,
        "accessedBy":     caller,
        "accessVolume":   accessVolume,
        "accessedVolume": record.AccessedVolume,
    })
}

// ArchiveRecord deactivates a record. Physician only; archiving an already
// archived record is a no-op success.
func (mrc *MedicalRecordContract) ArchiveRecord(
    ctx contractapi.TransactionContextInterface,
    recordID uint64,
) error {
    record, err := loadRecord(ctx, recordID)
    if err != nil {
        return err
    }
    if record == nil {
        return ErrRecordNotFound
    }

    caller, err := ctx.GetClientIdentity().GetID()
    if err != nil {
        return fmt.Errorf("failed to get caller identity: %v", err)
    }
    if caller != record.Physician {
        return ErrUnauthorizedAccess
    }

    if !record.Active {
        return nil
    }

    record.Active = false
    if err := saveRecord(ctx, record); err != nil {
        return err
    }

    return emitEvent(ctx, "RecordArchived", map[string]interface{}{
        "recordId":  recordID,
        "physician": caller,
    })
}

// GetMedicalRecord returns the record stored under the given id
func (mrc *MedicalRecordContract) GetMedicalRecord(
    ctx contractapi.TransactionContextInterface,
    recordID uint64,
) (*models.MedicalRecord, error) {
    record, err := loadRecord(ctx, recordID)
    if err != nil {
        return nil, err
    }
    if record == nil {
        return nil, ErrRecordNotFound
    }
    return record, nil
}

// MedicalRecordExists returns true when a record with the given id exists
func (mrc *MedicalRecordContract) MedicalRecordExists(
    ctx contractapi.TransactionContextInterface,
    recordID uint64,
) (bool, error) {
    record, err := loadRecord(ctx, recordID)
    if err != nil {
        return false, err
    }
    return record != nil, nil
}

// GetTotalRecords returns the count of records created so far, which is also
// the last assigned id.
func (mrc *MedicalRecordContract) GetTotalRecords(
    ctx contractapi.TransactionContextInterface,
) (uint64, error) {
    state, err := loadSystemState(ctx)
    if err != nil {
        return 0, err
    }
    return state.TotalRecords, nil
}

// GetPhysicianStats returns the aggregate counters for a physician. Unseen
// physicians read as zero-valued stats.
func (mrc *MedicalRecordContract) GetPhysicianStats(
    ctx contractapi.TransactionContextInterface,
    physician string,
) (*models.PhysicianStats, error) {
    return loadStats(ctx, physician)
}

// QueryRecordsByPhysician returns all records created by a physician
func (mrc *MedicalRecordContract) QueryRecordsByPhysician(
    ctx contractapi.TransactionContextInterface,
    physician string,
) ([]*models.MedicalRecord, error) {
    resultsIterator, err := ctx.GetStub().GetStateByPartialCompositeKey(
        utils.PrefixPhysicianRecords,
        []string{physician},
    )
    if err != nil {
        return nil, fmt.Errorf("failed to get physician records: %v", err)
    }
    defer resultsIterator.Close()

    var records []*models.MedicalRecord
    for resultsIterator.HasNext() {
        queryResponse, err := resultsIterator.Next()
        if err != nil {
            return nil, fmt.Errorf("failed to iterate physician records: %v", err)
        }

        _, compositeKeyParts, err := ctx.GetStub().SplitCompositeKey(queryResponse.Key)
        if err != nil || len(compositeKeyParts) < 2 {
            continue
        }

        recordID, err := utils.ParseCompositeRecordID(compositeKeyParts[1])
        if err != nil {
            continue
        }

        record, err := loadRecord(ctx, recordID)
        if err != nil {
            return nil, err
        }
        if record != nil {
            records = append(records, record)
        }
    }

    return records, nil
}
