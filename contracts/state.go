package contracts

import (
    "encoding/json"
    "fmt"

    "github.com/hyperledger/fabric-contract-api-go/contractapi"

    "github.com/medledger/chaincode/medical-records/models"
    "github.com/medledger/chaincode/medical-records/utils"
)

// World-state helpers shared by the contracts in this chaincode. Readers for
// optional entries (records, grants) return a nil pointer for absence so call
// sites handle the missing case explicitly; the system state is mandatory and
// its absence is an initialization error.

func loadSystemState(ctx contractapi.TransactionContextInterface) (*models.SystemState, error) {
    stateJSON, err := ctx.GetStub().GetState(utils.SystemStateKey)
    if err != nil {
        return nil, fmt.Errorf("failed to read system state: %v", err)
    }
    if stateJSON == nil {
        return nil, ErrLedgerNotInitialized
    }

    var state models.SystemState
    if err := json.Unmarshal(stateJSON, &state); err != nil {
        return nil, fmt.Errorf("failed to unmarshal system state: %v", err)
    }
    return &state, nil
}

func saveSystemState(ctx contractapi.TransactionContextInterface, state *models.SystemState) error {
    stateJSON, err := json.Marshal(state)
    if err != nil {
        return fmt.Errorf("failed to marshal system state: %v", err)
    }
    if err := ctx.GetStub().PutState(utils.SystemStateKey, stateJSON); err != nil {
        return fmt.Errorf("failed to store system state: %v", err)
    }
    return nil
}

func loadRecord(ctx contractapi.TransactionContextInterface, recordID uint64) (*models.MedicalRecord, error) {
    recordJSON, err := ctx.GetStub().GetState(utils.CreateRecordKey(recordID))
    if err != nil {
        return nil, fmt.Errorf("failed to read medical record: %v", err)
    }
    if recordJSON == nil {
        return nil, nil
    }

    var record models.MedicalRecord
    if err := json.Unmarshal(recordJSON, &record); err != nil {
        return nil, fmt.Errorf("failed to unmarshal medical record: %v", err)
    }
    return &record, nil
}

func saveRecord(ctx contractapi.TransactionContextInterface, record *models.MedicalRecord) error {
    recordJSON, err := json.Marshal(record)
    if err != nil {
        return fmt.Errorf("failed to marshal medical record: %v", err)
    }
    if err := ctx.GetStub().PutState(utils.CreateRecordKey(record.ID), recordJSON); err != nil {
        return fmt.Errorf("failed to store medical record: %v", err)
    }
    return nil
}

func loadStats(ctx contractapi.TransactionContextInterface, physician string) (*models.PhysicianStats, error) {
    statsJSON, err := ctx.GetStub().GetState(utils.CreateStatsKey(physician))
    if err != nil {
        return nil, fmt.Errorf("failed to read physician stats: %v", err)
    }
    if statsJSON == nil {
        // Unseen physicians read as zero-valued stats
        return models.NewPhysicianStats(physician), nil
    }

    var stats models.PhysicianStats
    if err := json.Unmarshal(statsJSON, &stats); err != nil {
        return nil, fmt.Errorf("failed to unmarshal physician stats: %v", err)
    }
    return &stats, nil
}

func saveStats(ctx contractapi.TransactionContextInterface, stats *models.PhysicianStats) error {
    statsJSON, err := json.Marshal(stats)
    if err != nil {
        return fmt.Errorf("failed to marshal physician stats: %v", err)
    }
    if err := ctx.GetStub().PutState(utils.CreateStatsKey(stats.Physician), statsJSON); err != nil {
        return fmt.Errorf("failed to store physician stats: %v", err)
    }
    return nil
}

func loadGrant(ctx contractapi.TransactionContextInterface, recordID uint64, staff string) (*models.AccessGrant, error) {
    grantJSON, err := ctx.GetStub().GetState(utils.CreateAccessKey(recordID, staff))
    if err != nil {
        return nil, fmt.Errorf("failed to read access grant: %v", err)
    }
    if grantJSON == nil {
        return nil, nil
    }

    var grant models.AccessGrant
    if err := json.Unmarshal(grantJSON, &grant); err != nil {
        return nil, fmt.Errorf("failed to unmarshal access grant: %v", err)
    }
    return &grant, nil
}

func saveGrant(ctx contractapi.TransactionContextInterface, grant *models.AccessGrant) error {
    grantJSON, err := json.Marshal(grant)
    if err != nil {
        return fmt.Errorf("failed to marshal access grant: %v", err)
    }
    key := utils.CreateAccessKey(grant.RecordID, grant.Staff)
    if err := ctx.GetStub().PutState(key, grantJSON); err != nil {
        return fmt.Errorf("failed to store access grant: %v", err)
    }
    return nil
}

func deleteGrant(ctx contractapi.TransactionContextInterface, recordID uint64, staff string) error {
    if err := ctx.GetStub().DelState(utils.CreateAccessKey(recordID, staff)); err != nil {
        return fmt.Errorf("failed to delete access grant: %v", err)
    }
    return nil
}

// emitEvent emits a chaincode event with a JSON payload
func emitEvent(ctx contractapi.TransactionContextInterface, name string, payload map[string]interface{}) error {
    payload["txId"] = ctx.GetStub().GetTxID()
    eventJSON, err := json.Marshal(payload)
    if err != nil {
        return fmt.Errorf("failed to marshal %s event: %v", name, err)
    }
    if err := ctx.GetStub().SetEvent(name, eventJSON); err != nil {
        return fmt.Errorf("failed to emit %s event: %v", name, err)
    }
    return nil
}
