package contracts

import (
    "fmt"

    "github.com/hyperledger/fabric-contract-api-go/contractapi"

    "github.com/medledger/chaincode/medical-records/models"
)

// AdminContract provides functions for system administration
type AdminContract struct {
    contractapi.Contract
}

// InitLedger initializes the system state, fixing the deploying caller as the
// chief medical officer. It can run exactly once per ledger.
func (ac *AdminContract) InitLedger(ctx contractapi.TransactionContextInterface) error {
    existing, err := loadSystemState(ctx)
    if err != nil && err != ErrLedgerNotInitialized {
        return err
    }
    if existing != nil {
        return ErrLedgerAlreadyInitialized
    }

    caller, err := ctx.GetClientIdentity().GetID()
    if err != nil {
        return fmt.Errorf("failed to get caller identity: %v", err)
    }

    if err := saveSystemState(ctx, models.NewSystemState(caller)); err != nil {
        return err
    }

    return emitEvent(ctx, "LedgerInitialized", map[string]interface{}{
        "chiefMedicalOfficer": caller,
    })
}

// EnableMaintenance turns the maintenance gate on. Chief medical officer only;
// enabling twice is a no-op success.
func (ac *AdminContract) EnableMaintenance(ctx contractapi.TransactionContextInterface) error {
    return ac.setMaintenance(ctx, true)
}

// DisableMaintenance turns the maintenance gate off. Chief medical officer
// only; disabling twice is a no-op success.
func (ac *AdminContract) DisableMaintenance(ctx contractapi.TransactionContextInterface) error {
    return ac.setMaintenance(ctx, false)
}

func (ac *AdminContract) setMaintenance(ctx contractapi.TransactionContextInterface, active bool) error {
    state, err := loadSystemState(ctx)
    if err != nil {
        return err
    }

    caller, err := ctx.GetClientIdentity().GetID()
    if err != nil {
        return fmt.Errorf("failed to get caller identity: %v", err)
    }
    if !state.IsChiefMedicalOfficer(caller) {
        return ErrChiefMedicalOfficerOnly
    }

    if state.MaintenanceActive == active {
        return nil
    }

    state.MaintenanceActive = active
    if err := saveSystemState(ctx, state); err != nil {
        return err
    }

    event := "MaintenanceDisabled"
    if active {
        event = "MaintenanceEnabled"
    }
    return emitEvent(ctx, event, map[string]interface{}{
        "maintenanceActive": active,
    })
}

// IsSystemMaintenance returns whether the maintenance gate is currently on
func (ac *AdminContract) IsSystemMaintenance(ctx contractapi.TransactionContextInterface) (bool, error) {
    state, err := loadSystemState(ctx)
    if err != nil {
        return false, err
    }
    return state.MaintenanceActive, nil
}

// IsChiefMedicalOfficer checks an identity against the fixed chief medical officer
func (ac *AdminContract) IsChiefMedicalOfficer(ctx contractapi.TransactionContextInterface, identity string) (bool, error) {
    state, err := loadSystemState(ctx)
    if err != nil {
        return false, err
    }
    return state.IsChiefMedicalOfficer(identity), nil
}
