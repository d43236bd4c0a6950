package contracts

import (
    "fmt"

    "github.com/hyperledger/fabric-contract-api-go/contractapi"

    "github.com/medledger/chaincode/medical-records/models"
)

// AccessControlContract provides functions for managing staff access grants
// on medical records.
type AccessControlContract struct {
    contractapi.Contract
}

// GrantMedicalAccess upserts a staff member's grant on a record. Physician
// only. A re-grant fully replaces the previous limit.
func (acc *AccessControlContract) GrantMedicalAccess(
    ctx contractapi.TransactionContextInterface,
    recordID uint64,
    staff string,
    accessLimit uint64,
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

    grant := models.NewAccessGrant(recordID, staff, accessLimit)
    if err := saveGrant(ctx, grant); err != nil {
        return err
    }

    return emitEvent(ctx, "AccessGranted", map[string]interface{}{
        "recordId":    recordID,
        "physician":   caller,
        "staff":       staff,
        "accessLimit": accessLimit,
    })
}

// RevokeMedicalAccess removes a staff member's grant on a record. Physician
// only; revoking an absent grant is a silent success.
func (acc *AccessControlContract) RevokeMedicalAccess(
    ctx contractapi.TransactionContextInterface,
    recordID uint64,
    staff string,
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

    if err := deleteGrant(ctx, recordID, staff); err != nil {
        return err
    }

    return emitEvent(ctx, "AccessRevoked", map[string]interface{}{
        "recordId":  recordID,
        "physician": caller,
        "staff":     staff,
    })
}

// GetAccessPrivilege returns a staff member's grant on a record, or nil when
// no grant exists.
func (acc *AccessControlContract) GetAccessPrivilege(
    ctx contractapi.TransactionContextInterface,
    recordID uint64,
    staff string,
) (*models.AccessGrant, error) {
    return loadGrant(ctx, recordID, staff)
}
