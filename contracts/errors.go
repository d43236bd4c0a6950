package contracts

import "errors"

// Error kinds surfaced by the public contract. Each constraint check returns
// the first violated kind with no partial state change.
var (
    // ErrChiefMedicalOfficerOnly is returned when a maintenance toggle is
    // attempted by anyone but the chief medical officer.
    ErrChiefMedicalOfficerOnly = errors.New("caller is not the chief medical officer")

    // ErrRecordNotFound is returned when a referenced record id has no stored record.
    ErrRecordNotFound = errors.New("medical record does not exist")

    // ErrInsufficientClearance is returned when a requested access would push
    // the accessed volume past the record's total data volume.
    ErrInsufficientClearance = errors.New("requested volume exceeds remaining clearance")

    // ErrInvalidDataSize is returned when a supplied volume is zero.
    ErrInvalidDataSize = errors.New("data volume must be greater than zero")

    // ErrRecordDuplicate is reserved for duplicate detection. No operation
    // currently returns it.
    ErrRecordDuplicate = errors.New("medical record already exists")

    // ErrUnauthorizedAccess is returned when the caller is neither the
    // record's physician nor the holder of a sufficient grant.
    ErrUnauthorizedAccess = errors.New("caller is not authorized for this record")

    // ErrMaintenanceActive is returned when record creation or data access is
    // attempted while system maintenance is on.
    ErrMaintenanceActive = errors.New("system maintenance is active")

    // ErrCategoryTooLong is returned when a category label exceeds 64 characters.
    ErrCategoryTooLong = errors.New("category label exceeds maximum length")

    // ErrRecordInactive is returned when data access is attempted on an
    // archived record.
    ErrRecordInactive = errors.New("medical record is archived")
)

// Ledger lifecycle errors, outside the per-operation taxonomy.
var (
    ErrLedgerNotInitialized     = errors.New("ledger has not been initialized")
    ErrLedgerAlreadyInitialized = errors.New("ledger has already been initialized")
)
