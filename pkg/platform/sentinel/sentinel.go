package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and backend adapters return
// these (optionally wrapped) so services can translate them into domain errors.
//
//   - ErrNotFound: record does not exist in the backend
//   - ErrConflict: write rejected because of a uniqueness constraint
//   - ErrAlreadyAssigned: the weapon is already assigned to the client
//   - ErrInvalidState: record in wrong state for requested operation
//   - ErrUnavailable: backend or cache temporarily unavailable
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrAlreadyAssigned = errors.New("already assigned")
	ErrInvalidState    = errors.New("invalid state")
	ErrUnavailable     = errors.New("unavailable")
)
