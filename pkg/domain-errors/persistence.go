package domainerrors

import "fmt"

// PersistenceError wraps a backend failure with its HTTP status code and the
// most specific message the backend returned (validation detail over the
// generic status text).
type PersistenceError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *PersistenceError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("persistence error: %s", e.Message)
	}
	return fmt.Sprintf("persistence error (%d): %s", e.StatusCode, e.Message)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// ErrorCode returns CodePersistence.
func (e *PersistenceError) ErrorCode() Code { return CodePersistence }

// NewPersistence builds a PersistenceError.
func NewPersistence(statusCode int, message string, cause error) error {
	return &PersistenceError{StatusCode: statusCode, Message: message, Err: cause}
}
