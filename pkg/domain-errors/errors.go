// Package domainerrors carries code-tagged errors across service boundaries.
//
// Services return these (optionally wrapping an infrastructure cause) so that
// transports can map a failure to a response without inspecting messages.
// Infrastructure facts (not found, conflict, already assigned) live in
// pkg/platform/sentinel and are translated into codes by the services.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a failure.
type Code string

const (
	CodeBadRequest         Code = "bad_request"
	CodeValidation         Code = "validation_error"
	CodeNotFound           Code = "not_found"
	CodeConflict           Code = "conflict"
	CodeInternal           Code = "internal_error"
	CodeInvariantViolation Code = "invariant_violation"
	CodeTimeout            Code = "timeout"

	// Regulatory taxonomy.
	CodeConfigUnavailable       Code = "config_unavailable"
	CodeDuplicateIdentification Code = "duplicate_identification"
	CodePriceBelowFloor         Code = "price_below_floor"
	CodeQuantityCapExceeded     Code = "quantity_cap_exceeded"
	CodeDocumentsIncomplete     Code = "documents_incomplete"
	CodePersistence             Code = "persistence_error"
	CodeDocumentUpload          Code = "document_upload_error"
)

// coded is satisfied by every error type in this package.
type coded interface {
	error
	ErrorCode() Code
}

// Error is a domain error with a stable code and a user-facing message.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// ErrorCode returns the classification code.
func (e *Error) ErrorCode() Code { return e.Code }

// New creates a domain error without an underlying cause.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error.
// A nil err still produces an error so callers can wrap unconditionally.
func Wrap(err error, code Code, message string) error {
	return &Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether any error in the chain carries the code.
func HasCode(err error, code Code) bool {
	for err != nil {
		var c coded
		if !errors.As(err, &c) {
			return false
		}
		if c.ErrorCode() == code {
			return true
		}
		err = errors.Unwrap(c)
	}
	return false
}

// CodeOf returns the outermost code in the chain, or CodeInternal.
func CodeOf(err error) Code {
	var c coded
	if errors.As(err, &c) {
		return c.ErrorCode()
	}
	return CodeInternal
}

// MessageOf returns the outermost domain message, falling back to err.Error().
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return pe.Message
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
