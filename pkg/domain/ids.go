// Package domain holds typed identifiers shared across modules.
//
// Entity ids are UUIDs wrapped in distinct types so a client id can never be
// passed where a weapon id is expected. Reference-data ids (client types,
// document types, questions) are small integers assigned by the backend.
package domain

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	dErrors "gmarm/pkg/domain-errors"
)

type (
	ClientID     uuid.UUID
	WeaponID     uuid.UUID
	AssignmentID uuid.UUID
	DocumentID   uuid.UUID
)

type (
	DocumentTypeID int
	QuestionID     int
)

func (id ClientID) String() string     { return uuid.UUID(id).String() }
func (id WeaponID) String() string     { return uuid.UUID(id).String() }
func (id AssignmentID) String() string { return uuid.UUID(id).String() }
func (id DocumentID) String() string   { return uuid.UUID(id).String() }

func (id ClientID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id WeaponID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id AssignmentID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id DocumentID) IsNil() bool   { return uuid.UUID(id) == uuid.Nil }

func (id ClientID) MarshalText() ([]byte, error)     { return uuid.UUID(id).MarshalText() }
func (id WeaponID) MarshalText() ([]byte, error)     { return uuid.UUID(id).MarshalText() }
func (id AssignmentID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id DocumentID) MarshalText() ([]byte, error)   { return uuid.UUID(id).MarshalText() }

func (id *ClientID) UnmarshalText(b []byte) error     { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *WeaponID) UnmarshalText(b []byte) error     { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *AssignmentID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *DocumentID) UnmarshalText(b []byte) error   { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id DocumentTypeID) String() string { return strconv.Itoa(int(id)) }
func (id QuestionID) String() string     { return strconv.Itoa(int(id)) }

// ParseClientID parses a client id at a trust boundary.
func ParseClientID(s string) (ClientID, error) {
	u, err := parseUUID(s, "client_id")
	return ClientID(u), err
}

// ParseWeaponID parses a weapon catalog id at a trust boundary.
func ParseWeaponID(s string) (WeaponID, error) {
	u, err := parseUUID(s, "weapon_id")
	return WeaponID(u), err
}

// ParseAssignmentID parses a weapon assignment id at a trust boundary.
func ParseAssignmentID(s string) (AssignmentID, error) {
	u, err := parseUUID(s, "assignment_id")
	return AssignmentID(u), err
}

// ParseDocumentID parses a stored document id at a trust boundary.
func ParseDocumentID(s string) (DocumentID, error) {
	u, err := parseUUID(s, "document_id")
	return DocumentID(u), err
}

func parseUUID(s, field string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeBadRequest, field+" is required")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeBadRequest, field+" must be a valid UUID")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeBadRequest, field+" must not be the nil UUID")
	}
	return u, nil
}
