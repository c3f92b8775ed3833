package models

import (
	"time"

	id "gmarm/pkg/domain"
)

// Weapon is a catalog entry. The reference price is the invoicing floor.
type Weapon struct {
	ID             id.WeaponID `json:"id"`
	Name           string      `json:"nombre"`
	Caliber        string      `json:"calibre,omitempty"`
	ReferencePrice float64     `json:"precioReferencia"`
}

// AssignmentState is the lifecycle of a reservation.
type AssignmentState string

const (
	StateReserved  AssignmentState = "RESERVADA"
	StateAssigned  AssignmentState = "ASIGNADA"
	StateCancelled AssignmentState = "CANCELADA"
	StateCompleted AssignmentState = "COMPLETADA"
)

// IsActive reports the non-terminal states.
func (s AssignmentState) IsActive() bool {
	return s == StateReserved || s == StateAssigned
}

// Assignment links a client to a weapon. Never deleted: superseded
// assignments end CANCELADA.
type Assignment struct {
	ID         id.AssignmentID `json:"id"`
	ClientID   id.ClientID     `json:"clienteId"`
	WeaponID   id.WeaponID     `json:"armaId"`
	Quantity   int             `json:"cantidad"`
	UnitPrice  float64         `json:"precioUnitario"`
	TotalPrice float64         `json:"precioTotal"`
	State      AssignmentState `json:"estado"`
	CreatedAt  time.Time       `json:"fechaCreacion"`
	UpdatedAt  time.Time       `json:"fechaActualizacion"`
}

// CreateAssignment is one atomic backend write: the new reservation plus
// the cancellation of every id in Supersede.
type CreateAssignment struct {
	ClientID   id.ClientID       `json:"clienteId"`
	WeaponID   id.WeaponID       `json:"armaId"`
	Quantity   int               `json:"cantidad"`
	UnitPrice  float64           `json:"precioUnitario"`
	TotalPrice float64           `json:"precioTotal"`
	Supersede  []id.AssignmentID `json:"reemplazaA,omitempty"`
}

// Cost is the price breakdown of a reservation, rounded to cents.
type Cost struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"iva"`
	Total    float64 `json:"total"`
}
