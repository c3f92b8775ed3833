package apiclient

import (
	"context"

	"gmarm/internal/weapons/models"
	id "gmarm/pkg/domain"
)

func (c *Client) GetWeapon(ctx context.Context, weaponID id.WeaponID) (*models.Weapon, error) {
	var out models.Weapon
	resp, err := c.request(ctx).
		SetPathParam("id", weaponID.String()).
		SetResult(&out).
		Get("/armas/{id}")
	if err := c.check(ctx, "get weapon", resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListActiveAssignments returns the client's RESERVADA and ASIGNADA rows.
func (c *Client) ListActiveAssignments(ctx context.Context, clientID id.ClientID) ([]models.Assignment, error) {
	var out []models.Assignment
	resp, err := c.request(ctx).
		SetPathParam("id", clientID.String()).
		SetQueryParam("activas", "true").
		SetResult(&out).
		Get("/clientes/{id}/asignaciones-arma")
	if err := c.check(ctx, "list assignments", resp, err); err != nil {
		return nil, err
	}
	active := out[:0]
	for _, a := range out {
		if a.State.IsActive() {
			active = append(active, a)
		}
	}
	return active, nil
}

func (c *Client) GetAssignment(ctx context.Context, assignmentID id.AssignmentID) (*models.Assignment, error) {
	var out models.Assignment
	resp, err := c.request(ctx).
		SetPathParam("id", assignmentID.String()).
		SetResult(&out).
		Get("/asignaciones-arma/{id}")
	if err := c.check(ctx, "get assignment", resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAssignment posts the new reservation together with the ids it
// supersedes; the backend applies both in one transaction.
func (c *Client) CreateAssignment(ctx context.Context, req models.CreateAssignment) (*models.Assignment, error) {
	var out models.Assignment
	resp, err := c.request(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/asignaciones-arma")
	if err := c.check(ctx, "create assignment", resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

type reassignBody struct {
	ClientID  id.ClientID       `json:"clienteId"`
	Supersede []id.AssignmentID `json:"reemplazaA,omitempty"`
}

func (c *Client) ReassignStock(ctx context.Context, assignmentID id.AssignmentID, targetClientID id.ClientID, supersede []id.AssignmentID) (*models.Assignment, error) {
	var out models.Assignment
	resp, err := c.request(ctx).
		SetPathParam("id", assignmentID.String()).
		SetBody(reassignBody{ClientID: targetClientID, Supersede: supersede}).
		SetResult(&out).
		Post("/asignaciones-arma/{id}/reasignar")
	if err := c.check(ctx, "reassign stock", resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}
