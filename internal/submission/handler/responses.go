package handler

import (
	"time"

	"gmarm/internal/documents"
	"gmarm/internal/eligibility"
	"gmarm/internal/submission"
	"gmarm/internal/weapons"
	id "gmarm/pkg/domain"
	audit "gmarm/pkg/platform/audit"
)

// SubmissionResponse is the structured result the shell renders.
type SubmissionResponse struct {
	Outcome      string                 `json:"outcome"`
	Status       string                 `json:"status,omitempty"`
	ClientID     string                 `json:"clientId,omitempty"`
	Code         string                 `json:"code,omitempty"`
	Errors       []string               `json:"errors,omitempty"`
	Warnings     []string               `json:"warnings,omitempty"`
	FieldValues  map[string]string      `json:"fieldValues,omitempty"`
	Decision     *eligibility.Decision  `json:"decision,omitempty"`
	Completeness documents.Completeness `json:"completeness,omitempty"`
	Assignment   *AssignmentResponse    `json:"assignment,omitempty"`
}

// AssignmentResponse describes a reservation outcome.
type AssignmentResponse struct {
	Outcome      string   `json:"outcome"`
	AssignmentID string   `json:"assignmentId,omitempty"`
	ClientID     string   `json:"clientId,omitempty"`
	State        string   `json:"state,omitempty"`
	Quantity     int      `json:"quantity,omitempty"`
	UnitPrice    float64  `json:"unitPrice,omitempty"`
	Subtotal     float64  `json:"subtotal,omitempty"`
	Tax          float64  `json:"tax,omitempty"`
	Total        float64  `json:"total,omitempty"`
	Cancelled    []string `json:"cancelled,omitempty"`
}

// FromResult converts a submission result.
func FromResult(r *submission.Result) *SubmissionResponse {
	resp := &SubmissionResponse{
		Outcome:      string(r.Outcome),
		Status:       string(r.Status),
		Errors:       r.Errors,
		Warnings:     r.Warnings,
		FieldValues:  r.FieldValues,
		Decision:     r.Decision,
		Completeness: r.Completeness,
		Assignment:   FromAssignment(r.Assignment),
	}
	if r.Code != "" && r.Outcome == submission.OutcomeFailure {
		resp.Code = string(r.Code)
	}
	if r.Client != nil && !r.Client.ID.IsNil() {
		resp.ClientID = r.Client.ID.String()
	}
	return resp
}

// FromAssignment converts an assignment result; nil stays nil.
func FromAssignment(r *weapons.AssignmentResult) *AssignmentResponse {
	if r == nil {
		return nil
	}
	resp := &AssignmentResponse{
		Outcome:  string(r.Outcome),
		Subtotal: r.Cost.Subtotal,
		Tax:      r.Cost.Tax,
		Total:    r.Cost.Total,
	}
	if a := r.Assignment; a != nil {
		resp.AssignmentID = a.ID.String()
		resp.ClientID = a.ClientID.String()
		resp.State = string(a.State)
		resp.Quantity = a.Quantity
		resp.UnitPrice = a.UnitPrice
	}
	for _, c := range r.Cancelled {
		resp.Cancelled = append(resp.Cancelled, c.String())
	}
	return resp
}

// AuditEventResponse is one entry of a client's audit trail.
type AuditEventResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Subject   string    `json:"subject,omitempty"`
	Decision  string    `json:"decision,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	RequestID string    `json:"requestId,omitempty"`
	ActorID   string    `json:"actorId,omitempty"`
}

// AuditTrailResponse lists a client's audit events.
type AuditTrailResponse struct {
	ClientID string               `json:"clientId"`
	Events   []AuditEventResponse `json:"events"`
}

func FromAuditTrail(clientID id.ClientID, events []audit.Event) *AuditTrailResponse {
	resp := &AuditTrailResponse{ClientID: clientID.String(), Events: make([]AuditEventResponse, 0, len(events))}
	for _, e := range events {
		resp.Events = append(resp.Events, AuditEventResponse{
			ID:        e.ID,
			Category:  string(e.Category),
			Timestamp: e.Timestamp,
			Action:    e.Action,
			Subject:   e.Subject,
			Decision:  e.Decision,
			Reason:    e.Reason,
			RequestID: e.RequestID,
			ActorID:   e.ActorID,
		})
	}
	return resp
}
