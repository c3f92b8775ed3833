package submission

import (
	"context"

	"gmarm/internal/documents"
	"gmarm/internal/eligibility"
	"gmarm/internal/submission/models"
	"gmarm/internal/weapons"
	id "gmarm/pkg/domain"
	dErrors "gmarm/pkg/domain-errors"
	audit "gmarm/pkg/platform/audit"
)

// EligibilityReport is the current rule verdict for a stored client.
type EligibilityReport struct {
	ClientID      id.ClientID                  `json:"clientId"`
	CurrentStatus models.Status                `json:"currentStatus"`
	Status        models.Status                `json:"status"`
	Decision      eligibility.Decision         `json:"decision"`
	Completeness  documents.Completeness       `json:"completeness"`
	Required      []documents.RequiredDocument `json:"required,omitempty"`
	Missing       []id.DocumentTypeID          `json:"missing,omitempty"`
}

// Eligibility evaluates a stored client without writing anything. Status is
// what intake would set now; CurrentStatus is what is stored.
func (s *Service) Eligibility(ctx context.Context, clientID id.ClientID) (*EligibilityReport, error) {
	client, a, refs, err := s.load(ctx, clientID)
	if err != nil {
		return nil, err
	}

	report := &EligibilityReport{
		ClientID:      clientID,
		CurrentStatus: client.Status,
		Status:        models.ResolveStatus(client.Status, a.status()),
		Decision:      a.decision,
		Completeness:  a.completeness,
	}
	if a.requirements != nil {
		report.Required = a.requirements.Documents
		loaded := documents.LatestLoaded(refs)
		for _, typeID := range a.requirements.Mandatory() {
			if _, ok := loaded[typeID]; !ok {
				report.Missing = append(report.Missing, typeID)
			}
		}
	}
	return report, nil
}

// AssignWeapon reserves a weapon for a stored client that may purchase
// weapons.
func (s *Service) AssignWeapon(ctx context.Context, clientID id.ClientID, sel WeaponSelection) (*weapons.AssignmentResult, error) {
	release, ok := s.inflight.acquire(clientKey(clientID))
	if !ok {
		return nil, dErrors.New(dErrors.CodeConflict, "a submission for this client is in progress")
	}
	defer release()

	client, a, _, err := s.load(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !a.decision.CanPurchaseWeapons {
		msg := "client cannot purchase weapons"
		if a.decision.BlockReason != "" {
			msg += ": " + a.decision.BlockReason
		}
		return nil, dErrors.New(dErrors.CodeInvariantViolation, msg)
	}

	cfg, err := s.typeOf(client)
	if err != nil {
		return nil, err
	}
	return s.weapons.Assign(ctx, s.weaponRequest(clientID, cfg, a.decision, &sel))
}

// ReassignStock moves a seller's stock weapon to a stored client.
func (s *Service) ReassignStock(ctx context.Context, assignmentID id.AssignmentID, clientID id.ClientID) (*weapons.AssignmentResult, error) {
	release, ok := s.inflight.acquire(clientKey(clientID))
	if !ok {
		return nil, dErrors.New(dErrors.CodeConflict, "a submission for this client is in progress")
	}
	defer release()

	return s.weapons.ReassignStock(ctx, assignmentID, clientID)
}

// AuditTrail returns the recorded audit events of a client, oldest first.
func (s *Service) AuditTrail(ctx context.Context, clientID id.ClientID) ([]audit.Event, error) {
	if clientID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "client id is required")
	}
	if s.publisher == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "audit trail is not configured")
	}
	events, err := s.publisher.List(ctx, clientID)
	if err != nil {
		return nil, translate(err, "failed to load audit trail")
	}
	return events, nil
}

// load reads a stored client with its answers and refs and assesses it.
func (s *Service) load(ctx context.Context, clientID id.ClientID) (*models.Client, *assessment, []documents.UploadedDocumentRef, error) {
	if clientID.IsNil() {
		return nil, nil, nil, dErrors.New(dErrors.CodeBadRequest, "client id is required")
	}
	client, err := s.clients.GetClientByID(ctx, clientID)
	if err != nil {
		return nil, nil, nil, translate(err, "failed to load client")
	}
	cfg, err := s.typeOf(client)
	if err != nil {
		return nil, nil, nil, err
	}
	stored, err := s.answers.GetAnswers(ctx, clientID)
	if err != nil {
		return nil, nil, nil, translate(err, "failed to load answers")
	}
	refs, err := s.documents.ListDocuments(ctx, clientID)
	if err != nil {
		return nil, nil, nil, translate(err, "failed to load documents")
	}

	a, _, err := s.assess(ctx, client, cfg, newLedger(cfg, stored, nil), nil, refs)
	if err != nil {
		return nil, nil, nil, err
	}
	return client, a, refs, nil
}
