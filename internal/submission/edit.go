package submission

import (
	"context"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"gmarm/internal/clienttype"
	"gmarm/internal/documents"
	"gmarm/internal/eligibility"
	"gmarm/internal/submission/models"
	"gmarm/internal/weapons"
	id "gmarm/pkg/domain"
	dErrors "gmarm/pkg/domain-errors"
	audit "gmarm/pkg/platform/audit"
	"gmarm/pkg/requestcontext"
)

// Edit updates a stored client. Only fields that differ from the server copy
// are sent, only changed answers are saved, and document refs are reloaded
// afterwards so the status reflects what is actually on file.
func (s *Service) Edit(ctx context.Context, clientID id.ClientID, req SubmitRequest) *Result {
	start := time.Now()
	if clientID.IsNil() {
		return fail(dErrors.New(dErrors.CodeBadRequest, "client id is required"), nil)
	}
	release, ok := s.inflight.acquire(clientKey(clientID))
	if !ok {
		s.metrics.IncSubmission(flowEdit, string(OutcomeIgnored))
		return ignored()
	}
	defer release()

	ctx, span := s.tracer.Start(ctx, "submission.edit",
		trace.WithAttributes(attribute.String("client_id", clientID.String())))
	defer span.End()

	return s.finish(ctx, span, flowEdit, start, s.edit(ctx, clientID, req))
}

func (s *Service) edit(ctx context.Context, clientID id.ClientID, req SubmitRequest) *Result {
	server, err := s.clients.GetClientByID(ctx, clientID)
	if err != nil {
		return fail(translate(err, "failed to load client"), nil)
	}

	next := req.Client
	next.ID = clientID
	next.Status = server.Status

	cfg, err := s.types.Lookup(next.ClientTypeName)
	if err != nil {
		return fail(err, server)
	}
	normalize(&next, cfg)

	if errs := Validate(&next, cfg, requestcontext.Now(ctx)); len(errs) > 0 {
		return fail(dErrors.New(dErrors.CodeValidation, "client failed validation"), server, joinFieldErrors(errs)...)
	}

	if next.IdentificationNumber != server.IdentificationNumber {
		unique, err := s.clients.CheckIdentificationUnique(ctx, next.IdentificationNumber, clientID)
		if err != nil {
			return fail(translate(err, "failed to check identification"), server)
		}
		if !unique {
			return fail(dErrors.New(dErrors.CodeDuplicateIdentification, "identification number is already registered"), server)
		}
	}

	stored, err := s.answers.GetAnswers(ctx, clientID)
	if err != nil {
		return fail(translate(err, "failed to load answers"), server)
	}
	refs, err := s.documents.ListDocuments(ctx, clientID)
	if err != nil {
		return fail(translate(err, "failed to load documents"), server)
	}

	ledger := newLedger(cfg, stored, req.Answers)
	a, warnings, err := s.assess(ctx, &next, cfg, ledger, uploadTypes(req.Documents), refs)
	if err != nil {
		return fail(err, server)
	}
	if req.Weapon != nil && a.decision.CanPurchaseWeapons {
		if _, err := s.weapons.Quote(ctx, s.weaponRequest(clientID, cfg, a.decision, req.Weapon)); err != nil {
			return fail(err, server)
		}
	}

	next.Status = models.ResolveStatus(server.Status, a.status())
	saved := server
	if patch := models.Diff(server, &next); !patch.Empty() {
		saved, err = s.clients.PatchClient(ctx, clientID, patch)
		if err != nil {
			return fail(translate(err, "failed to update client"), server)
		}
		s.logAudit(ctx, audit.EventClientUpdated,
			"client_id", clientID.String(),
			"fields", patchFields(patch),
		)
		s.statusChanged(ctx, clientID, server.Status, saved.Status, a.decision.BlockReason)
	}

	if changed := ledger.Changed(); len(changed) > 0 {
		if err := s.answers.SaveAnswers(ctx, clientID, changed); err != nil {
			return fail(translate(err, "failed to save answers"), saved)
		}
		ledger.MarkSaved()
	}

	assignment, weaponWarnings := s.assignWeapon(ctx, clientID, cfg, a.decision, req.Weapon)
	warnings = append(warnings, weaponWarnings...)

	warnings = append(warnings, s.uploadDocuments(ctx, clientID, req.Documents, documents.LatestLoaded(refs))...)

	var refreshWarnings []string
	saved, refreshWarnings = s.refresh(ctx, saved, a)
	warnings = append(warnings, refreshWarnings...)

	if !req.StockAssignmentID.IsNil() {
		moved, stockWarnings := s.reassignStock(ctx, clientID, a.decision, req.StockAssignmentID)
		warnings = append(warnings, stockWarnings...)
		if moved != nil {
			assignment = moved
		}
	}

	return s.succeed(saved, a, assignment, warnings)
}

// reassignStock runs after the document refresh so freshly uploaded files
// count toward the target's completeness.
func (s *Service) reassignStock(
	ctx context.Context,
	clientID id.ClientID,
	decision eligibility.Decision,
	assignmentID id.AssignmentID,
) (*weapons.AssignmentResult, []string) {
	if !decision.CanPurchaseWeapons {
		return nil, []string{"stock reassignment skipped: client cannot purchase weapons"}
	}
	res, err := s.weapons.ReassignStock(ctx, assignmentID, clientID)
	if err != nil {
		s.logger.WarnContext(ctx, "stock reassignment failed",
			"client_id", clientID.String(),
			"assignment_id", assignmentID.String(),
			"error", err,
		)
		return nil, []string{"stock reassignment: " + dErrors.MessageOf(err)}
	}
	return res, nil
}

func clientKey(clientID id.ClientID) string {
	return "client:" + clientID.String()
}

func patchFields(p models.Patch) []string {
	out := make([]string, 0, len(p))
	for k := range p {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// typeOf returns the configuration of a stored client.
func (s *Service) typeOf(c *models.Client) (clienttype.Config, error) {
	return s.types.Lookup(c.ClientTypeName)
}
