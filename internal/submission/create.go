package submission

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	id "gmarm/pkg/domain"
	dErrors "gmarm/pkg/domain-errors"
	audit "gmarm/pkg/platform/audit"
	"gmarm/pkg/requestcontext"
)

// Create registers a new client. Validation, uniqueness and weapon pricing
// failures abort before any write. Once the client is saved, weapon and
// document failures are reported as warnings and never undo the save.
func (s *Service) Create(ctx context.Context, req SubmitRequest) *Result {
	start := time.Now()
	release, ok := s.inflight.acquire("identification:" + req.Client.IdentificationNumber)
	if !ok {
		s.metrics.IncSubmission(flowCreate, string(OutcomeIgnored))
		return ignored()
	}
	defer release()

	ctx, span := s.tracer.Start(ctx, "submission.create")
	defer span.End()

	return s.finish(ctx, span, flowCreate, start, s.create(ctx, req))
}

func (s *Service) create(ctx context.Context, req SubmitRequest) *Result {
	client := req.Client
	client.ID = id.ClientID{}

	cfg, err := s.types.Lookup(client.ClientTypeName)
	if err != nil {
		return fail(err, nil)
	}
	normalize(&client, cfg)

	if errs := Validate(&client, cfg, requestcontext.Now(ctx)); len(errs) > 0 {
		return fail(dErrors.New(dErrors.CodeValidation, "client failed validation"), nil, joinFieldErrors(errs)...)
	}

	unique, err := s.clients.CheckIdentificationUnique(ctx, client.IdentificationNumber, id.ClientID{})
	if err != nil {
		return fail(translate(err, "failed to check identification"), nil)
	}
	if !unique {
		return fail(dErrors.New(dErrors.CodeDuplicateIdentification, "identification number is already registered"), nil)
	}

	ledger := newLedger(cfg, nil, req.Answers)
	a, warnings, err := s.assess(ctx, &client, cfg, ledger, uploadTypes(req.Documents), nil)
	if err != nil {
		return fail(err, nil)
	}
	if req.Weapon != nil && a.decision.CanPurchaseWeapons {
		if _, err := s.weapons.Quote(ctx, s.weaponRequest(client.ID, cfg, a.decision, req.Weapon)); err != nil {
			return fail(err, nil)
		}
	}

	client.Status = a.status()
	saved, err := s.clients.CreateClient(ctx, client)
	if err != nil {
		return fail(translate(err, "failed to create client"), nil)
	}
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("client_id", saved.ID.String()))
	s.logAudit(ctx, audit.EventClientCreated,
		"client_id", saved.ID.String(),
		"client_type", cfg.Code,
		"status", string(saved.Status),
	)
	s.statusChanged(ctx, saved.ID, "", saved.Status, a.decision.BlockReason)

	if all := ledger.Answers(); len(all) > 0 {
		if err := s.answers.SaveAnswers(ctx, saved.ID, all); err != nil {
			return fail(translate(err, "failed to save answers"), saved)
		}
		ledger.MarkSaved()
	}

	assignment, weaponWarnings := s.assignWeapon(ctx, saved.ID, cfg, a.decision, req.Weapon)
	warnings = append(warnings, weaponWarnings...)

	uploadWarnings := s.uploadDocuments(ctx, saved.ID, req.Documents, nil)
	warnings = append(warnings, uploadWarnings...)
	if len(uploadWarnings) > 0 {
		// pending uploads were counted as present; recount from storage
		var refreshWarnings []string
		saved, refreshWarnings = s.refresh(ctx, saved, a)
		warnings = append(warnings, refreshWarnings...)
	}

	return s.succeed(saved, a, assignment, warnings)
}
