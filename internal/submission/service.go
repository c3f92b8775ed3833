// Package submission sequences a client intake: validation, uniqueness,
// eligibility, persistence, weapon reservation and document uploads.
package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"gmarm/internal/answers"
	"gmarm/internal/clienttype"
	"gmarm/internal/documents"
	"gmarm/internal/eligibility"
	"gmarm/internal/submission/metrics"
	"gmarm/internal/submission/models"
	"gmarm/internal/weapons"
	weaponmodels "gmarm/internal/weapons/models"
	id "gmarm/pkg/domain"
	dErrors "gmarm/pkg/domain-errors"
	audit "gmarm/pkg/platform/audit"
	"gmarm/pkg/platform/audit/publisher"
	"gmarm/pkg/platform/sentinel"
	pstrings "gmarm/pkg/platform/strings"
	"gmarm/pkg/requestcontext"
)

const (
	flowCreate = "create"
	flowEdit   = "edit"

	tracerName = "gmarm/internal/submission"
)

// ClientStore persists client records.
type ClientStore interface {
	GetClientByID(ctx context.Context, clientID id.ClientID) (*models.Client, error)
	CreateClient(ctx context.Context, client models.Client) (*models.Client, error)
	PatchClient(ctx context.Context, clientID id.ClientID, patch models.Patch) (*models.Client, error)
	// CheckIdentificationUnique reports whether number is free, ignoring
	// the client identified by exclude.
	CheckIdentificationUnique(ctx context.Context, number string, exclude id.ClientID) (bool, error)
}

// AnswerStore persists questionnaire answers.
type AnswerStore interface {
	GetAnswers(ctx context.Context, clientID id.ClientID) ([]answers.Answer, error)
	SaveAnswers(ctx context.Context, clientID id.ClientID, batch []answers.Answer) error
}

// DocumentStore stores client documents.
type DocumentStore interface {
	ListDocuments(ctx context.Context, clientID id.ClientID) ([]documents.UploadedDocumentRef, error)
	UploadDocument(ctx context.Context, clientID id.ClientID, documentTypeID id.DocumentTypeID, file models.File) (*documents.UploadedDocumentRef, error)
	ReplaceDocument(ctx context.Context, documentID id.DocumentID, file models.File) (*documents.UploadedDocumentRef, error)
}

// TypeRegistry resolves client types.
type TypeRegistry interface {
	Lookup(typeName string) (clienttype.Config, error)
	Effective(typeName string, status clienttype.ServiceStatus) (clienttype.Config, error)
}

// RequirementResolver returns the document checklist for a key.
type RequirementResolver interface {
	GetRequirements(ctx context.Context, key documents.RequirementKey) (*documents.Requirements, error)
}

// Evaluator decides eligibility.
type Evaluator interface {
	Evaluate(in eligibility.Input) eligibility.Decision
}

// QuestionCatalog serves the questionnaire for an effective client type.
type QuestionCatalog interface {
	Questions(ctx context.Context, effective clienttype.Config) ([]answers.Question, error)
}

// WeaponService prices and records weapon reservations.
type WeaponService interface {
	Quote(ctx context.Context, req weapons.AssignRequest) (weaponmodels.Cost, error)
	Assign(ctx context.Context, req weapons.AssignRequest) (*weapons.AssignmentResult, error)
	ReassignStock(ctx context.Context, assignmentID id.AssignmentID, targetClientID id.ClientID) (*weapons.AssignmentResult, error)
}

// WeaponSelection is the weapon chosen on the intake form.
type WeaponSelection struct {
	WeaponID  id.WeaponID
	Quantity  int
	UnitPrice float64
}

// SubmitRequest carries the whole intake form. StockAssignmentID is only
// honoured on edit: it moves a seller's stock weapon to the client.
type SubmitRequest struct {
	Client            models.Client
	Answers           []answers.Answer
	Weapon            *WeaponSelection
	StockAssignmentID id.AssignmentID
	Documents         []models.DocumentUpload
}

type Service struct {
	clients      ClientStore
	answers      AnswerStore
	documents    DocumentStore
	types        TypeRegistry
	requirements RequirementResolver
	evaluator    Evaluator
	weapons      WeaponService
	questions    QuestionCatalog

	inflight    *inflight
	uploadLimit int
	logger      *slog.Logger
	publisher   *publisher.Publisher
	metrics     *metrics.Metrics
	tracer      trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(p *publisher.Publisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// WithUploadConcurrency caps parallel document uploads per submission.
func WithUploadConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.uploadLimit = n
		}
	}
}

// WithQuestionCatalog enables questionnaires in Form.
func WithQuestionCatalog(c QuestionCatalog) Option {
	return func(s *Service) {
		s.questions = c
	}
}

func New(
	clients ClientStore,
	answerStore AnswerStore,
	documentStore DocumentStore,
	types TypeRegistry,
	requirements RequirementResolver,
	evaluator Evaluator,
	weaponService WeaponService,
	opts ...Option,
) (*Service, error) {
	switch {
	case clients == nil:
		return nil, fmt.Errorf("client store is required")
	case answerStore == nil:
		return nil, fmt.Errorf("answer store is required")
	case documentStore == nil:
		return nil, fmt.Errorf("document store is required")
	case types == nil:
		return nil, fmt.Errorf("client type registry is required")
	case requirements == nil:
		return nil, fmt.Errorf("requirement resolver is required")
	case evaluator == nil:
		return nil, fmt.Errorf("evaluator is required")
	case weaponService == nil:
		return nil, fmt.Errorf("weapon service is required")
	}

	s := &Service{
		clients:      clients,
		answers:      answerStore,
		documents:    documentStore,
		types:        types,
		requirements: requirements,
		evaluator:    evaluator,
		weapons:      weaponService,
		inflight:     newInflight(),
		uploadLimit:  3,
		logger:       slog.Default(),
		tracer:       otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// assessment is the rule verdict for a client at one point of a flow.
type assessment struct {
	effective    clienttype.Config
	decision     eligibility.Decision
	key          documents.RequirementKey
	checklist    *documents.Tracker
	requirements *documents.Requirements
	completeness documents.Completeness
}

func (a *assessment) status() models.Status {
	return models.DeriveStatus(a.decision.Blocked, a.decision.AgeValid, a.completeness == documents.CompletenessComplete)
}

// assess evaluates eligibility and document completeness. A checklist that
// cannot be fetched leaves completeness PENDING and returns a warning.
func (s *Service) assess(
	ctx context.Context,
	c *models.Client,
	cfg clienttype.Config,
	ledger *answers.Ledger,
	pending []id.DocumentTypeID,
	refs []documents.UploadedDocumentRef,
) (*assessment, []string, error) {
	effective, err := s.types.Effective(c.ClientTypeName, c.ServiceStatus)
	if err != nil {
		return nil, nil, err
	}

	a := &assessment{
		effective: effective,
		key:       documents.NewRequirementKey(effective, c.ServiceStatus),
		checklist: documents.NewTracker(s.requirements, nil),
		decision: s.evaluator.Evaluate(eligibility.Input{
			ClientType:    cfg,
			ServiceStatus: c.ServiceStatus,
			BirthDate:     c.Birth(),
			Block:         ledger.BlockState(),
			Today:         requestcontext.Now(ctx),
		}),
	}

	var warnings []string
	reqs, err := a.checklist.Refresh(ctx, a.key)
	if err != nil {
		s.logger.WarnContext(ctx, "document requirements unavailable",
			"client_type", effective.Name,
			"error", err,
		)
		warnings = append(warnings, "document requirements unavailable: "+dErrors.MessageOf(err))
	}
	a.requirements = reqs
	a.completeness = documents.ComputeCompleteness(reqs, pending, refs)
	return a, warnings, nil
}

func (s *Service) weaponRequest(clientID id.ClientID, cfg clienttype.Config, decision eligibility.Decision, sel *WeaponSelection) weapons.AssignRequest {
	return weapons.AssignRequest{
		ClientID:  clientID,
		WeaponID:  sel.WeaponID,
		Quantity:  sel.Quantity,
		UnitPrice: sel.UnitPrice,
		Category:  decision.EffectiveCategory,
		Company:   cfg.IsCompany(),
	}
}

// assignWeapon runs the reservation step. Failures become warnings: the
// client is already saved.
func (s *Service) assignWeapon(
	ctx context.Context,
	clientID id.ClientID,
	cfg clienttype.Config,
	decision eligibility.Decision,
	sel *WeaponSelection,
) (*weapons.AssignmentResult, []string) {
	if sel == nil {
		return nil, nil
	}
	if !decision.CanPurchaseWeapons {
		return nil, []string{"weapon selection skipped: client cannot purchase weapons"}
	}

	ctx, span := s.tracer.Start(ctx, "submission.assign_weapon",
		trace.WithAttributes(attribute.String("weapon_id", sel.WeaponID.String())))
	defer span.End()

	res, err := s.weapons.Assign(ctx, s.weaponRequest(clientID, cfg, decision, sel))
	if err != nil {
		span.RecordError(err)
		s.logger.WarnContext(ctx, "weapon assignment failed",
			"client_id", clientID.String(),
			"weapon_id", sel.WeaponID.String(),
			"error", err,
		)
		return nil, []string{"weapon assignment: " + dErrors.MessageOf(err)}
	}
	return res, nil
}

// writeStatus persists the status intake derives, unless the client is
// already there or past intake.
func (s *Service) writeStatus(ctx context.Context, client *models.Client, derived models.Status, reason string) (*models.Client, error) {
	target := models.ResolveStatus(client.Status, derived)
	if target == client.Status {
		return client, nil
	}
	saved, err := s.clients.PatchClient(ctx, client.ID, models.Patch{"estado": string(target)})
	if err != nil {
		return client, translate(err, "failed to update client status")
	}
	s.statusChanged(ctx, saved.ID, client.Status, saved.Status, reason)
	return saved, nil
}

func (s *Service) statusChanged(ctx context.Context, clientID id.ClientID, from, to models.Status, reason string) {
	if from == to {
		return
	}
	s.metrics.IncStatus(string(to))
	s.logAudit(ctx, audit.EventClientStatusChanged,
		"client_id", clientID.String(),
		"decision", string(to),
		"status", string(from),
	)
	if to == models.StatusBlocked {
		s.logAudit(ctx, audit.EventClientBlocked,
			"client_id", clientID.String(),
			"decision", string(to),
			"reason", reason,
		)
	}
}

// finish closes out a flow: outcome, span, metrics and log.
func (s *Service) finish(ctx context.Context, span trace.Span, flow string, start time.Time, r *Result) *Result {
	r.Warnings = pstrings.DedupeAndTrim(r.Warnings)
	if r.Outcome == OutcomeSuccess && len(r.Warnings) > 0 {
		r.Outcome = OutcomeSuccessWithWarnings
	}

	span.SetAttributes(
		attribute.String("outcome", string(r.Outcome)),
		attribute.String("status", string(r.Status)),
		attribute.Int("warnings", len(r.Warnings)),
	)
	if r.Err != nil {
		span.RecordError(r.Err)
		span.SetStatus(codes.Error, dErrors.MessageOf(r.Err))
	}

	s.metrics.IncSubmission(flow, string(r.Outcome))
	s.metrics.ObserveDuration(flow, time.Since(start))

	attrs := []any{"flow", flow, "outcome", string(r.Outcome), "status", string(r.Status)}
	if r.Client != nil {
		attrs = append(attrs, "client_id", r.Client.ID.String())
	}
	if r.Err != nil {
		s.logger.WarnContext(ctx, "submission failed", append(attrs, "error", r.Err)...)
	} else {
		s.logger.InfoContext(ctx, "submission completed", append(attrs, "warnings", len(r.Warnings))...)
	}
	return r
}

func (s *Service) succeed(client *models.Client, a *assessment, assignment *weapons.AssignmentResult, warnings []string) *Result {
	decision := a.decision
	return &Result{
		Outcome:      OutcomeSuccess,
		Status:       client.Status,
		Client:       client,
		Warnings:     warnings,
		FieldValues:  client.FieldValues(),
		Decision:     &decision,
		Completeness: a.completeness,
		Assignment:   assignment,
	}
}

func (s *Service) logAudit(ctx context.Context, event audit.AuditEvent, attrs ...any) {
	publisher.LogAudit(ctx, s.logger, s.publisher, event, attrs...)
}

func newLedger(cfg clienttype.Config, stored []answers.Answer, submitted []answers.Answer) *answers.Ledger {
	ledger := answers.NewLedger(cfg.Code)
	ledger.Load(stored)
	for _, a := range submitted {
		ledger.SetAnswer(a.QuestionText, a.Value, a.QuestionID)
	}
	return ledger
}

// normalize clears fields that carry no meaning for the client's type.
func normalize(c *models.Client, cfg clienttype.Config) {
	c.ClientTypeCode = cfg.Code
	if !cfg.IsUniformed() {
		c.ServiceStatus = ""
	}
}

// translate keeps coded errors and maps sentinel facts to codes.
func translate(err error, msg string) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.Wrap(err, dErrors.CodeNotFound, msg)
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.Wrap(err, dErrors.CodeConflict, msg)
	case errors.Is(err, sentinel.ErrUnavailable):
		return dErrors.NewPersistence(0, msg, err)
	case dErrors.CodeOf(err) != dErrors.CodeInternal:
		return err
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, msg)
	}
}
