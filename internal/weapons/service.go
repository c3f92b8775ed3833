// Package weapons prices, caps and records weapon reservations, including
// moving a weapon from a seller's stock to a client.
package weapons

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gmarm/internal/clienttype"
	"gmarm/internal/documents"
	"gmarm/internal/weapons/metrics"
	"gmarm/internal/weapons/models"
	id "gmarm/pkg/domain"
	dErrors "gmarm/pkg/domain-errors"
	audit "gmarm/pkg/platform/audit"
	"gmarm/pkg/platform/audit/publisher"
	"gmarm/pkg/platform/sentinel"
)

// civilQuantityCap is the legal per-sale limit for civil buyers.
const civilQuantityCap = 2

// operation labels for metrics
const (
	opAssign   = "assign"
	opReassign = "reassign"
)

// Catalog reads weapon catalog entries.
type Catalog interface {
	GetWeapon(ctx context.Context, weaponID id.WeaponID) (*models.Weapon, error)
}

// Store is the backend side of assignments. CreateAssignment and
// ReassignStock are atomic: the new assignment and every supersede
// cancellation land together or not at all.
type Store interface {
	ListActiveAssignments(ctx context.Context, clientID id.ClientID) ([]models.Assignment, error)
	GetAssignment(ctx context.Context, assignmentID id.AssignmentID) (*models.Assignment, error)
	CreateAssignment(ctx context.Context, req models.CreateAssignment) (*models.Assignment, error)
	ReassignStock(ctx context.Context, assignmentID id.AssignmentID, targetClientID id.ClientID, supersede []id.AssignmentID) (*models.Assignment, error)
}

// DocumentGate reports a stored client's document completeness.
type DocumentGate interface {
	Completeness(ctx context.Context, clientID id.ClientID) (documents.Completeness, error)
}

// TaxRateSource supplies the current tax rate.
type TaxRateSource interface {
	TaxRate() float64
}

// Outcome of an assignment operation.
type Outcome string

const (
	OutcomeCreated         Outcome = "CREATED"
	OutcomeAlreadyAssigned Outcome = "ALREADY_ASSIGNED"
	OutcomeReassigned      Outcome = "REASSIGNED"
)

// AssignRequest asks for a reservation. Category is the client's effective
// category; Company lifts the quantity cap.
type AssignRequest struct {
	ClientID  id.ClientID
	WeaponID  id.WeaponID
	Quantity  int
	UnitPrice float64
	Category  string
	Company   bool
}

// AssignmentResult reports what was written, if anything.
type AssignmentResult struct {
	Outcome    Outcome
	Assignment *models.Assignment
	Cost       models.Cost
	Cancelled  []id.AssignmentID
}

type Service struct {
	catalog   Catalog
	store     Store
	gate      DocumentGate
	taxRates  TaxRateSource
	logger    *slog.Logger
	publisher *publisher.Publisher
	metrics   *metrics.Metrics
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

func New(catalog Catalog, store Store, gate DocumentGate, taxRates TaxRateSource, opts ...Option) *Service {
	s := &Service{
		catalog:  catalog,
		store:    store,
		gate:     gate,
		taxRates: taxRates,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Quote validates a request against the catalog and prices it without
// writing anything.
func (s *Service) Quote(ctx context.Context, req AssignRequest) (models.Cost, error) {
	if err := s.checkQuantity(req); err != nil {
		return models.Cost{}, err
	}
	if _, err := s.checkPrice(ctx, req); err != nil {
		return models.Cost{}, err
	}
	return ComputeCost(req.UnitPrice, req.Quantity, s.taxRates.TaxRate()), nil
}

// Assign reserves a weapon for a client. An identical active reservation
// makes the call a no-op; otherwise the client's other active reservations
// are cancelled in the same backend write.
func (s *Service) Assign(ctx context.Context, req AssignRequest) (*AssignmentResult, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveLatency(opAssign, time.Since(start)) }()

	if req.ClientID.IsNil() || req.WeaponID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "client and weapon are required")
	}
	cost, err := s.Quote(ctx, req)
	if err != nil {
		s.metrics.IncRejection(string(dErrors.CodeOf(err)))
		return nil, err
	}

	active, err := s.store.ListActiveAssignments(ctx, req.ClientID)
	if err != nil {
		return nil, translate(err, "failed to list active assignments")
	}
	if existing := findWeapon(active, req.WeaponID); existing != nil {
		s.logAudit(ctx, audit.EventAssignmentNoop,
			"client_id", req.ClientID.String(),
			"assignment_id", existing.ID.String(),
		)
		s.metrics.IncOutcome(opAssign, string(OutcomeAlreadyAssigned))
		return &AssignmentResult{Outcome: OutcomeAlreadyAssigned, Assignment: existing, Cost: cost}, nil
	}

	supersede := ids(active)
	created, err := s.store.CreateAssignment(ctx, models.CreateAssignment{
		ClientID:   req.ClientID,
		WeaponID:   req.WeaponID,
		Quantity:   req.Quantity,
		UnitPrice:  req.UnitPrice,
		TotalPrice: cost.Total,
		Supersede:  supersede,
	})
	if errors.Is(err, sentinel.ErrAlreadyAssigned) {
		return s.alreadyAssigned(ctx, opAssign, req.ClientID, req.WeaponID, cost)
	}
	if err != nil {
		return nil, translate(err, "failed to create assignment")
	}

	s.logAudit(ctx, audit.EventAssignmentCreated,
		"client_id", req.ClientID.String(),
		"assignment_id", created.ID.String(),
		"weapon_id", req.WeaponID.String(),
		"quantity", req.Quantity,
		"total", cost.Total,
	)
	for _, cancelled := range supersede {
		s.logAudit(ctx, audit.EventAssignmentCancelled,
			"client_id", req.ClientID.String(),
			"assignment_id", cancelled.String(),
			"reason", "superseded by "+created.ID.String(),
		)
	}
	s.metrics.IncOutcome(opAssign, string(OutcomeCreated))
	return &AssignmentResult{Outcome: OutcomeCreated, Assignment: created, Cost: cost, Cancelled: supersede}, nil
}

// ReassignStock moves a stock assignment to targetClientID. The target must
// have a complete document set; otherwise nothing is written and the weapon
// stays with its holder.
func (s *Service) ReassignStock(ctx context.Context, assignmentID id.AssignmentID, targetClientID id.ClientID) (*AssignmentResult, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveLatency(opReassign, time.Since(start)) }()

	if assignmentID.IsNil() || targetClientID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "assignment and target client are required")
	}

	completeness, err := s.gate.Completeness(ctx, targetClientID)
	if err != nil {
		return nil, translate(err, "failed to check target documents")
	}
	if completeness != documents.CompletenessComplete {
		s.logAudit(ctx, audit.EventReassignRejected,
			"client_id", targetClientID.String(),
			"assignment_id", assignmentID.String(),
			"reason", string(completeness),
		)
		s.metrics.IncRejection(string(dErrors.CodeDocumentsIncomplete))
		return nil, dErrors.New(dErrors.CodeDocumentsIncomplete, "target client documents are incomplete")
	}

	stock, err := s.store.GetAssignment(ctx, assignmentID)
	if err != nil {
		return nil, translate(err, "failed to load assignment")
	}
	if !stock.State.IsActive() {
		return nil, dErrors.New(dErrors.CodeConflict, fmt.Sprintf("assignment is %s", stock.State))
	}
	if stock.ClientID == targetClientID {
		s.metrics.IncOutcome(opReassign, string(OutcomeAlreadyAssigned))
		return &AssignmentResult{Outcome: OutcomeAlreadyAssigned, Assignment: stock}, nil
	}

	active, err := s.store.ListActiveAssignments(ctx, targetClientID)
	if err != nil {
		return nil, translate(err, "failed to list active assignments")
	}
	if existing := findWeapon(active, stock.WeaponID); existing != nil {
		s.metrics.IncOutcome(opReassign, string(OutcomeAlreadyAssigned))
		return &AssignmentResult{Outcome: OutcomeAlreadyAssigned, Assignment: existing}, nil
	}

	supersede := ids(active)
	moved, err := s.store.ReassignStock(ctx, assignmentID, targetClientID, supersede)
	if errors.Is(err, sentinel.ErrAlreadyAssigned) {
		return s.alreadyAssigned(ctx, opReassign, targetClientID, stock.WeaponID, models.Cost{})
	}
	if err != nil {
		return nil, translate(err, "failed to reassign stock weapon")
	}

	s.logAudit(ctx, audit.EventStockReassigned,
		"client_id", targetClientID.String(),
		"assignment_id", moved.ID.String(),
		"weapon_id", stock.WeaponID.String(),
		"decision", "from "+stock.ClientID.String(),
	)
	for _, cancelled := range supersede {
		s.logAudit(ctx, audit.EventAssignmentCancelled,
			"client_id", targetClientID.String(),
			"assignment_id", cancelled.String(),
			"reason", "superseded by stock reassignment",
		)
	}
	s.metrics.IncOutcome(opReassign, string(OutcomeReassigned))
	return &AssignmentResult{Outcome: OutcomeReassigned, Assignment: moved, Cancelled: supersede}, nil
}

func (s *Service) checkQuantity(req AssignRequest) error {
	if req.Quantity < 1 {
		return dErrors.New(dErrors.CodeValidation, "quantity must be at least 1")
	}
	if req.Category == clienttype.CategoryCivil && !req.Company && req.Quantity > civilQuantityCap {
		return dErrors.New(dErrors.CodeQuantityCapExceeded,
			fmt.Sprintf("civil clients may reserve at most %d units, requested %d", civilQuantityCap, req.Quantity))
	}
	return nil
}

func (s *Service) checkPrice(ctx context.Context, req AssignRequest) (*models.Weapon, error) {
	weapon, err := s.catalog.GetWeapon(ctx, req.WeaponID)
	if err != nil {
		return nil, translate(err, "failed to load weapon")
	}
	if req.UnitPrice < weapon.ReferencePrice {
		return nil, dErrors.New(dErrors.CodePriceBelowFloor,
			fmt.Sprintf("unit price %.2f is below the reference price %.2f", req.UnitPrice, weapon.ReferencePrice))
	}
	return weapon, nil
}

// alreadyAssigned resolves a backend "already assigned" answer into the
// assignment that is actually active.
func (s *Service) alreadyAssigned(ctx context.Context, op string, clientID id.ClientID, weaponID id.WeaponID, cost models.Cost) (*AssignmentResult, error) {
	s.logger.InfoContext(ctx, "backend reports weapon already assigned",
		"client_id", clientID.String(),
		"weapon_id", weaponID.String(),
	)
	result := &AssignmentResult{Outcome: OutcomeAlreadyAssigned, Cost: cost}
	if active, err := s.store.ListActiveAssignments(ctx, clientID); err == nil {
		result.Assignment = findWeapon(active, weaponID)
	}
	s.metrics.IncOutcome(op, string(OutcomeAlreadyAssigned))
	return result, nil
}

func (s *Service) logAudit(ctx context.Context, event audit.AuditEvent, attrs ...any) {
	publisher.LogAudit(ctx, s.logger, s.publisher, event, attrs...)
}

func findWeapon(active []models.Assignment, weaponID id.WeaponID) *models.Assignment {
	for i := range active {
		if active[i].WeaponID == weaponID && active[i].State.IsActive() {
			return &active[i]
		}
	}
	return nil
}

func ids(assignments []models.Assignment) []id.AssignmentID {
	var out []id.AssignmentID
	for _, a := range assignments {
		if a.State.IsActive() {
			out = append(out, a.ID)
		}
	}
	return out
}

// translate keeps coded errors (backend failures carry their message) and
// maps sentinel facts to codes.
func translate(err error, msg string) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.Wrap(err, dErrors.CodeNotFound, msg)
	case errors.Is(err, sentinel.ErrConflict), errors.Is(err, sentinel.ErrInvalidState):
		return dErrors.Wrap(err, dErrors.CodeConflict, msg)
	case dErrors.CodeOf(err) != dErrors.CodeInternal:
		return err
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, msg)
	}
}
