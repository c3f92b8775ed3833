package weapons

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"gmarm/internal/clienttype"
	"gmarm/internal/documents"
	"gmarm/internal/weapons/models"
	"gmarm/internal/weapons/store"
	id "gmarm/pkg/domain"
	dErrors "gmarm/pkg/domain-errors"
	audit "gmarm/pkg/platform/audit"
	"gmarm/pkg/platform/audit/publisher"
	auditmemory "gmarm/pkg/platform/audit/store/memory"
)

type fixedRate float64

func (f fixedRate) TaxRate() float64 { return float64(f) }

type gateStub map[id.ClientID]documents.Completeness

func (g gateStub) Completeness(_ context.Context, clientID id.ClientID) (documents.Completeness, error) {
	if c, ok := g[clientID]; ok {
		return c, nil
	}
	return documents.CompletenessIncomplete, nil
}

// =============================================================================
// Assignment Service Test Suite
// =============================================================================
// Runs the service against the in-memory store so the history invariants
// (never delete, one active per client) are checked on real state.

type AssignSuite struct {
	suite.Suite
	store   *store.InMemoryStore
	gate    gateStub
	trail   *auditmemory.InMemoryStore
	service *Service
	client  id.ClientID
	pistol  models.Weapon
	shotgun models.Weapon
}

func TestAssignSuite(t *testing.T) {
	suite.Run(t, new(AssignSuite))
}

func (s *AssignSuite) SetupTest() {
	s.store = store.NewInMemoryStore()
	s.gate = gateStub{}
	s.trail = auditmemory.NewInMemoryStore()
	s.client = id.ClientID(uuid.New())
	s.pistol = models.Weapon{ID: id.WeaponID(uuid.New()), Name: "Pistola 9mm", ReferencePrice: 1200}
	s.shotgun = models.Weapon{ID: id.WeaponID(uuid.New()), Name: "Escopeta 12", ReferencePrice: 800}
	s.store.AddWeapon(s.pistol)
	s.store.AddWeapon(s.shotgun)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = New(s.store, s.store, s.gate, fixedRate(0.15),
		WithLogger(logger),
		WithAuditPublisher(publisher.NewPublisher(s.trail)),
	)
}

func (s *AssignSuite) civilRequest(weapon models.Weapon, qty int, price float64) AssignRequest {
	return AssignRequest{
		ClientID:  s.client,
		WeaponID:  weapon.ID,
		Quantity:  qty,
		UnitPrice: price,
		Category:  clienttype.CategoryCivil,
	}
}

func (s *AssignSuite) activeCount(clientID id.ClientID) int {
	active, err := s.store.ListActiveAssignments(context.Background(), clientID)
	s.Require().NoError(err)
	return len(active)
}

// =============================================================================
// Preconditions
// =============================================================================

func (s *AssignSuite) TestPriceFloor() {
	s.Run("below the reference price fails", func() {
		_, err := s.service.Assign(context.Background(), s.civilRequest(s.pistol, 1, 1199.99))
		s.True(dErrors.HasCode(err, dErrors.CodePriceBelowFloor))
		s.Equal(0, s.activeCount(s.client))
	})

	s.Run("equal to the reference price succeeds", func() {
		res, err := s.service.Assign(context.Background(), s.civilRequest(s.pistol, 1, 1200))
		s.Require().NoError(err)
		s.Equal(OutcomeCreated, res.Outcome)
	})
}

func (s *AssignSuite) TestQuantityCap() {
	s.Run("civil client requesting 3 fails", func() {
		_, err := s.service.Assign(context.Background(), s.civilRequest(s.pistol, 3, 1200))
		s.True(dErrors.HasCode(err, dErrors.CodeQuantityCapExceeded))
	})

	s.Run("zero quantity is a validation error", func() {
		_, err := s.service.Assign(context.Background(), s.civilRequest(s.pistol, 0, 1200))
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("company client requesting 5 succeeds", func() {
		req := s.civilRequest(s.pistol, 5, 1200)
		req.Category = "Compañía de Seguridad"
		req.Company = true
		res, err := s.service.Assign(context.Background(), req)
		s.Require().NoError(err)
		s.Equal(5, res.Assignment.Quantity)
		s.InDelta(6900.0, res.Cost.Total, 1e-9)
	})

	s.Run("active uniformed client is not capped", func() {
		req := s.civilRequest(s.shotgun, 3, 800)
		req.ClientID = id.ClientID(uuid.New())
		req.Category = "Militar Fuerza Terrestre"
		_, err := s.service.Assign(context.Background(), req)
		s.NoError(err)
	})
}

func (s *AssignSuite) TestUnknownWeapon() {
	_, err := s.service.Assign(context.Background(), s.civilRequest(models.Weapon{ID: id.WeaponID(uuid.New())}, 1, 10))
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

// =============================================================================
// Reassignment protocol
// =============================================================================

func (s *AssignSuite) TestAssignIsIdempotent() {
	ctx := context.Background()
	req := s.civilRequest(s.pistol, 2, 1250)

	first, err := s.service.Assign(ctx, req)
	s.Require().NoError(err)
	second, err := s.service.Assign(ctx, req)
	s.Require().NoError(err)

	s.Equal(OutcomeAlreadyAssigned, second.Outcome)
	s.Equal(first.Assignment.ID, second.Assignment.ID)
	s.Equal(1, s.activeCount(s.client))
}

func (s *AssignSuite) TestDifferentWeaponSupersedes() {
	ctx := context.Background()
	first, err := s.service.Assign(ctx, s.civilRequest(s.pistol, 1, 1200))
	s.Require().NoError(err)

	second, err := s.service.Assign(ctx, s.civilRequest(s.shotgun, 2, 900))
	s.Require().NoError(err)
	s.Equal(OutcomeCreated, second.Outcome)
	s.Equal([]id.AssignmentID{first.Assignment.ID}, second.Cancelled)

	s.Equal(1, s.activeCount(s.client))
	history, err := s.store.ListByClient(ctx, s.client)
	s.Require().NoError(err)
	s.Len(history, 2, "superseded assignments are kept")

	old, err := s.store.GetAssignment(ctx, first.Assignment.ID)
	s.Require().NoError(err)
	s.Equal(models.StateCancelled, old.State)

	events, err := s.trail.ListByClient(ctx, s.client)
	s.Require().NoError(err)
	var actions []string
	for _, e := range events {
		actions = append(actions, e.Action)
	}
	s.Contains(actions, string(audit.EventAssignmentCancelled))
}

// =============================================================================
// Stock reassignment
// =============================================================================

func (s *AssignSuite) seedStock() models.Assignment {
	stock := models.Assignment{
		ID:        id.AssignmentID(uuid.New()),
		ClientID:  id.ClientID(uuid.New()),
		WeaponID:  s.pistol.ID,
		Quantity:  1,
		UnitPrice: 1300,
		State:     models.StateAssigned,
	}
	s.store.Seed(stock)
	return stock
}

func (s *AssignSuite) TestReassignStock() {
	ctx := context.Background()

	s.Run("incomplete documents reject without writing", func() {
		stock := s.seedStock()
		_, err := s.service.ReassignStock(ctx, stock.ID, s.client)
		s.True(dErrors.HasCode(err, dErrors.CodeDocumentsIncomplete))

		still, err := s.store.GetAssignment(ctx, stock.ID)
		s.Require().NoError(err)
		s.Equal(stock.ClientID, still.ClientID)
		s.Equal(models.StateAssigned, still.State)
		s.Equal(0, s.activeCount(s.client))
	})

	s.Run("complete documents move the weapon and supersede", func() {
		s.gate[s.client] = documents.CompletenessComplete
		prior, err := s.service.Assign(ctx, s.civilRequest(s.shotgun, 1, 800))
		s.Require().NoError(err)

		stock := s.seedStock()
		res, err := s.service.ReassignStock(ctx, stock.ID, s.client)
		s.Require().NoError(err)
		s.Equal(OutcomeReassigned, res.Outcome)
		s.Equal(s.client, res.Assignment.ClientID)
		s.Equal([]id.AssignmentID{prior.Assignment.ID}, res.Cancelled)
		s.Equal(1, s.activeCount(s.client))
		s.Equal(0, s.activeCount(stock.ClientID))
	})

	s.Run("same weapon already active on target is a no-op", func() {
		s.gate[s.client] = documents.CompletenessComplete
		stock := s.seedStock()
		res, err := s.service.ReassignStock(ctx, stock.ID, s.client)
		s.Require().NoError(err)
		s.Equal(OutcomeAlreadyAssigned, res.Outcome)
		s.Equal(1, s.activeCount(s.client))
	})

	s.Run("unknown assignment", func() {
		s.gate[s.client] = documents.CompletenessComplete
		_, err := s.service.ReassignStock(ctx, id.AssignmentID(uuid.New()), s.client)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}
