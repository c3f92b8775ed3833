package weapons

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"gmarm/internal/clienttype"
	"gmarm/internal/documents"
	"gmarm/internal/weapons/metrics"
	"gmarm/internal/weapons/mocks"
	"gmarm/internal/weapons/models"
	id "gmarm/pkg/domain"
	dErrors "gmarm/pkg/domain-errors"
	"gmarm/pkg/platform/sentinel"
)

// =============================================================================
// Backend Failure Semantics
// =============================================================================
// Backend answers the in-memory store never produces: benign "already
// assigned" replies and server errors with their own messages.

type BackendSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	catalog *mocks.MockCatalog
	store   *mocks.MockStore
	gate    *mocks.MockDocumentGate
	rates   *mocks.MockTaxRateSource
	service *Service
	weapon  models.Weapon
	client  id.ClientID
}

func TestBackendSuite(t *testing.T) {
	suite.Run(t, new(BackendSuite))
}

func (s *BackendSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.catalog = mocks.NewMockCatalog(s.ctrl)
	s.store = mocks.NewMockStore(s.ctrl)
	s.gate = mocks.NewMockDocumentGate(s.ctrl)
	s.rates = mocks.NewMockTaxRateSource(s.ctrl)
	s.service = New(s.catalog, s.store, s.gate, s.rates,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	s.weapon = models.Weapon{ID: id.WeaponID(uuid.New()), ReferencePrice: 500}
	s.client = id.ClientID(uuid.New())
}

func (s *BackendSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BackendSuite) request() AssignRequest {
	return AssignRequest{ClientID: s.client, WeaponID: s.weapon.ID, Quantity: 1, UnitPrice: 500, Category: clienttype.CategoryCivil}
}

func (s *BackendSuite) TestAlreadyAssignedIsBenign() {
	existing := models.Assignment{ID: id.AssignmentID(uuid.New()), ClientID: s.client, WeaponID: s.weapon.ID, State: models.StateReserved}

	s.catalog.EXPECT().GetWeapon(gomock.Any(), s.weapon.ID).Return(&s.weapon, nil)
	s.rates.EXPECT().TaxRate().Return(0.15)
	gomock.InOrder(
		s.store.EXPECT().ListActiveAssignments(gomock.Any(), s.client).Return(nil, nil),
		s.store.EXPECT().CreateAssignment(gomock.Any(), gomock.Any()).Return(nil, sentinel.ErrAlreadyAssigned),
		s.store.EXPECT().ListActiveAssignments(gomock.Any(), s.client).Return([]models.Assignment{existing}, nil),
	)

	res, err := s.service.Assign(context.Background(), s.request())
	s.Require().NoError(err)
	s.Equal(OutcomeAlreadyAssigned, res.Outcome)
	s.Equal(existing.ID, res.Assignment.ID)
}

func (s *BackendSuite) TestServerErrorSurfacesMessage() {
	s.catalog.EXPECT().GetWeapon(gomock.Any(), s.weapon.ID).Return(&s.weapon, nil)
	s.rates.EXPECT().TaxRate().Return(0.15)
	s.store.EXPECT().ListActiveAssignments(gomock.Any(), s.client).Return(nil, nil)
	s.store.EXPECT().CreateAssignment(gomock.Any(), gomock.Any()).
		Return(nil, dErrors.NewPersistence(422, "El arma no tiene stock disponible", nil))

	_, err := s.service.Assign(context.Background(), s.request())
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodePersistence))
	s.Equal("El arma no tiene stock disponible", dErrors.MessageOf(err))
}

func (s *BackendSuite) TestCreateCarriesSupersedeAndTotal() {
	prior := models.Assignment{ID: id.AssignmentID(uuid.New()), ClientID: s.client, WeaponID: id.WeaponID(uuid.New()), State: models.StateAssigned}

	s.catalog.EXPECT().GetWeapon(gomock.Any(), s.weapon.ID).Return(&s.weapon, nil)
	s.rates.EXPECT().TaxRate().Return(0.15)
	s.store.EXPECT().ListActiveAssignments(gomock.Any(), s.client).Return([]models.Assignment{prior}, nil)
	s.store.EXPECT().CreateAssignment(gomock.Any(), models.CreateAssignment{
		ClientID:   s.client,
		WeaponID:   s.weapon.ID,
		Quantity:   1,
		UnitPrice:  500,
		TotalPrice: 575,
		Supersede:  []id.AssignmentID{prior.ID},
	}).Return(&models.Assignment{ID: id.AssignmentID(uuid.New()), ClientID: s.client, WeaponID: s.weapon.ID, State: models.StateReserved}, nil)

	res, err := s.service.Assign(context.Background(), s.request())
	s.Require().NoError(err)
	s.Equal(OutcomeCreated, res.Outcome)
}

func (s *BackendSuite) TestGateFailureWritesNothing() {
	s.gate.EXPECT().Completeness(gomock.Any(), s.client).Return(documents.Completeness(""), errors.New("timeout"))

	_, err := s.service.ReassignStock(context.Background(), id.AssignmentID(uuid.New()), s.client)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

func (s *BackendSuite) TestAlreadyAssignedOnReassignCountsUnderReassign() {
	m := &metrics.Metrics{
		Outcomes:   prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_outcomes_total"}, []string{"operation", "outcome"}),
		Rejections: prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_rejections_total"}, []string{"code"}),
		Latency:    prometheus.NewHistogramVec(prometheus.HistogramOpts{Name: "test_duration_seconds"}, []string{"operation"}),
	}
	svc := New(s.catalog, s.store, s.gate, s.rates,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithMetrics(m))
	stock := models.Assignment{ID: id.AssignmentID(uuid.New()), ClientID: id.ClientID(uuid.New()), WeaponID: s.weapon.ID, State: models.StateAssigned}
	existing := models.Assignment{ID: id.AssignmentID(uuid.New()), ClientID: s.client, WeaponID: s.weapon.ID, State: models.StateAssigned}

	s.gate.EXPECT().Completeness(gomock.Any(), s.client).Return(documents.CompletenessComplete, nil)
	s.store.EXPECT().GetAssignment(gomock.Any(), stock.ID).Return(&stock, nil)
	gomock.InOrder(
		s.store.EXPECT().ListActiveAssignments(gomock.Any(), s.client).Return(nil, nil),
		s.store.EXPECT().ReassignStock(gomock.Any(), stock.ID, s.client, gomock.Any()).Return(nil, sentinel.ErrAlreadyAssigned),
		s.store.EXPECT().ListActiveAssignments(gomock.Any(), s.client).Return([]models.Assignment{existing}, nil),
	)

	res, err := svc.ReassignStock(context.Background(), stock.ID, s.client)
	s.Require().NoError(err)
	s.Equal(OutcomeAlreadyAssigned, res.Outcome)
	s.Equal(1.0, promtest.ToFloat64(m.Outcomes.WithLabelValues("reassign", string(OutcomeAlreadyAssigned))))
	s.Equal(0.0, promtest.ToFloat64(m.Outcomes.WithLabelValues("assign", string(OutcomeAlreadyAssigned))))
}
