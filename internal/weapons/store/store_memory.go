package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"gmarm/internal/weapons/models"
	id "gmarm/pkg/domain"
	"gmarm/pkg/platform/sentinel"
)

// InMemoryStore keeps the catalog and assignments in process. Each write
// happens under one lock, matching the backend's all-or-nothing contract.
type InMemoryStore struct {
	mu          sync.RWMutex
	weapons     map[id.WeaponID]models.Weapon
	assignments map[id.AssignmentID]models.Assignment
	now         func() time.Time
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		weapons:     make(map[id.WeaponID]models.Weapon),
		assignments: make(map[id.AssignmentID]models.Assignment),
		now:         time.Now,
	}
}

// AddWeapon registers a catalog entry.
func (s *InMemoryStore) AddWeapon(w models.Weapon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weapons[w.ID] = w
}

func (s *InMemoryStore) GetWeapon(_ context.Context, weaponID id.WeaponID) (*models.Weapon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.weapons[weaponID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &w, nil
}

// Seed stores an assignment as-is, for stock held by a seller.
func (s *InMemoryStore) Seed(a models.Assignment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assignments[a.ID] = a
}

func (s *InMemoryStore) ListActiveAssignments(_ context.Context, clientID id.ClientID) ([]models.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Assignment
	for _, a := range s.sortedLocked() {
		if a.ClientID == clientID && a.State.IsActive() {
			out = append(out, a)
		}
	}
	return out, nil
}

// ListByClient returns every assignment of a client, terminal ones included.
func (s *InMemoryStore) ListByClient(_ context.Context, clientID id.ClientID) ([]models.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Assignment
	for _, a := range s.sortedLocked() {
		if a.ClientID == clientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *InMemoryStore) GetAssignment(_ context.Context, assignmentID id.AssignmentID) (*models.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.assignments[assignmentID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &a, nil
}

func (s *InMemoryStore) CreateAssignment(_ context.Context, req models.CreateAssignment) (*models.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.weapons[req.WeaponID]; !ok {
		return nil, sentinel.ErrNotFound
	}
	for _, a := range s.assignments {
		if a.ClientID == req.ClientID && a.WeaponID == req.WeaponID && a.State.IsActive() {
			return nil, sentinel.ErrAlreadyAssigned
		}
	}
	if err := s.checkSupersedeLocked(req.ClientID, req.Supersede); err != nil {
		return nil, err
	}

	now := s.now()
	s.cancelLocked(req.Supersede, now)
	created := models.Assignment{
		ID:         id.AssignmentID(uuid.New()),
		ClientID:   req.ClientID,
		WeaponID:   req.WeaponID,
		Quantity:   req.Quantity,
		UnitPrice:  req.UnitPrice,
		TotalPrice: req.TotalPrice,
		State:      models.StateReserved,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.assignments[created.ID] = created
	return &created, nil
}

// ReassignStock cancels the stock assignment and the target's superseded
// ones, and opens a new ASIGNADA assignment for the target.
func (s *InMemoryStore) ReassignStock(_ context.Context, assignmentID id.AssignmentID, targetClientID id.ClientID, supersede []id.AssignmentID) (*models.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stock, ok := s.assignments[assignmentID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if !stock.State.IsActive() {
		return nil, sentinel.ErrInvalidState
	}
	for _, a := range s.assignments {
		if a.ClientID == targetClientID && a.WeaponID == stock.WeaponID && a.State.IsActive() {
			return nil, sentinel.ErrAlreadyAssigned
		}
	}
	if err := s.checkSupersedeLocked(targetClientID, supersede); err != nil {
		return nil, err
	}

	now := s.now()
	s.cancelLocked(append([]id.AssignmentID{assignmentID}, supersede...), now)
	moved := models.Assignment{
		ID:         id.AssignmentID(uuid.New()),
		ClientID:   targetClientID,
		WeaponID:   stock.WeaponID,
		Quantity:   stock.Quantity,
		UnitPrice:  stock.UnitPrice,
		TotalPrice: stock.TotalPrice,
		State:      models.StateAssigned,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.assignments[moved.ID] = moved
	return &moved, nil
}

func (s *InMemoryStore) checkSupersedeLocked(clientID id.ClientID, supersede []id.AssignmentID) error {
	for _, sid := range supersede {
		a, ok := s.assignments[sid]
		if !ok {
			return sentinel.ErrNotFound
		}
		if a.ClientID != clientID {
			return sentinel.ErrConflict
		}
	}
	return nil
}

func (s *InMemoryStore) cancelLocked(ids []id.AssignmentID, now time.Time) {
	for _, sid := range ids {
		a := s.assignments[sid]
		if !a.State.IsActive() {
			continue
		}
		a.State = models.StateCancelled
		a.UpdatedAt = now
		s.assignments[sid] = a
	}
}

func (s *InMemoryStore) sortedLocked() []models.Assignment {
	out := make([]models.Assignment, 0, len(s.assignments))
	for _, a := range s.assignments {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
