package documents

import (
	"context"
	"sync"
)

// RequirementsGetter is satisfied by Resolver.
type RequirementsGetter interface {
	GetRequirements(ctx context.Context, key RequirementKey) (*Requirements, error)
}

// Tracker is the per-form view of the checklist. It asks the resolver again
// only when the key changes, so edits to unrelated fields cost nothing.
type Tracker struct {
	resolver RequirementsGetter
	equal    func(a, b RequirementKey) bool

	mu      sync.Mutex
	hasKey  bool
	key     RequirementKey
	current *Requirements
}

// NewTracker builds a tracker. A nil equal uses RequirementKey.Equal.
func NewTracker(resolver RequirementsGetter, equal func(a, b RequirementKey) bool) *Tracker {
	if equal == nil {
		equal = RequirementKey.Equal
	}
	return &Tracker{resolver: resolver, equal: equal}
}

// Refresh returns the checklist for key, fetching only on a key change.
// On failure the previous key is forgotten so the next call retries.
func (t *Tracker) Refresh(ctx context.Context, key RequirementKey) (*Requirements, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.hasKey && t.equal(t.key, key) {
		return t.current, nil
	}

	reqs, err := t.resolver.GetRequirements(ctx, key)
	if err != nil {
		t.hasKey = false
		t.current = nil
		return nil, err
	}
	t.hasKey = true
	t.key = key
	t.current = reqs
	return reqs, nil
}

// Current returns the last resolved checklist, nil until the first Refresh.
func (t *Tracker) Current() *Requirements {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}
