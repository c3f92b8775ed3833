// Package circuit provides a consecutive-failure circuit breaker. While open
// it rejects calls until a cooldown passes, then lets traffic through again.
package circuit

import (
	"errors"
	"sync"
	"time"
)

// ErrOpen is returned by callers that refuse work while the circuit is open.
var ErrOpen = errors.New("circuit open")

type State string

const (
	StateClosed State = "closed"
	StateOpen   State = "open"
)

// Breaker counts consecutive failures. Safe for concurrent use.
type Breaker struct {
	name      string
	threshold int
	cooldown  time.Duration
	now       func() time.Time

	mu        sync.RWMutex
	failures  int
	open      bool
	openUntil time.Time
}

type Option func(*Breaker)

func WithFailureThreshold(n int) Option {
	return func(b *Breaker) {
		if n > 0 {
			b.threshold = n
		}
	}
}

func WithCooldown(d time.Duration) Option {
	return func(b *Breaker) {
		if d > 0 {
			b.cooldown = d
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(b *Breaker) {
		b.now = now
	}
}

// New creates a closed breaker: 5 failures open it for 30 seconds.
func New(name string, opts ...Option) *Breaker {
	b := &Breaker{
		name:      name,
		threshold: 5,
		cooldown:  30 * time.Second,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Breaker) Name() string { return b.name }

// Allow reports whether a call may proceed. Once the cooldown has passed the
// circuit closes and the next failure streak starts from zero.
func (b *Breaker) Allow() bool {
	b.mu.RLock()
	if !b.open {
		b.mu.RUnlock()
		return true
	}
	expired := b.now().After(b.openUntil)
	b.mu.RUnlock()
	if !expired {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.open && b.now().After(b.openUntil) {
		b.open = false
		b.failures = 0
	}
	return !b.open
}

func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = 0
	b.open = false
}

// RecordFailure counts a failure and reports whether this one opened the
// circuit.
func (b *Breaker) RecordFailure() (opened bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures++
	if b.failures >= b.threshold {
		opened = !b.open
		b.open = true
		b.openUntil = b.now().Add(b.cooldown)
	}
	return opened
}

func (b *Breaker) State() State {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.open {
		return StateOpen
	}
	return StateClosed
}

func (b *Breaker) IsOpen() bool { return b.State() == StateOpen }

// Reset closes the circuit.
func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = 0
	b.open = false
}
