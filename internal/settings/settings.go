// Package settings holds the regulatory parameters the backend owns: the
// sales tax rate and the minimum purchase age.
package settings

import (
	"context"
	"log/slog"
	"sync"
)

// Source fetches the current parameters from the backend.
type Source interface {
	GetTaxRate(ctx context.Context) (float64, error)
	GetMinimumPurchaseAge(ctx context.Context) (int, error)
}

// Defaults are used for any parameter the backend cannot provide.
type Defaults struct {
	TaxRate            float64
	MinimumPurchaseAge int
}

// Settings is a read-mostly holder refreshed by Load.
type Settings struct {
	source   Source
	defaults Defaults
	logger   *slog.Logger

	mu      sync.RWMutex
	taxRate float64
	minAge  int
}

type Option func(*Settings)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Settings) {
		s.logger = logger
	}
}

func New(source Source, defaults Defaults, opts ...Option) *Settings {
	s := &Settings{
		source:   source,
		defaults: defaults,
		logger:   slog.Default(),
		taxRate:  defaults.TaxRate,
		minAge:   defaults.MinimumPurchaseAge,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load refreshes both parameters. A parameter that fails to load or comes
// back out of range keeps its default; Load itself never fails.
func (s *Settings) Load(ctx context.Context) {
	taxRate := s.defaults.TaxRate
	if s.source != nil {
		if rate, err := s.source.GetTaxRate(ctx); err != nil {
			s.logger.WarnContext(ctx, "tax rate unavailable, using default", "default", taxRate, "error", err)
		} else if rate < 0 || rate >= 1 {
			s.logger.WarnContext(ctx, "tax rate out of range, using default", "value", rate, "default", taxRate)
		} else {
			taxRate = rate
		}
	}

	minAge := s.defaults.MinimumPurchaseAge
	if s.source != nil {
		if age, err := s.source.GetMinimumPurchaseAge(ctx); err != nil {
			s.logger.WarnContext(ctx, "minimum purchase age unavailable, using default", "default", minAge, "error", err)
		} else if age <= 0 {
			s.logger.WarnContext(ctx, "minimum purchase age not positive, using default", "value", age, "default", minAge)
		} else {
			minAge = age
		}
	}

	s.mu.Lock()
	s.taxRate = taxRate
	s.minAge = minAge
	s.mu.Unlock()
}

func (s *Settings) TaxRate() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.taxRate
}

func (s *Settings) MinimumPurchaseAge() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.minAge
}
