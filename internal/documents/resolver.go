package documents

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"gmarm/internal/clienttype"
	"gmarm/internal/documents/metrics"
	dErrors "gmarm/pkg/domain-errors"
	"gmarm/pkg/platform/sentinel"
)

// RequirementSource fetches a checklist from the backend.
type RequirementSource interface {
	GetRequiredDocuments(ctx context.Context, typeID int, status clienttype.ServiceStatus) ([]RequiredDocument, error)
}

// Cache stores resolved checklists. FindRequirements returns
// sentinel.ErrNotFound on a miss.
type Cache interface {
	FindRequirements(ctx context.Context, key RequirementKey) (*Requirements, error)
	SaveRequirements(ctx context.Context, reqs *Requirements) error
}

// Resolver is a cache-aside reader of checklists. Concurrent misses for the
// same key share one backend fetch.
type Resolver struct {
	source  RequirementSource
	cache   Cache
	group   singleflight.Group
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Resolver)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Resolver) {
		r.metrics = m
	}
}

func NewResolver(source RequirementSource, cache Cache, opts ...Option) *Resolver {
	r := &Resolver{
		source: source,
		cache:  cache,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetRequirements returns the checklist for key.
func (r *Resolver) GetRequirements(ctx context.Context, key RequirementKey) (*Requirements, error) {
	if r.cache != nil {
		cached, err := r.cache.FindRequirements(ctx, key)
		switch {
		case err == nil:
			r.metrics.IncCacheLookup("hit")
			return cached, nil
		case !errors.Is(err, sentinel.ErrNotFound):
			r.logger.WarnContext(ctx, "requirements cache read failed", "key", key.String(), "error", err)
		}
		r.metrics.IncCacheLookup("miss")
	}

	// the fetch outlives any single caller; each waiter honours its own ctx
	ch := r.group.DoChan(key.String(), func() (any, error) {
		return r.fetch(context.WithoutCancel(ctx), key)
	})
	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		if dErrors.CodeOf(res.Err) != dErrors.CodeInternal {
			return nil, res.Err
		}
		return nil, dErrors.Wrap(res.Err, dErrors.CodeInternal, "failed to load required documents")
	}
	if res.Shared {
		r.logger.DebugContext(ctx, "requirements fetch shared", "key", key.String())
	}
	return res.Val.(*Requirements), nil
}

func (r *Resolver) fetch(ctx context.Context, key RequirementKey) (*Requirements, error) {
	// a caller that missed just before the previous flight landed
	if r.cache != nil {
		if cached, err := r.cache.FindRequirements(ctx, key); err == nil {
			return cached, nil
		}
	}
	start := time.Now()
	docs, err := r.source.GetRequiredDocuments(ctx, key.TypeID, key.ServiceStatus)
	r.metrics.ObserveFetchLatency(time.Since(start))
	if err != nil {
		return nil, err
	}
	reqs := &Requirements{Key: key, Documents: docs}
	if r.cache != nil {
		if err := r.cache.SaveRequirements(ctx, reqs); err != nil {
			r.logger.WarnContext(ctx, "requirements cache write failed", "key", key.String(), "error", err)
		}
	}
	return reqs, nil
}
