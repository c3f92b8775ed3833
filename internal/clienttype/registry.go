package clienttype

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	dErrors "gmarm/pkg/domain-errors"
	pstrings "gmarm/pkg/platform/strings"
)

// Source fetches the client-type table from the backend.
type Source interface {
	GetClientTypeConfig(ctx context.Context) ([]Config, error)
}

// DefaultRetryDelays is the wait before each retry after a failed load.
var DefaultRetryDelays = []time.Duration{2 * time.Second, 4 * time.Second, 6 * time.Second}

// Registry serves client-type configuration. Reads never block on the
// network: before (or without) a successful load they are answered from the
// built-in table.
type Registry struct {
	source Source
	logger *slog.Logger
	delays []time.Duration
	sleep  func(ctx context.Context, d time.Duration) error

	mu       sync.RWMutex
	loaded   map[string]Config
	fallback map[string]Config
	lastErr  error
}

type Option func(*Registry)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithRetryDelays replaces the retry schedule; its length is the retry count.
func WithRetryDelays(delays []time.Duration) Option {
	return func(r *Registry) {
		r.delays = append([]time.Duration(nil), delays...)
	}
}

// WithSleep overrides how the registry waits between attempts.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(r *Registry) {
		r.sleep = sleep
	}
}

// WithFallback replaces the built-in table.
func WithFallback(configs []Config) Option {
	return func(r *Registry) {
		r.fallback = index(configs)
	}
}

func NewRegistry(source Source, opts ...Option) *Registry {
	r := &Registry{
		source:   source,
		logger:   slog.Default(),
		delays:   DefaultRetryDelays,
		sleep:    sleepContext,
		fallback: index(fallbackTable),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load fetches the table, retrying on failure per the delay schedule. After
// the last failed attempt it returns the final error coded
// config_unavailable; the registry keeps answering from the fallback table.
func (r *Registry) Load(ctx context.Context) (map[string]Config, error) {
	var lastErr error
	for attempt := 0; ; attempt++ {
		configs, err := r.source.GetClientTypeConfig(ctx)
		if err == nil && len(configs) == 0 {
			err = fmt.Errorf("backend returned an empty client type table")
		}
		if err == nil {
			table := index(configs)
			r.mu.Lock()
			r.loaded = table
			r.lastErr = nil
			r.mu.Unlock()
			r.logger.InfoContext(ctx, "client type configuration loaded", "types", len(table), "attempts", attempt+1)
			return copyTable(table), nil
		}

		lastErr = err
		if attempt >= len(r.delays) {
			break
		}
		r.logger.WarnContext(ctx, "client type configuration load failed, retrying",
			"attempt", attempt+1,
			"retry_in", r.delays[attempt].String(),
			"error", err,
		)
		if err := r.sleep(ctx, r.delays[attempt]); err != nil {
			lastErr = err
			break
		}
	}

	wrapped := dErrors.Wrap(lastErr, dErrors.CodeConfigUnavailable, "client type configuration unavailable")
	r.mu.Lock()
	r.lastErr = wrapped
	r.mu.Unlock()
	r.logger.ErrorContext(ctx, "client type configuration not loaded, serving built-in table", "error", lastErr)
	return nil, wrapped
}

// Start loads the table in the background.
func (r *Registry) Start(ctx context.Context) {
	go func() {
		_, _ = r.Load(ctx)
	}()
}

// Loaded reports whether the backend table is in place.
func (r *Registry) Loaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded != nil
}

// LastError returns the error of the most recent failed load, if any.
func (r *Registry) LastError() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastErr
}

// Lookup finds a type by name, case- and accent-insensitively.
func (r *Registry) Lookup(typeName string) (Config, error) {
	key := pstrings.Fold(typeName)
	r.mu.RLock()
	defer r.mu.RUnlock()
	if cfg, ok := r.loaded[key]; ok {
		return cfg, nil
	}
	if cfg, ok := r.fallback[key]; ok {
		return cfg, nil
	}
	return Config{}, dErrors.New(dErrors.CodeConfigUnavailable, fmt.Sprintf("unknown client type %q", typeName))
}

// ResolveCode returns the code for a type name.
func (r *Registry) ResolveCode(typeName string) (string, error) {
	cfg, err := r.Lookup(typeName)
	if err != nil {
		return "", err
	}
	return cfg.Code, nil
}

// ByCode finds a type by its code.
func (r *Registry) ByCode(code string) (Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, table := range []map[string]Config{r.loaded, r.fallback} {
		for _, cfg := range table {
			if cfg.Code == code {
				return cfg, nil
			}
		}
	}
	return Config{}, dErrors.New(dErrors.CodeConfigUnavailable, fmt.Sprintf("unknown client type code %q", code))
}

// Effective returns the configuration the rules apply to: the civil type for
// a passive uniformed client whose type is treated as civil, otherwise the
// type itself.
func (r *Registry) Effective(typeName string, status ServiceStatus) (Config, error) {
	cfg, err := r.Lookup(typeName)
	if err != nil {
		return Config{}, err
	}
	if cfg.IsUniformed() && status == StatusPassive && cfg.TreatAsCivilWhenPassive {
		return r.ByCode(CodeCivil)
	}
	return cfg, nil
}

func index(configs []Config) map[string]Config {
	out := make(map[string]Config, len(configs))
	for _, cfg := range configs {
		out[pstrings.Fold(cfg.Name)] = cfg
	}
	return out
}

func copyTable(in map[string]Config) map[string]Config {
	out := make(map[string]Config, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
