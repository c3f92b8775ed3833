// Package apiclient is the HTTP adapter for the backend that owns clients,
// answers, documents, weapon assignments and system configuration. It
// implements the ports declared by the rule packages.
package apiclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/go-resty/resty/v2"

	"gmarm/internal/platform/config"
	dErrors "gmarm/pkg/domain-errors"
	"gmarm/pkg/platform/circuit"
	"gmarm/pkg/platform/sentinel"
	pstrings "gmarm/pkg/platform/strings"
)

// alreadyAssignedMarkers identify the backend's duplicate-assignment
// rejection, which the weapon service treats as benign.
var alreadyAssignedMarkers = []string{"already assigned", "ya asignad", "ya esta asignad", "ya tiene asignad"}

// Client calls the backend API. Safe for concurrent use.
type Client struct {
	http    *resty.Client
	breaker *circuit.Breaker
	logger  *slog.Logger
}

type Option func(*Client)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithBreaker replaces the breaker built from the configuration.
func WithBreaker(b *circuit.Breaker) Option {
	return func(c *Client) {
		c.breaker = b
	}
}

// New builds a client for cfg. Requests never retry here; the only retry
// schedule in the system belongs to the client-type registry. While the
// breaker is open calls fail fast as unavailable.
func New(cfg config.Backend, opts ...Option) *Client {
	hc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	if cfg.Token != "" {
		hc.SetAuthToken(cfg.Token)
	}
	c := &Client{http: hc, logger: slog.Default()}
	if cfg.BreakerThreshold > 0 {
		c.breaker = circuit.New("backend",
			circuit.WithFailureThreshold(cfg.BreakerThreshold),
			circuit.WithCooldown(cfg.BreakerCooldown),
		)
	}
	for _, opt := range opts {
		opt(c)
	}
	hc.OnBeforeRequest(func(*resty.Client, *resty.Request) error {
		if c.breaker != nil && !c.breaker.Allow() {
			return circuit.ErrOpen
		}
		return nil
	})
	return c
}

// errorBody is the backend's error envelope. Field errors are the most
// specific detail and win over the summary message.
type errorBody struct {
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Errors  map[string]string `json:"errors"`
}

func (b *errorBody) detail() string {
	if b == nil {
		return ""
	}
	if len(b.Errors) > 0 {
		fields := make([]string, 0, len(b.Errors))
		for f := range b.Errors {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		parts := make([]string, 0, len(fields))
		for _, f := range fields {
			parts = append(parts, f+": "+b.Errors[f])
		}
		return strings.Join(parts, "; ")
	}
	if s := strings.TrimSpace(b.Message); s != "" {
		return s
	}
	return strings.TrimSpace(b.Error)
}

// request starts a request bound to ctx with the error envelope attached.
func (c *Client) request(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx).SetError(&errorBody{})
}

// check turns a transport failure or non-2xx response into an error the
// services can translate.
func (c *Client) check(ctx context.Context, op string, resp *resty.Response, err error) error {
	if err != nil {
		switch {
		case errors.Is(err, circuit.ErrOpen):
			return dErrors.NewPersistence(0, op+": backend unavailable", fmt.Errorf("%w: %w", sentinel.ErrUnavailable, err))
		case errors.Is(err, context.Canceled):
			return err
		}
		c.recordFailure(ctx)
		if errors.Is(err, context.DeadlineExceeded) {
			return dErrors.Wrap(err, dErrors.CodeTimeout, op+": backend timed out")
		}
		c.logger.WarnContext(ctx, "backend unreachable", "operation", op, "error", err)
		return dErrors.NewPersistence(0, op+": backend unavailable", fmt.Errorf("%w: %w", sentinel.ErrUnavailable, err))
	}

	status := resp.StatusCode()
	if unavailable(status) {
		c.recordFailure(ctx)
	} else if c.breaker != nil {
		c.breaker.RecordSuccess()
	}
	if !resp.IsError() {
		return nil
	}

	body, _ := resp.Error().(*errorBody)
	msg := body.detail()
	if msg == "" {
		msg = strings.TrimSpace(resp.String())
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	c.logger.WarnContext(ctx, "backend request failed",
		"operation", op,
		"status", status,
		"message", msg,
	)

	var cause error
	switch {
	case status == http.StatusNotFound:
		cause = sentinel.ErrNotFound
	case status < http.StatusInternalServerError && isAlreadyAssigned(msg):
		cause = sentinel.ErrAlreadyAssigned
	case status == http.StatusConflict:
		cause = sentinel.ErrConflict
	case unavailable(status):
		cause = sentinel.ErrUnavailable
	}
	return dErrors.NewPersistence(status, msg, cause)
}

func (c *Client) recordFailure(ctx context.Context) {
	if c.breaker != nil && c.breaker.RecordFailure() {
		c.logger.WarnContext(ctx, "backend circuit opened", "breaker", c.breaker.Name())
	}
}

func unavailable(status int) bool {
	return status == http.StatusBadGateway ||
		status == http.StatusServiceUnavailable ||
		status == http.StatusGatewayTimeout
}

func isAlreadyAssigned(msg string) bool {
	for _, marker := range alreadyAssignedMarkers {
		if pstrings.ContainsFold(msg, marker) {
			return true
		}
	}
	return false
}
