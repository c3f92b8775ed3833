package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	id "gmarm/pkg/domain"
	audit "gmarm/pkg/platform/audit"
	"gmarm/pkg/platform/sentinel"
	txcontext "gmarm/pkg/platform/tx"
)

// Store implements audit.Store over the audit_events table. It is the only
// table this service writes; client data itself lives behind the backend API.
type Store struct {
	db *sql.DB
}

// New creates a new PostgreSQL audit store.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

const insertEvent = `
		INSERT INTO audit_events (
			id, category, timestamp, client_id, subject, action,
			decision, reason, request_id, actor_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING
	`

// Append inserts an event. Re-delivery of the same event id is ignored.
func (s *Store) Append(ctx context.Context, event audit.Event) error {
	eventID := event.ID
	if eventID == "" {
		eventID = uuid.NewString()
	}
	category := event.Category
	if category == "" {
		category = audit.AuditEvent(event.Action).Category()
	}

	var clientID *uuid.UUID
	if !event.ClientID.IsNil() {
		cid := uuid.UUID(event.ClientID)
		clientID = &cid
	}

	_, err := s.execer(ctx).ExecContext(ctx, insertEvent,
		eventID,
		string(category),
		event.Timestamp,
		clientID,
		event.Subject,
		event.Action,
		event.Decision,
		event.Reason,
		event.RequestID,
		event.ActorID,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", classify(err))
	}
	return nil
}

// AppendBatch writes events in one transaction; a failure leaves none written.
func (s *Store) AppendBatch(ctx context.Context, events []audit.Event) error {
	return txcontext.Run(ctx, s.db, func(ctx context.Context) error {
		for _, e := range events {
			if err := s.Append(ctx, e); err != nil {
				return err
			}
		}
		return nil
	})
}

const selectByClient = `
		SELECT id, category, timestamp, client_id, subject, action,
			   decision, reason, request_id, actor_id
		FROM audit_events
		WHERE client_id = $1
		ORDER BY timestamp ASC
	`

// ListByClient returns a client's trail, oldest first.
func (s *Store) ListByClient(ctx context.Context, clientID id.ClientID) ([]audit.Event, error) {
	rows, err := s.db.QueryContext(ctx, selectByClient, uuid.UUID(clientID))
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", classify(err))
	}
	defer rows.Close()

	var events []audit.Event
	for rows.Next() {
		var (
			e        audit.Event
			category string
			cid      uuid.NullUUID
		)
		if err := rows.Scan(&e.ID, &category, &e.Timestamp, &cid, &e.Subject, &e.Action,
			&e.Decision, &e.Reason, &e.RequestID, &e.ActorID); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		e.Category = audit.EventCategory(category)
		if cid.Valid {
			e.ClientID = id.ClientID(cid.UUID)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}

// classify maps connection-class postgres failures to sentinel.ErrUnavailable.
func classify(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "08" {
		return fmt.Errorf("%w: %s", sentinel.ErrUnavailable, pqErr.Message)
	}
	return err
}
