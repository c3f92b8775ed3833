package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "gmarm/pkg/domain"
	audit "gmarm/pkg/platform/audit"
	"gmarm/pkg/platform/sentinel"
)

func TestStore_Append(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := New(db)
	clientID := id.ClientID(uuid.New())
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(`INSERT INTO audit_events`).
		WithArgs("evt-1", string(audit.CategoryCompliance), ts, sqlmock.AnyArg(), "client", string(audit.EventClientBlocked),
			"blocked", "Cliente bloqueado: registra antecedentes de violencia", "req-1", "seller-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = store.Append(context.Background(), audit.Event{
		ID:        "evt-1",
		Timestamp: ts,
		ClientID:  clientID,
		Subject:   "client",
		Action:    string(audit.EventClientBlocked),
		Decision:  "blocked",
		Reason:    "Cliente bloqueado: registra antecedentes de violencia",
		RequestID: "req-1",
		ActorID:   "seller-1",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Append_ConnectionFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO audit_events`).
		WillReturnError(&pq.Error{Code: "08006", Message: "connection failure"})

	err = New(db).Append(context.Background(), audit.Event{Action: string(audit.EventClientCreated)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, sentinel.ErrUnavailable))
}

func TestStore_ListByClient(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	clientID := id.ClientID(uuid.New())
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "category", "timestamp", "client_id", "subject", "action",
		"decision", "reason", "request_id", "actor_id",
	}).AddRow("evt-1", "compliance", ts, uuid.UUID(clientID).String(), "client", "client_created", "", "", "req-1", "")

	mock.ExpectQuery(`SELECT id, category, timestamp, client_id`).
		WithArgs(uuid.UUID(clientID)).
		WillReturnRows(rows)

	events, err := New(db).ListByClient(context.Background(), clientID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, clientID, events[0].ClientID)
	assert.Equal(t, audit.CategoryCompliance, events[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_AppendBatch_RollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO audit_events`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO audit_events`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err = New(db).AppendBatch(context.Background(), []audit.Event{
		{Action: string(audit.EventAssignmentCreated)},
		{Action: string(audit.EventAssignmentCancelled)},
	})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
