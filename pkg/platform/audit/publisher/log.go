package publisher

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	id "gmarm/pkg/domain"
	"gmarm/pkg/platform/attrs"
	audit "gmarm/pkg/platform/audit"
	"gmarm/pkg/requestcontext"
)

// LogAudit logs an audit event to the structured logger and, when a
// publisher is configured, records it on the client's trail. Subject and
// reason are lifted from attrList.
func LogAudit(ctx context.Context, logger *slog.Logger, pub *Publisher, event audit.AuditEvent, attrList ...any) {
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attrList = append(attrList, "request_id", requestID)
	}

	if logger != nil {
		args := append(attrList, "event", string(event), "log_type", "audit")
		logger.InfoContext(ctx, string(event), args...)
	}

	if pub == nil {
		return
	}

	var clientID id.ClientID
	if raw := attrs.ExtractString(attrList, "client_id"); raw != "" {
		if parsed, err := uuid.Parse(raw); err == nil {
			clientID = id.ClientID(parsed)
		}
	}

	err := pub.Emit(ctx, audit.Event{
		ClientID: clientID,
		Action:   string(event),
		Subject:  attrs.FirstString(attrList, "assignment_id", "weapon_id", "document_type_id", "client_id"),
		Decision: attrs.ExtractString(attrList, "decision"),
		Reason:   attrs.FirstString(attrList, "reason", "status"),
	})
	if err != nil && logger != nil {
		logger.WarnContext(ctx, "failed to emit audit event", "event", string(event), "error", err)
	}
}
