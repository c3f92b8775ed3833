package audit

import (
	"context"
	"time"

	id "gmarm/pkg/domain"
)

// EventCategory classifies audit events by their primary purpose so sinks
// can route and retain them differently.
type EventCategory string

const (
	// CategoryCompliance covers events with regulatory significance for the
	// firearm-sale trail: client status changes, blocks, assignments.
	CategoryCompliance EventCategory = "compliance"

	// CategoryOperations covers routine activity useful for debugging.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID        string
	Category  EventCategory
	Timestamp time.Time
	ClientID  id.ClientID
	Subject   string
	Action    string
	Decision  string
	Reason    string
	RequestID string
	// ActorID is the operator (seller) who triggered the action.
	ActorID string
}

type AuditEvent string

const (
	// Client lifecycle
	EventClientCreated       AuditEvent = "client_created"
	EventClientUpdated       AuditEvent = "client_updated"
	EventClientStatusChanged AuditEvent = "client_status_changed"
	EventClientBlocked       AuditEvent = "client_blocked"

	// Weapon assignment
	EventAssignmentCreated   AuditEvent = "assignment_created"
	EventAssignmentCancelled AuditEvent = "assignment_cancelled"
	EventAssignmentNoop      AuditEvent = "assignment_already_active"
	EventStockReassigned     AuditEvent = "stock_reassigned"
	EventReassignRejected    AuditEvent = "stock_reassign_rejected"

	// Documents
	EventDocumentUploaded AuditEvent = "document_uploaded"
	EventDocumentReplaced AuditEvent = "document_replaced"

	// Configuration
	EventRegistryFallback AuditEvent = "client_type_registry_fallback"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventClientCreated:       CategoryCompliance,
	EventClientStatusChanged: CategoryCompliance,
	EventClientBlocked:       CategoryCompliance,
	EventAssignmentCreated:   CategoryCompliance,
	EventAssignmentCancelled: CategoryCompliance,
	EventStockReassigned:     CategoryCompliance,
	EventReassignRejected:    CategoryCompliance,
	EventDocumentReplaced:    CategoryCompliance,

	EventClientUpdated:    CategoryOperations,
	EventAssignmentNoop:   CategoryOperations,
	EventDocumentUploaded: CategoryOperations,
	EventRegistryFallback: CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

// Sink accepts audit events. Implementations must be safe for concurrent use.
type Sink interface {
	Append(ctx context.Context, event Event) error
}

// Store is a Sink that can also replay a client's trail.
type Store interface {
	Sink
	ListByClient(ctx context.Context, clientID id.ClientID) ([]Event, error)
}
