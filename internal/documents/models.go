// Package documents resolves which documents a client must present and
// whether the ones on file complete the checklist.
package documents

import (
	"fmt"
	"time"

	"gmarm/internal/clienttype"
	id "gmarm/pkg/domain"
	pstrings "gmarm/pkg/platform/strings"
)

// RequiredDocument is one checklist entry for a client-type key.
type RequiredDocument struct {
	ID        id.DocumentTypeID `json:"id"`
	Name      string            `json:"nombre"`
	Mandatory bool              `json:"obligatorio"`
}

// Requirements is the resolved checklist for a key.
type Requirements struct {
	Key       RequirementKey     `json:"key"`
	Documents []RequiredDocument `json:"documents"`
}

// Mandatory returns the ids of mandatory documents in checklist order.
func (r *Requirements) Mandatory() []id.DocumentTypeID {
	if r == nil {
		return nil
	}
	out := make([]id.DocumentTypeID, 0, len(r.Documents))
	for _, d := range r.Documents {
		if d.Mandatory {
			out = append(out, d.ID)
		}
	}
	return out
}

// RefStatus is the lifecycle state of a stored document.
type RefStatus string

const (
	RefLoaded   RefStatus = "CARGADO"
	RefReplaced RefStatus = "REEMPLAZADO"
	RefPending  RefStatus = "PENDIENTE"
)

// UploadedDocumentRef points at a stored file. Superseded refs are kept as
// REEMPLAZADO.
type UploadedDocumentRef struct {
	ID             id.DocumentID     `json:"id"`
	DocumentTypeID id.DocumentTypeID `json:"tipoDocumentoId"`
	StoredID       string            `json:"archivoId"`
	Status         RefStatus         `json:"estado"`
	UploadedAt     time.Time         `json:"fechaCarga"`
}

// Completeness of a client's checklist.
type Completeness string

const (
	CompletenessPending    Completeness = "PENDING"
	CompletenessComplete   Completeness = "COMPLETE"
	CompletenessIncomplete Completeness = "INCOMPLETE"
)

// RequirementKey identifies a checklist. ServiceStatus is only set for
// uniformed effective types, so unrelated status edits on other types never
// change the key.
type RequirementKey struct {
	TypeID        int                      `json:"typeId"`
	TypeName      string                   `json:"typeName"`
	ServiceStatus clienttype.ServiceStatus `json:"serviceStatus,omitempty"`
}

// NewRequirementKey builds the key for an effective client type.
func NewRequirementKey(effective clienttype.Config, status clienttype.ServiceStatus) RequirementKey {
	key := RequirementKey{TypeID: effective.TypeID, TypeName: effective.Name}
	if effective.IsUniformed() {
		key.ServiceStatus = status
	}
	return key
}

// Equal compares keys, ignoring case and accents in the type name.
func (k RequirementKey) Equal(o RequirementKey) bool {
	return k.TypeID == o.TypeID &&
		k.ServiceStatus == o.ServiceStatus &&
		pstrings.Fold(k.TypeName) == pstrings.Fold(o.TypeName)
}

// String is the cache key form.
func (k RequirementKey) String() string {
	return fmt.Sprintf("%d|%s|%s", k.TypeID, pstrings.Fold(k.TypeName), k.ServiceStatus)
}

// ClientProfile is what the gate needs to know about a stored client.
type ClientProfile struct {
	TypeName      string
	ServiceStatus clienttype.ServiceStatus
}
