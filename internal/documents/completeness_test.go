package documents

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	id "gmarm/pkg/domain"
)

func checklist() *Requirements {
	return &Requirements{Documents: []RequiredDocument{
		{ID: 1, Name: "Cédula", Mandatory: true},
		{ID: 2, Name: "Certificado de antecedentes", Mandatory: true},
		{ID: 3, Name: "Planilla de servicios", Mandatory: false},
	}}
}

func loadedRef(typeID id.DocumentTypeID, status RefStatus, at time.Time) UploadedDocumentRef {
	return UploadedDocumentRef{DocumentTypeID: typeID, Status: status, UploadedAt: at}
}

func TestComputeCompleteness(t *testing.T) {
	t0 := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("pending while requirements unresolved", func(t *testing.T) {
		assert.Equal(t, CompletenessPending, ComputeCompleteness(nil, []id.DocumentTypeID{1, 2}, nil))
	})

	t.Run("all mandatory loaded", func(t *testing.T) {
		refs := []UploadedDocumentRef{loadedRef(1, RefLoaded, t0), loadedRef(2, RefLoaded, t0)}
		assert.Equal(t, CompletenessComplete, ComputeCompleteness(checklist(), nil, refs))
	})

	t.Run("pending upload counts", func(t *testing.T) {
		refs := []UploadedDocumentRef{loadedRef(1, RefLoaded, t0)}
		assert.Equal(t, CompletenessComplete, ComputeCompleteness(checklist(), []id.DocumentTypeID{2}, refs))
	})

	t.Run("removing any mandatory document flips to incomplete", func(t *testing.T) {
		full := []UploadedDocumentRef{loadedRef(1, RefLoaded, t0), loadedRef(2, RefLoaded, t0)}
		for i := range full {
			partial := append(append([]UploadedDocumentRef{}, full[:i]...), full[i+1:]...)
			assert.Equal(t, CompletenessIncomplete, ComputeCompleteness(checklist(), nil, partial))
		}
	})

	t.Run("replaced and pending refs do not count", func(t *testing.T) {
		refs := []UploadedDocumentRef{
			loadedRef(1, RefLoaded, t0),
			loadedRef(2, RefReplaced, t0),
			loadedRef(2, RefPending, t0.Add(time.Hour)),
		}
		assert.Equal(t, CompletenessIncomplete, ComputeCompleteness(checklist(), nil, refs))
	})

	t.Run("optional documents ignored", func(t *testing.T) {
		refs := []UploadedDocumentRef{loadedRef(1, RefLoaded, t0), loadedRef(2, RefLoaded, t0)}
		assert.Equal(t, CompletenessComplete, ComputeCompleteness(checklist(), nil, refs))
	})

	t.Run("empty checklist is complete", func(t *testing.T) {
		assert.Equal(t, CompletenessComplete, ComputeCompleteness(&Requirements{}, nil, nil))
	})
}

func TestLatestLoaded(t *testing.T) {
	t0 := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	older := UploadedDocumentRef{ID: id.DocumentID{1}, DocumentTypeID: 1, Status: RefLoaded, UploadedAt: t0}
	newer := UploadedDocumentRef{ID: id.DocumentID{2}, DocumentTypeID: 1, Status: RefLoaded, UploadedAt: t0.Add(time.Hour)}

	got := LatestLoaded([]UploadedDocumentRef{newer, older})
	assert.Equal(t, newer.ID, got[1].ID)
}
