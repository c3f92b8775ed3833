package documents

import (
	id "gmarm/pkg/domain"
)

// ComputeCompleteness reports COMPLETE iff every mandatory document has a
// pending upload or a CARGADO ref. Nil requirements (not yet resolved) are
// PENDING.
func ComputeCompleteness(reqs *Requirements, uploaded []id.DocumentTypeID, loaded []UploadedDocumentRef) Completeness {
	if reqs == nil {
		return CompletenessPending
	}

	pending := make(map[id.DocumentTypeID]struct{}, len(uploaded))
	for _, t := range uploaded {
		pending[t] = struct{}{}
	}
	current := LatestLoaded(loaded)

	for _, typeID := range reqs.Mandatory() {
		if _, ok := pending[typeID]; ok {
			continue
		}
		if _, ok := current[typeID]; ok {
			continue
		}
		return CompletenessIncomplete
	}
	return CompletenessComplete
}

// LatestLoaded returns, per document type, the most recent CARGADO ref.
func LatestLoaded(refs []UploadedDocumentRef) map[id.DocumentTypeID]UploadedDocumentRef {
	out := make(map[id.DocumentTypeID]UploadedDocumentRef, len(refs))
	for _, ref := range refs {
		if ref.Status != RefLoaded {
			continue
		}
		if prev, ok := out[ref.DocumentTypeID]; ok && !ref.UploadedAt.After(prev.UploadedAt) {
			continue
		}
		out[ref.DocumentTypeID] = ref
	}
	return out
}
