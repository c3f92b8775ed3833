package submission

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"gmarm/internal/documents"
	"gmarm/internal/submission/models"
	id "gmarm/pkg/domain"
	dErrors "gmarm/pkg/domain-errors"
	audit "gmarm/pkg/platform/audit"
)

func uploadTypes(uploads []models.DocumentUpload) []id.DocumentTypeID {
	out := make([]id.DocumentTypeID, 0, len(uploads))
	for _, u := range uploads {
		out = append(out, u.DocumentTypeID)
	}
	return out
}

// uploadDocuments stores each file independently. A type that already has
// a CARGADO ref in current is replaced, which marks the old ref REEMPLAZADO.
// It returns one warning per failed document.
func (s *Service) uploadDocuments(
	ctx context.Context,
	clientID id.ClientID,
	uploads []models.DocumentUpload,
	current map[id.DocumentTypeID]documents.UploadedDocumentRef,
) []string {
	if len(uploads) == 0 {
		return nil
	}

	ctx, span := s.tracer.Start(ctx, "submission.upload_documents",
		trace.WithAttributes(attribute.Int("documents", len(uploads))))
	defer span.End()

	failures := make([]error, len(uploads))
	var g errgroup.Group
	g.SetLimit(s.uploadLimit)
	for i, u := range uploads {
		g.Go(func() error {
			failures[i] = s.uploadOne(ctx, clientID, u, current)
			return nil
		})
	}
	_ = g.Wait()

	var warnings []string
	for i, err := range failures {
		if err == nil {
			continue
		}
		span.RecordError(err)
		warnings = append(warnings, fmt.Sprintf("document %s: %s", documentLabel(uploads[i]), dErrors.MessageOf(err)))
	}
	return warnings
}

func (s *Service) uploadOne(
	ctx context.Context,
	clientID id.ClientID,
	u models.DocumentUpload,
	current map[id.DocumentTypeID]documents.UploadedDocumentRef,
) error {
	kind := "upload"
	var (
		ref *documents.UploadedDocumentRef
		err error
	)
	if prev, ok := current[u.DocumentTypeID]; ok {
		kind = "replace"
		ref, err = s.documents.ReplaceDocument(ctx, prev.ID, u.File)
	} else {
		ref, err = s.documents.UploadDocument(ctx, clientID, u.DocumentTypeID, u.File)
	}
	if err != nil {
		s.metrics.IncUpload(kind, "error")
		s.logger.WarnContext(ctx, "document upload failed",
			"client_id", clientID.String(),
			"document_type_id", u.DocumentTypeID.String(),
			"kind", kind,
			"error", err,
		)
		return dErrors.Wrap(err, dErrors.CodeDocumentUpload, dErrors.MessageOf(err))
	}

	s.metrics.IncUpload(kind, "ok")
	event := audit.EventDocumentUploaded
	if kind == "replace" {
		event = audit.EventDocumentReplaced
	}
	s.logAudit(ctx, event,
		"client_id", clientID.String(),
		"document_type_id", u.DocumentTypeID.String(),
		"document_id", ref.ID.String(),
	)
	return nil
}

func documentLabel(u models.DocumentUpload) string {
	if u.DocumentName != "" {
		return u.DocumentName
	}
	return u.DocumentTypeID.String()
}

// refresh reloads the client's document refs, recomputes completeness and
// writes the resulting status. A checklist that failed during assessment is
// fetched once more.
func (s *Service) refresh(ctx context.Context, client *models.Client, a *assessment) (*models.Client, []string) {
	refs, err := s.documents.ListDocuments(ctx, client.ID)
	if err != nil {
		return client, []string{"document references could not be reloaded: " + dErrors.MessageOf(err)}
	}
	if reqs, err := a.checklist.Refresh(ctx, a.key); err == nil {
		a.requirements = reqs
	}
	a.completeness = documents.ComputeCompleteness(a.requirements, nil, refs)

	saved, err := s.writeStatus(ctx, client, a.status(), a.decision.BlockReason)
	if err != nil {
		return client, []string{"client status: " + dErrors.MessageOf(err)}
	}
	return saved, nil
}
