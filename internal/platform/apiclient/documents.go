package apiclient

import (
	"bytes"
	"context"
	"strconv"

	"github.com/go-resty/resty/v2"

	"gmarm/internal/documents"
	"gmarm/internal/submission/models"
	id "gmarm/pkg/domain"
)

const defaultContentType = "application/octet-stream"

func (c *Client) ListDocuments(ctx context.Context, clientID id.ClientID) ([]documents.UploadedDocumentRef, error) {
	var out []documents.UploadedDocumentRef
	resp, err := c.request(ctx).
		SetPathParam("id", clientID.String()).
		SetResult(&out).
		Get("/clientes/{id}/documentos")
	if err := c.check(ctx, "list documents", resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// UploadDocument stores a new file for one checklist entry.
func (c *Client) UploadDocument(ctx context.Context, clientID id.ClientID, documentTypeID id.DocumentTypeID, file models.File) (*documents.UploadedDocumentRef, error) {
	var out documents.UploadedDocumentRef
	resp, err := withFile(c.request(ctx), file).
		SetPathParam("id", clientID.String()).
		SetMultipartFormData(map[string]string{
			"tipoDocumentoId": strconv.Itoa(int(documentTypeID)),
		}).
		SetResult(&out).
		Post("/clientes/{id}/documentos")
	if err := c.check(ctx, "upload document", resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReplaceDocument swaps the file behind an existing ref.
func (c *Client) ReplaceDocument(ctx context.Context, documentID id.DocumentID, file models.File) (*documents.UploadedDocumentRef, error) {
	var out documents.UploadedDocumentRef
	resp, err := withFile(c.request(ctx), file).
		SetPathParam("id", documentID.String()).
		SetResult(&out).
		Put("/documentos/{id}/archivo")
	if err := c.check(ctx, "replace document", resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func withFile(req *resty.Request, file models.File) *resty.Request {
	contentType := file.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}
	name := file.Name
	if name == "" {
		name = "documento"
	}
	return req.SetMultipartField("archivo", name, contentType, bytes.NewReader(file.Data))
}
