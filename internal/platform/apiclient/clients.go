package apiclient

import (
	"context"

	"gmarm/internal/answers"
	"gmarm/internal/clienttype"
	"gmarm/internal/documents"
	"gmarm/internal/submission/models"
	id "gmarm/pkg/domain"
)

func (c *Client) GetClientByID(ctx context.Context, clientID id.ClientID) (*models.Client, error) {
	var out models.Client
	resp, err := c.request(ctx).
		SetPathParam("id", clientID.String()).
		SetResult(&out).
		Get("/clientes/{id}")
	if err := c.check(ctx, "get client", resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateClient(ctx context.Context, client models.Client) (*models.Client, error) {
	var out models.Client
	resp, err := c.request(ctx).
		SetBody(client).
		SetResult(&out).
		Post("/clientes")
	if err := c.check(ctx, "create client", resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// PatchClient sends only the changed wire fields.
func (c *Client) PatchClient(ctx context.Context, clientID id.ClientID, patch models.Patch) (*models.Client, error) {
	var out models.Client
	resp, err := c.request(ctx).
		SetPathParam("id", clientID.String()).
		SetBody(patch).
		SetResult(&out).
		Patch("/clientes/{id}")
	if err := c.check(ctx, "patch client", resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

type availability struct {
	Available bool `json:"disponible"`
}

// CheckIdentificationUnique asks whether number is free. A nil exclude
// checks against every client.
func (c *Client) CheckIdentificationUnique(ctx context.Context, number string, exclude id.ClientID) (bool, error) {
	var out availability
	req := c.request(ctx).
		SetQueryParam("numero", number).
		SetResult(&out)
	if !exclude.IsNil() {
		req.SetQueryParam("excluirId", exclude.String())
	}
	resp, err := req.Get("/clientes/verificar-identificacion")
	if err := c.check(ctx, "check identification", resp, err); err != nil {
		return false, err
	}
	return out.Available, nil
}

// ClientDocumentProfile reads the fields that select a stored client's
// document checklist.
func (c *Client) ClientDocumentProfile(ctx context.Context, clientID id.ClientID) (documents.ClientProfile, error) {
	client, err := c.GetClientByID(ctx, clientID)
	if err != nil {
		return documents.ClientProfile{}, err
	}
	return documents.ClientProfile{
		TypeName:      client.ClientTypeName,
		ServiceStatus: clienttype.ParseServiceStatus(string(client.ServiceStatus)),
	}, nil
}

func (c *Client) GetAnswers(ctx context.Context, clientID id.ClientID) ([]answers.Answer, error) {
	var out []answers.Answer
	resp, err := c.request(ctx).
		SetPathParam("id", clientID.String()).
		SetResult(&out).
		Get("/clientes/{id}/respuestas")
	if err := c.check(ctx, "get answers", resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

type answerBatch struct {
	Answers []answers.Answer `json:"respuestas"`
}

func (c *Client) SaveAnswers(ctx context.Context, clientID id.ClientID, batch []answers.Answer) error {
	resp, err := c.request(ctx).
		SetPathParam("id", clientID.String()).
		SetBody(answerBatch{Answers: batch}).
		Post("/clientes/{id}/respuestas")
	return c.check(ctx, "save answers", resp, err)
}
