package apiclient

import (
	"context"
	"strconv"
	"strings"

	"gmarm/internal/answers"
	"gmarm/internal/clienttype"
	"gmarm/internal/documents"
	dErrors "gmarm/pkg/domain-errors"
)

const (
	settingTaxRate = "IVA"
	settingMinAge  = "EDAD_MINIMA_COMPRA"
)

func (c *Client) GetClientTypeConfig(ctx context.Context) ([]clienttype.Config, error) {
	var out []clienttype.Config
	resp, err := c.request(ctx).
		SetResult(&out).
		Get("/tipos-cliente/config")
	if err := c.check(ctx, "get client types", resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetRequiredDocuments(ctx context.Context, typeID int, status clienttype.ServiceStatus) ([]documents.RequiredDocument, error) {
	var out []documents.RequiredDocument
	req := c.request(ctx).
		SetPathParam("typeId", strconv.Itoa(typeID)).
		SetResult(&out)
	if status != "" {
		req.SetQueryParam("estadoMilitar", string(status))
	}
	resp, err := req.Get("/tipos-cliente/{typeId}/documentos")
	if err := c.check(ctx, "get required documents", resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetQuestions(ctx context.Context, typeID int) ([]answers.Question, error) {
	var out []answers.Question
	resp, err := c.request(ctx).
		SetPathParam("typeId", strconv.Itoa(typeID)).
		SetResult(&out).
		Get("/tipos-cliente/{typeId}/preguntas")
	if err := c.check(ctx, "get questions", resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

type setting struct {
	Key   string `json:"clave"`
	Value string `json:"valor"`
}

// GetTaxRate returns the sales tax as a fraction. The backend stores it as
// a percentage ("15" means 0.15).
func (c *Client) GetTaxRate(ctx context.Context) (float64, error) {
	raw, err := c.setting(ctx, settingTaxRate)
	if err != nil {
		return 0, err
	}
	pct, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeConfigUnavailable, "tax rate is not a number: "+raw)
	}
	return pct / 100, nil
}

func (c *Client) GetMinimumPurchaseAge(ctx context.Context) (int, error) {
	raw, err := c.setting(ctx, settingMinAge)
	if err != nil {
		return 0, err
	}
	age, err := strconv.Atoi(raw)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeConfigUnavailable, "minimum purchase age is not a number: "+raw)
	}
	return age, nil
}

func (c *Client) setting(ctx context.Context, key string) (string, error) {
	var out setting
	resp, err := c.request(ctx).
		SetPathParam("key", key).
		SetResult(&out).
		Get("/configuracion-sistema/{key}")
	if err := c.check(ctx, "get setting "+key, resp, err); err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(out.Value), "%")), nil
}
