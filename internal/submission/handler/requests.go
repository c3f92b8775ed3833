package handler

import (
	"strings"

	"gmarm/internal/answers"
	"gmarm/internal/submission"
	"gmarm/internal/submission/models"
	id "gmarm/pkg/domain"
	dErrors "gmarm/pkg/domain-errors"
)

const maxAnswers = 200

// SubmitRequest is the body of POST /clients and PATCH /clients/{id}.
// Documents may be inlined (base64 content) or sent as multipart parts.
type SubmitRequest struct {
	Client            models.Client           `json:"cliente"`
	Answers           []answers.Answer        `json:"respuestas,omitempty"`
	Weapon            *WeaponRequest          `json:"arma,omitempty"`
	StockAssignmentID string                  `json:"asignacionStockId,omitempty"`
	Documents         []models.DocumentUpload `json:"documentos,omitempty"`

	// Parsed values (populated by Validate)
	parsedStock id.AssignmentID
}

// WeaponRequest selects a weapon for a client. It is also the body of
// POST /clients/{id}/weapons.
type WeaponRequest struct {
	WeaponID  string  `json:"armaId"`
	Quantity  int     `json:"cantidad"`
	UnitPrice float64 `json:"precioUnitario"`

	parsedWeapon id.WeaponID
}

// ReassignRequest is the body of POST /assignments/{id}/reassign.
type ReassignRequest struct {
	ClientID string `json:"clienteId"`

	parsedClient id.ClientID
}

// Validate checks the request shape. Field rules of the client itself are
// applied by the service so they can be reported per field.
func (r *SubmitRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Answers) > maxAnswers {
		return dErrors.New(dErrors.CodeValidation, "too many answers")
	}
	for _, a := range r.Answers {
		if strings.TrimSpace(a.QuestionText) == "" {
			return dErrors.New(dErrors.CodeValidation, "respuestas[].pregunta is required")
		}
	}
	if r.Weapon != nil {
		if err := r.Weapon.Validate(); err != nil {
			return err
		}
	}
	if s := strings.TrimSpace(r.StockAssignmentID); s != "" {
		parsed, err := id.ParseAssignmentID(s)
		if err != nil {
			return err
		}
		r.parsedStock = parsed
	}
	for _, d := range r.Documents {
		if d.DocumentTypeID <= 0 {
			return dErrors.New(dErrors.CodeValidation, "documentos[].tipoDocumentoId is required")
		}
		if len(d.File.Data) == 0 {
			return dErrors.New(dErrors.CodeValidation, "documentos[].archivo is empty")
		}
	}
	return nil
}

// ToDomain converts the validated request.
func (r *SubmitRequest) ToDomain() submission.SubmitRequest {
	req := submission.SubmitRequest{
		Client:            r.Client,
		Answers:           r.Answers,
		StockAssignmentID: r.parsedStock,
		Documents:         r.Documents,
	}
	if r.Weapon != nil {
		sel := r.Weapon.ToDomain()
		req.Weapon = &sel
	}
	return req
}

// Validate parses the weapon id and checks quantity and price are positive.
// Caps and the price floor are enforced by the weapon service.
func (r *WeaponRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	weaponID, err := id.ParseWeaponID(r.WeaponID)
	if err != nil {
		return err
	}
	r.parsedWeapon = weaponID
	if r.Quantity < 1 {
		return dErrors.New(dErrors.CodeValidation, "cantidad must be at least 1")
	}
	if r.UnitPrice <= 0 {
		return dErrors.New(dErrors.CodeValidation, "precioUnitario must be positive")
	}
	return nil
}

func (r *WeaponRequest) ToDomain() submission.WeaponSelection {
	return submission.WeaponSelection{
		WeaponID:  r.parsedWeapon,
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice,
	}
}

func (r *ReassignRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	clientID, err := id.ParseClientID(r.ClientID)
	if err != nil {
		return err
	}
	r.parsedClient = clientID
	return nil
}
