package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"gmarm/internal/clienttype"
	"gmarm/internal/submission"
	"gmarm/internal/submission/models"
	"gmarm/internal/weapons"
	id "gmarm/pkg/domain"
	dErrors "gmarm/pkg/domain-errors"
	audit "gmarm/pkg/platform/audit"
	"gmarm/pkg/platform/httputil"
	"gmarm/pkg/requestcontext"
)

const (
	payloadPart    = "payload"
	documentPrefix = "documento_"
)

// Service defines the interface for intake operations.
type Service interface {
	Create(ctx context.Context, req submission.SubmitRequest) *submission.Result
	Edit(ctx context.Context, clientID id.ClientID, req submission.SubmitRequest) *submission.Result
	AssignWeapon(ctx context.Context, clientID id.ClientID, sel submission.WeaponSelection) (*weapons.AssignmentResult, error)
	ReassignStock(ctx context.Context, assignmentID id.AssignmentID, clientID id.ClientID) (*weapons.AssignmentResult, error)
	Eligibility(ctx context.Context, clientID id.ClientID) (*submission.EligibilityReport, error)
	Form(ctx context.Context, typeName string, status clienttype.ServiceStatus) (*submission.FormView, error)
	AuditTrail(ctx context.Context, clientID id.ClientID) ([]audit.Event, error)
}

// Handler wires intake endpoints to the submission service.
type Handler struct {
	service        Service
	logger         *slog.Logger
	maxUploadBytes int64
}

// New constructs an intake handler. maxUploadBytes caps a multipart
// submission including all of its documents.
func New(service Service, logger *slog.Logger, maxUploadBytes int64) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		service:        service,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

// Register mounts intake endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/clients", h.HandleCreate)
	r.Patch("/clients/{id}", h.HandleEdit)
	r.Get("/clients/{id}/eligibility", h.HandleEligibility)
	r.Get("/clients/{id}/audit", h.HandleAuditTrail)
	r.Post("/clients/{id}/weapons", h.HandleAssignWeapon)
	r.Post("/assignments/{id}/reassign", h.HandleReassign)
	r.Get("/client-types/{name}/form", h.HandleForm)
}

// HandleCreate handles POST /clients requests.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := h.decodeSubmission(w, r, requestID)
	if !ok {
		return
	}

	result := h.service.Create(ctx, req.ToDomain())
	h.writeResult(ctx, w, "client create", http.StatusCreated, result, requestID, start)
}

// HandleEdit handles PATCH /clients/{id} requests.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	clientID, err := id.ParseClientID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := h.decodeSubmission(w, r, requestID)
	if !ok {
		return
	}

	result := h.service.Edit(ctx, clientID, req.ToDomain())
	h.writeResult(ctx, w, "client edit", http.StatusOK, result, requestID, start)
}

// HandleEligibility handles GET /clients/{id}/eligibility requests.
func (h *Handler) HandleEligibility(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	clientID, err := id.ParseClientID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	report, err := h.service.Eligibility(ctx, clientID)
	if err != nil {
		h.logger.ErrorContext(ctx, "eligibility evaluation failed",
			"request_id", requestID,
			"client_id", clientID.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, report)
}

// HandleAssignWeapon handles POST /clients/{id}/weapons requests.
func (h *Handler) HandleAssignWeapon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	clientID, err := id.ParseClientID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[WeaponRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.AssignWeapon(ctx, clientID, req.ToDomain())
	if err != nil {
		h.logger.WarnContext(ctx, "weapon assignment failed",
			"request_id", requestID,
			"client_id", clientID.String(),
			"weapon_id", req.WeaponID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "weapon assigned",
		"request_id", requestID,
		"client_id", clientID.String(),
		"outcome", string(result.Outcome),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, assignmentStatus(result), FromAssignment(result))
}

// HandleReassign handles POST /assignments/{id}/reassign requests.
func (h *Handler) HandleReassign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	assignmentID, err := id.ParseAssignmentID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[ReassignRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.ReassignStock(ctx, assignmentID, req.parsedClient)
	if err != nil {
		h.logger.WarnContext(ctx, "stock reassignment failed",
			"request_id", requestID,
			"assignment_id", assignmentID.String(),
			"client_id", req.ClientID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "stock reassigned",
		"request_id", requestID,
		"assignment_id", assignmentID.String(),
		"client_id", req.ClientID,
		"outcome", string(result.Outcome),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromAssignment(result))
}

// HandleForm handles GET /client-types/{name}/form requests.
func (h *Handler) HandleForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	typeName := strings.TrimSpace(chi.URLParam(r, "name"))
	if typeName == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "client type is required"))
		return
	}
	status := clienttype.ParseServiceStatus(r.URL.Query().Get("estadoMilitar"))

	view, err := h.service.Form(ctx, typeName, status)
	if err != nil {
		h.logger.WarnContext(ctx, "form lookup failed",
			"request_id", requestcontext.RequestID(ctx),
			"client_type", typeName,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

// HandleAuditTrail handles GET /clients/{id}/audit requests.
func (h *Handler) HandleAuditTrail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := id.ParseClientID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	events, err := h.service.AuditTrail(ctx, clientID)
	if err != nil {
		h.logger.ErrorContext(ctx, "audit trail lookup failed",
			"request_id", requestcontext.RequestID(ctx),
			"client_id", clientID.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromAuditTrail(clientID, events))
}

func (h *Handler) writeResult(
	ctx context.Context,
	w http.ResponseWriter,
	op string,
	okStatus int,
	result *submission.Result,
	requestID string,
	start time.Time,
) {
	status := okStatus
	switch result.Outcome {
	case submission.OutcomeFailure:
		status = httputil.StatusFor(result.Err)
		h.logger.WarnContext(ctx, op+" failed",
			"request_id", requestID,
			"code", string(result.Code),
			"error", result.Err,
		)
	case submission.OutcomeIgnored:
		status = http.StatusConflict
	default:
		h.logger.InfoContext(ctx, op+" completed",
			"request_id", requestID,
			"outcome", string(result.Outcome),
			"status", string(result.Status),
			"warnings", len(result.Warnings),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
	httputil.WriteJSON(w, status, FromResult(result))
}

func assignmentStatus(r *weapons.AssignmentResult) int {
	if r.Outcome == weapons.OutcomeCreated {
		return http.StatusCreated
	}
	return http.StatusOK
}

// decodeSubmission accepts either a JSON body or a multipart form whose
// "payload" part carries the JSON and whose documento_<typeId> parts carry
// the files.
func (h *Handler) decodeSubmission(w http.ResponseWriter, r *http.Request, requestID string) (*SubmitRequest, bool) {
	ctx := r.Context()
	mediaType, params, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return httputil.DecodeAndPrepare[SubmitRequest](w, r, h.logger, ctx, requestID)
	}

	req, err := h.readMultipart(w, r, params["boundary"])
	if err != nil {
		h.logger.WarnContext(ctx, "failed to decode multipart request", "request_id", requestID, "error", err)
		httputil.WriteError(w, err)
		return nil, false
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(ctx, "invalid request", "request_id", requestID, "error", err)
		httputil.WriteError(w, err)
		return nil, false
	}
	return req, true
}

func (h *Handler) readMultipart(w http.ResponseWriter, r *http.Request, boundary string) (*SubmitRequest, error) {
	if boundary == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "multipart boundary is missing")
	}
	body := io.Reader(r.Body)
	if h.maxUploadBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}
	reader := multipart.NewReader(body, boundary)

	req := &SubmitRequest{}
	seenPayload := false
	var files []models.DocumentUpload
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid multipart body")
		}
		name := part.FormName()
		switch {
		case name == payloadPart:
			if err := json.NewDecoder(part).Decode(req); err != nil {
				return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid JSON payload")
			}
			seenPayload = true
		case strings.HasPrefix(name, documentPrefix):
			typeID, err := strconv.Atoi(strings.TrimPrefix(name, documentPrefix))
			if err != nil || typeID <= 0 {
				return nil, dErrors.New(dErrors.CodeBadRequest, "invalid document part "+name)
			}
			data, err := io.ReadAll(part)
			if err != nil {
				return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "failed to read document part")
			}
			files = append(files, models.DocumentUpload{
				DocumentTypeID: id.DocumentTypeID(typeID),
				File: models.File{
					Name:        part.FileName(),
					ContentType: part.Header.Get("Content-Type"),
					Data:        data,
				},
			})
		}
		_ = part.Close()
	}
	if !seenPayload {
		return nil, dErrors.New(dErrors.CodeBadRequest, "multipart body has no payload part")
	}
	req.Documents = append(req.Documents, files...)
	return req, nil
}
