package submission

import (
	"context"

	"gmarm/internal/answers"
	"gmarm/internal/clienttype"
	"gmarm/internal/documents"
	"gmarm/internal/eligibility"
)

// FormView is what the intake form shows for a client type before anything
// is saved.
type FormView struct {
	ClientType   clienttype.Config       `json:"tipoCliente"`
	Effective    clienttype.Config       `json:"tipoEfectivo"`
	Category     string                  `json:"categoria"`
	Questions    []answers.Question      `json:"preguntas,omitempty"`
	Requirements *documents.Requirements `json:"documentos,omitempty"`
}

// Form resolves the effective type, questionnaire and document checklist
// for a client type and service status. Status is ignored for types that
// are not uniformed.
func (s *Service) Form(ctx context.Context, typeName string, status clienttype.ServiceStatus) (*FormView, error) {
	cfg, err := s.types.Lookup(typeName)
	if err != nil {
		return nil, err
	}
	if !cfg.IsUniformed() {
		status = ""
	}
	effective, err := s.types.Effective(typeName, status)
	if err != nil {
		return nil, err
	}

	view := &FormView{
		ClientType: cfg,
		Effective:  effective,
		Category:   eligibility.EffectiveCategory(cfg, status),
	}
	reqs, err := s.requirements.GetRequirements(ctx, documents.NewRequirementKey(effective, status))
	if err != nil {
		return nil, translate(err, "failed to load document requirements")
	}
	view.Requirements = reqs

	if s.questions != nil {
		qs, err := s.questions.Questions(ctx, effective)
		if err != nil {
			return nil, translate(err, "failed to load questionnaire")
		}
		view.Questions = qs
	}
	return view, nil
}
