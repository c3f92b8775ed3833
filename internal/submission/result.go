package submission

import (
	"gmarm/internal/documents"
	"gmarm/internal/eligibility"
	"gmarm/internal/submission/models"
	"gmarm/internal/weapons"
	dErrors "gmarm/pkg/domain-errors"
)

// Outcome is the terminal state of one submission.
type Outcome string

const (
	OutcomeSuccess             Outcome = "SUCCESS"
	OutcomeSuccessWithWarnings Outcome = "SUCCESS_WITH_WARNINGS"
	OutcomeFailure             Outcome = "FAILURE"
	OutcomeIgnored             Outcome = "IGNORED"
)

// Result is what the shell renders after a submission. Errors explain a
// failure; Warnings are non-fatal problems next to a saved client.
type Result struct {
	Outcome      Outcome
	Status       models.Status
	Client       *models.Client
	Errors       []string
	Warnings     []string
	FieldValues  map[string]string
	Decision     *eligibility.Decision
	Completeness documents.Completeness
	Assignment   *weapons.AssignmentResult
	Code         dErrors.Code
	Err          error
}

func ignored() *Result {
	return &Result{Outcome: OutcomeIgnored}
}

// fail builds a FAILURE result. client is kept when it was already saved.
func fail(err error, client *models.Client, msgs ...string) *Result {
	if len(msgs) == 0 {
		msgs = []string{dErrors.MessageOf(err)}
	}
	r := &Result{Outcome: OutcomeFailure, Errors: msgs, Code: dErrors.CodeOf(err), Err: err}
	if client != nil {
		r.Client = client
		r.Status = client.Status
		r.FieldValues = client.FieldValues()
	}
	return r
}
