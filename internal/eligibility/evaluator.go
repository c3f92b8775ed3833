// Package eligibility decides whether a client may buy weapons: effective
// category, age validity and questionnaire blocks.
package eligibility

import (
	"time"

	"gmarm/internal/answers"
	"gmarm/internal/clienttype"
)

// Input is what the evaluator needs about one client.
type Input struct {
	ClientType    clienttype.Config
	ServiceStatus clienttype.ServiceStatus
	BirthDate     time.Time
	Block         answers.BlockState
	// Today is the evaluation date; callers take it from the request clock.
	Today time.Time
}

// Decision is the evaluator's verdict. The client record is persistable
// whatever it says; only weapon selection is gated by CanPurchaseWeapons.
type Decision struct {
	EffectiveCategory  string   `json:"effectiveCategory"`
	Age                int      `json:"age"`
	AgeValid           bool     `json:"ageValid"`
	Blocked            bool     `json:"blocked"`
	BlockReasons       []string `json:"blockReasons,omitempty"`
	BlockReason        string   `json:"blockReason,omitempty"`
	CanPurchaseWeapons bool     `json:"canPurchaseWeapons"`
}

// AgeSource supplies the minimum purchase age.
type AgeSource interface {
	MinimumPurchaseAge() int
}

// Evaluator applies the eligibility rules with the current minimum age.
type Evaluator struct {
	ages AgeSource
}

func NewEvaluator(ages AgeSource) *Evaluator {
	return &Evaluator{ages: ages}
}

// Evaluate returns the decision for in.
func (e *Evaluator) Evaluate(in Input) Decision {
	d := Decision{
		EffectiveCategory: EffectiveCategory(in.ClientType, in.ServiceStatus),
		Blocked:           in.Block.Blocked,
		BlockReasons:      in.Block.Reasons,
		BlockReason:       in.Block.Reason,
	}

	if in.ClientType.IsCompany() {
		// a company has no birth date; its legal representative is vetted elsewhere
		d.AgeValid = true
	} else if !in.BirthDate.IsZero() {
		d.Age = AgeInYears(in.BirthDate, in.Today)
		d.AgeValid = d.Age >= e.ages.MinimumPurchaseAge()
	}

	d.CanPurchaseWeapons = d.AgeValid && !d.Blocked
	return d
}

// EffectiveCategory is "civil" for civil clients and for passive uniformed
// clients whose type is treated as civil; otherwise the type name.
func EffectiveCategory(cfg clienttype.Config, status clienttype.ServiceStatus) string {
	if cfg.IsCivil() {
		return clienttype.CategoryCivil
	}
	if cfg.IsUniformed() && status == clienttype.StatusPassive && cfg.TreatAsCivilWhenPassive {
		return clienttype.CategoryCivil
	}
	return cfg.Name
}

// AgeInYears counts whole years from birth to today; the birthday itself
// counts as a completed year.
func AgeInYears(birth, today time.Time) int {
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}
