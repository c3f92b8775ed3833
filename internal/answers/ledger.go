package answers

import (
	"strings"
	"sync"

	"gmarm/internal/clienttype"
	id "gmarm/pkg/domain"
	pstrings "gmarm/pkg/platform/strings"
)

const (
	weaponCountMarker = "armas registradas"
	violenceMarker    = "violencia"

	// revalidationWindow bounds how many answers Load scans for blocks.
	revalidationWindow = 100
)

const (
	ReasonViolence    = "Cliente bloqueado: registra antecedentes de violencia"
	ReasonWeaponCount = "Cliente bloqueado: posee 2 o más armas registradas"
)

// Answer is one stored question/answer pair.
type Answer struct {
	QuestionID   id.QuestionID `json:"preguntaId"`
	QuestionText string        `json:"pregunta"`
	Value        string        `json:"respuesta"`
}

// BlockState is the ledger's blocking verdict. Reasons are ordered by
// priority: violence first, then weapon count.
type BlockState struct {
	Blocked bool
	Reasons []string
	Reason  string
}

// Ledger holds one client's answers keyed by question text.
type Ledger struct {
	mu         sync.Mutex
	clientCode string
	entries    map[string]Answer
	order      []string
	changed    map[string]struct{}

	violenceBlocked bool
	weaponBlocked   bool
}

// NewLedger builds an empty ledger for a client of the given type code.
func NewLedger(clientTypeCode string) *Ledger {
	return &Ledger{
		clientCode: clientTypeCode,
		entries:    make(map[string]Answer),
		changed:    make(map[string]struct{}),
	}
}

// GetAnswer returns the stored value, "" when unanswered.
func (l *Ledger) GetAnswer(questionText string) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.entries[pstrings.Fold(questionText)].Value
}

// Value returns the tagged form of the stored answer.
func (l *Ledger) Value(questionText string) Value {
	return ParseValue(l.GetAnswer(questionText))
}

// SetAnswer upserts an answer and re-evaluates the rule its question carries.
// Athletes are never asked for a weapon sub-quantity, so any detail is dropped.
func (l *Ledger) SetAnswer(questionText, value string, questionID id.QuestionID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if isWeaponCountQuestion(questionText) && l.isAthlete() {
		if v := ParseValue(value); v.IsYes() {
			value = Yes().String()
		}
	}

	a := Answer{QuestionID: questionID, QuestionText: questionText, Value: value}
	key := pstrings.Fold(questionText)
	if prev, ok := l.entries[key]; ok && prev.Value == value && prev.QuestionID == questionID {
		return
	}
	l.put(key, a)
	l.changed[key] = struct{}{}
	l.applyRules(a)
}

// Load replaces the ledger with stored answers and re-derives blocks from the
// most recent revalidationWindow of them. Nothing is marked changed.
func (l *Ledger) Load(answers []Answer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = make(map[string]Answer, len(answers))
	l.order = nil
	l.changed = make(map[string]struct{})
	l.violenceBlocked = false
	l.weaponBlocked = false

	for _, a := range answers {
		l.put(pstrings.Fold(a.QuestionText), a)
	}

	start := max(len(answers)-revalidationWindow, 0)
	for _, a := range answers[start:] {
		l.applyRules(a)
	}
}

// Answers returns all answers in first-answered order.
func (l *Ledger) Answers() []Answer {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Answer, 0, len(l.order))
	for _, key := range l.order {
		out = append(out, l.entries[key])
	}
	return out
}

// Changed returns answers set since construction or the last Load.
func (l *Ledger) Changed() []Answer {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []Answer
	for _, key := range l.order {
		if _, ok := l.changed[key]; ok {
			out = append(out, l.entries[key])
		}
	}
	return out
}

// MarkSaved clears the changed set after a successful save.
func (l *Ledger) MarkSaved() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.changed = make(map[string]struct{})
}

// BlockState reports the current blocking verdict.
func (l *Ledger) BlockState() BlockState {
	l.mu.Lock()
	defer l.mu.Unlock()
	var reasons []string
	if l.violenceBlocked {
		reasons = append(reasons, ReasonViolence)
	}
	if l.weaponBlocked {
		reasons = append(reasons, ReasonWeaponCount)
	}
	return BlockState{
		Blocked: len(reasons) > 0,
		Reasons: reasons,
		Reason:  strings.Join(reasons, "; "),
	}
}

func (l *Ledger) put(key string, a Answer) {
	if _, ok := l.entries[key]; !ok {
		l.order = append(l.order, key)
	}
	l.entries[key] = a
}

func (l *Ledger) applyRules(a Answer) {
	v := ParseValue(a.Value)
	switch {
	case isViolenceQuestion(a.QuestionText):
		switch v.Primary {
		case PrimaryYes:
			l.violenceBlocked = true
		case PrimaryNo:
			l.violenceBlocked = false
		}
	case isWeaponCountQuestion(a.QuestionText):
		l.weaponBlocked = !l.isAthlete() && v.IsYes() && v.Detail == DetailTwoOrMore
	}
}

func (l *Ledger) isAthlete() bool {
	return l.clientCode == clienttype.CodeAthlete
}

func isWeaponCountQuestion(text string) bool {
	return pstrings.ContainsFold(text, weaponCountMarker)
}

func isViolenceQuestion(text string) bool {
	return pstrings.ContainsFold(text, violenceMarker)
}
