// Package answers keeps a client's questionnaire answers and derives the
// blocking conditions some of them carry.
package answers

import (
	"regexp"
	"strconv"
	"strings"

	pstrings "gmarm/pkg/platform/strings"
)

// Primary is the yes/no part of an answer.
type Primary string

const (
	PrimaryYes Primary = "SI"
	PrimaryNo  Primary = "NO"
	// PrimaryOther marks free-text answers that are neither yes nor no.
	PrimaryOther Primary = ""
)

// Detail is the optional sub-quantity attached to a yes.
type Detail string

const (
	DetailNone      Detail = "NONE"
	DetailOne       Detail = "ONE"
	DetailTwoOrMore Detail = "TWO_OR_MORE"
)

// Value is the tagged form of a stored answer.
type Value struct {
	Primary Primary
	Detail  Detail
	// Text holds the raw answer for PrimaryOther.
	Text string
}

func Yes() Value                  { return Value{Primary: PrimaryYes, Detail: DetailNone} }
func No() Value                   { return Value{Primary: PrimaryNo, Detail: DetailNone} }
func YesWith(detail Detail) Value { return Value{Primary: PrimaryYes, Detail: detail} }

// IsYes reports a yes answer with any detail.
func (v Value) IsYes() bool { return v.Primary == PrimaryYes }

// String encodes the value the way the backend stores it.
func (v Value) String() string {
	switch v.Primary {
	case PrimaryNo:
		return "NO"
	case PrimaryYes:
		switch v.Detail {
		case DetailOne:
			return "SI, 1 arma"
		case DetailTwoOrMore:
			return "SI, 2 o más armas"
		default:
			return "SI"
		}
	default:
		return v.Text
	}
}

var quantityPattern = regexp.MustCompile(`\d+`)

// ParseValue reads a stored answer. Besides the canonical encodings it
// accepts the legacy forms "SI, 2 armas", "Sí" and a bare "1 arma".
func ParseValue(raw string) Value {
	folded := pstrings.Fold(raw)
	if folded == "" {
		return Value{Primary: PrimaryOther}
	}

	detail := DetailNone
	if m := quantityPattern.FindString(folded); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			switch {
			case n >= 2:
				detail = DetailTwoOrMore
			case n == 1:
				detail = DetailOne
			}
		}
	}

	head := strings.TrimSpace(strings.SplitN(folded, ",", 2)[0])
	switch {
	case head == "no":
		return No()
	case head == "si" || strings.HasPrefix(head, "si "):
		return YesWith(detail)
	case detail != DetailNone && strings.Contains(folded, "arma"):
		return YesWith(detail)
	default:
		return Value{Primary: PrimaryOther, Text: strings.TrimSpace(raw)}
	}
}
