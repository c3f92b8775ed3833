package submission

import (
	"fmt"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"

	"gmarm/internal/clienttype"
	"gmarm/internal/submission/models"
)

const (
	cedulaLength     = 10
	rucLength        = 13
	rucSuffix        = "001"
	phoneLength      = 10
	regulatoryLength = 10
)

// FieldError is one field-level rule violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a client against the rules of its type. It never touches
// the backend.
func Validate(c *models.Client, cfg clienttype.Config, today time.Time) []FieldError {
	var errs []FieldError
	add := func(field, msg string) {
		errs = append(errs, FieldError{Field: field, Message: msg})
	}
	required := func(field, value string) bool {
		if strings.TrimSpace(value) == "" {
			add(field, "is required")
			return false
		}
		return true
	}

	if cfg.IsCompany() {
		required("nombreEmpresa", c.CompanyName)
		if c.IdentificationType != models.IdentificationRUC {
			add("tipoIdentificacion", "companies are identified by RUC")
		}
	} else {
		required("nombres", c.FirstName)
		required("apellidos", c.LastName)
		if required("fechaNacimiento", c.BirthDate) {
			birth, err := time.Parse(models.DateLayout, c.BirthDate)
			switch {
			case err != nil:
				add("fechaNacimiento", "must be a date in YYYY-MM-DD format")
			case birth.After(today):
				add("fechaNacimiento", "cannot be in the future")
			}
		}
	}

	if required("numeroIdentificacion", c.IdentificationNumber) {
		if msg := checkIdentification(c.IdentificationType, c.IdentificationNumber); msg != "" {
			add("numeroIdentificacion", msg)
		}
	}

	required("direccion", c.Address)
	required("provincia", c.Province)
	required("canton", c.Canton)
	if required("email", c.Email) && !govalidator.IsEmail(c.Email) {
		add("email", "invalid format")
	}
	if required("telefonoPrincipal", c.Phone) && !isDigits(c.Phone, phoneLength) {
		add("telefonoPrincipal", fmt.Sprintf("must have %d digits", phoneLength))
	}

	if cfg.IsUniformed() {
		switch c.ServiceStatus {
		case clienttype.StatusActive, clienttype.StatusPassive:
		default:
			add("estadoMilitar", "must be ACTIVO or PASIVO")
		}
		if cfg.RequiresIssfaCode {
			required("codigoIssfa", c.IssfaCode)
		}
		if cfg.RequiresIsspolCode() {
			required("codigoIsspol", c.IsspolCode)
		}
	}
	if c.IssfaCode != "" && !isDigits(c.IssfaCode, regulatoryLength) {
		add("codigoIssfa", fmt.Sprintf("must have exactly %d digits", regulatoryLength))
	}
	if c.IsspolCode != "" && !isDigits(c.IsspolCode, regulatoryLength) {
		add("codigoIsspol", fmt.Sprintf("must have exactly %d digits", regulatoryLength))
	}

	return errs
}

func checkIdentification(kind models.IdentificationType, number string) string {
	switch kind {
	case models.IdentificationCedula:
		if !ValidCedula(number) {
			return "invalid cédula"
		}
	case models.IdentificationRUC:
		if !isDigits(number, rucLength) || !strings.HasSuffix(number, rucSuffix) {
			return fmt.Sprintf("RUC must have %d digits ending in %s", rucLength, rucSuffix)
		}
	case models.IdentificationPassport:
		if !govalidator.IsAlphanumeric(number) || !govalidator.StringLength(number, "5", "20") {
			return "passport must be 5 to 20 letters or digits"
		}
	default:
		return "unknown identification type"
	}
	return ""
}

// ValidCedula checks an Ecuadorian national id: province prefix, natural
// person third digit and the modulo-10 check digit.
func ValidCedula(number string) bool {
	if !isDigits(number, cedulaLength) {
		return false
	}
	d := make([]int, cedulaLength)
	for i, r := range number {
		d[i] = int(r - '0')
	}
	province := d[0]*10 + d[1]
	if (province < 1 || province > 24) && province != 30 {
		return false
	}
	if d[2] >= 6 {
		return false
	}

	sum := 0
	for i := 0; i < cedulaLength-1; i++ {
		v := d[i]
		if i%2 == 0 {
			v *= 2
			if v > 9 {
				v -= 9
			}
		}
		sum += v
	}
	return (10-sum%10)%10 == d[cedulaLength-1]
}

func isDigits(s string, length int) bool {
	return len(s) == length && govalidator.IsNumeric(s)
}

func joinFieldErrors(errs []FieldError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.String()
	}
	return out
}
