package submission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gmarm/internal/clienttype"
	"gmarm/internal/submission/models"
)

var validationToday = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func configFor(t *testing.T, name string) clienttype.Config {
	t.Helper()
	for _, cfg := range clienttype.Fallback() {
		if cfg.Name == name {
			return cfg
		}
	}
	t.Fatalf("no fallback type %q", name)
	return clienttype.Config{}
}

func validCivil() models.Client {
	return models.Client{
		FirstName:            "Jorge",
		LastName:             "Salazar",
		BirthDate:            "1985-02-10",
		ClientTypeName:       "Civil",
		IdentificationType:   models.IdentificationCedula,
		IdentificationNumber: "1710034065",
		Address:              "Calle Bolívar 123",
		Province:             "Pichincha",
		Canton:               "Quito",
		Email:                "jorge.salazar@example.com",
		Phone:                "0998877665",
	}
}

func fieldsOf(errs []FieldError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Field
	}
	return out
}

func TestValidCedula(t *testing.T) {
	assert.True(t, ValidCedula("1710034065"))
	assert.True(t, ValidCedula("0102030400"))

	assert.False(t, ValidCedula("1710034066"), "wrong check digit")
	assert.False(t, ValidCedula("9910034065"), "unknown province")
	assert.False(t, ValidCedula("1790034065"), "third digit reserved for companies")
	assert.False(t, ValidCedula("171003406"), "too short")
	assert.False(t, ValidCedula("17100340a5"), "not numeric")
}

func TestValidate(t *testing.T) {
	civil := configFor(t, "Civil")

	t.Run("valid civil client", func(t *testing.T) {
		c := validCivil()
		assert.Empty(t, Validate(&c, civil, validationToday))
	})

	t.Run("missing required fields", func(t *testing.T) {
		c := validCivil()
		c.FirstName = " "
		c.Canton = ""
		assert.ElementsMatch(t, []string{"nombres", "canton"}, fieldsOf(Validate(&c, civil, validationToday)))
	})

	t.Run("format rules", func(t *testing.T) {
		c := validCivil()
		c.Email = "not-an-email"
		c.Phone = "09988"
		c.BirthDate = "2030-01-01"
		assert.ElementsMatch(t, []string{"email", "telefonoPrincipal", "fechaNacimiento"}, fieldsOf(Validate(&c, civil, validationToday)))
	})

	t.Run("identification by type", func(t *testing.T) {
		tests := []struct {
			kind   models.IdentificationType
			number string
			valid  bool
		}{
			{models.IdentificationCedula, "1710034065", true},
			{models.IdentificationCedula, "1710034060", false},
			{models.IdentificationRUC, "1790012345001", true},
			{models.IdentificationRUC, "1790012345002", false},
			{models.IdentificationPassport, "A1234567", true},
			{models.IdentificationPassport, "AB12", false},
			{models.IdentificationPassport, "AB-1234", false},
			{"LICENCIA", "12345", false},
		}
		for _, tt := range tests {
			c := validCivil()
			c.IdentificationType = tt.kind
			c.IdentificationNumber = tt.number
			errs := Validate(&c, civil, validationToday)
			if tt.valid {
				assert.Empty(t, errs, "%s %s", tt.kind, tt.number)
			} else {
				assert.Equal(t, []string{"numeroIdentificacion"}, fieldsOf(errs), "%s %s", tt.kind, tt.number)
			}
		}
	})

	t.Run("military client needs status and a 10-digit ISSFA code", func(t *testing.T) {
		military := configFor(t, "Militar Fuerza Terrestre")
		c := validCivil()
		c.ClientTypeName = military.Name
		assert.ElementsMatch(t, []string{"estadoMilitar", "codigoIssfa"}, fieldsOf(Validate(&c, military, validationToday)))

		c.ServiceStatus = clienttype.StatusActive
		c.IssfaCode = "12345"
		assert.Equal(t, []string{"codigoIssfa"}, fieldsOf(Validate(&c, military, validationToday)))

		c.IssfaCode = "1234567890"
		assert.Empty(t, Validate(&c, military, validationToday))
	})

	t.Run("police client needs an ISSPOL code", func(t *testing.T) {
		police := configFor(t, "Uniformado Policial")
		c := validCivil()
		c.ServiceStatus = clienttype.StatusPassive
		assert.Equal(t, []string{"codigoIsspol"}, fieldsOf(Validate(&c, police, validationToday)))
	})

	t.Run("company client is identified by RUC and needs no birth date", func(t *testing.T) {
		company := configFor(t, "Compañía de Seguridad")
		c := validCivil()
		c.FirstName, c.LastName, c.BirthDate = "", "", ""
		c.CompanyName = "Seguridad Andina S.A."
		c.IdentificationType = models.IdentificationRUC
		c.IdentificationNumber = "1790012345001"
		assert.Empty(t, Validate(&c, company, validationToday))

		c.IdentificationType = models.IdentificationCedula
		c.IdentificationNumber = "1710034065"
		assert.Equal(t, []string{"tipoIdentificacion"}, fieldsOf(Validate(&c, company, validationToday)))
	})
}
