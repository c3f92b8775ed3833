// Package clienttype holds the client-type configuration table: which
// regulatory flags apply to a civil buyer, a member of the armed forces or
// police, a security company or a sport shooter.
package clienttype

// Codes of the built-in client types the rule engine branches on.
const (
	CodeCivil   = "CIV"
	CodeCompany = "CIA"
	CodeAthlete = "DEP"
)

// CategoryCivil is the effective category shared by civil clients and
// passive uniformed clients whose type is treated as civil.
const CategoryCivil = "civil"

// ServiceStatus is ACTIVO or PASIVO; only meaningful for uniformed types.
type ServiceStatus string

const (
	StatusActive  ServiceStatus = "ACTIVO"
	StatusPassive ServiceStatus = "PASIVO"
)

// ParseServiceStatus accepts the Spanish labels and the English aliases the
// shell may send. Unknown or empty input yields "".
func ParseServiceStatus(s string) ServiceStatus {
	switch s {
	case "ACTIVO", "ACTIVE", "activo":
		return StatusActive
	case "PASIVO", "PASSIVE", "pasivo":
		return StatusPassive
	default:
		return ""
	}
}

// Config is one row of the client-type table. Immutable after load.
type Config struct {
	Name                    string `json:"nombre"`
	Code                    string `json:"codigo"`
	TypeID                  int    `json:"id"`
	ProcessTypeID           int    `json:"tipoProcesoId"`
	RequiresIssfaCode       bool   `json:"requiereCodigoIssfa"`
	IsMilitary              bool   `json:"esMilitar"`
	IsPolice                bool   `json:"esPolicia"`
	TreatAsCivilWhenPassive bool   `json:"tratarComoCivilCuandoPasivo"`
}

// IsUniformed reports military or police types, the only ones for which
// service status matters.
func (c Config) IsUniformed() bool { return c.IsMilitary || c.IsPolice }

func (c Config) IsCivil() bool   { return c.Code == CodeCivil }
func (c Config) IsCompany() bool { return c.Code == CodeCompany }
func (c Config) IsAthlete() bool { return c.Code == CodeAthlete }

// RequiresIsspolCode reports police types, which carry an ISSPOL code.
func (c Config) RequiresIsspolCode() bool { return c.IsPolice }

// fallbackTable is served when the backend never delivers the table.
var fallbackTable = []Config{
	{Name: "Civil", Code: CodeCivil, TypeID: 1, ProcessTypeID: 1},
	{Name: "Militar Fuerza Terrestre", Code: "MFT", TypeID: 2, ProcessTypeID: 2, RequiresIssfaCode: true, IsMilitary: true, TreatAsCivilWhenPassive: true},
	{Name: "Militar Fuerza Naval", Code: "MFN", TypeID: 3, ProcessTypeID: 2, RequiresIssfaCode: true, IsMilitary: true, TreatAsCivilWhenPassive: true},
	{Name: "Militar Fuerza Aérea", Code: "MFA", TypeID: 4, ProcessTypeID: 2, RequiresIssfaCode: true, IsMilitary: true, TreatAsCivilWhenPassive: true},
	{Name: "Militar Comando Conjunto", Code: "MCC", TypeID: 5, ProcessTypeID: 2, RequiresIssfaCode: true, IsMilitary: true, TreatAsCivilWhenPassive: true},
	{Name: "Uniformado Policial", Code: "POL", TypeID: 6, ProcessTypeID: 2, IsPolice: true, TreatAsCivilWhenPassive: true},
	{Name: "Compañía de Seguridad", Code: CodeCompany, TypeID: 7, ProcessTypeID: 3},
	{Name: "Deportista", Code: CodeAthlete, TypeID: 8, ProcessTypeID: 4},
}

// Fallback returns a copy of the built-in table.
func Fallback() []Config {
	return append([]Config(nil), fallbackTable...)
}
