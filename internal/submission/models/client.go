// Package models holds the client record as intake sees it.
package models

import (
	"time"

	"gmarm/internal/clienttype"
	id "gmarm/pkg/domain"
)

// DateLayout is the wire format of birth dates.
const DateLayout = "2006-01-02"

// IdentificationType is the kind of national identifier.
type IdentificationType string

const (
	IdentificationCedula   IdentificationType = "CEDULA"
	IdentificationRUC      IdentificationType = "RUC"
	IdentificationPassport IdentificationType = "PASAPORTE"
)

// Client is the stored client record. ServiceStatus, IssfaCode and
// IsspolCode only carry meaning for military and police types.
type Client struct {
	ID id.ClientID `json:"id"`

	FirstName   string `json:"nombres"`
	LastName    string `json:"apellidos"`
	CompanyName string `json:"nombreEmpresa,omitempty"`
	BirthDate   string `json:"fechaNacimiento,omitempty"`

	ClientTypeName       string             `json:"tipoCliente"`
	ClientTypeCode       string             `json:"tipoClienteCodigo,omitempty"`
	IdentificationType   IdentificationType `json:"tipoIdentificacion"`
	IdentificationNumber string             `json:"numeroIdentificacion"`

	ServiceStatus clienttype.ServiceStatus `json:"estadoMilitar,omitempty"`
	IssfaCode     string                   `json:"codigoIssfa,omitempty"`
	IsspolCode    string                   `json:"codigoIsspol,omitempty"`
	Rank          string                   `json:"rango,omitempty"`

	Address  string `json:"direccion"`
	Province string `json:"provincia"`
	Canton   string `json:"canton"`
	Email    string `json:"email"`
	Phone    string `json:"telefonoPrincipal"`

	Status Status `json:"estado"`
}

// Birth parses BirthDate. The zero time means unknown.
func (c *Client) Birth() time.Time {
	t, err := time.Parse(DateLayout, c.BirthDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// File is a document payload supplied by the shell.
type File struct {
	Name        string `json:"nombre"`
	ContentType string `json:"tipoContenido"`
	Data        []byte `json:"contenido"`
}

// DocumentUpload is one file for one checklist entry.
type DocumentUpload struct {
	DocumentTypeID id.DocumentTypeID `json:"tipoDocumentoId"`
	DocumentName   string            `json:"nombreDocumento,omitempty"`
	File           File              `json:"archivo"`
}

// Patch is a partial client update keyed by wire field name.
type Patch map[string]string

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool { return len(p) == 0 }

type field struct {
	name string
	get  func(*Client) string
}

// fields lists the editable client fields in wire order.
var fields = []field{
	{"nombres", func(c *Client) string { return c.FirstName }},
	{"apellidos", func(c *Client) string { return c.LastName }},
	{"nombreEmpresa", func(c *Client) string { return c.CompanyName }},
	{"fechaNacimiento", func(c *Client) string { return c.BirthDate }},
	{"tipoCliente", func(c *Client) string { return c.ClientTypeName }},
	{"tipoClienteCodigo", func(c *Client) string { return c.ClientTypeCode }},
	{"tipoIdentificacion", func(c *Client) string { return string(c.IdentificationType) }},
	{"numeroIdentificacion", func(c *Client) string { return c.IdentificationNumber }},
	{"estadoMilitar", func(c *Client) string { return string(c.ServiceStatus) }},
	{"codigoIssfa", func(c *Client) string { return c.IssfaCode }},
	{"codigoIsspol", func(c *Client) string { return c.IsspolCode }},
	{"rango", func(c *Client) string { return c.Rank }},
	{"direccion", func(c *Client) string { return c.Address }},
	{"provincia", func(c *Client) string { return c.Province }},
	{"canton", func(c *Client) string { return c.Canton }},
	{"email", func(c *Client) string { return c.Email }},
	{"telefonoPrincipal", func(c *Client) string { return c.Phone }},
	{"estado", func(c *Client) string { return string(c.Status) }},
}

// Diff returns the fields of next that differ from prev.
func Diff(prev, next *Client) Patch {
	patch := Patch{}
	for _, f := range fields {
		if v := f.get(next); v != f.get(prev) {
			patch[f.name] = v
		}
	}
	return patch
}

// FieldValues is the client flattened to wire field names, for the shell
// to re-render. Empty fields are omitted.
func (c *Client) FieldValues() map[string]string {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		if v := f.get(c); v != "" {
			out[f.name] = v
		}
	}
	return out
}
