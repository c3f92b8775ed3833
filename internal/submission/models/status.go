package models

// Status is the client's position in the sale process.
type Status string

const (
	StatusPendingDocuments Status = "PENDIENTE_DOCUMENTOS"
	StatusBlocked          Status = "BLOQUEADO"
	StatusPurchaseDisabled Status = "INHABILITADO_COMPRA"
	StatusReadyForImport   Status = "LISTO_IMPORTACION"
	StatusContractSent     Status = "CONTRATO_ENVIADO"
	StatusContractSigned   Status = "CONTRATO_FIRMADO"
	StatusProcessCompleted Status = "PROCESO_COMPLETADO"
)

// IsDownstream reports statuses set outside intake. Intake never
// overwrites them.
func (s Status) IsDownstream() bool {
	switch s {
	case StatusContractSent, StatusContractSigned, StatusProcessCompleted:
		return true
	default:
		return false
	}
}

// DeriveStatus is the intake state machine. A block wins over an invalid
// age, which wins over document completeness.
func DeriveStatus(blocked, ageValid, docsComplete bool) Status {
	switch {
	case blocked:
		return StatusBlocked
	case !ageValid:
		return StatusPurchaseDisabled
	case docsComplete:
		return StatusReadyForImport
	default:
		return StatusPendingDocuments
	}
}

// ResolveStatus keeps a downstream status and otherwise takes the derived one.
func ResolveStatus(current, derived Status) Status {
	if current.IsDownstream() {
		return current
	}
	return derived
}
