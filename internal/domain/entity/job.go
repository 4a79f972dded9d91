package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un trabajo, en orden de ciclo de vida.
const (
	JobStatusDraft      = "DRAFT"
	JobStatusSent       = "SENT"
	JobStatusApproved   = "APPROVED"
	JobStatusScheduled  = "SCHEDULED"
	JobStatusInProgress = "IN_PROGRESS"
	JobStatusDone       = "DONE"
)

// JobStatuses conjunto ordenado de estados válidos.
var JobStatuses = []string{
	JobStatusDraft,
	JobStatusSent,
	JobStatusApproved,
	JobStatusScheduled,
	JobStatusInProgress,
	JobStatusDone,
}

// ValidJobStatus informa si s es un estado de trabajo conocido.
func ValidJobStatus(s string) bool {
	for _, st := range JobStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// Job representa un trabajo/cotización de una empresa. Pertenece a exactamente
// una empresa y un oficio; opcionalmente está atado a una especialidad (nil =
// trabajo general, solo visible por asignación directa para el rol USER).
type Job struct {
	ID              string
	CompanyID       string
	TradeID         string
	SpecialtyID     *string
	Title           string
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Notes           string
	Status          string // ver constantes JobStatus*
	CreatedBy       string // user id del creador
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// JobItem es una línea de la cotización del trabajo. LineTotal siempre se
// deriva como UnitPrice × Quantity al persistir; no se acepta del cliente.
type JobItem struct {
	ID          string
	JobID       string
	ServiceID   *string // nil = línea libre, sin servicio del catálogo
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// JobAssignment comparte un trabajo con un empleado y lleva el conjunto de
// permisos local al trabajo. Puede otorgar más que la línea base del empleado
// pero nunca supera el techo de la empresa: el efectivo es access.Cap.
type JobAssignment struct {
	ID          string
	JobID       string
	UserID      string
	Permissions PermissionSet
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
