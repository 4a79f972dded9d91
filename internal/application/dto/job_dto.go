package dto

import (
	"time"

	"github.com/jhoicas/Cotizador-api/internal/domain/access"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// CreateJobRequest alta de un trabajo. SpecialtyID es opcional: un trabajo
// sin especialidad solo lo ven OWNER/ADMIN y los asignados directamente.
type CreateJobRequest struct {
	Title           string  `json:"title" validate:"required,min=1,max=200"`
	SpecialtyID     *string `json:"specialty_id" validate:"omitempty,uuid"`
	CustomerName    string  `json:"customer_name" validate:"required,min=1,max=200"`
	CustomerPhone   string  `json:"customer_phone" validate:"omitempty,max=30"`
	CustomerAddress string  `json:"customer_address" validate:"omitempty,max=300"`
	Notes           string  `json:"notes" validate:"omitempty,max=2000"`
}

// UpdateJobRequest actualización de datos del trabajo (no del estado).
type UpdateJobRequest struct {
	Title           string  `json:"title" validate:"omitempty,min=1,max=200"`
	SpecialtyID     *string `json:"specialty_id" validate:"omitempty,uuid"`
	CustomerName    string  `json:"customer_name" validate:"omitempty,min=1,max=200"`
	CustomerPhone   *string `json:"customer_phone"`
	CustomerAddress *string `json:"customer_address"`
	Notes           *string `json:"notes"`
}

// UpdateJobStatusRequest transición de estado del trabajo.
type UpdateJobStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=DRAFT SENT APPROVED SCHEDULED IN_PROGRESS DONE"`
}

// JobResponse salida resumida de un trabajo (listados).
type JobResponse struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"company_id"`
	TradeID      string    `json:"trade_id"`
	SpecialtyID  *string   `json:"specialty_id"`
	Title        string    `json:"title"`
	CustomerName string    `json:"customer_name"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// JobListResponse trabajos visibles + agregado por estado.
type JobListResponse struct {
	Items []JobResponse   `json:"items"`
	Stats access.JobStats `json:"stats"`
}

// JobItemResponse línea de cotización. UnitPrice y LineTotal son null cuando
// el permiso efectivo canViewPrices del espectador es false.
type JobItemResponse struct {
	ID          string  `json:"id"`
	JobID       string  `json:"job_id"`
	ServiceID   *string `json:"service_id"`
	Description string  `json:"description"`
	Quantity    string  `json:"quantity"`
	UnitPrice   *string `json:"unit_price"`
	LineTotal   *string `json:"line_total"`
}

// JobDetailResponse detalle del trabajo con líneas y el permiso efectivo del
// espectador (el front decide qué acciones mostrar con esto).
type JobDetailResponse struct {
	JobResponse
	CustomerPhone   string               `json:"customer_phone"`
	CustomerAddress string               `json:"customer_address"`
	Notes           string               `json:"notes"`
	Items           []JobItemResponse    `json:"items"`
	Permissions     entity.PermissionSet `json:"permissions"`
	Total           *string              `json:"total"`
}

// CreateJobItemRequest alta de una línea. Si ServiceID viene y UnitPrice no,
// se toma el precio del servicio del catálogo.
type CreateJobItemRequest struct {
	ServiceID   *string `json:"service_id" validate:"omitempty,uuid"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Quantity    string  `json:"quantity" validate:"required"`
	UnitPrice   *string `json:"unit_price"`
}

// UpdateJobItemRequest actualización de una línea.
type UpdateJobItemRequest struct {
	Description *string `json:"description"`
	Quantity    *string `json:"quantity"`
	UnitPrice   *string `json:"unit_price"`
}

// ShareJobRequest comparte el trabajo con un empleado, con un permiso local
// al trabajo. Si Permissions es nil se usa la línea base de empleado.
type ShareJobRequest struct {
	UserID      string                  `json:"user_id" validate:"required,uuid"`
	Permissions *access.PermissionPatch `json:"permissions"`
}

// JobAssignmentResponse asignación existente de un trabajo. Permissions es
// el permiso local crudo; Effective el resultado de aplicar el techo.
type JobAssignmentResponse struct {
	JobID       string               `json:"job_id"`
	UserID      string               `json:"user_id"`
	Permissions entity.PermissionSet `json:"permissions"`
	Effective   entity.PermissionSet `json:"effective"`
	CreatedAt   time.Time            `json:"created_at"`
}
