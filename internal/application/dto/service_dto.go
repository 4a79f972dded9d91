package dto

import "time"

// CreateServiceRequest alta de un servicio del catálogo de la empresa.
// UnitPrice viaja como string decimal ("120.00") para no perder precisión.
type CreateServiceRequest struct {
	SpecialtyID string `json:"specialty_id" validate:"required,uuid"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Unit        string `json:"unit" validate:"required,max=20"`
	UnitPrice   string `json:"unit_price" validate:"required"`
}

// UpdateServiceRequest actualización parcial de un servicio.
type UpdateServiceRequest struct {
	Name        string  `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	Unit        string  `json:"unit" validate:"omitempty,max=20"`
	UnitPrice   *string `json:"unit_price"`
	Active      *bool   `json:"active"`
}

// ServiceResponse salida de un servicio. UnitPrice es null cuando el
// espectador no tiene canViewPrices efectivo.
type ServiceResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	SpecialtyID string    `json:"specialty_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Unit        string    `json:"unit"`
	UnitPrice   *string   `json:"unit_price"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ServiceListResponse listado paginado de servicios visibles.
type ServiceListResponse struct {
	Items []ServiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
