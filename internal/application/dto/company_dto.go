package dto

import "time"

// CompanyResponse salida de la empresa del token.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TradeID   string    `json:"trade_id"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateCompanyRequest actualización de datos de contacto de la empresa.
type UpdateCompanyRequest struct {
	Name    string `json:"name" validate:"omitempty,min=1,max=200"`
	Address string `json:"address" validate:"omitempty,max=300"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Email   string `json:"email" validate:"omitempty,email"`
}
