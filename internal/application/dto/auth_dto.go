package dto

import "time"

// RegisterRequest registro de una empresa nueva: crea el usuario, la empresa
// y la membresía OWNER en una sola operación.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	CompanyName string `json:"company_name" validate:"required,min=1,max=200"`
	TradeID     string `json:"trade_id" validate:"required,uuid"`
}

// LoginRequest entrada para login. CompanyID es opcional: si el usuario
// pertenece a varias empresas selecciona contra cuál abrir sesión.
type LoginRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	CompanyID string `json:"company_id" validate:"omitempty,uuid"`
}

// AcceptInviteRequest acepta una invitación de empresa. Si el email aún no
// tiene cuenta se crea con Name y Password; si ya existe, Password valida la
// cuenta existente.
type AcceptInviteRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"omitempty,max=200"`
}

// UserResponse salida de un usuario (sin password) con el contexto de la
// empresa de la sesión.
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
