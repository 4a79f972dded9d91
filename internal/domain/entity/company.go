package entity

import "time"

// Company representa una empresa de oficios (tenant del sistema).
// Cada empresa ejerce exactamente un oficio (Trade): carpintería, pintura, etc.
type Company struct {
	ID        string
	Name      string
	TradeID   string
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
