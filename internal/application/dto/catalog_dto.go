package dto

// TradeResponse un oficio del catálogo global.
type TradeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// SpecialtyResponse una especialidad de un oficio.
type SpecialtyResponse struct {
	ID      string `json:"id"`
	TradeID string `json:"trade_id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
}

// MySpecialtiesResponse especialidades visibles del usuario de la sesión.
// NeedsOnboarding=true cuando el conjunto resuelto quedó vacío y el front
// debe redirigir al flujo de selección.
type MySpecialtiesResponse struct {
	Specialties     []SpecialtyResponse `json:"specialties"`
	NeedsOnboarding bool                `json:"needs_onboarding"`
}
