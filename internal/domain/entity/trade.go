package entity

import "time"

// Trade es la categoría de oficio de primer nivel (carpintería, pintura,
// enchape, aseo). El catálogo es global: lo comparten todas las empresas.
type Trade struct {
	ID        string
	Name      string
	Slug      string // identificador estable para seeds y URLs (ej. "carpentry")
	CreatedAt time.Time
}

// Specialty es la subcategoría dentro de un Trade (ej. escaleras, deck).
// Es la unidad de restricción fina de acceso: los servicios y trabajos se
// filtran por especialidad.
type Specialty struct {
	ID        string
	TradeID   string
	Name      string
	Slug      string
	CreatedAt time.Time
}
