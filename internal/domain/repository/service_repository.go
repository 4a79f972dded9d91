package repository

import (
	"context"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// ServiceRepository puerto de persistencia del catálogo de servicios de una
// empresa. El filtrado por especialidades visibles se hace en la consulta:
// el caso de uso pasa el conjunto de especialidades ya resuelto.
type ServiceRepository interface {
	Create(ctx context.Context, s *entity.Service) error
	GetByID(ctx context.Context, id string) (*entity.Service, error)
	Update(ctx context.Context, s *entity.Service) error
	Delete(ctx context.Context, id string) error
	// ListByCompanyAndSpecialties lista servicios de la empresa cuya
	// especialidad está en specialtyIDs. Con specialtyIDs vacío devuelve
	// vacío sin consultar (el usuario no ve nada).
	ListByCompanyAndSpecialties(ctx context.Context, companyID string, specialtyIDs []string, limit, offset int) ([]*entity.Service, error)
}
