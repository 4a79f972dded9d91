package usecase

import (
	"context"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/access"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// AccessService resuelve el contexto de autorización de cada request: carga
// la membresía (user, company) y construye el access.Actor que se pasa
// explícitamente a los casos de uso. Es el único lugar donde el rol
// persistido como string se convierte a la enumeración cerrada.
type AccessService struct {
	memberships repository.MembershipRepository
	companies   repository.CompanyRepository
	trades      repository.TradeRepository
}

// NewAccessService construye el servicio con sus puertos de lectura.
func NewAccessService(
	memberships repository.MembershipRepository,
	companies repository.CompanyRepository,
	trades repository.TradeRepository,
) *AccessService {
	return &AccessService{memberships: memberships, companies: companies, trades: trades}
}

// Resolve carga la membresía y devuelve el actor del request. Membresía
// inexistente, inactiva o con rol desconocido → domain.ErrForbidden: el
// token pudo ser válido, pero ya no hay acceso (fail closed).
func (s *AccessService) Resolve(ctx context.Context, userID, companyID string) (access.Actor, error) {
	m, err := s.memberships.GetByUserAndCompany(ctx, userID, companyID)
	if err != nil {
		return access.Actor{}, err
	}
	if m == nil || !m.Active {
		return access.Actor{}, domain.ErrForbidden
	}
	role, ok := entity.ParseRole(string(m.Role))
	if !ok {
		return access.Actor{}, domain.ErrForbidden
	}
	return access.Actor{
		UserID:    userID,
		CompanyID: companyID,
		Role:      role,
		Ceiling:   m.Permissions,
	}, nil
}

// AllowedSpecialtyIDs resuelve el conjunto de especialidades visibles del
// actor. Empresa u oficio irresolubles degradan a conjunto vacío sin error:
// "el usuario no ve nada" es el default seguro.
func (s *AccessService) AllowedSpecialtyIDs(ctx context.Context, actor access.Actor) ([]string, error) {
	// SUPPORT corta antes de tocar la DB: override absoluto.
	if actor.Role == entity.RoleSupport {
		return nil, nil
	}
	company, err := s.companies.GetByID(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	specialties, err := s.trades.ListSpecialtiesByTrade(ctx, company.TradeID)
	if err != nil {
		return nil, err
	}
	tradeIDs := make([]string, 0, len(specialties))
	for _, sp := range specialties {
		tradeIDs = append(tradeIDs, sp.ID)
	}
	assigned, err := s.memberships.ListAssignedSpecialtyIDs(ctx, actor.UserID, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	return access.AllowedSpecialties(actor.Role, actor.Ceiling, tradeIDs, assigned), nil
}
