package repository

import (
	"context"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// MembershipRepository puerto de persistencia para la relación User×Company
// (rol de empresa + techo de permisos) y para las asignaciones de
// especialidad del miembro.
type MembershipRepository interface {
	Create(ctx context.Context, m *entity.Membership) error
	GetByUserAndCompany(ctx context.Context, userID, companyID string) (*entity.Membership, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Membership, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Membership, error)
	Update(ctx context.Context, m *entity.Membership) error

	// ListAssignedSpecialtyIDs devuelve las especialidades explícitamente
	// asignadas a (userID, companyID); vacío significa "necesita onboarding".
	ListAssignedSpecialtyIDs(ctx context.Context, userID, companyID string) ([]string, error)
	// ReplaceSpecialtyAssignments reemplaza el conjunto completo de
	// asignaciones del miembro (borra y reinserta en una transacción).
	ReplaceSpecialtyAssignments(ctx context.Context, userID, companyID string, specialtyIDs []string) error
}
