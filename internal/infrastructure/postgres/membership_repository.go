package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

var _ repository.MembershipRepository = (*MembershipRepo)(nil)

// MembershipRepo implementación del puerto MembershipRepository sobre
// PostgreSQL. Cubre membresías y asignaciones de especialidad.
type MembershipRepo struct {
	q Querier
}

// NewMembershipRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMembershipRepository(q Querier) *MembershipRepo {
	return &MembershipRepo{q: q}
}

const membershipCols = `
	id, user_id, company_id, role, active,
	can_manage_users, can_view_all_specialties, can_view_prices, can_edit_prices, can_audit,
	created_at, updated_at`

// Create persiste una membresía. (user_id, company_id) es único.
func (r *MembershipRepo) Create(ctx context.Context, m *entity.Membership) error {
	query := `
		INSERT INTO memberships (` + membershipCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.UserID, m.CompanyID, string(m.Role), m.Active,
		m.Permissions.CanManageUsers, m.Permissions.CanViewAllSpecialties,
		m.Permissions.CanViewPrices, m.Permissions.CanEditPrices, m.Permissions.CanAudit,
		m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert membership: %w", err)
	}
	return nil
}

// GetByUserAndCompany obtiene la membresía de un usuario en una empresa.
func (r *MembershipRepo) GetByUserAndCompany(ctx context.Context, userID, companyID string) (*entity.Membership, error) {
	query := `SELECT ` + membershipCols + ` FROM memberships WHERE user_id = $1 AND company_id = $2`
	m, err := scanMembership(r.q.QueryRow(ctx, query, userID, companyID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}
	return m, nil
}

// ListByCompany lista las membresías de una empresa con paginación.
func (r *MembershipRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Membership, error) {
	query := `
		SELECT ` + membershipCols + ` FROM memberships
		WHERE company_id = $1 ORDER BY created_at ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()

	var list []*entity.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ListByUser lista las membresías activas de un usuario (para el login
// multiempresa), más antiguas primero.
func (r *MembershipRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Membership, error) {
	query := `
		SELECT ` + membershipCols + ` FROM memberships
		WHERE user_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list memberships by user: %w", err)
	}
	defer rows.Close()

	var list []*entity.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Update actualiza rol, estado y techo de permisos de una membresía.
func (r *MembershipRepo) Update(ctx context.Context, m *entity.Membership) error {
	query := `
		UPDATE memberships SET role = $2, active = $3,
			can_manage_users = $4, can_view_all_specialties = $5,
			can_view_prices = $6, can_edit_prices = $7, can_audit = $8,
			updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		m.ID, string(m.Role), m.Active,
		m.Permissions.CanManageUsers, m.Permissions.CanViewAllSpecialties,
		m.Permissions.CanViewPrices, m.Permissions.CanEditPrices, m.Permissions.CanAudit,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update membership: %w", err)
	}
	return nil
}

// ListAssignedSpecialtyIDs devuelve las especialidades asignadas al miembro.
func (r *MembershipRepo) ListAssignedSpecialtyIDs(ctx context.Context, userID, companyID string) ([]string, error) {
	query := `
		SELECT specialty_id FROM specialty_assignments
		WHERE user_id = $1 AND company_id = $2 ORDER BY created_at ASC`
	rows, err := r.q.Query(ctx, query, userID, companyID)
	if err != nil {
		return nil, fmt.Errorf("list specialty assignments: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan specialty assignment: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ReplaceSpecialtyAssignments reemplaza el conjunto completo de asignaciones
// del miembro. Borra las actuales y reinserta las nuevas.
func (r *MembershipRepo) ReplaceSpecialtyAssignments(ctx context.Context, userID, companyID string, specialtyIDs []string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM specialty_assignments WHERE user_id = $1 AND company_id = $2`,
		userID, companyID,
	)
	if err != nil {
		return fmt.Errorf("delete specialty assignments: %w", err)
	}
	now := time.Now()
	for _, specialtyID := range specialtyIDs {
		_, err := r.q.Exec(ctx, `
			INSERT INTO specialty_assignments (id, user_id, company_id, specialty_id, created_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (user_id, company_id, specialty_id) DO NOTHING`,
			uuid.New().String(), userID, companyID, specialtyID, now,
		)
		if err != nil {
			return fmt.Errorf("insert specialty assignment: %w", err)
		}
	}
	return nil
}

// rowScanner cubre pgx.Row y pgx.Rows para compartir el scan.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMembership(row rowScanner) (*entity.Membership, error) {
	var m entity.Membership
	var role string
	err := row.Scan(
		&m.ID, &m.UserID, &m.CompanyID, &role, &m.Active,
		&m.Permissions.CanManageUsers, &m.Permissions.CanViewAllSpecialties,
		&m.Permissions.CanViewPrices, &m.Permissions.CanEditPrices, &m.Permissions.CanAudit,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.Role = entity.Role(role)
	return &m, nil
}
