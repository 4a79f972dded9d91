package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

var _ repository.JobAssignmentRepository = (*JobAssignmentRepo)(nil)

// JobAssignmentRepo implementación del puerto JobAssignmentRepository sobre
// PostgreSQL (trabajos compartidos con permiso local).
type JobAssignmentRepo struct {
	q Querier
}

// NewJobAssignmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewJobAssignmentRepository(q Querier) *JobAssignmentRepo {
	return &JobAssignmentRepo{q: q}
}

const jobAssignmentCols = `
	id, job_id, user_id,
	can_manage_users, can_view_all_specialties, can_view_prices, can_edit_prices, can_audit,
	created_at, updated_at`

// Upsert inserta o reemplaza la asignación (job_id, user_id). Compartir dos
// veces sobrescribe el permiso local: gana la última escritura.
func (r *JobAssignmentRepo) Upsert(ctx context.Context, a *entity.JobAssignment) error {
	query := `
		INSERT INTO job_assignments (` + jobAssignmentCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (job_id, user_id) DO UPDATE SET
			can_manage_users = EXCLUDED.can_manage_users,
			can_view_all_specialties = EXCLUDED.can_view_all_specialties,
			can_view_prices = EXCLUDED.can_view_prices,
			can_edit_prices = EXCLUDED.can_edit_prices,
			can_audit = EXCLUDED.can_audit,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.JobID, a.UserID,
		a.Permissions.CanManageUsers, a.Permissions.CanViewAllSpecialties,
		a.Permissions.CanViewPrices, a.Permissions.CanEditPrices, a.Permissions.CanAudit,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert job assignment: %w", err)
	}
	return nil
}

// Get obtiene la asignación de un usuario sobre un trabajo.
func (r *JobAssignmentRepo) Get(ctx context.Context, jobID, userID string) (*entity.JobAssignment, error) {
	query := `SELECT ` + jobAssignmentCols + ` FROM job_assignments WHERE job_id = $1 AND user_id = $2`
	a, err := scanJobAssignment(r.q.QueryRow(ctx, query, jobID, userID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job assignment: %w", err)
	}
	return a, nil
}

// ListByJob lista las asignaciones de un trabajo.
func (r *JobAssignmentRepo) ListByJob(ctx context.Context, jobID string) ([]*entity.JobAssignment, error) {
	query := `SELECT ` + jobAssignmentCols + ` FROM job_assignments WHERE job_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("list job assignments: %w", err)
	}
	defer rows.Close()

	var list []*entity.JobAssignment
	for rows.Next() {
		a, err := scanJobAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job assignment: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// ListAssignedJobIDs devuelve los ids de trabajos de la empresa asignados
// directamente al usuario.
func (r *JobAssignmentRepo) ListAssignedJobIDs(ctx context.Context, userID, companyID string) ([]string, error) {
	query := `
		SELECT ja.job_id FROM job_assignments ja
		JOIN jobs j ON j.id = ja.job_id
		WHERE ja.user_id = $1 AND j.company_id = $2`
	rows, err := r.q.Query(ctx, query, userID, companyID)
	if err != nil {
		return nil, fmt.Errorf("list assigned job ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan assigned job id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanJobAssignment(row rowScanner) (*entity.JobAssignment, error) {
	var a entity.JobAssignment
	err := row.Scan(
		&a.ID, &a.JobID, &a.UserID,
		&a.Permissions.CanManageUsers, &a.Permissions.CanViewAllSpecialties,
		&a.Permissions.CanViewPrices, &a.Permissions.CanEditPrices, &a.Permissions.CanAudit,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
