package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

var _ repository.JobItemRepository = (*JobItemRepo)(nil)

// JobItemRepo implementación del puerto JobItemRepository sobre PostgreSQL.
type JobItemRepo struct {
	q Querier
}

// NewJobItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewJobItemRepository(q Querier) *JobItemRepo {
	return &JobItemRepo{q: q}
}

const jobItemCols = `
	id, job_id, service_id, description, quantity, unit_price, line_total, created_at, updated_at`

// Create persiste una línea de cotización.
func (r *JobItemRepo) Create(ctx context.Context, it *entity.JobItem) error {
	query := `
		INSERT INTO job_items (` + jobItemCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		it.ID, it.JobID, it.ServiceID, it.Description,
		it.Quantity, it.UnitPrice, it.LineTotal,
		it.CreatedAt, it.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job item: %w", err)
	}
	return nil
}

// GetByID obtiene una línea por ID.
func (r *JobItemRepo) GetByID(ctx context.Context, id string) (*entity.JobItem, error) {
	query := `SELECT ` + jobItemCols + ` FROM job_items WHERE id = $1`
	var it entity.JobItem
	err := r.q.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.JobID, &it.ServiceID, &it.Description,
		&it.Quantity, &it.UnitPrice, &it.LineTotal,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job item: %w", err)
	}
	return &it, nil
}

// Update actualiza una línea existente.
func (r *JobItemRepo) Update(ctx context.Context, it *entity.JobItem) error {
	query := `
		UPDATE job_items SET description = $2, quantity = $3, unit_price = $4,
			line_total = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		it.ID, it.Description, it.Quantity, it.UnitPrice, it.LineTotal, it.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update job item: %w", err)
	}
	return nil
}

// Delete elimina una línea.
func (r *JobItemRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM job_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job item: %w", err)
	}
	return nil
}

// ListByJob lista las líneas de un trabajo en orden de creación.
func (r *JobItemRepo) ListByJob(ctx context.Context, jobID string) ([]*entity.JobItem, error) {
	query := `SELECT ` + jobItemCols + ` FROM job_items WHERE job_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("list job items: %w", err)
	}
	defer rows.Close()

	var list []*entity.JobItem
	for rows.Next() {
		var it entity.JobItem
		if err := rows.Scan(
			&it.ID, &it.JobID, &it.ServiceID, &it.Description,
			&it.Quantity, &it.UnitPrice, &it.LineTotal,
			&it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan job item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
