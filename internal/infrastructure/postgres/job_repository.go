package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

var _ repository.JobRepository = (*JobRepo)(nil)

// JobRepo implementación del puerto JobRepository sobre PostgreSQL.
type JobRepo struct {
	q Querier
}

// NewJobRepository construye el adaptador. Pasar pool o tx (Querier).
func NewJobRepository(q Querier) *JobRepo {
	return &JobRepo{q: q}
}

const jobCols = `
	id, company_id, trade_id, specialty_id, title, customer_name, customer_phone,
	customer_address, notes, status, created_by, created_at, updated_at`

// Create persiste un trabajo.
func (r *JobRepo) Create(ctx context.Context, j *entity.Job) error {
	query := `
		INSERT INTO jobs (` + jobCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		j.ID, j.CompanyID, j.TradeID, j.SpecialtyID, j.Title, j.CustomerName,
		j.CustomerPhone, j.CustomerAddress, j.Notes, j.Status, j.CreatedBy,
		j.CreatedAt, j.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

// GetByID obtiene un trabajo por ID.
func (r *JobRepo) GetByID(ctx context.Context, id string) (*entity.Job, error) {
	query := `SELECT ` + jobCols + ` FROM jobs WHERE id = $1`
	j, err := scanJob(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return j, nil
}

// Update actualiza un trabajo existente.
func (r *JobRepo) Update(ctx context.Context, j *entity.Job) error {
	query := `
		UPDATE jobs SET specialty_id = $2, title = $3, customer_name = $4,
			customer_phone = $5, customer_address = $6, notes = $7, status = $8,
			updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		j.ID, j.SpecialtyID, j.Title, j.CustomerName,
		j.CustomerPhone, j.CustomerAddress, j.Notes, j.Status, j.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

// ListByCompany lista todos los trabajos de la empresa, más recientes
// primero. El filtro de visibilidad por actor se aplica en dominio.
func (r *JobRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Job, error) {
	query := `SELECT ` + jobCols + ` FROM jobs WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var list []*entity.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		list = append(list, j)
	}
	return list, rows.Err()
}

func scanJob(row rowScanner) (*entity.Job, error) {
	var j entity.Job
	err := row.Scan(
		&j.ID, &j.CompanyID, &j.TradeID, &j.SpecialtyID, &j.Title, &j.CustomerName,
		&j.CustomerPhone, &j.CustomerAddress, &j.Notes, &j.Status, &j.CreatedBy,
		&j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}
