package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementación del puerto ServiceRepository sobre PostgreSQL.
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

const serviceCols = `
	id, company_id, specialty_id, name, description, unit, unit_price, active, created_at, updated_at`

// Create persiste un servicio del catálogo de la empresa.
func (r *ServiceRepo) Create(ctx context.Context, s *entity.Service) error {
	query := `
		INSERT INTO services (` + serviceCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.CompanyID, s.SpecialtyID, s.Name, s.Description, s.Unit,
		s.UnitPrice, s.Active, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio por ID.
func (r *ServiceRepo) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	query := `SELECT ` + serviceCols + ` FROM services WHERE id = $1`
	var s entity.Service
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.CompanyID, &s.SpecialtyID, &s.Name, &s.Description, &s.Unit,
		&s.UnitPrice, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}

// Update actualiza un servicio existente.
func (r *ServiceRepo) Update(ctx context.Context, s *entity.Service) error {
	query := `
		UPDATE services SET specialty_id = $2, name = $3, description = $4,
			unit = $5, unit_price = $6, active = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.SpecialtyID, s.Name, s.Description, s.Unit,
		s.UnitPrice, s.Active, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// Delete elimina un servicio del catálogo.
func (r *ServiceRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

// ListByCompanyAndSpecialties lista los servicios de la empresa cuya
// especialidad está en specialtyIDs. Conjunto vacío → lista vacía sin tocar
// la base.
func (r *ServiceRepo) ListByCompanyAndSpecialties(ctx context.Context, companyID string, specialtyIDs []string, limit, offset int) ([]*entity.Service, error) {
	if len(specialtyIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT ` + serviceCols + ` FROM services
		WHERE company_id = $1 AND specialty_id = ANY($2)
		ORDER BY name ASC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, companyID, specialtyIDs, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var list []*entity.Service
	for rows.Next() {
		var s entity.Service
		if err := rows.Scan(
			&s.ID, &s.CompanyID, &s.SpecialtyID, &s.Name, &s.Description, &s.Unit,
			&s.UnitPrice, &s.Active, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
