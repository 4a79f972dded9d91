package repository

import (
	"context"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// JobRepository puerto de persistencia para trabajos.
type JobRepository interface {
	Create(ctx context.Context, j *entity.Job) error
	GetByID(ctx context.Context, id string) (*entity.Job, error)
	Update(ctx context.Context, j *entity.Job) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Job, error)
}

// JobItemRepository puerto de persistencia para las líneas de cotización.
type JobItemRepository interface {
	Create(ctx context.Context, it *entity.JobItem) error
	GetByID(ctx context.Context, id string) (*entity.JobItem, error)
	Update(ctx context.Context, it *entity.JobItem) error
	Delete(ctx context.Context, id string) error
	ListByJob(ctx context.Context, jobID string) ([]*entity.JobItem, error)
}

// JobAssignmentRepository puerto de persistencia para los trabajos
// compartidos con empleados (permiso local al trabajo incluido).
type JobAssignmentRepository interface {
	Upsert(ctx context.Context, a *entity.JobAssignment) error
	Get(ctx context.Context, jobID, userID string) (*entity.JobAssignment, error)
	ListByJob(ctx context.Context, jobID string) ([]*entity.JobAssignment, error)
	// ListAssignedJobIDs devuelve los ids de trabajos de la empresa
	// asignados directamente al usuario.
	ListAssignedJobIDs(ctx context.Context, userID, companyID string) ([]string, error)
}
