package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizador-api/internal/domain/access"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

// Escenario: empresa de carpintería con tres trabajos.
//
//	J1 → especialidad "stairs", DRAFT
//	J2 → especialidad "decks", SENT
//	J3 → sin especialidad, DONE (solo visible por asignación directa)
func seedJobs() []*entity.Job {
	return []*entity.Job{
		{ID: "j1", CompanyID: "c1", SpecialtyID: strPtr("stairs"), Status: entity.JobStatusDraft},
		{ID: "j2", CompanyID: "c1", SpecialtyID: strPtr("decks"), Status: entity.JobStatusSent},
		{ID: "j3", CompanyID: "c1", SpecialtyID: nil, Status: entity.JobStatusDone},
	}
}

func jobIDs(jobs []*entity.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func TestVisibleJobs_Support_NoVeNada(t *testing.T) {
	got := access.VisibleJobs(entity.RoleSupport, seedJobs(), []string{"j1", "j2", "j3"}, []string{"stairs", "decks"})
	assert.Empty(t, got, "SUPPORT no ve trabajos bajo ninguna condición")
}

func TestVisibleJobs_OwnerYAdmin_VenTodo(t *testing.T) {
	for _, role := range []entity.Role{entity.RoleOwner, entity.RoleAdmin} {
		got := access.VisibleJobs(role, seedJobs(), nil, nil)
		assert.Equal(t, []string{"j1", "j2", "j3"}, jobIDs(got), "rol %s ve todos los trabajos", role)
	}
}

// ADMIN ve todos los trabajos aunque no tenga canViewAllSpecialties: el flag
// amplía el catálogo, no la visibilidad de trabajos.
func TestVisibleJobs_AdminSinFlag_SigueViendoTodo(t *testing.T) {
	got := access.VisibleJobs(entity.RoleAdmin, seedJobs(), nil, []string{"stairs"})
	assert.Len(t, got, 3)
}

// USER ve la unión de asignaciones directas y especialidades permitidas; J3
// (sin especialidad) solo entra por asignación directa.
func TestVisibleJobs_User_UnionAsignadoYEspecialidad(t *testing.T) {
	jobs := seedJobs()

	// Solo especialidad stairs: ve J1.
	got := access.VisibleJobs(entity.RoleUser, jobs, nil, []string{"stairs"})
	assert.Equal(t, []string{"j1"}, jobIDs(got))

	// Especialidad stairs + asignación directa a J3: ve J1 y J3.
	got = access.VisibleJobs(entity.RoleUser, jobs, []string{"j3"}, []string{"stairs"})
	assert.Equal(t, []string{"j1", "j3"}, jobIDs(got))

	// Sin asignaciones ni especialidades: no ve nada.
	got = access.VisibleJobs(entity.RoleUser, jobs, nil, nil)
	assert.Empty(t, got)
}

// Un trabajo sin especialidad nunca entra por el conjunto de especialidades,
// ni siquiera con todas las del oficio.
func TestVisibleJobs_SinEspecialidad_SoloPorAsignacion(t *testing.T) {
	jobs := seedJobs()
	got := access.VisibleJobs(entity.RoleUser, jobs, nil, []string{"stairs", "decks", "doors"})
	assert.Equal(t, []string{"j1", "j2"}, jobIDs(got), "j3 no entra sin asignación directa")
}

func TestVisibleJobs_RolDesconocido_FallaCerrado(t *testing.T) {
	got := access.VisibleJobs(entity.Role("GHOST"), seedJobs(), []string{"j1"}, []string{"stairs"})
	assert.Empty(t, got)
}

func TestCanSeeJob(t *testing.T) {
	job := &entity.Job{ID: "j1", SpecialtyID: strPtr("stairs")}
	noSpec := &entity.Job{ID: "j3", SpecialtyID: nil}

	assert.False(t, access.CanSeeJob(entity.RoleSupport, job, true, []string{"stairs"}))
	assert.True(t, access.CanSeeJob(entity.RoleOwner, job, false, nil))
	assert.True(t, access.CanSeeJob(entity.RoleAdmin, noSpec, false, nil))
	assert.True(t, access.CanSeeJob(entity.RoleUser, job, false, []string{"stairs"}))
	assert.False(t, access.CanSeeJob(entity.RoleUser, job, false, []string{"decks"}))
	assert.True(t, access.CanSeeJob(entity.RoleUser, noSpec, true, nil))
	assert.False(t, access.CanSeeJob(entity.RoleUser, noSpec, false, []string{"stairs", "decks"}))
	assert.False(t, access.CanSeeJob(entity.RoleUser, nil, true, nil), "trabajo nil nunca es visible")
}

func TestCountByStatus(t *testing.T) {
	jobs := []*entity.Job{
		{Status: entity.JobStatusDraft},
		{Status: entity.JobStatusDraft},
		{Status: entity.JobStatusSent},
		{Status: entity.JobStatusApproved},
		{Status: entity.JobStatusScheduled},
		{Status: entity.JobStatusInProgress},
		{Status: entity.JobStatusDone},
	}
	got := access.CountByStatus(jobs)
	require.Equal(t, 7, got.Total)
	assert.Equal(t, 2, got.Draft)
	assert.Equal(t, 1, got.Sent)
	assert.Equal(t, 1, got.Approved)
	assert.Equal(t, 1, got.Scheduled)
	assert.Equal(t, 1, got.InProgress)
	assert.Equal(t, 1, got.Done)
}

// El agregado se calcula sobre el conjunto YA filtrado: para un USER que solo
// ve stairs, los conteos no delatan los demás trabajos.
func TestCountByStatus_SobreConjuntoFiltrado(t *testing.T) {
	visible := access.VisibleJobs(entity.RoleUser, seedJobs(), nil, []string{"stairs"})
	got := access.CountByStatus(visible)
	assert.Equal(t, 1, got.Total)
	assert.Equal(t, 1, got.Draft)
	assert.Equal(t, 0, got.Done)
}
