package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/application/usecase"
	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/access"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// jobFixture empresa de carpintería con tres especialidades, cuatro miembros
// y tres trabajos. Es el escenario base de todos los tests de trabajos.
//
//	owner  OWNER   techo completo
//	ana    USER    asignada a escaleras, techo canViewPrices
//	bob    USER    sin especialidades, techo sin canViewPrices
//	sup    SUPPORT techo completo (irrelevante: el rol corta antes)
//
//	j1 → escaleras, j2 → decks, j3 → sin especialidad
type jobFixture struct {
	uc          *usecase.JobUseCase
	accessSvc   *usecase.AccessService
	jobs        *fakeJobRepo
	items       *fakeJobItemRepo
	assignments *fakeJobAssignmentRepo
	services    *fakeServiceRepo
	memberships *fakeMembershipRepo
	audits      *fakeAuditRepo
}

func newJobFixture(t *testing.T) *jobFixture {
	t.Helper()
	now := time.Now()

	trades := newFakeTradeRepo()
	trades.trades["t1"] = &entity.Trade{ID: "t1", Name: "Carpintería", Slug: "carpentry"}
	trades.specialties["t1"] = []*entity.Specialty{
		{ID: "sp-stairs", TradeID: "t1", Name: "Escaleras", Slug: "stairs"},
		{ID: "sp-decks", TradeID: "t1", Name: "Decks", Slug: "decks"},
		{ID: "sp-doors", TradeID: "t1", Name: "Puertas", Slug: "doors"},
	}

	companies := newFakeCompanyRepo()
	companies.companies["c1"] = &entity.Company{ID: "c1", Name: "Maderas Sur", TradeID: "t1", Status: "active"}

	memberships := newFakeMembershipRepo()
	memberships.members[key("owner", "c1")] = &entity.Membership{
		ID: "m-owner", UserID: "owner", CompanyID: "c1",
		Role: entity.RoleOwner, Active: true, Permissions: entity.AllPermissions,
	}
	memberships.members[key("ana", "c1")] = &entity.Membership{
		ID: "m-ana", UserID: "ana", CompanyID: "c1",
		Role: entity.RoleUser, Active: true,
		Permissions: entity.PermissionSet{CanViewPrices: true},
	}
	memberships.members[key("bob", "c1")] = &entity.Membership{
		ID: "m-bob", UserID: "bob", CompanyID: "c1",
		Role: entity.RoleUser, Active: true,
		Permissions: entity.PermissionSet{},
	}
	memberships.members[key("sup", "c1")] = &entity.Membership{
		ID: "m-sup", UserID: "sup", CompanyID: "c1",
		Role: entity.RoleSupport, Active: true, Permissions: entity.AllPermissions,
	}
	memberships.specialties[key("ana", "c1")] = []string{"sp-stairs"}

	jobs := newFakeJobRepo()
	stairs, decks := "sp-stairs", "sp-decks"
	seed := []*entity.Job{
		{ID: "j1", CompanyID: "c1", TradeID: "t1", SpecialtyID: &stairs, Title: "Escalera roble", CustomerName: "Laura", Status: entity.JobStatusDraft, CreatedBy: "owner", CreatedAt: now, UpdatedAt: now},
		{ID: "j2", CompanyID: "c1", TradeID: "t1", SpecialtyID: &decks, Title: "Deck patio", CustomerName: "Marcos", Status: entity.JobStatusSent, CreatedBy: "owner", CreatedAt: now, UpdatedAt: now},
		{ID: "j3", CompanyID: "c1", TradeID: "t1", SpecialtyID: nil, Title: "Visita inicial", CustomerName: "Rita", Status: entity.JobStatusDone, CreatedBy: "owner", CreatedAt: now, UpdatedAt: now},
	}
	for _, j := range seed {
		require.NoError(t, jobs.Create(context.Background(), j))
	}

	items := newFakeJobItemRepo()
	services := newFakeServiceRepo()
	assignments := newFakeJobAssignmentRepo(jobs)
	audits := newFakeAuditRepo()

	accessSvc := usecase.NewAccessService(memberships, companies, trades)
	uc := usecase.NewJobUseCase(jobs, items, assignments, services, memberships, companies, audits, accessSvc)
	return &jobFixture{
		uc:          uc,
		accessSvc:   accessSvc,
		jobs:        jobs,
		items:       items,
		assignments: assignments,
		services:    services,
		memberships: memberships,
		audits:      audits,
	}
}

// actor resuelve el actor contra la membresía real del fixture, igual que el
// middleware en producción.
func (f *jobFixture) actor(t *testing.T, userID string) access.Actor {
	t.Helper()
	actor, err := f.accessSvc.Resolve(context.Background(), userID, "c1")
	require.NoError(t, err)
	return actor
}

func listIDs(items []dto.JobResponse) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func TestJobList_VisibilidadPorRol(t *testing.T) {
	f := newJobFixture(t)
	ctx := context.Background()

	// OWNER ve todo, incluido el trabajo sin especialidad.
	out, err := f.uc.List(ctx, f.actor(t, "owner"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"j1", "j2", "j3"}, listIDs(out.Items))
	assert.Equal(t, 3, out.Stats.Total)
	assert.Equal(t, 1, out.Stats.Draft)
	assert.Equal(t, 1, out.Stats.Sent)
	assert.Equal(t, 1, out.Stats.Done)

	// USER asignada a escaleras: solo j1.
	out, err = f.uc.List(ctx, f.actor(t, "ana"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"j1"}, listIDs(out.Items))
	assert.Equal(t, 1, out.Stats.Total)

	// USER sin especialidades ni asignaciones: nada.
	out, err = f.uc.List(ctx, f.actor(t, "bob"))
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, 0, out.Stats.Total)

	// SUPPORT no ve trabajos aunque su techo sea completo.
	out, err = f.uc.List(ctx, f.actor(t, "sup"))
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}

func TestJobList_AsignacionDirectaSumaAlConjunto(t *testing.T) {
	f := newJobFixture(t)
	ctx := context.Background()

	// El owner comparte j3 (sin especialidad) con ana. j3 entra al conjunto
	// visible de ana solo por la asignación directa.
	_, err := f.uc.Share(ctx, f.actor(t, "owner"), "j3", dto.ShareJobRequest{UserID: "ana"})
	require.NoError(t, err)

	out, err := f.uc.List(ctx, f.actor(t, "ana"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"j1", "j3"}, listIDs(out.Items))
}

func TestJobDetail_NoVisibleRespondeNotFound(t *testing.T) {
	f := newJobFixture(t)
	ctx := context.Background()

	// Para bob, j1 no existe: mismo error que un id inventado, sin filtrar
	// la existencia del trabajo.
	_, err := f.uc.Detail(ctx, f.actor(t, "bob"), "j1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.Detail(ctx, f.actor(t, "bob"), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestJobDetail_RedaccionSegunPermisoEfectivo(t *testing.T) {
	f := newJobFixture(t)
	ctx := context.Background()
	owner := f.actor(t, "owner")

	price := "120.00"
	_, err := f.uc.AddItem(ctx, owner, "j1", dto.CreateJobItemRequest{
		Description: "Peldaños de roble",
		Quantity:    "15",
		UnitPrice:   &price,
	})
	require.NoError(t, err)

	// Con canViewPrices efectivo los montos viajan completos.
	detail, err := f.uc.Detail(ctx, f.actor(t, "ana"), "j1")
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)
	require.NotNil(t, detail.Items[0].UnitPrice)
	assert.Equal(t, "120.00", *detail.Items[0].UnitPrice)
	require.NotNil(t, detail.Total)
	assert.Equal(t, "1800.00", *detail.Total)

	// El owner comparte j1 con bob; el techo de bob no tiene canViewPrices,
	// así que su permiso efectivo redacta los montos a null.
	canEdit := true
	_, err = f.uc.Share(ctx, owner, "j1", dto.ShareJobRequest{
		UserID:      "bob",
		Permissions: &access.PermissionPatch{CanEditPrices: &canEdit},
	})
	require.NoError(t, err)

	detail, err = f.uc.Detail(ctx, f.actor(t, "bob"), "j1")
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)
	assert.Nil(t, detail.Items[0].UnitPrice)
	assert.Nil(t, detail.Items[0].LineTotal)
	assert.Nil(t, detail.Total)
	// La cantidad no es un precio: se conserva.
	assert.Equal(t, "15", detail.Items[0].Quantity)
	assert.False(t, detail.Permissions.CanViewPrices)
}

func TestAddItem_ExigeEditarPrecios(t *testing.T) {
	f := newJobFixture(t)
	ctx := context.Background()

	// ana ve j1 pero su techo no incluye canEditPrices.
	price := "50.00"
	_, err := f.uc.AddItem(ctx, f.actor(t, "ana"), "j1", dto.CreateJobItemRequest{
		Description: "Barniz",
		Quantity:    "1",
		UnitPrice:   &price,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAddItem_PrecioYDescripcionDesdeElCatalogo(t *testing.T) {
	f := newJobFixture(t)
	ctx := context.Background()
	owner := f.actor(t, "owner")

	require.NoError(t, f.services.Create(ctx, &entity.Service{
		ID: "svc-1", CompanyID: "c1", SpecialtyID: "sp-stairs",
		Name: "Instalación de baranda", Unit: "ml",
		UnitPrice: mustDecimal(t, "80.50"), Active: true,
	}))

	svcID := "svc-1"
	item, err := f.uc.AddItem(ctx, owner, "j1", dto.CreateJobItemRequest{
		ServiceID: &svcID,
		Quantity:  "4",
	})
	require.NoError(t, err)
	assert.Equal(t, "Instalación de baranda", item.Description)
	require.NotNil(t, item.UnitPrice)
	assert.Equal(t, "80.50", *item.UnitPrice)
	require.NotNil(t, item.LineTotal)
	assert.Equal(t, "322.00", *item.LineTotal)
}

func TestAddItem_ServicioDeOtraEmpresaEsNotFound(t *testing.T) {
	f := newJobFixture(t)
	ctx := context.Background()

	require.NoError(t, f.services.Create(ctx, &entity.Service{
		ID: "svc-ajeno", CompanyID: "c2", SpecialtyID: "sp-stairs",
		Name: "Servicio ajeno", UnitPrice: mustDecimal(t, "10.00"), Active: true,
	}))

	svcID := "svc-ajeno"
	_, err := f.uc.AddItem(ctx, f.actor(t, "owner"), "j1", dto.CreateJobItemRequest{
		ServiceID: &svcID,
		Quantity:  "1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddItem_SinPrecioNiServicio(t *testing.T) {
	f := newJobFixture(t)

	_, err := f.uc.AddItem(context.Background(), f.actor(t, "owner"), "j1", dto.CreateJobItemRequest{
		Description: "Línea sin monto",
		Quantity:    "1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestShare_Reglas(t *testing.T) {
	f := newJobFixture(t)
	ctx := context.Background()
	owner := f.actor(t, "owner")

	// Sin autoridad de gestión no se comparte.
	_, err := f.uc.Share(ctx, f.actor(t, "ana"), "j1", dto.ShareJobRequest{UserID: "bob"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Compartir con SUPPORT es una asignación muerta: entrada inválida.
	_, err = f.uc.Share(ctx, owner, "j1", dto.ShareJobRequest{UserID: "sup"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Miembro inexistente o inactivo: not found.
	_, err = f.uc.Share(ctx, owner, "j1", dto.ShareJobRequest{UserID: "fantasma"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShare_GuardaLoOtorgadoYDevuelveElEfectivo(t *testing.T) {
	f := newJobFixture(t)
	ctx := context.Background()

	canEdit := true
	resp, err := f.uc.Share(ctx, f.actor(t, "owner"), "j1", dto.ShareJobRequest{
		UserID:      "bob",
		Permissions: &access.PermissionPatch{CanEditPrices: &canEdit},
	})
	require.NoError(t, err)

	// Lo otorgado: línea base de empleado + el patch, sin techo aplicado.
	assert.True(t, resp.Permissions.CanViewPrices)
	assert.True(t, resp.Permissions.CanEditPrices)

	// Lo efectivo: el techo de bob (todo false) anula ambos flags. El techo
	// se aplica en cada lectura, no al persistir.
	assert.False(t, resp.Effective.CanViewPrices)
	assert.False(t, resp.Effective.CanEditPrices)

	// Queda rastro en auditoría.
	entries, err := f.audits.ListByCompany(ctx, "c1", 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.AuditActionJobShared, entries[0].Action)
	assert.Equal(t, "j1", entries[0].EntityID)
}

func TestUpdateStatus(t *testing.T) {
	f := newJobFixture(t)
	ctx := context.Background()
	owner := f.actor(t, "owner")

	resp, err := f.uc.UpdateStatus(ctx, owner, "j1", entity.JobStatusSent)
	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusSent, resp.Status)

	_, err = f.uc.UpdateStatus(ctx, owner, "j1", "CANCELADO")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestJobCreate_EspecialidadDebeSerVisible(t *testing.T) {
	f := newJobFixture(t)
	ctx := context.Background()
	ana := f.actor(t, "ana")

	// ana solo tiene escaleras asignadas: decks queda fuera de su conjunto.
	decks := "sp-decks"
	_, err := f.uc.Create(ctx, ana, dto.CreateJobRequest{
		Title: "Deck nuevo", CustomerName: "Pedro", SpecialtyID: &decks,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	stairs := "sp-stairs"
	resp, err := f.uc.Create(ctx, ana, dto.CreateJobRequest{
		Title: "Escalera caracol", CustomerName: "Pedro", SpecialtyID: &stairs,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusDraft, resp.Status)
	assert.Equal(t, "t1", resp.TradeID)
}

func TestJobCreate_SupportProhibido(t *testing.T) {
	f := newJobFixture(t)

	_, err := f.uc.Create(context.Background(), f.actor(t, "sup"), dto.CreateJobRequest{
		Title: "No debería existir", CustomerName: "X",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
