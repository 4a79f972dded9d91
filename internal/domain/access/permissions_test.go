package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Cotizador-api/internal/domain/access"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

func boolPtr(b bool) *bool { return &b }

// ──────────────────────────────────────────────────────────────────────────────
// Cap
// ──────────────────────────────────────────────────────────────────────────────

// Cap es AND flag a flag: se verifican las cuatro combinaciones por cada
// uno de los cinco flags.
func TestCap_ANDPorFlag(t *testing.T) {
	cases := []struct{ job, company, want bool }{
		{false, false, false},
		{false, true, false},
		{true, false, false},
		{true, true, true},
	}
	for _, tc := range cases {
		job := entity.PermissionSet{
			CanManageUsers:        tc.job,
			CanViewAllSpecialties: tc.job,
			CanViewPrices:         tc.job,
			CanEditPrices:         tc.job,
			CanAudit:              tc.job,
		}
		company := entity.PermissionSet{
			CanManageUsers:        tc.company,
			CanViewAllSpecialties: tc.company,
			CanViewPrices:         tc.company,
			CanEditPrices:         tc.company,
			CanAudit:              tc.company,
		}
		got := access.Cap(job, company)
		assert.Equal(t, tc.want, got.CanManageUsers, "canManageUsers job=%v company=%v", tc.job, tc.company)
		assert.Equal(t, tc.want, got.CanViewAllSpecialties, "canViewAllSpecialties job=%v company=%v", tc.job, tc.company)
		assert.Equal(t, tc.want, got.CanViewPrices, "canViewPrices job=%v company=%v", tc.job, tc.company)
		assert.Equal(t, tc.want, got.CanEditPrices, "canEditPrices job=%v company=%v", tc.job, tc.company)
		assert.Equal(t, tc.want, got.CanAudit, "canAudit job=%v company=%v", tc.job, tc.company)
	}
}

// Cap no mezcla flags entre sí: cada flag se calcula de forma independiente.
func TestCap_FlagsIndependientes(t *testing.T) {
	job := entity.PermissionSet{CanViewPrices: true, CanAudit: true}
	company := entity.PermissionSet{CanViewPrices: true, CanEditPrices: true}

	got := access.Cap(job, company)
	assert.True(t, got.CanViewPrices, "ambos lados otorgan canViewPrices")
	assert.False(t, got.CanAudit, "la empresa no otorga canAudit")
	assert.False(t, got.CanEditPrices, "la asignación no otorga canEditPrices")
	assert.False(t, got.CanManageUsers)
}

// Propiedades algebraicas: identidad con AllPermissions, aniquilación con el
// conjunto vacío e idempotencia al recortar dos veces con el mismo techo.
func TestCap_Propiedades(t *testing.T) {
	p := entity.PermissionSet{CanViewPrices: true, CanEditPrices: true, CanAudit: true}

	assert.Equal(t, p, access.Cap(p, entity.AllPermissions), "AllPermissions es identidad")
	assert.Equal(t, entity.PermissionSet{}, access.Cap(p, entity.PermissionSet{}), "techo vacío aniquila")

	ceiling := entity.PermissionSet{CanViewPrices: true, CanAudit: true}
	once := access.Cap(p, ceiling)
	assert.Equal(t, once, access.Cap(once, ceiling), "Cap es idempotente con el mismo techo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Merge
// ──────────────────────────────────────────────────────────────────────────────

// Merge aplica solo los campos no-nil del patch; los nil conservan la base.
func TestMerge_PatchParcial(t *testing.T) {
	base := entity.PermissionSet{CanViewPrices: true, CanAudit: true}
	patch := access.PermissionPatch{
		CanViewPrices: boolPtr(false),
		CanEditPrices: boolPtr(true),
	}

	got := access.Merge(base, patch)
	assert.False(t, got.CanViewPrices, "el patch la apagó")
	assert.True(t, got.CanEditPrices, "el patch la encendió")
	assert.True(t, got.CanAudit, "sin campo en el patch: conserva la base")
	assert.False(t, got.CanManageUsers, "sin campo en el patch: conserva la base")

	assert.True(t, base.CanViewPrices, "la base no se muta")
}

// Un patch vacío deja la base intacta.
func TestMerge_PatchVacio(t *testing.T) {
	base := entity.DefaultEmployeePermissions
	assert.Equal(t, base, access.Merge(base, access.PermissionPatch{}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Actor
// ──────────────────────────────────────────────────────────────────────────────

func TestActor_Effective(t *testing.T) {
	actor := access.Actor{
		Role:    entity.RoleUser,
		Ceiling: entity.PermissionSet{CanViewPrices: true},
	}
	local := entity.PermissionSet{CanViewPrices: true, CanEditPrices: true}

	got := actor.Effective(local)
	assert.True(t, got.CanViewPrices)
	assert.False(t, got.CanEditPrices, "el techo no otorga canEditPrices")
}

func TestActor_CanManageMembers(t *testing.T) {
	cases := []struct {
		name    string
		role    entity.Role
		ceiling entity.PermissionSet
		want    bool
	}{
		{"OWNER siempre", entity.RoleOwner, entity.PermissionSet{}, true},
		{"ADMIN siempre", entity.RoleAdmin, entity.PermissionSet{}, true},
		{"USER sin flag", entity.RoleUser, entity.PermissionSet{}, false},
		{"USER con canManageUsers", entity.RoleUser, entity.PermissionSet{CanManageUsers: true}, true},
		{"SUPPORT nunca, aun con flag", entity.RoleSupport, entity.AllPermissions, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actor := access.Actor{Role: tc.role, Ceiling: tc.ceiling}
			assert.Equal(t, tc.want, actor.CanManageMembers())
		})
	}
}
