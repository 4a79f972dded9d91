// Package access implementa el núcleo de autorización del sistema: techo de
// permisos de empresa, resolución de especialidades visibles, filtrado de
// trabajos y redacción de precios. Todas las funciones son puras y totales
// sobre datos ya consultados; ante datos desconocidos degradan al resultado
// más restrictivo ("fail closed"), nunca retornan error.
package access

import "github.com/jhoicas/Cotizador-api/internal/domain/entity"

// Cap calcula el permiso efectivo de un trabajo: AND flag a flag entre el
// permiso de la asignación y el techo de la empresa. Un trabajo nunca puede
// otorgar más de lo que la empresa permite, así un administrador puede
// recortar acceso a toda la empresa sin editar cada asignación.
//
// Propiedades: Cap(p, AllPermissions) == p; Cap(p, PermissionSet{}) == zero;
// Cap(Cap(p, c), c) == Cap(p, c).
func Cap(job, company entity.PermissionSet) entity.PermissionSet {
	return entity.PermissionSet{
		CanManageUsers:        job.CanManageUsers && company.CanManageUsers,
		CanViewAllSpecialties: job.CanViewAllSpecialties && company.CanViewAllSpecialties,
		CanViewPrices:         job.CanViewPrices && company.CanViewPrices,
		CanEditPrices:         job.CanEditPrices && company.CanEditPrices,
		CanAudit:              job.CanAudit && company.CanAudit,
	}
}

// PermissionPatch actualización parcial de un PermissionSet: solo los campos
// no-nil se aplican. El conjunto de campos es fijo y se valida en compilación;
// no se aceptan claves arbitrarias.
type PermissionPatch struct {
	CanManageUsers        *bool `json:"canManageUsers"`
	CanViewAllSpecialties *bool `json:"canViewAllSpecialties"`
	CanViewPrices         *bool `json:"canViewPrices"`
	CanEditPrices         *bool `json:"canEditPrices"`
	CanAudit              *bool `json:"canAudit"`
}

// Merge aplica el patch sobre base y devuelve el resultado. base no se muta.
func Merge(base entity.PermissionSet, patch PermissionPatch) entity.PermissionSet {
	out := base
	if patch.CanManageUsers != nil {
		out.CanManageUsers = *patch.CanManageUsers
	}
	if patch.CanViewAllSpecialties != nil {
		out.CanViewAllSpecialties = *patch.CanViewAllSpecialties
	}
	if patch.CanViewPrices != nil {
		out.CanViewPrices = *patch.CanViewPrices
	}
	if patch.CanEditPrices != nil {
		out.CanEditPrices = *patch.CanEditPrices
	}
	if patch.CanAudit != nil {
		out.CanAudit = *patch.CanAudit
	}
	return out
}

// Actor es el contexto de autorización resuelto para un request: identidad,
// empresa, rol y techo de permisos. Se pasa explícitamente a cada caso de
// uso; nunca vive en estado global ni de sesión.
type Actor struct {
	UserID    string
	CompanyID string
	Role      entity.Role
	Ceiling   entity.PermissionSet
}

// Effective devuelve el permiso efectivo del actor sobre un trabajo dado el
// permiso local de su asignación (AND con el techo de la empresa).
func (a Actor) Effective(jobPerms entity.PermissionSet) entity.PermissionSet {
	return Cap(jobPerms, a.Ceiling)
}

// CanManageMembers informa si el actor puede mutar membresías, permisos y
// asignaciones de especialidad: canManageUsers o bypass OWNER/ADMIN.
func (a Actor) CanManageMembers() bool {
	if a.Role == entity.RoleSupport {
		return false
	}
	return a.Role.CanManageCompany() || a.Ceiling.CanManageUsers
}
