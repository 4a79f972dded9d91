package access

import "github.com/jhoicas/Cotizador-api/internal/domain/entity"

// AllowedSpecialties resuelve el conjunto de especialidades visibles para un
// miembro, en este orden:
//
//  1. SUPPORT → conjunto vacío, sin más comprobaciones (override absoluto).
//  2. OWNER → todas las especialidades del oficio de la empresa.
//  3. ADMIN con canViewAllSpecialties → todas las del oficio; si no, cae al
//     paso 4 (la misma restricción que un USER).
//  4. El conjunto explícito de asignaciones — puede ser vacío, lo que
//     significa que el usuario no ve nada hasta que lo asignen.
//
// tradeSpecialtyIDs son todas las especialidades del oficio de la empresa y
// assignedIDs las asignaciones explícitas (user, company). Un rol desconocido
// resuelve a vacío.
func AllowedSpecialties(role entity.Role, ceiling entity.PermissionSet, tradeSpecialtyIDs, assignedIDs []string) []string {
	switch role {
	case entity.RoleSupport:
		return nil
	case entity.RoleOwner:
		return append([]string(nil), tradeSpecialtyIDs...)
	case entity.RoleAdmin:
		if ceiling.CanViewAllSpecialties {
			return append([]string(nil), tradeSpecialtyIDs...)
		}
		return append([]string(nil), assignedIDs...)
	case entity.RoleUser:
		return append([]string(nil), assignedIDs...)
	default:
		// Rol desconocido: fail closed.
		return nil
	}
}

// NeedsOnboarding informa si el usuario quedó sin especialidades visibles,
// el estado que dispara el flujo de selección de especialidades.
func NeedsOnboarding(allowedSpecialtyIDs []string) bool {
	return len(allowedSpecialtyIDs) == 0
}

// toSet convierte un slice de ids a set para pruebas de pertenencia.
func toSet(ids []string) map[string]bool {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
