package access

import "github.com/jhoicas/Cotizador-api/internal/domain/entity"

// JobStats conteo de trabajos visibles por estado. Se recalcula por request
// sobre el conjunto ya filtrado; no hay caché.
type JobStats struct {
	Draft      int `json:"draft"`
	Sent       int `json:"sent"`
	Approved   int `json:"approved"`
	Scheduled  int `json:"scheduled"`
	InProgress int `json:"in_progress"`
	Done       int `json:"done"`
	Total      int `json:"total"`
}

// VisibleJobs filtra los trabajos de la empresa según el rol del espectador:
//
//   - SUPPORT → nada (override absoluto).
//   - OWNER y ADMIN → todos los trabajos de la empresa. Para ADMIN esto es
//     incondicional: canViewAllSpecialties solo amplía la visibilidad del
//     catálogo, no la de trabajos (asimetría heredada que se conserva).
//   - USER → unión de (a) trabajos asignados directamente y (b) trabajos
//     cuya especialidad está en su conjunto permitido. Un trabajo sin
//     especialidad solo entra por asignación directa.
//
// jobs debe venir ya acotado a una sola empresa; assignedJobIDs son las
// asignaciones directas del usuario y allowedSpecialtyIDs el resultado de
// AllowedSpecialties. Devuelve un slice nuevo, nunca muta jobs.
func VisibleJobs(role entity.Role, jobs []*entity.Job, assignedJobIDs, allowedSpecialtyIDs []string) []*entity.Job {
	switch role {
	case entity.RoleSupport:
		return nil
	case entity.RoleOwner, entity.RoleAdmin:
		return append([]*entity.Job(nil), jobs...)
	case entity.RoleUser:
		assigned := toSet(assignedJobIDs)
		allowed := toSet(allowedSpecialtyIDs)
		var out []*entity.Job
		for _, j := range jobs {
			if assigned[j.ID] {
				out = append(out, j)
				continue
			}
			if j.SpecialtyID != nil && allowed[*j.SpecialtyID] {
				out = append(out, j)
			}
		}
		return out
	default:
		return nil
	}
}

// CanSeeJob decide visibilidad de un único trabajo con las mismas reglas de
// VisibleJobs (para el detalle: un trabajo no visible responde como no
// encontrado, nunca revela su existencia).
func CanSeeJob(role entity.Role, job *entity.Job, assigned bool, allowedSpecialtyIDs []string) bool {
	if job == nil {
		return false
	}
	switch role {
	case entity.RoleSupport:
		return false
	case entity.RoleOwner, entity.RoleAdmin:
		return true
	case entity.RoleUser:
		if assigned {
			return true
		}
		return job.SpecialtyID != nil && toSet(allowedSpecialtyIDs)[*job.SpecialtyID]
	default:
		return false
	}
}

// CountByStatus reduce el conjunto visible a conteos por estado.
func CountByStatus(jobs []*entity.Job) JobStats {
	var s JobStats
	for _, j := range jobs {
		switch j.Status {
		case entity.JobStatusDraft:
			s.Draft++
		case entity.JobStatusSent:
			s.Sent++
		case entity.JobStatusApproved:
			s.Approved++
		case entity.JobStatusScheduled:
			s.Scheduled++
		case entity.JobStatusInProgress:
			s.InProgress++
		case entity.JobStatusDone:
			s.Done++
		}
		s.Total++
	}
	return s
}
