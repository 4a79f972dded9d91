package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/access"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// inviteTTL vigencia de una invitación de empleado.
const inviteTTL = 7 * 24 * time.Hour

// MemberUseCase gestión de miembros de la empresa: invitaciones, techo de
// permisos, asignaciones de especialidad, rol y baja. Toda mutación exige
// autoridad de gestión (canManageUsers o bypass OWNER/ADMIN) y deja rastro
// en el journal de auditoría.
type MemberUseCase struct {
	memberships repository.MembershipRepository
	users       repository.UserRepository
	companies   repository.CompanyRepository
	trades      repository.TradeRepository
	invites     repository.InviteRepository
	audits      repository.AuditRepository
}

// NewMemberUseCase construye el caso de uso con sus puertos.
func NewMemberUseCase(
	memberships repository.MembershipRepository,
	users repository.UserRepository,
	companies repository.CompanyRepository,
	trades repository.TradeRepository,
	invites repository.InviteRepository,
	audits repository.AuditRepository,
) *MemberUseCase {
	return &MemberUseCase{
		memberships: memberships,
		users:       users,
		companies:   companies,
		trades:      trades,
		invites:     invites,
		audits:      audits,
	}
}

// List lista los miembros de la empresa con permisos y especialidades.
func (uc *MemberUseCase) List(ctx context.Context, actor access.Actor, page dto.PageRequest) (*dto.MemberListResponse, error) {
	if !actor.CanManageMembers() {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	members, err := uc.memberships.ListByCompany(ctx, actor.CompanyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.MemberListResponse{
		Items: make([]dto.MemberResponse, 0, len(members)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, m := range members {
		user, err := uc.users.GetByID(ctx, m.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			continue
		}
		specialties, err := uc.memberships.ListAssignedSpecialtyIDs(ctx, m.UserID, m.CompanyID)
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, dto.MemberResponse{
			UserID:      m.UserID,
			Email:       user.Email,
			Name:        user.Name,
			Role:        string(m.Role),
			Active:      m.Active,
			Permissions: m.Permissions,
			Specialties: specialties,
			CreatedAt:   m.CreatedAt,
		})
	}
	return out, nil
}

// Invite crea una invitación de empleado. Si no se indican permisos se aplica
// la línea base de empleado; el rol OWNER no es invitable.
func (uc *MemberUseCase) Invite(ctx context.Context, actor access.Actor, in dto.InviteMemberRequest) (*dto.InviteMemberResponse, error) {
	if !actor.CanManageMembers() {
		return nil, domain.ErrForbidden
	}
	role, ok := entity.ParseRole(in.Role)
	if !ok || role == entity.RoleOwner {
		return nil, domain.ErrInvalidInput
	}
	perms := entity.DefaultEmployeePermissions
	if in.Permissions != nil {
		perms = access.Merge(perms, *in.Permissions)
	}
	now := time.Now()
	inv := &entity.InviteToken{
		ID:          uuid.New().String(),
		CompanyID:   actor.CompanyID,
		Email:       in.Email,
		Role:        role,
		Permissions: perms,
		Token:       uuid.New().String(),
		ExpiresAt:   now.Add(inviteTTL),
		CreatedAt:   now,
	}
	if err := uc.invites.Create(ctx, inv); err != nil {
		return nil, err
	}
	if err := uc.audit(ctx, actor, "invite", inv.ID, entity.AuditActionMemberInvited,
		fmt.Sprintf("email=%s role=%s", in.Email, role)); err != nil {
		return nil, err
	}
	return &dto.InviteMemberResponse{
		InviteID:  inv.ID,
		Token:     inv.Token,
		ExpiresAt: inv.ExpiresAt,
	}, nil
}

// UpdatePermissions aplica un patch parcial sobre el techo de permisos del
// miembro. Última escritura gana: no hay versionado optimista.
func (uc *MemberUseCase) UpdatePermissions(ctx context.Context, actor access.Actor, userID string, patch access.PermissionPatch) (*dto.MemberResponse, error) {
	if !actor.CanManageMembers() {
		return nil, domain.ErrForbidden
	}
	m, err := uc.memberships.GetByUserAndCompany(ctx, userID, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	m.Permissions = access.Merge(m.Permissions, patch)
	m.UpdatedAt = time.Now()
	if err := uc.memberships.Update(ctx, m); err != nil {
		return nil, err
	}
	if err := uc.audit(ctx, actor, "membership", m.ID, entity.AuditActionPermissionsUpdated,
		fmt.Sprintf("user=%s permissions=%+v", userID, m.Permissions)); err != nil {
		return nil, err
	}
	return uc.memberResponse(ctx, m)
}

// UpdateSpecialties reemplaza el conjunto de especialidades asignadas al
// miembro. Cada especialidad debe pertenecer al oficio de la empresa.
func (uc *MemberUseCase) UpdateSpecialties(ctx context.Context, actor access.Actor, userID string, specialtyIDs []string) (*dto.MemberResponse, error) {
	if !actor.CanManageMembers() {
		return nil, domain.ErrForbidden
	}
	m, err := uc.memberships.GetByUserAndCompany(ctx, userID, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	valid, err := uc.tradeSpecialtySet(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	for _, id := range specialtyIDs {
		if !valid[id] {
			return nil, fmt.Errorf("%w: la especialidad %s no pertenece al oficio de la empresa", domain.ErrInvalidInput, id)
		}
	}
	if err := uc.memberships.ReplaceSpecialtyAssignments(ctx, userID, actor.CompanyID, specialtyIDs); err != nil {
		return nil, err
	}
	if err := uc.audit(ctx, actor, "membership", m.ID, entity.AuditActionSpecialtiesUpdated,
		fmt.Sprintf("user=%s specialties=%v", userID, specialtyIDs)); err != nil {
		return nil, err
	}
	return uc.memberResponse(ctx, m)
}

// UpdateRole cambia el rol de empresa del miembro. Otorgar o revocar OWNER
// exige que el actor sea OWNER.
func (uc *MemberUseCase) UpdateRole(ctx context.Context, actor access.Actor, userID, newRole string) (*dto.MemberResponse, error) {
	if !actor.CanManageMembers() {
		return nil, domain.ErrForbidden
	}
	role, ok := entity.ParseRole(newRole)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	m, err := uc.memberships.GetByUserAndCompany(ctx, userID, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if (role == entity.RoleOwner || m.Role == entity.RoleOwner) && actor.Role != entity.RoleOwner {
		return nil, domain.ErrForbidden
	}
	m.Role = role
	m.UpdatedAt = time.Now()
	if err := uc.memberships.Update(ctx, m); err != nil {
		return nil, err
	}
	if err := uc.audit(ctx, actor, "membership", m.ID, entity.AuditActionRoleUpdated,
		fmt.Sprintf("user=%s role=%s", userID, role)); err != nil {
		return nil, err
	}
	return uc.memberResponse(ctx, m)
}

// Deactivate desactiva la membresía (no borra la identidad del usuario).
// Desactivar a un OWNER exige actor OWNER.
func (uc *MemberUseCase) Deactivate(ctx context.Context, actor access.Actor, userID string) error {
	if !actor.CanManageMembers() {
		return domain.ErrForbidden
	}
	if userID == actor.UserID {
		return domain.ErrConflict // nadie se da de baja a sí mismo
	}
	m, err := uc.memberships.GetByUserAndCompany(ctx, userID, actor.CompanyID)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	if m.Role == entity.RoleOwner && actor.Role != entity.RoleOwner {
		return domain.ErrForbidden
	}
	m.Active = false
	m.UpdatedAt = time.Now()
	if err := uc.memberships.Update(ctx, m); err != nil {
		return err
	}
	return uc.audit(ctx, actor, "membership", m.ID, entity.AuditActionMemberDeactivated,
		fmt.Sprintf("user=%s", userID))
}

func (uc *MemberUseCase) memberResponse(ctx context.Context, m *entity.Membership) (*dto.MemberResponse, error) {
	user, err := uc.users.GetByID(ctx, m.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	specialties, err := uc.memberships.ListAssignedSpecialtyIDs(ctx, m.UserID, m.CompanyID)
	if err != nil {
		return nil, err
	}
	return &dto.MemberResponse{
		UserID:      m.UserID,
		Email:       user.Email,
		Name:        user.Name,
		Role:        string(m.Role),
		Active:      m.Active,
		Permissions: m.Permissions,
		Specialties: specialties,
		CreatedAt:   m.CreatedAt,
	}, nil
}

// tradeSpecialtySet ids de especialidad válidos para el oficio de la empresa.
func (uc *MemberUseCase) tradeSpecialtySet(ctx context.Context, companyID string) (map[string]bool, error) {
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	specialties, err := uc.trades.ListSpecialtiesByTrade(ctx, company.TradeID)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(specialties))
	for _, s := range specialties {
		set[s.ID] = true
	}
	return set, nil
}

func (uc *MemberUseCase) audit(ctx context.Context, actor access.Actor, entityName, entityID, action, details string) error {
	return uc.audits.Create(ctx, &entity.AuditLog{
		ID:        uuid.New().String(),
		CompanyID: actor.CompanyID,
		ActorID:   actor.UserID,
		Entity:    entityName,
		EntityID:  entityID,
		Action:    action,
		Details:   details,
		CreatedAt: time.Now(),
	})
}
