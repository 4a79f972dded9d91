package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
	"github.com/jhoicas/Cotizador-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro de empresa, login y
// aceptación de invitaciones.
type AuthUseCase struct {
	users       repository.UserRepository
	memberships repository.MembershipRepository
	trades      repository.TradeRepository
	invites     repository.InviteRepository
	tx          TxRunner
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	users repository.UserRepository,
	memberships repository.MembershipRepository,
	trades repository.TradeRepository,
	invites repository.InviteRepository,
	tx TxRunner,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{
		users:       users,
		memberships: memberships,
		trades:      trades,
		invites:     invites,
		tx:          tx,
		jwtCfg:      jwtCfg,
	}
}

// Register crea en una transacción el usuario, su empresa y la membresía
// OWNER (con los cinco permisos activos: el dueño no tiene techo por debajo
// del máximo). Devuelve sesión iniciada.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error) {
	existing, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	trade, err := uc.trades.GetTradeByID(ctx, in.TradeID)
	if err != nil {
		return nil, err
	}
	if trade == nil {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		GlobalRole:   entity.GlobalRoleUser,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.CompanyName,
		TradeID:   trade.ID,
		Email:     in.Email,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	membership := &entity.Membership{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		CompanyID:   company.ID,
		Role:        entity.RoleOwner,
		Active:      true,
		Permissions: entity.AllPermissions,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = uc.tx.RunSignup(ctx, func(
		users repository.UserRepository,
		companies repository.CompanyRepository,
		memberships repository.MembershipRepository,
	) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		if err := companies.Create(ctx, company); err != nil {
			return err
		}
		return memberships.Create(ctx, membership)
	})
	if err != nil {
		return nil, err
	}

	return uc.session(user, membership)
}

// Login verifica email/password, elige la membresía (la indicada en el
// request o la primera activa) y genera el JWT de la sesión.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}

	memberships, err := uc.memberships.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	var selected *entity.Membership
	for _, m := range memberships {
		if !m.Active {
			continue
		}
		if in.CompanyID == "" || m.CompanyID == in.CompanyID {
			selected = m
			break
		}
	}
	if selected == nil {
		return nil, domain.ErrForbidden
	}
	return uc.session(user, selected)
}

// AcceptInvite valida el token de invitación y crea la membresía con el rol
// y los permisos que la invitación definió. Si el email no tenía cuenta se
// crea; si ya existía, el password debe corresponder a la cuenta.
func (uc *AuthUseCase) AcceptInvite(ctx context.Context, in dto.AcceptInviteRequest) (*dto.LoginResponse, error) {
	inv, err := uc.invites.GetByToken(ctx, in.Token)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.Expired(time.Now()) {
		return nil, domain.ErrInviteExpired
	}

	user, err := uc.users.GetByEmail(ctx, inv.Email)
	if err != nil {
		return nil, err
	}
	newUser := user == nil
	if newUser {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		now := time.Now()
		name := in.Name
		if name == "" {
			name = inv.Email
		}
		user = &entity.User{
			ID:           uuid.New().String(),
			Email:        inv.Email,
			PasswordHash: string(hash),
			Name:         name,
			GlobalRole:   entity.GlobalRoleUser,
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	} else {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
			return nil, domain.ErrUnauthorized
		}
		existing, err := uc.memberships.GetByUserAndCompany(ctx, user.ID, inv.CompanyID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}

	now := time.Now()
	membership := &entity.Membership{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		CompanyID:   inv.CompanyID,
		Role:        inv.Role,
		Active:      true,
		Permissions: inv.Permissions,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = uc.tx.RunInviteAccept(ctx, func(
		users repository.UserRepository,
		memberships repository.MembershipRepository,
		invites repository.InviteRepository,
	) error {
		if newUser {
			if err := users.Create(ctx, user); err != nil {
				return err
			}
		}
		if err := memberships.Create(ctx, membership); err != nil {
			return err
		}
		return invites.MarkUsed(ctx, inv.ID)
	})
	if err != nil {
		return nil, err
	}

	return uc.session(user, membership)
}

func (uc *AuthUseCase) session(user *entity.User, m *entity.Membership) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID:    user.ID,
		CompanyID: m.CompanyID,
		Role:      string(m.Role),
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:        user.ID,
			CompanyID: m.CompanyID,
			Email:     user.Email,
			Name:      user.Name,
			Role:      string(m.Role),
			Status:    user.Status,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		},
	}, nil
}
