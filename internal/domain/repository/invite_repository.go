package repository

import (
	"context"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// InviteRepository puerto de persistencia para invitaciones de empleados.
type InviteRepository interface {
	Create(ctx context.Context, inv *entity.InviteToken) error
	GetByToken(ctx context.Context, token string) (*entity.InviteToken, error)
	MarkUsed(ctx context.Context, id string) error
}
