package auth

import (
	"context"

	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// TxRunner puerto de transacciones para los flujos de auth que tocan varias
// tablas de forma atómica. La implementación vive en infrastructure/postgres.
type TxRunner interface {
	// RunSignup ejecuta fn con repos atados a una transacción para el
	// registro: usuario + empresa + membresía OWNER.
	RunSignup(ctx context.Context, fn func(
		users repository.UserRepository,
		companies repository.CompanyRepository,
		memberships repository.MembershipRepository,
	) error) error

	// RunInviteAccept ejecuta fn con repos atados a una transacción para
	// aceptar una invitación: usuario (si es nuevo) + membresía + marcar
	// la invitación como usada.
	RunInviteAccept(ctx context.Context, fn func(
		users repository.UserRepository,
		memberships repository.MembershipRepository,
		invites repository.InviteRepository,
	) error) error
}
