package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Cotizador-api/internal/application/auth"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// Ensure TxRunner implements auth.TxRunner.
var _ auth.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSignup inicia una transacción, ejecuta fn con repos atados a la tx y
// hace Commit o Rollback.
func (r *TxRunner) RunSignup(ctx context.Context, fn func(
	users repository.UserRepository,
	companies repository.CompanyRepository,
	memberships repository.MembershipRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewUserRepository(tx),
		NewCompanyRepository(tx),
		NewMembershipRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunInviteAccept inicia una transacción para aceptar una invitación:
// usuario nuevo (si aplica) + membresía + invitación consumida, todo o nada.
func (r *TxRunner) RunInviteAccept(ctx context.Context, fn func(
	users repository.UserRepository,
	memberships repository.MembershipRepository,
	invites repository.InviteRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewUserRepository(tx),
		NewMembershipRepository(tx),
		NewInviteRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
