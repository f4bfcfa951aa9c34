package uow

import (
	"accounts/internal/core/domain/outbox"
	uow "accounts/internal/core/domain/unit_of_work"
	"accounts/internal/core/domain/user"
	dboutbox "accounts/internal/db/outbox"
	dbuser "accounts/internal/db/user"
	"context"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type pgxUnitOfWorkContext struct {
	tx pgx.Tx
}

func newPgxUnitOfWorkContext(tx pgx.Tx) *pgxUnitOfWorkContext {
	return &pgxUnitOfWorkContext{
		tx: tx,
	}
}

func (c *pgxUnitOfWorkContext) Commit(ctx context.Context) error {
	return c.tx.Commit(ctx)
}

func (c *pgxUnitOfWorkContext) Rollback(ctx context.Context) error {
	return c.tx.Rollback(ctx)
}

func (c *pgxUnitOfWorkContext) Users() user.UserRepository {
	return dbuser.NewPgxRepository(c.tx)
}

func (c *pgxUnitOfWorkContext) ActivationTokens() user.ActivationTokenRepository {
	return dbuser.NewPgxActivationTokenRepository(c.tx)
}

func (c *pgxUnitOfWorkContext) Profiles() user.ProfileRepository {
	return dbuser.NewPgxProfileRepository(c.tx)
}

func (c *pgxUnitOfWorkContext) Outbox() outbox.Repository {
	return dboutbox.NewPgxOutboxRepository(c.tx)
}

type PgxUnitOfWork struct {
	db *pgxpool.Pool
}

func NewPgxUnitOfWork(db *pgxpool.Pool) *PgxUnitOfWork {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxUnitOfWork{db: db}
}

func (u *PgxUnitOfWork) Begin(ctx context.Context) (uow.Context, error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return newPgxUnitOfWorkContext(tx), nil
}
