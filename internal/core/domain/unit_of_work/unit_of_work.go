package uow

import (
	"accounts/internal/core/domain/outbox"
	"accounts/internal/core/domain/user"
	"context"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Users() user.UserRepository
	ActivationTokens() user.ActivationTokenRepository
	Profiles() user.ProfileRepository
	Outbox() outbox.Repository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
