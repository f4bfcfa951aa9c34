package uow

import (
	"accounts/internal/core/domain/outbox"
	"accounts/internal/core/domain/user"
	"context"
	"fmt"
)

type FakeUnitOfWorkContext struct {
	UserRepository            *user.FakeUserRepository
	ActivationTokenRepository *user.FakeActivationTokenRepository
	ProfileRepository         *user.FakeProfileRepository
	OutboxRepository          *outbox.FakeRepository
	WasRollbackCalled         bool
	WasCommitCalled           bool
}

func NewFakeUnitOfWorkContext() *FakeUnitOfWorkContext {
	return &FakeUnitOfWorkContext{
		UserRepository:            user.NewFakeUserRepository(),
		ActivationTokenRepository: user.NewFakeActivationTokenRepository(),
		ProfileRepository:         user.NewFakeProfileRepository(),
		OutboxRepository:          outbox.NewFakeRepository(),
	}
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	c.WasCommitCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Users() user.UserRepository {
	return c.UserRepository
}

func (c *FakeUnitOfWorkContext) ActivationTokens() user.ActivationTokenRepository {
	return c.ActivationTokenRepository
}

func (c *FakeUnitOfWorkContext) Profiles() user.ProfileRepository {
	return c.ProfileRepository
}

func (c *FakeUnitOfWorkContext) Outbox() outbox.Repository {
	return c.OutboxRepository
}

type FakeUnitOfWork struct {
	Context     *FakeUnitOfWorkContext
	ReturnError bool
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	return &FakeUnitOfWork{Context: NewFakeUnitOfWorkContext()}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	if u.ReturnError {
		return nil, fmt.Errorf("could not begin unit of work")
	}
	return u.Context, nil
}
