package user

import (
	c "accounts/internal/core/domain/common"
	"context"
	"time"
)

type CreateUserInput struct {
	Email     c.Email
	Roles     Roles
	CreatedAt time.Time
}

type UpdateUserInput struct {
	ID            ID
	DoRolesUpdate bool
	Roles         Roles
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, input UpdateUserInput) (User, error)
	Activate(ctx context.Context, id ID, at time.Time) (User, error)
	Delete(ctx context.Context, id ID) (User, error)
}

type CreateActivationTokenInput struct {
	UserID    ID
	Token     Token
	CreatedAt time.Time
}

type UpdateActivationTokenInput struct {
	ID            TokenID
	DoTokenUpdate bool
	Token         Token
}

type ActivationTokenRepository interface {
	Create(ctx context.Context, input CreateActivationTokenInput) (ActivationToken, error)
	GetByID(ctx context.Context, id TokenID) (ActivationToken, error)
	List(ctx context.Context) ([]ActivationToken, error)
	ListByUserID(ctx context.Context, userID ID) ([]ActivationToken, error)
	Update(ctx context.Context, input UpdateActivationTokenInput) (ActivationToken, error)
	Delete(ctx context.Context, id TokenID) (ActivationToken, error)
}

type SetProfileInput struct {
	UserID    ID
	FirstName string
	LastName  string
	BirthDate time.Time
}

type ProfileRepository interface {
	Set(ctx context.Context, input SetProfileInput) (Profile, error)
	GetByUserID(ctx context.Context, userID ID) (Profile, error)
}
