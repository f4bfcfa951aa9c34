package getuser

import (
	c "accounts/internal/core/domain/common"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetUserReturnsStoredUser(t *testing.T) {
	ctx := context.Background()
	repo := user.NewFakeUserRepository()
	u, err := repo.Create(ctx, user.CreateUserInput{
		Email:     c.Email("test@test.test"),
		Roles:     user.Roles{IsAdmin: true},
		CreatedAt: time.Now().UTC(),
	})
	require.Nil(t, err)

	service := New(logging.NewFakeLogger(), repo)
	result, err := service.Run(ctx, Input{UserID: u.ID})

	require.Nil(t, err)
	require.Equal(t, u, result.User)
}

func TestGetUserDoesNotExist(t *testing.T) {
	service := New(logging.NewFakeLogger(), user.NewFakeUserRepository())

	_, err := service.Run(context.Background(), Input{UserID: user.ID(777)})

	require.ErrorIs(t, err, user.ErrUserDoesNotExist)
}
