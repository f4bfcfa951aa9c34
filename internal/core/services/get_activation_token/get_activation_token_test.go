package getactivationtoken

import (
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetActivationTokenReturnsStoredToken(t *testing.T) {
	ctx := context.Background()
	repo := user.NewFakeActivationTokenRepository()
	token, err := repo.Create(ctx, user.CreateActivationTokenInput{
		UserID:    user.ID(1),
		Token:     user.Token("test-token"),
		CreatedAt: time.Now().UTC(),
	})
	require.Nil(t, err)

	service := New(logging.NewFakeLogger(), repo)
	result, err := service.Run(ctx, Input{TokenID: token.ID})

	require.Nil(t, err)
	require.Equal(t, token, result.ActivationToken)
}

func TestGetActivationTokenDoesNotExist(t *testing.T) {
	service := New(logging.NewFakeLogger(), user.NewFakeActivationTokenRepository())

	_, err := service.Run(context.Background(), Input{TokenID: user.TokenID(777)})

	require.ErrorIs(t, err, user.ErrActivationTokenDoesNotExist)
}
