package createactivationtoken

import (
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var NOW time.Time = time.Now().UTC()

func TestCreatesToken(t *testing.T) {
	ctx := context.Background()
	repo := user.NewFakeActivationTokenRepository()
	service := New(
		logging.NewFakeLogger(),
		repo,
		user.NewFakeActivationTokenGenerator("test-token"),
		func() time.Time { return NOW },
	)

	result, err := service.Run(ctx, Input{UserID: user.ID(42)})

	require.Nil(t, err)
	require.Equal(t, user.ID(42), result.ActivationToken.UserID)
	require.Equal(t, user.Token("test-token"), result.ActivationToken.Token)
	require.Equal(t, NOW, result.ActivationToken.CreatedAt)

	tokens, err := repo.ListByUserID(ctx, user.ID(42))
	require.Nil(t, err)
	require.Len(t, tokens, 1)
}

func TestRepositoryErrorIsReturned(t *testing.T) {
	repo := user.NewFakeActivationTokenRepository()
	repo.ReturnError = true
	service := New(
		logging.NewFakeLogger(),
		repo,
		user.NewFakeActivationTokenGenerator("test-token"),
		func() time.Time { return NOW },
	)

	_, err := service.Run(context.Background(), Input{UserID: user.ID(42)})

	require.NotNil(t, err)
}
