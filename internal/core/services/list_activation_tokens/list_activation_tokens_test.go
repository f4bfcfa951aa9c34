package listactivationtokens

import (
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestListAllActivationTokens(t *testing.T) {
	ctx := context.Background()
	repo := user.NewFakeActivationTokenRepository()
	first := createToken(t, repo, user.ID(1))
	second := createToken(t, repo, user.ID(2))

	service := New(logging.NewFakeLogger(), repo)
	result, err := service.Run(ctx, Input{})

	require.Nil(t, err)
	require.Equal(t, []user.ActivationToken{first, second}, result.ActivationTokens)
}

func TestListActivationTokensByUser(t *testing.T) {
	ctx := context.Background()
	repo := user.NewFakeActivationTokenRepository()
	token := createToken(t, repo, user.ID(1))
	createToken(t, repo, user.ID(2))

	service := New(logging.NewFakeLogger(), repo)
	result, err := service.Run(ctx, Input{UserID: user.ID(1), ByUser: true})

	require.Nil(t, err)
	require.Equal(t, []user.ActivationToken{token}, result.ActivationTokens)
}

func TestListActivationTokensByUserEmpty(t *testing.T) {
	ctx := context.Background()
	repo := user.NewFakeActivationTokenRepository()
	createToken(t, repo, user.ID(2))

	service := New(logging.NewFakeLogger(), repo)
	result, err := service.Run(ctx, Input{UserID: user.ID(1), ByUser: true})

	require.Nil(t, err)
	require.Len(t, result.ActivationTokens, 0)
}

func createToken(t *testing.T, repo *user.FakeActivationTokenRepository, userID user.ID) user.ActivationToken {
	t.Helper()
	token, err := repo.Create(context.Background(), user.CreateActivationTokenInput{
		UserID:    userID,
		Token:     user.Token("test-token"),
		CreatedAt: time.Now().UTC(),
	})
	require.Nil(t, err)
	return token
}
