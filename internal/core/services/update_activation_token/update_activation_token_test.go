package updateactivationtoken

import (
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUpdateActivationTokenValue(t *testing.T) {
	ctx := context.Background()
	repo := user.NewFakeActivationTokenRepository()
	token := createToken(t, repo)

	service := New(logging.NewFakeLogger(), repo)
	result, err := service.Run(ctx, Input{
		TokenID:       token.ID,
		DoTokenUpdate: true,
		Token:         user.Token("new-token"),
	})

	require.Nil(t, err)
	require.Equal(t, token.ID, result.ActivationToken.ID)
	require.Equal(t, token.UserID, result.ActivationToken.UserID)
	require.Equal(t, user.Token("new-token"), result.ActivationToken.Token)
}

func TestUpdateWithoutTokenUpdateChangesNothing(t *testing.T) {
	ctx := context.Background()
	repo := user.NewFakeActivationTokenRepository()
	token := createToken(t, repo)

	service := New(logging.NewFakeLogger(), repo)
	result, err := service.Run(ctx, Input{
		TokenID: token.ID,
		Token:   user.Token("ignored"),
	})

	require.Nil(t, err)
	require.Equal(t, token, result.ActivationToken)
}

func TestUpdateActivationTokenDoesNotExist(t *testing.T) {
	service := New(logging.NewFakeLogger(), user.NewFakeActivationTokenRepository())

	_, err := service.Run(context.Background(), Input{
		TokenID:       user.TokenID(777),
		DoTokenUpdate: true,
		Token:         user.Token("new-token"),
	})

	require.ErrorIs(t, err, user.ErrActivationTokenDoesNotExist)
}

func createToken(t *testing.T, repo *user.FakeActivationTokenRepository) user.ActivationToken {
	t.Helper()
	token, err := repo.Create(context.Background(), user.CreateActivationTokenInput{
		UserID:    user.ID(1),
		Token:     user.Token("test-token"),
		CreatedAt: time.Now().UTC(),
	})
	require.Nil(t, err)
	return token
}
