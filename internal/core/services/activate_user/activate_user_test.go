package activateuser

import (
	c "accounts/internal/core/domain/common"
	"accounts/internal/core/domain/logging"
	uow "accounts/internal/core/domain/unit_of_work"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const EMAIL = c.Email("test@test.test")

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger     *logging.FakeLogger
	UnitOfWork *uow.FakeUnitOfWork
	Service    services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UnitOfWork = uow.NewFakeUnitOfWork()
	suite.Service = New(
		suite.Logger,
		suite.UnitOfWork,
		func() time.Time { return NOW },
	)
}

func TestActivateUserService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	ctx := context.Background()
	u, token := suite.createUserWithToken(ctx, EMAIL)

	result, err := suite.Service.Run(ctx, Input{TokenID: token.ID, UserID: u.ID})

	assert := suite.Require()
	assert.Nil(err)
	assert.True(result.User.IsActive())
	assert.Equal(NOW, result.User.ActivatedAt.Value)
	assert.True(suite.UnitOfWork.Context.WasCommitCalled)

	_, err = suite.UnitOfWork.Context.ActivationTokenRepository.GetByID(ctx, token.ID)
	assert.ErrorIs(err, user.ErrActivationTokenDoesNotExist)
}

func (suite *testSuite) TestTokenDoesNotExist() {
	ctx := context.Background()
	u, _ := suite.createUserWithToken(ctx, EMAIL)

	_, err := suite.Service.Run(ctx, Input{TokenID: user.TokenID(777), UserID: u.ID})

	assert := suite.Require()
	assert.ErrorIs(err, user.ErrActivationTokenDoesNotExist)
	assert.False(suite.UnitOfWork.Context.WasCommitCalled)
}

func (suite *testSuite) TestTokenBelongsToAnotherUser() {
	ctx := context.Background()
	_, token := suite.createUserWithToken(ctx, EMAIL)
	otherUser, _ := suite.createUserWithToken(ctx, c.Email("other@test.test"))

	_, err := suite.Service.Run(ctx, Input{TokenID: token.ID, UserID: otherUser.ID})

	assert := suite.Require()
	assert.ErrorIs(err, user.ErrInvalidActivationToken)
	assert.False(suite.UnitOfWork.Context.WasCommitCalled)
	assert.True(suite.UnitOfWork.Context.WasRollbackCalled)

	storedUser, err := suite.UnitOfWork.Context.UserRepository.GetByID(ctx, otherUser.ID)
	assert.Nil(err)
	assert.False(storedUser.IsActive())
}

func (suite *testSuite) TestUserAlreadyActive() {
	ctx := context.Background()
	u, token := suite.createUserWithToken(ctx, EMAIL)
	_, err := suite.UnitOfWork.Context.UserRepository.Activate(ctx, u.ID, NOW)
	suite.Require().Nil(err)

	_, err = suite.Service.Run(ctx, Input{TokenID: token.ID, UserID: u.ID})

	suite.Require().ErrorIs(err, user.ErrUserAlreadyActive)
}

func (suite *testSuite) createUserWithToken(
	ctx context.Context,
	email c.Email,
) (user.User, user.ActivationToken) {
	suite.T().Helper()

	u, err := suite.UnitOfWork.Context.UserRepository.Create(ctx, user.CreateUserInput{
		Email:     email,
		CreatedAt: NOW,
	})
	suite.Require().Nil(err)

	token, err := suite.UnitOfWork.Context.ActivationTokenRepository.Create(ctx, user.CreateActivationTokenInput{
		UserID:    u.ID,
		Token:     user.Token("test-token"),
		CreatedAt: NOW,
	})
	suite.Require().Nil(err)
	return u, token
}
