package createuser

import (
	c "accounts/internal/core/domain/common"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/outbox"
	uow "accounts/internal/core/domain/unit_of_work"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/suite"
)

const (
	ACTIVATION_TOKEN = "test-token"
	EMAIL            = c.Email("test@test.test")
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger                   *logging.FakeLogger
	UnitOfWork               *uow.FakeUnitOfWork
	ActivationTokenGenerator *user.FakeActivationTokenGenerator
	Service                  services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UnitOfWork = uow.NewFakeUnitOfWork()
	suite.ActivationTokenGenerator = user.NewFakeActivationTokenGenerator(ACTIVATION_TOKEN)
	suite.Service = New(
		suite.Logger,
		suite.UnitOfWork,
		suite.ActivationTokenGenerator,
		func() time.Time { return NOW },
	)
}

func TestCreateUserService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	ctx := context.Background()
	result, err := suite.Service.Run(ctx, Input{Email: EMAIL})

	assert := suite.Require()
	assert.Nil(err)
	assert.NotEqual(user.ID(0), result.User.ID)
	assert.Equal(EMAIL, result.User.Email)
	assert.Equal(NOW, result.User.CreatedAt)
	assert.Equal(user.Roles{}, result.User.Roles)
	assert.False(result.User.IsActive())
	assert.True(suite.UnitOfWork.Context.WasCommitCalled)
}

func (suite *testSuite) TestEmailIsNormalized() {
	ctx := context.Background()
	result, err := suite.Service.Run(ctx, Input{Email: c.Email("  Test@TEST.test ")})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(EMAIL, result.User.Email)

	_, err = suite.Service.Run(ctx, Input{Email: c.Email("TEST@test.TEST")})
	assert.ErrorIs(err, user.ErrEmailAlreadyExists)
}

func (suite *testSuite) TestCreatesExactlyOneActivationToken() {
	ctx := context.Background()
	result, err := suite.Service.Run(ctx, Input{Email: EMAIL})

	assert := suite.Require()
	assert.Nil(err)
	tokens, err := suite.UnitOfWork.Context.ActivationTokenRepository.ListByUserID(ctx, result.User.ID)
	assert.Nil(err)
	assert.Len(tokens, 1)
	assert.Equal(result.User.ID, tokens[0].UserID)
	assert.Equal(user.Token(ACTIVATION_TOKEN), tokens[0].Token)
	assert.Equal(result.ActivationToken, tokens[0])
}

func (suite *testSuite) TestEnqueuesActivationEmail() {
	ctx := context.Background()
	_, err := suite.Service.Run(ctx, Input{Email: EMAIL})

	assert := suite.Require()
	assert.Nil(err)
	messages := suite.UnitOfWork.Context.OutboxRepository.Messages
	assert.Len(messages, 1)
	assert.Equal(outbox.KindActivationEmail, messages[0].Kind)

	payload := &outbox.ActivationEmailPayload{}
	assert.Nil(payload.Unmarshal(messages[0].Payload))
	assert.Equal(string(EMAIL), payload.Email)
	assert.Equal(ACTIVATION_TOKEN, payload.Token)
}

func (suite *testSuite) TestRolesArePersisted() {
	ctx := context.Background()
	roles := user.Roles{IsAdmin: true, IsModerator: true}
	result, err := suite.Service.Run(ctx, Input{Email: EMAIL, Roles: roles})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(roles, result.User.Roles)

	storedUser, err := suite.UnitOfWork.Context.UserRepository.GetByID(ctx, result.User.ID)
	assert.Nil(err)
	assert.Equal(roles, storedUser.Roles)
}

func (suite *testSuite) TestEmailAlreadyExistsError() {
	ctx := context.Background()
	suite.UnitOfWork.Context.UserRepository.Create(
		ctx,
		user.CreateUserInput{Email: EMAIL, CreatedAt: NOW},
	)

	_, err := suite.Service.Run(ctx, Input{Email: EMAIL})

	assert := suite.Require()
	assert.NotNil(err)
	assert.True(errors.Is(err, user.ErrEmailAlreadyExists))
	assert.False(suite.UnitOfWork.Context.WasCommitCalled)
	assert.True(suite.UnitOfWork.Context.WasRollbackCalled)
	assert.Len(suite.UnitOfWork.Context.ActivationTokenRepository.Tokens, 0)
	assert.Len(suite.UnitOfWork.Context.OutboxRepository.Messages, 0)
}

func (suite *testSuite) TestMissingEmailError() {
	ctx := context.Background()
	_, err := suite.Service.Run(ctx, Input{})

	assert := suite.Require()
	assert.NotNil(err)
	fieldErrors, ok := err.(validation.Errors)
	assert.True(ok)
	assert.Contains(fieldErrors, "Email")
	assert.Len(suite.UnitOfWork.Context.UserRepository.Users, 0)
	assert.False(suite.UnitOfWork.Context.WasCommitCalled)
	assert.False(suite.UnitOfWork.Context.WasRollbackCalled)
}

func (suite *testSuite) TestMalformedEmailError() {
	ctx := context.Background()
	_, err := suite.Service.Run(ctx, Input{Email: c.Email("not-an-email")})

	assert := suite.Require()
	assert.NotNil(err)
	fieldErrors, ok := err.(validation.Errors)
	assert.True(ok)
	assert.Contains(fieldErrors, "Email")
	assert.Len(suite.UnitOfWork.Context.UserRepository.Users, 0)
}

func (suite *testSuite) TestTokenCreationFailureRollsBack() {
	ctx := context.Background()
	suite.UnitOfWork.Context.ActivationTokenRepository.ReturnError = true

	_, err := suite.Service.Run(ctx, Input{Email: EMAIL})

	assert := suite.Require()
	assert.NotNil(err)
	assert.False(suite.UnitOfWork.Context.WasCommitCalled)
	assert.True(suite.UnitOfWork.Context.WasRollbackCalled)
}

func (suite *testSuite) TestRoundTrip() {
	ctx := context.Background()
	result, err := suite.Service.Run(ctx, Input{Email: EMAIL})

	assert := suite.Require()
	assert.Nil(err)
	storedUser, err := suite.UnitOfWork.Context.UserRepository.GetByID(ctx, result.User.ID)
	assert.Nil(err)
	assert.Equal(EMAIL, storedUser.Email)
	assert.Equal(user.Roles{}, storedUser.Roles)
}
