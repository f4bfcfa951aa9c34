package updateuser

import (
	c "accounts/internal/core/domain/common"
	"accounts/internal/core/domain/logging"
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
	Logger         *logging.FakeLogger
	UserRepository *user.FakeUserRepository
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.Service = New(suite.Logger, suite.UserRepository)
}

func TestUpdateUserService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestRolesUpdated() {
	ctx := context.Background()
	u := suite.createUser(ctx)

	roles := user.Roles{IsAdmin: true}
	result, err := suite.Service.Run(ctx, Input{UserID: u.ID, DoRolesUpdate: true, Roles: roles})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(roles, result.User.Roles)

	storedUser, err := suite.UserRepository.GetByID(ctx, u.ID)
	assert.Nil(err)
	assert.Equal(roles, storedUser.Roles)
}

func (suite *testSuite) TestEmailNeverChanges() {
	ctx := context.Background()
	u := suite.createUser(ctx)

	result, err := suite.Service.Run(
		ctx,
		Input{UserID: u.ID, DoRolesUpdate: true, Roles: user.Roles{IsModerator: true}},
	)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(EMAIL, result.User.Email)

	storedUser, err := suite.UserRepository.GetByID(ctx, u.ID)
	assert.Nil(err)
	assert.Equal(EMAIL, storedUser.Email)
}

func (suite *testSuite) TestNoRolesUpdateKeepsRoles() {
	ctx := context.Background()
	u := suite.createUser(ctx)

	result, err := suite.Service.Run(
		ctx,
		Input{UserID: u.ID, DoRolesUpdate: false, Roles: user.Roles{IsAdmin: true}},
	)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(user.Roles{}, result.User.Roles)
}

func (suite *testSuite) TestUserDoesNotExist() {
	ctx := context.Background()

	_, err := suite.Service.Run(ctx, Input{UserID: user.ID(777), DoRolesUpdate: true})

	suite.Require().ErrorIs(err, user.ErrUserDoesNotExist)
}

func (suite *testSuite) createUser(ctx context.Context) user.User {
	suite.T().Helper()
	u, err := suite.UserRepository.Create(ctx, user.CreateUserInput{Email: EMAIL, CreatedAt: NOW})
	suite.Require().Nil(err)
	return u
}
