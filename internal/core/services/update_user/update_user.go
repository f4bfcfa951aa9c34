package updateuser

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Input carries the only mutation allowed after creation: role changes.
// There is deliberately no email field here, the stored email can never be
// changed through an update.
type Input struct {
	UserID        user.ID
	DoRolesUpdate bool
	Roles         user.Roles
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Roles),
	)
}

type Result struct {
	User user.User
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	return &service{log: log, userRepository: userRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := input.Validate(); err != nil {
		s.log.Info(ctx, "Invalid update user input.", logging.Entry("err", err))
		return result, err
	}

	updatedUser, err := s.userRepository.Update(ctx, user.UpdateUserInput{
		ID:            input.UserID,
		DoRolesUpdate: input.DoRolesUpdate,
		Roles:         input.Roles,
	})
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(
		ctx,
		"User successfully updated.",
		logging.Entry("userID", updatedUser.ID),
		logging.Entry("doRolesUpdate", input.DoRolesUpdate),
	)
	result.User = updatedUser
	return result, nil
}
