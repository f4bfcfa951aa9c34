package getprofile

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	UserID user.ID
}

type Result struct {
	Profile user.Profile
}

type service struct {
	log               logging.Logger
	profileRepository user.ProfileRepository
}

func New(
	log logging.Logger,
	profileRepository user.ProfileRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if profileRepository == nil {
		panic(e.NewNilArgumentError("profileRepository"))
	}
	return &service{log: log, profileRepository: profileRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	profile, err := s.profileRepository.GetByUserID(ctx, input.UserID)
	if errors.Is(err, user.ErrProfileDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	result.Profile = profile
	return result, nil
}
