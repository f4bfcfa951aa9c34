package setprofile

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/golang-module/carbon/v2"
)

var errInvalidBirthDate = errors.New("must be a valid date in YYYY-MM-DD format")

type Input struct {
	UserID    user.ID
	FirstName string
	LastName  string
	BirthDate string
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.FirstName, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.LastName, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.BirthDate, validation.Required),
	)
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
	if err := input.Validate(); err != nil {
		s.log.Info(ctx, "Invalid profile input.", logging.Entry("err", err))
		return result, err
	}

	birthDate := carbon.Parse(input.BirthDate, carbon.UTC)
	if birthDate.Error != nil {
		s.log.Info(
			ctx,
			"Invalid profile birth date.",
			logging.Entry("birthDate", input.BirthDate),
			logging.Entry("err", birthDate.Error),
		)
		return result, validation.Errors{"BirthDate": errInvalidBirthDate}
	}

	profile, err := s.profileRepository.Set(ctx, user.SetProfileInput{
		UserID:    input.UserID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		BirthDate: birthDate.Carbon2Time(),
	})
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "Profile has been set.", logging.Entry("userID", profile.UserID))
	result.Profile = profile
	return result, nil
}
