package createactivationtoken

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"errors"
	"time"
)

// Input has no rules beyond the owning user id, token records carry no
// user-supplied attributes yet.
type Input struct {
	UserID user.ID
}

type Result struct {
	ActivationToken user.ActivationToken
}

type service struct {
	log                      logging.Logger
	tokenRepository          user.ActivationTokenRepository
	activationTokenGenerator user.ActivationTokenGenerator
	now                      func() time.Time
}

func New(
	log logging.Logger,
	tokenRepository user.ActivationTokenRepository,
	activationTokenGenerator user.ActivationTokenGenerator,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if tokenRepository == nil {
		panic(e.NewNilArgumentError("tokenRepository"))
	}
	if activationTokenGenerator == nil {
		panic(e.NewNilArgumentError("activationTokenGenerator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                      log,
		tokenRepository:          tokenRepository,
		activationTokenGenerator: activationTokenGenerator,
		now:                      now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	createdToken, err := s.tokenRepository.Create(ctx, user.CreateActivationTokenInput{
		UserID:    input.UserID,
		Token:     s.activationTokenGenerator.GenerateActivationToken(),
		CreatedAt: s.now(),
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
		"Activation token has been created.",
		logging.Entry("tokenID", createdToken.ID),
		logging.Entry("userID", createdToken.UserID),
	)
	result.ActivationToken = createdToken
	return result, nil
}
