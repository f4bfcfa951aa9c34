package deleteactivationtoken

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	TokenID user.TokenID
}

type Result struct {
	ActivationToken user.ActivationToken
}

type service struct {
	log             logging.Logger
	tokenRepository user.ActivationTokenRepository
}

func New(
	log logging.Logger,
	tokenRepository user.ActivationTokenRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if tokenRepository == nil {
		panic(e.NewNilArgumentError("tokenRepository"))
	}
	return &service{log: log, tokenRepository: tokenRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	deletedToken, err := s.tokenRepository.Delete(ctx, input.TokenID)
	if errors.Is(err, user.ErrActivationTokenDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "Activation token has been deleted.", logging.Entry("tokenID", deletedToken.ID))
	result.ActivationToken = deletedToken
	return result, nil
}
