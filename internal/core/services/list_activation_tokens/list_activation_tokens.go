package listactivationtokens

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
)

// Input optionally narrows the listing to one user.
type Input struct {
	UserID user.ID
	ByUser bool
}

type Result struct {
	ActivationTokens []user.ActivationToken
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
	var tokens []user.ActivationToken
	if input.ByUser {
		tokens, err = s.tokenRepository.ListByUserID(ctx, input.UserID)
	} else {
		tokens, err = s.tokenRepository.List(ctx)
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	result.ActivationTokens = tokens
	return result, nil
}
