package updateactivationtoken

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"errors"
)

// Input carries the only mutable token attribute; the owning user can never
// change through an update.
type Input struct {
	TokenID       user.TokenID
	DoTokenUpdate bool
	Token         user.Token
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
	updatedToken, err := s.tokenRepository.Update(ctx, user.UpdateActivationTokenInput{
		ID:            input.TokenID,
		DoTokenUpdate: input.DoTokenUpdate,
		Token:         input.Token,
	})
	if errors.Is(err, user.ErrActivationTokenDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(
		ctx,
		"Activation token successfully updated.",
		logging.Entry("tokenID", updatedToken.ID),
		logging.Entry("doTokenUpdate", input.DoTokenUpdate),
	)
	result.ActivationToken = updatedToken
	return result, nil
}
