package sendactivationemail

import (
	c "accounts/internal/core/domain/common"
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	Email c.Email
	Token user.Token
}

type Result struct{}

type service struct {
	log    logging.Logger
	sender user.ActivationEmailSender
}

func New(
	log logging.Logger,
	sender user.ActivationEmailSender,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	return &service{log: log, sender: sender}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	err = s.sender.SendActivationEmail(ctx, input.Email, input.Token)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not send activation email.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "Activation email has been sent.", logging.Entry("email", input.Email))
	return result, nil
}
