package activateuser

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	uow "accounts/internal/core/domain/unit_of_work"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"errors"
	"time"
)

type Input struct {
	TokenID user.TokenID
	UserID  user.ID
}

type Result struct {
	User user.User
}

type service struct {
	log        logging.Logger
	unitOfWork uow.UnitOfWork
	now        func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, unitOfWork: unitOfWork, now: now}
}

// Run checks that the token belongs to the user, stamps the activation time
// and consumes the token, all within one transaction.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not begin unit of work.",
			logging.Entry("input", input),
			logging.Entry("err", err),
		)
		return result, err
	}
	defer uow.Rollback(ctx)

	token, err := uow.ActivationTokens().GetByID(ctx, input.TokenID)
	if errors.Is(err, user.ErrActivationTokenDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	if token.UserID != input.UserID {
		s.log.Info(
			ctx,
			"Activation token does not belong to the user.",
			logging.Entry("tokenID", token.ID),
			logging.Entry("userID", input.UserID),
		)
		return result, user.ErrInvalidActivationToken
	}

	activatedUser, err := uow.Users().Activate(ctx, input.UserID, s.now())
	if errors.Is(err, user.ErrUserDoesNotExist) || errors.Is(err, user.ErrUserAlreadyActive) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	if _, err := uow.ActivationTokens().Delete(ctx, token.ID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("tokenID", token.ID))
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		s.log.Error(
			ctx,
			"Could not commit unit of work.",
			logging.Entry("input", input),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "User successfully activated.", logging.Entry("userID", activatedUser.ID))
	result.User = activatedUser
	return result, nil
}
