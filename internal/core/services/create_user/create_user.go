package createuser

import (
	c "accounts/internal/core/domain/common"
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/outbox"
	uow "accounts/internal/core/domain/unit_of_work"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Input struct {
	Email c.Email
	Roles user.Roles
}

// Validate turns the untrusted input into field-level errors. The nested
// roles value is validated as part of the parent.
func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Roles),
	)
}

type Result struct {
	User            user.User
	ActivationToken user.ActivationToken
}

type service struct {
	log                      logging.Logger
	unitOfWork               uow.UnitOfWork
	activationTokenGenerator user.ActivationTokenGenerator
	now                      func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	activationTokenGenerator user.ActivationTokenGenerator,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if activationTokenGenerator == nil {
		panic(e.NewNilArgumentError("activationTokenGenerator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                      log,
		unitOfWork:               unitOfWork,
		activationTokenGenerator: activationTokenGenerator,
		now:                      now,
	}
}

// Run creates the user, its activation token and the activation email outbox
// message as one atomic unit. The email itself is sent by the outbox relay
// strictly after the transaction commits.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	// The normalized form is what the unique email index sees.
	input.Email = c.NewEmail(string(input.Email))
	if err := input.Validate(); err != nil {
		s.log.Info(ctx, "Invalid create user input.", logging.Entry("err", err))
		return result, err
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
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

	now := s.now()
	createdUser, err := uow.Users().Create(ctx, user.CreateUserInput{
		Email:     input.Email,
		Roles:     input.Roles,
		CreatedAt: now,
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		s.log.Info(
			ctx,
			"User with the email already exists.",
			logging.Entry("email", input.Email),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create new user.",
			logging.Entry("input", input),
			logging.Entry("err", err),
		)
		return result, err
	}

	createdToken, err := uow.ActivationTokens().Create(ctx, user.CreateActivationTokenInput{
		UserID:    createdUser.ID,
		Token:     s.activationTokenGenerator.GenerateActivationToken(),
		CreatedAt: now,
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create activation token.",
			logging.Entry("userID", createdUser.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	payload, err := (&outbox.ActivationEmailPayload{
		Email: string(createdUser.Email),
		Token: string(createdToken.Token),
	}).Marshal()
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", createdUser.ID))
		return result, err
	}
	_, err = uow.Outbox().Enqueue(ctx, outbox.EnqueueInput{
		Kind:      outbox.KindActivationEmail,
		Payload:   payload,
		CreatedAt: now,
	})
	if err != nil {
		s.log.Error(
			ctx,
			"Could not enqueue activation email.",
			logging.Entry("userID", createdUser.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	err = uow.Commit(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not commit unit of work.",
			logging.Entry("input", input),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"New user has been created.",
		logging.Entry("userID", createdUser.ID),
		logging.Entry("tokenID", createdToken.ID),
	)
	return Result{User: createdUser, ActivationToken: createdToken}, nil
}
