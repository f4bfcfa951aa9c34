package relayoutbox

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/outbox"
	uow "accounts/internal/core/domain/unit_of_work"
	"accounts/internal/core/services"
	"context"
	"time"
)

type Input struct{}

type Result struct {
	PublishedCount int
	FailedCount    int
}

type service struct {
	log        logging.Logger
	unitOfWork uow.UnitOfWork
	publisher  outbox.Publisher
	batchSize  int
	now        func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	publisher outbox.Publisher,
	batchSize int,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if publisher == nil {
		panic(e.NewNilArgumentError("publisher"))
	}
	if batchSize <= 0 {
		panic("batchSize must be positive")
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:        log,
		unitOfWork: unitOfWork,
		publisher:  publisher,
		batchSize:  batchSize,
		now:        now,
	}
}

// Run publishes a batch of pending outbox messages. Rows stay locked until
// commit, so a message is marked published only after the broker accepted
// it. A crash between publish and commit republishes the message on the next
// run, delivery is at least once.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	defer uow.Rollback(ctx)

	pending, err := uow.Outbox().LockPending(ctx, s.batchSize)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	if len(pending) == 0 {
		return result, uow.Commit(ctx)
	}

	publishedIDs := make([]outbox.ID, 0, len(pending))
	for _, message := range pending {
		if err := s.publisher.Publish(ctx, message); err != nil {
			s.log.Error(
				ctx,
				"Could not publish outbox message.",
				logging.Entry("messageID", message.ID),
				logging.Entry("kind", message.Kind),
				logging.Entry("attempts", message.Attempts),
				logging.Entry("err", err),
			)
			if err := uow.Outbox().MarkFailed(ctx, message.ID, err.Error()); err != nil {
				logging.Error(ctx, s.log, err, logging.Entry("messageID", message.ID))
				return result, err
			}
			result.FailedCount++
			continue
		}
		publishedIDs = append(publishedIDs, message.ID)
	}

	if len(publishedIDs) > 0 {
		if err := uow.Outbox().MarkPublished(ctx, publishedIDs, s.now()); err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("publishedIDs", publishedIDs))
			return result, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	result.PublishedCount = len(publishedIDs)
	s.log.Info(
		ctx,
		"Outbox messages have been relayed.",
		logging.Entry("publishedCount", result.PublishedCount),
		logging.Entry("failedCount", result.FailedCount),
	)
	return result, nil
}
