package consumers

import (
	"accounts/internal/app/deps"
	"accounts/internal/app/services"
	dl "accounts/internal/core/domain/logging"
	activationemail "accounts/internal/rabbitmq/consumers/activation_email"
	"context"
)

func initActivationEmailConsumer(deps *deps.Deps, services *services.Services) func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.RabbitmqActivationEmailQueue
	activationEmailConsumer := activationemail.New(
		deps.Logger,
		rabbitmqChannel,
		queue,
		services.SendActivationEmail,
	)
	if err = activationEmailConsumer.Consume(); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not start RabbitMQ consuming.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	deps.Logger.Info(context.Background(), "Consumer has started.", dl.Entry("queue", queue))
	return func() { rabbitmqChannel.Close() }
}

func InitConsumers(deps *deps.Deps, services *services.Services) func() {
	shutdownActivationEmailConsumer := initActivationEmailConsumer(deps, services)

	return func() {
		shutdownActivationEmailConsumer()
	}
}
