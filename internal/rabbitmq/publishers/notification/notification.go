package notification

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/outbox"
	"accounts/internal/rabbitmq"
	"context"
	"strconv"

	"github.com/rabbitmq/amqp091-go"
)

// RabbitMQ publishes staged outbox messages to the notification exchange.
// The message kind is used both as the routing key and the AMQP type header,
// so consumers can bind per kind.
type RabbitMQ struct {
	log      logging.Logger
	channel  *rabbitmq.Channel
	exchange string
}

func NewRabbitMQ(log logging.Logger, channel *rabbitmq.Channel, exchange string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	return &RabbitMQ{log: log, channel: channel, exchange: exchange}
}

func (p *RabbitMQ) Publish(ctx context.Context, message outbox.Message) error {
	err := p.channel.PublishWithContext(ctx, p.exchange, string(message.Kind), false, false, amqp091.Publishing{
		ContentType: "application/json",
		Type:        string(message.Kind),
		MessageId:   strconv.FormatInt(int64(message.ID), 10),
		Body:        message.Payload,
	})
	if err != nil {
		logging.Error(ctx, p.log, err)
		return err
	}
	p.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("exchange", p.exchange),
		logging.Entry("kind", message.Kind),
		logging.Entry("messageID", message.ID),
	)
	return nil
}
