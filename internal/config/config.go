package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool `env:"TEST_MODE"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`

	RabbitmqURL                  string `env:"RABBITMQ_URL,required"`
	RabbitmqNotificationExchange string `env:"RABBITMQ_NOTIFICATION_EXCHANGE" envDefault:"notifications"`
	RabbitmqActivationEmailQueue string `env:"RABBITMQ_ACTIVATION_EMAIL_QUEUE" envDefault:"activation-email"`

	OutboxRelayPeriod time.Duration `env:"OUTBOX_RELAY_PERIOD" envDefault:"1s"`
	OutboxBatchSize   int           `env:"OUTBOX_BATCH_SIZE" envDefault:"100"`

	AwsRegion                       string  `env:"AWS_REGION" envDefault:"eu-west-1"`
	AwsAccessKey                    string  `env:"AWS_ACCESS_KEY"`
	AwsSecretKey                    string  `env:"AWS_SECRET_KEY"`
	AwsEmailSender                  string  `env:"AWS_EMAIL_SENDER"`
	AwsEmailActivateAccountTemplate string  `env:"AWS_EMAIL_ACTIVATE_ACCOUNT_TEMPLATE"`
	AwsEmailActivationUrl           url.URL `env:"AWS_EMAIL_ACTIVATION_URL"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("could not load config: %w", err)
	}
	if config.OutboxBatchSize <= 0 {
		return nil, fmt.Errorf("OUTBOX_BATCH_SIZE must be positive")
	}
	return config, nil
}
