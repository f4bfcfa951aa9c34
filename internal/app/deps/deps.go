package deps

import (
	"accounts/internal/config"
	dl "accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/outbox"
	duow "accounts/internal/core/domain/unit_of_work"
	"accounts/internal/core/domain/user"
	dboutbox "accounts/internal/db/outbox"
	uow "accounts/internal/db/unit_of_work"
	dbuser "accounts/internal/db/user"
	"accounts/internal/implementations/email"
	"accounts/internal/implementations/logging"
	randomstringgenerator "accounts/internal/implementations/random_string_generator"
	"accounts/internal/rabbitmq"
	"accounts/internal/rabbitmq/publishers/notification"
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB       *pgxpool.Pool
	Rabbitmq *rabbitmq.Connection

	Now func() time.Time

	UnitOfWork                duow.UnitOfWork
	UserRepository            user.UserRepository
	ActivationTokenRepository user.ActivationTokenRepository
	ProfileRepository         user.ProfileRepository
	OutboxRepository          outbox.Repository

	EmailSender           *email.EmailSender
	ActivationEmailSender user.ActivationEmailSender

	ActivationTokenGenerator user.ActivationTokenGenerator

	NotificationPublisher outbox.Publisher
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRabbitmqConn := deps.initRabbitmqConnection()

	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	deps.UserRepository = dbuser.NewPgxRepository(deps.DB)
	deps.ActivationTokenRepository = dbuser.NewPgxActivationTokenRepository(deps.DB)
	deps.ProfileRepository = dbuser.NewPgxProfileRepository(deps.DB)
	deps.OutboxRepository = dboutbox.NewPgxOutboxRepository(deps.DB)

	deps.EmailSender = email.NewEmailSender(
		deps.AwsConfig,
		deps.Config.AwsEmailSender,
		deps.Config.AwsEmailActivateAccountTemplate,
		deps.Config.AwsEmailActivationUrl,
	)
	deps.ActivationEmailSender = deps.EmailSender

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.ActivationTokenGenerator = randomstringgenerator.NewGenerator()

	closeNotificationPublisher := deps.initNotificationPublisher()

	return deps, func() {
		closeFuncs := []func(){
			closeNotificationPublisher,
			closeRabbitmqConn,
			closePgxPool,
			closeLogger,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initNotificationPublisher() func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	err = rabbitmqChannel.ExchangeDeclare(
		deps.Config.RabbitmqNotificationExchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ exchange.", dl.Entry("err", err))
		panic(err)
	}
	_, err = rabbitmqChannel.QueueDeclare(deps.Config.RabbitmqActivationEmailQueue, true, false, false, false, nil)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}
	if err := rabbitmqChannel.QueueBind(
		deps.Config.RabbitmqActivationEmailQueue,
		string(outbox.KindActivationEmail),
		deps.Config.RabbitmqNotificationExchange,
		false,
		nil,
	); err != nil {
		deps.Logger.Error(context.Background(), "Could not bind queue to RabbitMQ exchange.", dl.Entry("err", err))
		panic(err)
	}

	deps.NotificationPublisher = notification.NewRabbitMQ(
		deps.Logger,
		rabbitmqChannel,
		deps.Config.RabbitmqNotificationExchange,
	)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down notification publisher.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Notification publisher shut down.")
	}
}
