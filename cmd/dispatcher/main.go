package main

import (
	"accounts/internal/app/consumers"
	"accounts/internal/app/deps"
	"accounts/internal/app/services"
	"accounts/internal/core/domain/logging"
	relayoutbox "accounts/internal/core/services/relay_outbox"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	log := deps.Logger
	defer shutdownDeps()

	services := services.InitServices(deps)

	shutdownConsumers := consumers.InitConsumers(deps, services)
	defer shutdownConsumers()

	ticker := time.NewTicker(deps.Config.OutboxRelayPeriod)
	defer ticker.Stop()

	stopCh, closeCh := createChannel()
	defer closeCh()

	log.Info(
		context.Background(),
		"Starting periodic outbox relay.",
		logging.Entry("periodSeconds", (deps.Config.OutboxRelayPeriod).Seconds()),
	)

loop:
	for {
		select {
		case <-stopCh:
			log.Info(context.Background(), "Stopping periodic outbox relay.")
			break loop
		case <-ticker.C:
			_, err := services.RelayOutbox.Run(context.Background(), relayoutbox.Input{})
			if err != nil {
				log.Error(context.Background(), "Outbox relay returned an error.", logging.Entry("err", err))
			}
		}
	}
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
