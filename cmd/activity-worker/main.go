package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Eursukkul/booking-microservice/directory-service/config"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/consumer"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/repository"
	"github.com/Eursukkul/booking-microservice/directory-service/pkg/database"
	"github.com/Eursukkul/booking-microservice/directory-service/pkg/logger"
	"github.com/Eursukkul/booking-microservice/directory-service/pkg/rabbitmq"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	logFile, err := logger.Setup(cfg.Debug, cfg.LogFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up logging")
	}
	defer logFile.Close()

	if cfg.RabbitURL == "" {
		log.Fatal().Msg("RABBITMQ_URL is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := database.NewPostgresDB(cfg.DSN())

	mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
	}
	defer mqConsumer.Close()

	msgs, err := mqConsumer.Consume()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start consuming")
	}

	done := consumer.NewActivityConsumer(repository.NewActivityRepository(db)).Start(ctx, msgs)

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case amqpErr := <-mqConsumer.NotifyClose():
		log.Error().Interface("reason", amqpErr).Msg("broker connection closed")
	case <-done:
	}
}
