package main

import (
	"context"
	"time"

	"github.com/Eursukkul/booking-microservice/directory-service/config"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/repository"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/seed"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/service"
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

	db := database.NewPostgresDB(cfg.DSN())

	// Seeded listings show up in the activity feed when a broker is configured.
	var publisher service.EventPublisher
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
		}
		defer p.Close()
		publisher = p
	}

	venueRepo := repository.NewVenueRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	showRepo := repository.NewShowRepository(db)

	err = seed.Run(context.Background(),
		service.NewVenueService(venueRepo, showRepo, publisher),
		service.NewArtistService(artistRepo, showRepo, publisher),
		service.NewShowService(showRepo, venueRepo, artistRepo, publisher),
		time.Now(),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
}
