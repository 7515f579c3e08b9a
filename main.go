package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Eursukkul/booking-microservice/directory-service/config"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/handler"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/middleware"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/monitoring"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/repository"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/service"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/view"
	"github.com/Eursukkul/booking-microservice/directory-service/pkg/database"
	"github.com/Eursukkul/booking-microservice/directory-service/pkg/flash"
	"github.com/Eursukkul/booking-microservice/directory-service/pkg/logger"
	"github.com/Eursukkul/booking-microservice/directory-service/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	logFile, err := logger.Setup(cfg.Debug, cfg.LogFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up logging")
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := database.NewPostgresDB(cfg.DSN())

	// Publishing is optional; without a broker the activity feed stays empty.
	var publisher service.EventPublisher
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
		}
		defer p.Close()
		publisher = p
	} else {
		log.Warn().Msg("RABBITMQ_URL not set, activity publishing disabled")
	}

	var flashes flash.Store = flash.NewCookieStore()
	if cfg.RedisURL != "" {
		client, err := database.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer client.Close()
		flashes = flash.NewRedisStore(client, cfg.FlashTTL)
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load templates")
	}

	// Repositories
	venueRepo := repository.NewVenueRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	showRepo := repository.NewShowRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// Services
	venueSvc := service.NewVenueService(venueRepo, showRepo, publisher)
	artistSvc := service.NewArtistService(artistRepo, showRepo, publisher)
	showSvc := service.NewShowService(showRepo, venueRepo, artistRepo, publisher)
	activitySvc := service.NewActivityService(activityRepo)

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.Debug
	e.Renderer = renderer
	e.HTTPErrorHandler = middleware.NewErrorHandler(flashes)
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(monitoring.Middleware())

	e.GET("/health", func(c echo.Context) error {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request().Context())
		}
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "service": "directory-service"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "directory-service"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handler.NewHomeHandler(activitySvc, flashes).RegisterRoutes(e)
	handler.NewVenueHandler(venueSvc, flashes).RegisterRoutes(e.Group("/venues"))
	handler.NewArtistHandler(artistSvc, flashes).RegisterRoutes(e.Group("/artists"))
	handler.NewShowHandler(showSvc, flashes).RegisterRoutes(e.Group("/shows"))

	go func() {
		log.Info().Str("port", cfg.ServerPort).Msg("directory service starting")
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
