package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/repository"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

var errMalformed = errors.New("malformed activity")

type ActivityConsumer struct {
	repo repository.ActivityRepository
}

func NewActivityConsumer(repo repository.ActivityRepository) *ActivityConsumer {
	return &ActivityConsumer{repo: repo}
}

// Start stores every delivery in a background goroutine. The returned
// channel is closed once msgs is drained.
func (ac *ActivityConsumer) Start(ctx context.Context, msgs <-chan amqp.Delivery) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range msgs {
			ac.handleMessage(ctx, msg)
		}
		log.Info().Msg("activity channel closed, stopping consumer")
	}()
	return done
}

func (ac *ActivityConsumer) handleMessage(ctx context.Context, msg amqp.Delivery) {
	activity, err := decodeActivity(msg.Body)
	if err != nil {
		log.Error().Err(err).Str("routing_key", msg.RoutingKey).Msg("dropping activity")
		_ = msg.Nack(false, false)
		return
	}

	if err := ac.repo.Record(ctx, activity); err != nil {
		log.Error().Err(err).
			Str("routing_key", msg.RoutingKey).
			Uint("entity_id", activity.EntityID).
			Msg("failed to store activity")
		_ = msg.Nack(false, true) // requeue
		return
	}

	log.Debug().Str("routing_key", activity.RoutingKey()).Uint("entity_id", activity.EntityID).Msg("stored activity")
	_ = msg.Ack(false)
}

func decodeActivity(body []byte) (*models.Activity, error) {
	var activity models.Activity
	if err := json.Unmarshal(body, &activity); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformed, err)
	}

	switch activity.Kind {
	case models.KindVenue, models.KindArtist, models.KindShow:
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", errMalformed, activity.Kind)
	}
	switch activity.Action {
	case models.ActionCreated, models.ActionUpdated, models.ActionDeleted:
	default:
		return nil, fmt.Errorf("%w: unknown action %q", errMalformed, activity.Action)
	}
	if activity.EntityID == 0 || activity.OccurredAt.IsZero() {
		return nil, fmt.Errorf("%w: missing entity id or time", errMalformed)
	}

	activity.ID = 0
	return &activity, nil
}
