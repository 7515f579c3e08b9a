package service

import (
	"context"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/monitoring"
	"github.com/rs/zerolog/log"
)

// EventPublisher delivers listing activity to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// announce counts a committed write and publishes it. Broker failures are
// logged and never fail the request.
func announce(ctx context.Context, publisher EventPublisher, activity *models.Activity) {
	monitoring.TrackListingWrite(string(activity.Kind), string(activity.Action))

	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, activity.RoutingKey(), activity); err != nil {
		log.Warn().Err(err).
			Str("routing_key", activity.RoutingKey()).
			Uint("entity_id", activity.EntityID).
			Msg("failed to publish activity")
	}
}
