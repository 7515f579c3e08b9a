package models

import "time"

type ActivityKind string

const (
	KindVenue  ActivityKind = "venue"
	KindArtist ActivityKind = "artist"
	KindShow   ActivityKind = "show"
)

type ActivityAction string

const (
	ActionCreated ActivityAction = "created"
	ActionUpdated ActivityAction = "updated"
	ActionDeleted ActivityAction = "deleted"
)

// Activity records a successful listing write. It doubles as the message
// payload published to the broker.
type Activity struct {
	ID         uint           `gorm:"primaryKey" json:"-"`
	Kind       ActivityKind   `gorm:"type:varchar(20);not null;uniqueIndex:idx_activity_event" json:"kind"`
	Action     ActivityAction `gorm:"type:varchar(20);not null;uniqueIndex:idx_activity_event" json:"action"`
	EntityID   uint           `gorm:"not null;uniqueIndex:idx_activity_event" json:"entity_id"`
	Name       string         `gorm:"not null" json:"name"`
	OccurredAt time.Time      `gorm:"not null;uniqueIndex:idx_activity_event;index" json:"occurred_at"`
}

func NewActivity(kind ActivityKind, action ActivityAction, entityID uint, name string, at time.Time) *Activity {
	return &Activity{
		Kind:       kind,
		Action:     action,
		EntityID:   entityID,
		Name:       name,
		OccurredAt: at.UTC(),
	}
}

// RoutingKey is the broker routing key, e.g. "venue.created".
func (a *Activity) RoutingKey() string {
	return string(a.Kind) + "." + string(a.Action)
}
