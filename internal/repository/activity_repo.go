package repository

import (
	"context"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ActivityRepository interface {
	Record(ctx context.Context, activity *models.Activity) error
	Recent(ctx context.Context, kind models.ActivityKind, action models.ActivityAction, limit int) ([]models.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// Record stores an activity once; a redelivered message is a no-op.
func (r *activityRepository) Record(ctx context.Context, activity *models.Activity) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(activity).Error
	return wrapErr(err, "record activity")
}

// Recent returns the latest activities of one kind and action. Entities that
// have since been deleted are left out, and each entry carries the newest
// name recorded for its entity.
func (r *activityRepository) Recent(ctx context.Context, kind models.ActivityKind, action models.ActivityAction, limit int) ([]models.Activity, error) {
	latestName := r.db.
		Table("activities AS n").
		Select("n.name").
		Where("n.kind = a.kind AND n.entity_id = a.entity_id").
		Order("n.occurred_at DESC, n.id DESC").
		Limit(1)
	deleted := r.db.
		Table("activities AS d").
		Select("1").
		Where("d.kind = a.kind AND d.entity_id = a.entity_id AND d.action = ?", models.ActionDeleted)

	var activities []models.Activity
	if err := r.db.WithContext(ctx).
		Table("activities AS a").
		Select("a.id, a.kind, a.action, a.entity_id, a.occurred_at, COALESCE((?), a.name) AS name", latestName).
		Where("a.kind = ? AND a.action = ?", kind, action).
		Where("NOT EXISTS (?)", deleted).
		Order("a.occurred_at DESC, a.id DESC").
		Limit(limit).
		Find(&activities).Error; err != nil {
		return nil, wrapErr(err, "recent activity")
	}
	return activities, nil
}
