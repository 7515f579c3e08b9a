package repository

import (
	"context"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue) error
	Update(ctx context.Context, id uint, changes *models.Venue) (*models.Venue, error)
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Venue, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Venue, error)
	FindAll(ctx context.Context) ([]models.Venue, error)
	SearchByName(ctx context.Context, term string) ([]models.Venue, error)
	GetDB() *gorm.DB
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *venueRepository) Create(ctx context.Context, venue *models.Venue) error {
	return wrapErr(r.db.WithContext(ctx).Create(venue).Error, "create venue")
}

// Update locks the venue row, copies every editable field from changes and
// writes them back in one transaction. A venue that is gone, or disappears
// before the write, is reported as ErrNotFound and is never re-inserted.
func (r *venueRepository) Update(ctx context.Context, id uint, changes *models.Venue) (*models.Venue, error) {
	var updated *models.Venue

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		venue, err := r.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		venue.Assign(changes)
		result := tx.WithContext(ctx).
			Model(venue).
			Select("*").
			Omit("id", "created_at", clause.Associations).
			Updates(venue)
		if result.Error != nil {
			return wrapErr(result.Error, "update venue")
		}
		if result.RowsAffected == 0 {
			return wrapErr(gorm.ErrRecordNotFound, "update venue")
		}

		updated = venue
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the venue; its shows go with it through the cascading foreign key.
func (r *venueRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	result := tx.WithContext(ctx).Delete(&models.Venue{}, id)
	if result.Error != nil {
		return wrapErr(result.Error, "delete venue")
	}
	if result.RowsAffected == 0 {
		return wrapErr(gorm.ErrRecordNotFound, "delete venue")
	}
	return nil
}

func (r *venueRepository) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.WithContext(ctx).First(&venue, id).Error; err != nil {
		return nil, wrapErr(err, "find venue")
	}
	return &venue, nil
}

// FindByIDForUpdate acquires a row-level lock on the venue within the given transaction.
func (r *venueRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Venue, error) {
	var venue models.Venue
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&venue, id).Error; err != nil {
		return nil, wrapErr(err, "lock venue")
	}
	return &venue, nil
}

func (r *venueRepository) FindAll(ctx context.Context) ([]models.Venue, error) {
	var venues []models.Venue
	if err := r.db.WithContext(ctx).
		Order("state ASC, city ASC, name ASC, id ASC").
		Find(&venues).Error; err != nil {
		return nil, wrapErr(err, "list venues")
	}
	return venues, nil
}

func (r *venueRepository) SearchByName(ctx context.Context, term string) ([]models.Venue, error) {
	var venues []models.Venue
	if err := r.db.WithContext(ctx).
		Where("name ILIKE ?", containsPattern(term)).
		Order("name ASC, id ASC").
		Find(&venues).Error; err != nil {
		return nil, wrapErr(err, "search venues")
	}
	return venues, nil
}
