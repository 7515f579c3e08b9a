package repository

import (
	"context"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArtistRepository interface {
	Create(ctx context.Context, artist *models.Artist) error
	Update(ctx context.Context, id uint, changes *models.Artist) (*models.Artist, error)
	FindByID(ctx context.Context, id uint) (*models.Artist, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Artist, error)
	FindAll(ctx context.Context) ([]models.Artist, error)
	SearchByName(ctx context.Context, term string) ([]models.Artist, error)
}

type artistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) Create(ctx context.Context, artist *models.Artist) error {
	return wrapErr(r.db.WithContext(ctx).Create(artist).Error, "create artist")
}

// Update locks the artist row, copies every editable field from changes and
// writes them back in one transaction. A artist that is gone, or disappears
// before the write, is reported as ErrNotFound and is never re-inserted.
func (r *artistRepository) Update(ctx context.Context, id uint, changes *models.Artist) (*models.Artist, error) {
	var updated *models.Artist

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		artist, err := r.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		artist.Assign(changes)
		result := tx.WithContext(ctx).
			Model(artist).
			Select("*").
			Omit("id", "created_at", clause.Associations).
			Updates(artist)
		if result.Error != nil {
			return wrapErr(result.Error, "update artist")
		}
		if result.RowsAffected == 0 {
			return wrapErr(gorm.ErrRecordNotFound, "update artist")
		}

		updated = artist
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *artistRepository) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.WithContext(ctx).First(&artist, id).Error; err != nil {
		return nil, wrapErr(err, "find artist")
	}
	return &artist, nil
}

// FindByIDForUpdate acquires a row-level lock on the artist within the given transaction.
func (r *artistRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Artist, error) {
	var artist models.Artist
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&artist, id).Error; err != nil {
		return nil, wrapErr(err, "lock artist")
	}
	return &artist, nil
}

func (r *artistRepository) FindAll(ctx context.Context) ([]models.Artist, error) {
	var artists []models.Artist
	if err := r.db.WithContext(ctx).
		Select("id", "name").
		Order("id ASC").
		Find(&artists).Error; err != nil {
		return nil, wrapErr(err, "list artists")
	}
	return artists, nil
}

func (r *artistRepository) SearchByName(ctx context.Context, term string) ([]models.Artist, error) {
	var artists []models.Artist
	if err := r.db.WithContext(ctx).
		Where("name ILIKE ?", containsPattern(term)).
		Order("name ASC, id ASC").
		Find(&artists).Error; err != nil {
		return nil, wrapErr(err, "search artists")
	}
	return artists, nil
}
