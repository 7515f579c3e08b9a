package repository

import (
	"context"
	"time"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
	"gorm.io/gorm"
)

// ShowFilter narrows a listing query. Zero values mean "any".
type ShowFilter struct {
	VenueID  uint
	ArtistID uint
}

type ShowRepository interface {
	Create(ctx context.Context, tx *gorm.DB, show *models.Show) error
	FindListings(ctx context.Context, filter ShowFilter) ([]models.ShowListing, error)
	CountUpcomingByVenue(ctx context.Context, venueIDs []uint, now time.Time) (map[uint]int64, error)
	CountUpcomingByArtist(ctx context.Context, artistIDs []uint, now time.Time) (map[uint]int64, error)
	Count(ctx context.Context) (int64, error)
}

type showRepository struct {
	db *gorm.DB
}

func NewShowRepository(db *gorm.DB) ShowRepository {
	return &showRepository{db: db}
}

func (r *showRepository) Create(ctx context.Context, tx *gorm.DB, show *models.Show) error {
	return wrapErr(tx.WithContext(ctx).Create(show).Error, "create show")
}

// FindListings joins every matching show with its venue and artist in a single query.
func (r *showRepository) FindListings(ctx context.Context, filter ShowFilter) ([]models.ShowListing, error) {
	q := r.db.WithContext(ctx).
		Table("shows").
		Select(`shows.id AS show_id,
			shows.start_time,
			shows.venue_id,
			venues.name AS venue_name,
			venues.image_link AS venue_image_link,
			shows.artist_id,
			artists.name AS artist_name,
			artists.image_link AS artist_image_link`).
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Joins("JOIN artists ON artists.id = shows.artist_id")
	if filter.VenueID != 0 {
		q = q.Where("shows.venue_id = ?", filter.VenueID)
	}
	if filter.ArtistID != 0 {
		q = q.Where("shows.artist_id = ?", filter.ArtistID)
	}

	var listings []models.ShowListing
	if err := q.Order("shows.start_time ASC, shows.id ASC").Scan(&listings).Error; err != nil {
		return nil, wrapErr(err, "list shows")
	}
	return listings, nil
}

func (r *showRepository) CountUpcomingByVenue(ctx context.Context, venueIDs []uint, now time.Time) (map[uint]int64, error) {
	return r.countUpcoming(ctx, "venue_id", venueIDs, now)
}

func (r *showRepository) CountUpcomingByArtist(ctx context.Context, artistIDs []uint, now time.Time) (map[uint]int64, error) {
	return r.countUpcoming(ctx, "artist_id", artistIDs, now)
}

func (r *showRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Show{}).Count(&n).Error
	return n, wrapErr(err, "count shows")
}

type upcomingCount struct {
	OwnerID uint
	Total   int64
}

// countUpcoming counts shows starting strictly after now, grouped by column.
// column is always one of the two literal foreign key names above.
func (r *showRepository) countUpcoming(ctx context.Context, column string, ids []uint, now time.Time) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	var rows []upcomingCount
	err := r.db.WithContext(ctx).
		Model(&models.Show{}).
		Select(column+" AS owner_id, COUNT(*) AS total").
		Where(column+" IN ? AND start_time > ?", ids, now).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, wrapErr(err, "count upcoming shows")
	}

	for _, row := range rows {
		counts[row.OwnerID] = row.Total
	}
	return counts, nil
}
