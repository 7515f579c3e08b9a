package service

import (
	"context"
	"time"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/repository"
	"gorm.io/gorm"
)

// --- Mock VenueRepository ---

type mockVenueRepo struct {
	createFn   func(ctx context.Context, venue *models.Venue) error
	writeFn    func(ctx context.Context, venue *models.Venue) error
	findByIDFn func(ctx context.Context, id uint) (*models.Venue, error)
	findAllFn  func(ctx context.Context) ([]models.Venue, error)
	searchFn   func(ctx context.Context, term string) ([]models.Venue, error)
}

func (m *mockVenueRepo) Create(ctx context.Context, venue *models.Venue) error {
	return m.createFn(ctx, venue)
}

// Update mirrors the locked read-modify-write of the real repository.
func (m *mockVenueRepo) Update(ctx context.Context, id uint, changes *models.Venue) (*models.Venue, error) {
	venue, err := m.findByIDFn(ctx, id)
	if err != nil {
		return nil, err
	}
	venue.Assign(changes)
	if m.writeFn != nil {
		if err := m.writeFn(ctx, venue); err != nil {
			return nil, err
		}
	}
	return venue, nil
}
func (m *mockVenueRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error { return nil }
func (m *mockVenueRepo) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockVenueRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Venue, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockVenueRepo) FindAll(ctx context.Context) ([]models.Venue, error) {
	return m.findAllFn(ctx)
}
func (m *mockVenueRepo) SearchByName(ctx context.Context, term string) ([]models.Venue, error) {
	return m.searchFn(ctx, term)
}
func (m *mockVenueRepo) GetDB() *gorm.DB { return nil }

// --- Mock ArtistRepository ---

type mockArtistRepo struct {
	createFn   func(ctx context.Context, artist *models.Artist) error
	writeFn    func(ctx context.Context, artist *models.Artist) error
	findByIDFn func(ctx context.Context, id uint) (*models.Artist, error)
	findAllFn  func(ctx context.Context) ([]models.Artist, error)
	searchFn   func(ctx context.Context, term string) ([]models.Artist, error)
}

func (m *mockArtistRepo) Create(ctx context.Context, artist *models.Artist) error {
	return m.createFn(ctx, artist)
}

// Update mirrors the locked read-modify-write of the real repository.
func (m *mockArtistRepo) Update(ctx context.Context, id uint, changes *models.Artist) (*models.Artist, error) {
	artist, err := m.findByIDFn(ctx, id)
	if err != nil {
		return nil, err
	}
	artist.Assign(changes)
	if m.writeFn != nil {
		if err := m.writeFn(ctx, artist); err != nil {
			return nil, err
		}
	}
	return artist, nil
}
func (m *mockArtistRepo) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockArtistRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Artist, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockArtistRepo) FindAll(ctx context.Context) ([]models.Artist, error) {
	return m.findAllFn(ctx)
}
func (m *mockArtistRepo) SearchByName(ctx context.Context, term string) ([]models.Artist, error) {
	return m.searchFn(ctx, term)
}

// --- Mock ShowRepository ---

// mockShowRepo keeps shows in memory and answers counts against them,
// so classification can be checked against a moving clock.
type mockShowRepo struct {
	listings []models.ShowListing
	listErr  error
}

func (m *mockShowRepo) Create(ctx context.Context, tx *gorm.DB, show *models.Show) error {
	return nil
}
func (m *mockShowRepo) FindListings(ctx context.Context, filter repository.ShowFilter) ([]models.ShowListing, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []models.ShowListing{}
	for _, l := range m.listings {
		if filter.VenueID != 0 && l.VenueID != filter.VenueID {
			continue
		}
		if filter.ArtistID != 0 && l.ArtistID != filter.ArtistID {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}
func (m *mockShowRepo) CountUpcomingByVenue(ctx context.Context, ids []uint, now time.Time) (map[uint]int64, error) {
	return m.count(ids, now, func(l models.ShowListing) uint { return l.VenueID }), nil
}
func (m *mockShowRepo) CountUpcomingByArtist(ctx context.Context, ids []uint, now time.Time) (map[uint]int64, error) {
	return m.count(ids, now, func(l models.ShowListing) uint { return l.ArtistID }), nil
}
func (m *mockShowRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.listings)), nil
}

func (m *mockShowRepo) count(ids []uint, now time.Time, owner func(models.ShowListing) uint) map[uint]int64 {
	wanted := make(map[uint]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	counts := map[uint]int64{}
	for _, l := range m.listings {
		if wanted[owner(l)] && models.IsUpcoming(l.StartTime, now) {
			counts[owner(l)]++
		}
	}
	return counts
}

// --- Mock EventPublisher ---

type publishedEvent struct {
	routingKey string
	payload    any
}

type mockPublisher struct {
	events []publishedEvent
	err    error
}

func (m *mockPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	m.events = append(m.events, publishedEvent{routingKey: routingKey, payload: payload})
	return m.err
}

// fixedClock returns a clock whose reading can be moved by the test.
func fixedClock(t time.Time) (func() time.Time, func(time.Duration)) {
	now := t
	return func() time.Time { return now }, func(d time.Duration) { now = now.Add(d) }
}
