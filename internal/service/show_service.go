package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/repository"
	"gorm.io/gorm"
)

type ShowService interface {
	ListShows(ctx context.Context) ([]models.ShowListing, error)
	CreateShow(ctx context.Context, show *models.Show) error
}

type showService struct {
	showRepo   repository.ShowRepository
	venueRepo  repository.VenueRepository
	artistRepo repository.ArtistRepository
	publisher  EventPublisher
	now        func() time.Time
}

func NewShowService(showRepo repository.ShowRepository, venueRepo repository.VenueRepository, artistRepo repository.ArtistRepository, publisher EventPublisher) ShowService {
	return &showService{
		showRepo:   showRepo,
		venueRepo:  venueRepo,
		artistRepo: artistRepo,
		publisher:  publisher,
		now:        time.Now,
	}
}

func (s *showService) ListShows(ctx context.Context) ([]models.ShowListing, error) {
	return s.showRepo.FindListings(ctx, repository.ShowFilter{})
}

// CreateShow books an artist at a venue. Both rows are locked for the
// duration of the insert so neither can disappear underneath it.
func (s *showService) CreateShow(ctx context.Context, show *models.Show) error {
	var venue *models.Venue
	var artist *models.Artist

	err := s.venueRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		venue, err = s.venueRepo.FindByIDForUpdate(ctx, tx, show.VenueID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrVenueNotFound
			}
			return err
		}

		artist, err = s.artistRepo.FindByIDForUpdate(ctx, tx, show.ArtistID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrArtistNotFound
			}
			return err
		}

		return s.showRepo.Create(ctx, tx, show)
	})
	if err != nil {
		if errors.Is(err, ErrVenueNotFound) || errors.Is(err, ErrArtistNotFound) {
			return err
		}
		return fmt.Errorf("create show: %w", err)
	}

	announce(ctx, s.publisher, models.NewActivity(models.KindShow, models.ActionCreated, show.ID,
		artist.Name+" @ "+venue.Name, s.now()))
	return nil
}
