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

type VenueService interface {
	ListAreas(ctx context.Context) ([]Area, error)
	SearchVenues(ctx context.Context, term string) (*SearchResult, error)
	GetVenue(ctx context.Context, id uint) (*models.Venue, error)
	GetVenueDetail(ctx context.Context, id uint) (*VenueDetail, error)
	CreateVenue(ctx context.Context, venue *models.Venue) error
	UpdateVenue(ctx context.Context, id uint, changes *models.Venue) (*models.Venue, error)
	DeleteVenue(ctx context.Context, id uint) (*models.Venue, error)
}

type venueService struct {
	venueRepo repository.VenueRepository
	showRepo  repository.ShowRepository
	publisher EventPublisher
	now       func() time.Time
}

func NewVenueService(venueRepo repository.VenueRepository, showRepo repository.ShowRepository, publisher EventPublisher) VenueService {
	return &venueService{
		venueRepo: venueRepo,
		showRepo:  showRepo,
		publisher: publisher,
		now:       time.Now,
	}
}

// ListAreas groups every venue by exact (city, state) and attaches the
// number of upcoming shows of each venue.
func (s *venueService) ListAreas(ctx context.Context) ([]Area, error) {
	venues, err := s.venueRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.showRepo.CountUpcomingByVenue(ctx, venueIDs(venues), s.now())
	if err != nil {
		return nil, err
	}

	areas := []Area{}
	index := make(map[[2]string]int)
	for _, v := range venues {
		key := [2]string{v.City, v.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, Area{City: v.City, State: v.State})
		}
		areas[i].Venues = append(areas[i].Venues, ListingSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: counts[v.ID],
		})
	}
	return areas, nil
}

func (s *venueService) SearchVenues(ctx context.Context, term string) (*SearchResult, error) {
	venues, err := s.venueRepo.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}

	counts, err := s.showRepo.CountUpcomingByVenue(ctx, venueIDs(venues), s.now())
	if err != nil {
		return nil, err
	}

	result := &SearchResult{Count: len(venues), Data: make([]ListingSummary, 0, len(venues))}
	for _, v := range venues {
		result.Data = append(result.Data, ListingSummary{ID: v.ID, Name: v.Name, NumUpcomingShows: counts[v.ID]})
	}
	return result, nil
}

func (s *venueService) GetVenue(ctx context.Context, id uint) (*models.Venue, error) {
	venue, err := s.venueRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return venue, nil
}

func (s *venueService) GetVenueDetail(ctx context.Context, id uint) (*VenueDetail, error) {
	venue, err := s.GetVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	listings, err := s.showRepo.FindListings(ctx, repository.ShowFilter{VenueID: venue.ID})
	if err != nil {
		return nil, err
	}

	return &VenueDetail{Venue: venue, Schedule: Partition(listings, s.now())}, nil
}

func (s *venueService) CreateVenue(ctx context.Context, venue *models.Venue) error {
	if err := s.venueRepo.Create(ctx, venue); err != nil {
		return fmt.Errorf("create venue: %w", err)
	}

	announce(ctx, s.publisher, models.NewActivity(models.KindVenue, models.ActionCreated, venue.ID, venue.Name, s.now()))
	return nil
}

// UpdateVenue overwrites every editable field of the venue. The id and the
// venue's shows are left untouched.
func (s *venueService) UpdateVenue(ctx context.Context, id uint, changes *models.Venue) (*models.Venue, error) {
	venue, err := s.venueRepo.Update(ctx, id, changes)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("update venue: %w", err)
	}

	announce(ctx, s.publisher, models.NewActivity(models.KindVenue, models.ActionUpdated, venue.ID, venue.Name, s.now()))
	return venue, nil
}

// DeleteVenue removes the venue and, through the cascading foreign key, all
// of its shows. It returns the deleted venue.
func (s *venueService) DeleteVenue(ctx context.Context, id uint) (*models.Venue, error) {
	var deleted *models.Venue

	err := s.venueRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		venue, err := s.venueRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrVenueNotFound
			}
			return err
		}

		if err := s.venueRepo.Delete(ctx, tx, venue.ID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrVenueNotFound
			}
			return err
		}

		deleted = venue
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("delete venue: %w", err)
	}

	announce(ctx, s.publisher, models.NewActivity(models.KindVenue, models.ActionDeleted, deleted.ID, deleted.Name, s.now()))
	return deleted, nil
}

func venueIDs(venues []models.Venue) []uint {
	ids := make([]uint, len(venues))
	for i, v := range venues {
		ids[i] = v.ID
	}
	return ids
}
