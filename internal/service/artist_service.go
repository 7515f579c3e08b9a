package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/repository"
)

type ArtistService interface {
	ListArtists(ctx context.Context) ([]models.Artist, error)
	SearchArtists(ctx context.Context, term string) (*SearchResult, error)
	GetArtist(ctx context.Context, id uint) (*models.Artist, error)
	GetArtistDetail(ctx context.Context, id uint) (*ArtistDetail, error)
	CreateArtist(ctx context.Context, artist *models.Artist) error
	UpdateArtist(ctx context.Context, id uint, changes *models.Artist) (*models.Artist, error)
}

type artistService struct {
	artistRepo repository.ArtistRepository
	showRepo   repository.ShowRepository
	publisher  EventPublisher
	now        func() time.Time
}

func NewArtistService(artistRepo repository.ArtistRepository, showRepo repository.ShowRepository, publisher EventPublisher) ArtistService {
	return &artistService{
		artistRepo: artistRepo,
		showRepo:   showRepo,
		publisher:  publisher,
		now:        time.Now,
	}
}

func (s *artistService) ListArtists(ctx context.Context) ([]models.Artist, error) {
	return s.artistRepo.FindAll(ctx)
}

func (s *artistService) SearchArtists(ctx context.Context, term string) (*SearchResult, error) {
	artists, err := s.artistRepo.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(artists))
	for i, a := range artists {
		ids[i] = a.ID
	}
	counts, err := s.showRepo.CountUpcomingByArtist(ctx, ids, s.now())
	if err != nil {
		return nil, err
	}

	result := &SearchResult{Count: len(artists), Data: make([]ListingSummary, 0, len(artists))}
	for _, a := range artists {
		result.Data = append(result.Data, ListingSummary{ID: a.ID, Name: a.Name, NumUpcomingShows: counts[a.ID]})
	}
	return result, nil
}

func (s *artistService) GetArtist(ctx context.Context, id uint) (*models.Artist, error) {
	artist, err := s.artistRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return artist, nil
}

func (s *artistService) GetArtistDetail(ctx context.Context, id uint) (*ArtistDetail, error) {
	artist, err := s.GetArtist(ctx, id)
	if err != nil {
		return nil, err
	}

	listings, err := s.showRepo.FindListings(ctx, repository.ShowFilter{ArtistID: artist.ID})
	if err != nil {
		return nil, err
	}

	return &ArtistDetail{Artist: artist, Schedule: Partition(listings, s.now())}, nil
}

func (s *artistService) CreateArtist(ctx context.Context, artist *models.Artist) error {
	if err := s.artistRepo.Create(ctx, artist); err != nil {
		return fmt.Errorf("create artist: %w", err)
	}

	announce(ctx, s.publisher, models.NewActivity(models.KindArtist, models.ActionCreated, artist.ID, artist.Name, s.now()))
	return nil
}

func (s *artistService) UpdateArtist(ctx context.Context, id uint, changes *models.Artist) (*models.Artist, error) {
	artist, err := s.artistRepo.Update(ctx, id, changes)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, fmt.Errorf("update artist: %w", err)
	}

	announce(ctx, s.publisher, models.NewActivity(models.KindArtist, models.ActionUpdated, artist.ID, artist.Name, s.now()))
	return artist, nil
}
