package service

import (
	"context"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/repository"
)

// RecentListingsLimit is how many recent venues and artists the home page
// shows.
const RecentListingsLimit = 10

type RecentListings struct {
	Venues  []models.Activity
	Artists []models.Activity
}

type ActivityService interface {
	RecentlyListed(ctx context.Context) (*RecentListings, error)
}

type activityService struct {
	repo repository.ActivityRepository
}

func NewActivityService(repo repository.ActivityRepository) ActivityService {
	return &activityService{repo: repo}
}

func (s *activityService) RecentlyListed(ctx context.Context) (*RecentListings, error) {
	venues, err := s.repo.Recent(ctx, models.KindVenue, models.ActionCreated, RecentListingsLimit)
	if err != nil {
		return nil, err
	}
	artists, err := s.repo.Recent(ctx, models.KindArtist, models.ActionCreated, RecentListingsLimit)
	if err != nil {
		return nil, err
	}
	return &RecentListings{Venues: venues, Artists: artists}, nil
}
