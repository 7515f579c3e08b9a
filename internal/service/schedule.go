package service

import (
	"time"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
)

// ListingSummary is one row of a listing or search result.
type ListingSummary struct {
	ID               uint
	Name             string
	NumUpcomingShows int64
}

// Area groups the venues sharing one (city, state) pair.
type Area struct {
	City   string
	State  string
	Venues []ListingSummary
}

type SearchResult struct {
	Count int
	Data  []ListingSummary
}

// Schedule is a set of shows split around a reference instant.
type Schedule struct {
	Past     []models.ShowListing
	Upcoming []models.ShowListing
}

func (s Schedule) PastCount() int     { return len(s.Past) }
func (s Schedule) UpcomingCount() int { return len(s.Upcoming) }

// Partition splits listings into past and upcoming in a single pass,
// preserving their order.
func Partition(listings []models.ShowListing, now time.Time) Schedule {
	s := Schedule{
		Past:     []models.ShowListing{},
		Upcoming: []models.ShowListing{},
	}
	for _, l := range listings {
		if models.IsUpcoming(l.StartTime, now) {
			s.Upcoming = append(s.Upcoming, l)
		} else {
			s.Past = append(s.Past, l)
		}
	}
	return s
}

type VenueDetail struct {
	Venue *models.Venue
	Schedule
}

type ArtistDetail struct {
	Artist *models.Artist
	Schedule
}
