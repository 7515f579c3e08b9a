// Package seed loads the demo venues, artists and shows.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/service"
	"github.com/rs/zerolog/log"
)

type showSeed struct {
	venue  int
	artist int
	start  time.Time
}

func venues() []*models.Venue {
	return []*models.Venue{
		{
			Name:               "The Musical Hop",
			Genres:             "Jazz,Reggae,Swing,Classical,Folk",
			Address:            "1015 Folsom Street",
			City:               "San Francisco",
			State:              "CA",
			Phone:              "123-123-1234",
			WebsiteLink:        "https://www.themusicalhop.com",
			FacebookLink:       "https://www.facebook.com/TheMusicalHop",
			SeekingTalent:      true,
			SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
			ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?w=400",
		},
		{
			Name:         "The Dueling Pianos Bar",
			Genres:       "Classical,R&B,Hip-Hop",
			Address:      "335 Delancey Street",
			City:         "New York",
			State:        "NY",
			Phone:        "914-003-1132",
			WebsiteLink:  "https://www.theduelingpianos.com",
			FacebookLink: "https://www.facebook.com/theduelingpianos",
			ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?w=750",
		},
		{
			Name:         "Park Square Live Music & Coffee",
			Genres:       "Rock n Roll,Jazz,Classical,Folk",
			Address:      "34 Whiskey Moore Ave",
			City:         "San Francisco",
			State:        "CA",
			Phone:        "415-000-1234",
			WebsiteLink:  "https://www.parksquarelivemusicandcoffee.com",
			FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
			ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?w=747",
		},
	}
}

func artists() []*models.Artist {
	return []*models.Artist{
		{
			Name:               "Guns N Petals",
			Genres:             "Rock n Roll",
			City:               "San Francisco",
			State:              "CA",
			Phone:              "326-123-5000",
			WebsiteLink:        "https://www.gunsnpetalsband.com",
			FacebookLink:       "https://www.facebook.com/GunsNPetals",
			SeekingVenue:       true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
			ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?w=300",
		},
		{
			Name:         "Matt Quevedo",
			Genres:       "Jazz",
			City:         "New York",
			State:        "NY",
			Phone:        "300-400-5000",
			FacebookLink: "https://www.facebook.com/mattquevedo923251523",
			ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?w=334",
		},
		{
			Name:      "The Wild Sax Band",
			Genres:    "Jazz,Classical",
			City:      "San Francisco",
			State:     "CA",
			Phone:     "432-325-5432",
			ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?w=794",
		},
	}
}

// shows pairs seeded venues and artists by index. Two shows lie in the past
// and three in the future relative to now.
func shows(now time.Time) []showSeed {
	day := 24 * time.Hour
	at := func(d time.Duration) time.Time { return now.Add(d).Truncate(time.Hour) }
	return []showSeed{
		{venue: 0, artist: 0, start: at(-400 * day)},
		{venue: 2, artist: 1, start: at(-300 * day)},
		{venue: 2, artist: 2, start: at(30 * day)},
		{venue: 2, artist: 2, start: at(37 * day)},
		{venue: 2, artist: 2, start: at(44 * day)},
	}
}

// Run inserts the demo data unless venues already exist.
func Run(ctx context.Context, venueSvc service.VenueService, artistSvc service.ArtistService, showSvc service.ShowService, now time.Time) error {
	areas, err := venueSvc.ListAreas(ctx)
	if err != nil {
		return fmt.Errorf("check existing venues: %w", err)
	}
	if len(areas) > 0 {
		log.Info().Msg("venues already present, skipping seed")
		return nil
	}

	vs := venues()
	for _, v := range vs {
		if err := venueSvc.CreateVenue(ctx, v); err != nil {
			return fmt.Errorf("seed venue %s: %w", v.Name, err)
		}
	}

	as := artists()
	for _, a := range as {
		if err := artistSvc.CreateArtist(ctx, a); err != nil {
			return fmt.Errorf("seed artist %s: %w", a.Name, err)
		}
	}

	seeds := shows(now)
	for _, s := range seeds {
		show := &models.Show{VenueID: vs[s.venue].ID, ArtistID: as[s.artist].ID, StartTime: s.start}
		if err := showSvc.CreateShow(ctx, show); err != nil {
			return fmt.Errorf("seed show: %w", err)
		}
	}

	log.Info().Int("venues", len(vs)).Int("artists", len(as)).Int("shows", len(seeds)).Msg("seeded demo data")
	return nil
}
