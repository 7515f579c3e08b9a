package models

import "time"

type Show struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StartTime time.Time `gorm:"not null;index" json:"start_time"`
	ArtistID  uint      `gorm:"not null;index" json:"artist_id"`
	VenueID   uint      `gorm:"not null;index" json:"venue_id"`
	CreatedAt time.Time `json:"created_at"`
}

// IsUpcoming reports whether the show starts strictly after now.
// A show starting exactly at now counts as past.
func IsUpcoming(startTime, now time.Time) bool {
	return startTime.After(now)
}

// ShowListing is a show joined with the display fields of its venue and artist.
type ShowListing struct {
	ShowID          uint      `json:"show_id"`
	StartTime       time.Time `json:"start_time"`
	VenueID         uint      `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	VenueImageLink  string    `json:"venue_image_link"`
	ArtistID        uint      `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
}
