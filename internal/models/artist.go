package models

import "time"

type Artist struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"not null" json:"name"`
	City               string    `gorm:"size:120;not null" json:"city"`
	State              string    `gorm:"size:120;not null" json:"state"`
	Phone              string    `gorm:"size:120" json:"phone"`
	Genres             string    `gorm:"type:text" json:"genres"`
	ImageLink          string    `gorm:"size:500" json:"image_link"`
	FacebookLink       string    `gorm:"size:120" json:"facebook_link"`
	WebsiteLink        string    `gorm:"size:120" json:"website_link"`
	SeekingVenue       bool      `gorm:"not null;default:false" json:"seeking_venue"`
	SeekingDescription string    `gorm:"size:120" json:"seeking_description"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Shows []Show `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE" json:"-"`
}

// Assign overwrites every user-editable field with the values from src.
func (a *Artist) Assign(src *Artist) {
	a.Name = src.Name
	a.City = src.City
	a.State = src.State
	a.Phone = src.Phone
	a.Genres = src.Genres
	a.ImageLink = src.ImageLink
	a.FacebookLink = src.FacebookLink
	a.WebsiteLink = src.WebsiteLink
	a.SeekingVenue = src.SeekingVenue
	a.SeekingDescription = src.SeekingDescription
}
