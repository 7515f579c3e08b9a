package models

import "time"

type Venue struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"not null" json:"name"`
	City               string    `gorm:"size:120;not null;index:idx_venues_place" json:"city"`
	State              string    `gorm:"size:120;not null;index:idx_venues_place" json:"state"`
	Address            string    `gorm:"size:120;not null" json:"address"`
	Phone              string    `gorm:"size:120" json:"phone"`
	Genres             string    `gorm:"type:text;not null" json:"genres"`
	ImageLink          string    `gorm:"size:500" json:"image_link"`
	FacebookLink       string    `gorm:"size:120" json:"facebook_link"`
	WebsiteLink        string    `gorm:"size:120" json:"website_link"`
	SeekingTalent      bool      `gorm:"not null;default:false" json:"seeking_talent"`
	SeekingDescription string    `gorm:"size:120" json:"seeking_description"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Shows []Show `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE" json:"-"`
}

// Assign overwrites every user-editable field with the values from src.
func (v *Venue) Assign(src *Venue) {
	v.Name = src.Name
	v.City = src.City
	v.State = src.State
	v.Address = src.Address
	v.Phone = src.Phone
	v.Genres = src.Genres
	v.ImageLink = src.ImageLink
	v.FacebookLink = src.FacebookLink
	v.WebsiteLink = src.WebsiteLink
	v.SeekingTalent = src.SeekingTalent
	v.SeekingDescription = src.SeekingDescription
}
