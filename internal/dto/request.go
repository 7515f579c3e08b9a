package dto

import (
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
	"github.com/go-playground/validator/v10"
)

type VenueForm struct {
	Name               string   `form:"name" validate:"required,max=120"`
	City               string   `form:"city" validate:"required,max=120"`
	State              string   `form:"state" validate:"required,usstate"`
	Address            string   `form:"address" validate:"required,max=120"`
	Phone              string   `form:"phone" validate:"omitempty,phone"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url,max=500"`
	Genres             []string `form:"genres" validate:"min=1,dive,genre"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url,max=120"`
	WebsiteLink        string   `form:"website_link" validate:"omitempty,url,max=120"`
	SeekingTalent      string   `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" validate:"max=120"`
}

type ArtistForm struct {
	Name               string   `form:"name" validate:"required,max=120"`
	City               string   `form:"city" validate:"required,max=120"`
	State              string   `form:"state" validate:"required,usstate"`
	Phone              string   `form:"phone" validate:"omitempty,phone"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url,max=500"`
	Genres             []string `form:"genres" validate:"min=1,dive,genre"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url,max=120"`
	WebsiteLink        string   `form:"website_link" validate:"omitempty,url,max=120"`
	SeekingVenue       string   `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" validate:"max=120"`
}

type ShowForm struct {
	ArtistID  string `form:"artist_id" validate:"required,number"`
	VenueID   string `form:"venue_id" validate:"required,number"`
	StartTime string `form:"start_time" validate:"required,showtime"`
}

type SearchForm struct {
	SearchTerm string `form:"search_term"`
}

// Validate trims every text field and checks the form. It returns nil when
// the form is valid.
func (f *VenueForm) Validate() FieldErrors {
	trimAll(&f.Name, &f.City, &f.State, &f.Address, &f.Phone, &f.ImageLink,
		&f.FacebookLink, &f.WebsiteLink, &f.SeekingDescription)
	return check(f)
}

func (f *VenueForm) ToModel() *models.Venue {
	return &models.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		Genres:             models.JoinGenres(f.Genres),
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingTalent:      isChecked(f.SeekingTalent),
		SeekingDescription: f.SeekingDescription,
	}
}

// FromVenue pre-populates an edit form.
func FromVenue(v *models.Venue) VenueForm {
	return VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		Genres:             models.SplitGenres(v.Genres),
		FacebookLink:       v.FacebookLink,
		WebsiteLink:        v.WebsiteLink,
		SeekingTalent:      checkbox(v.SeekingTalent),
		SeekingDescription: v.SeekingDescription,
	}
}

func (f *ArtistForm) Validate() FieldErrors {
	trimAll(&f.Name, &f.City, &f.State, &f.Phone, &f.ImageLink,
		&f.FacebookLink, &f.WebsiteLink, &f.SeekingDescription)
	return check(f)
}

func (f *ArtistForm) ToModel() *models.Artist {
	return &models.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             models.JoinGenres(f.Genres),
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingVenue:       isChecked(f.SeekingVenue),
		SeekingDescription: f.SeekingDescription,
	}
}

func FromArtist(a *models.Artist) ArtistForm {
	return ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		Genres:             models.SplitGenres(a.Genres),
		FacebookLink:       a.FacebookLink,
		WebsiteLink:        a.WebsiteLink,
		SeekingVenue:       checkbox(a.SeekingVenue),
		SeekingDescription: a.SeekingDescription,
	}
}

func (f *ShowForm) Validate() FieldErrors {
	trimAll(&f.ArtistID, &f.VenueID, &f.StartTime)
	errs := check(f)
	if errs != nil {
		return errs
	}

	// number accepts values that overflow an id.
	if _, err := parseID(f.ArtistID); err != nil {
		errs = append(errs, FieldError{Field: "artist_id", Message: messageFor("number", "")})
	}
	if _, err := parseID(f.VenueID); err != nil {
		errs = append(errs, FieldError{Field: "venue_id", Message: messageFor("number", "")})
	}
	return errs
}

// ToModel converts a validated form.
func (f *ShowForm) ToModel() (*models.Show, error) {
	artistID, err := parseID(f.ArtistID)
	if err != nil {
		return nil, fmt.Errorf("artist_id: %w", err)
	}
	venueID, err := parseID(f.VenueID)
	if err != nil {
		return nil, fmt.Errorf("venue_id: %w", err)
	}
	start, err := ParseStartTime(f.StartTime)
	if err != nil {
		return nil, err
	}
	return &models.Show{ArtistID: artistID, VenueID: venueID, StartTime: start}, nil
}

var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// ParseStartTime reads a show start time in the server's local zone.
func ParseStartTime(s string) (time.Time, error) {
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, strings.TrimSpace(s), time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid start time %q", s)
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, fmt.Errorf("id must be positive")
	}
	return uint(id), nil
}

func isChecked(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "y", "on", "true", "1":
		return true
	}
	return false
}

func checkbox(b bool) string {
	if b {
		return "y"
	}
	return ""
}

func trimAll(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

// --- validation ---

var (
	phonePattern = regexp.MustCompile(`^\(?\d{3}\)?[-. ]?\d{3}[-. ]?\d{4}$`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	rules := map[string]validator.Func{
		"usstate": func(fl validator.FieldLevel) bool { return slices.Contains(States, fl.Field().String()) },
		"genre":   func(fl validator.FieldLevel) bool { return slices.Contains(Genres, fl.Field().String()) },
		"phone":   func(fl validator.FieldLevel) bool { return phonePattern.MatchString(fl.Field().String()) },
		"showtime": func(fl validator.FieldLevel) bool {
			_, err := ParseStartTime(fl.Field().String())
			return err == nil
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	return v
}

func check(form any) FieldErrors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{{Field: "form", Message: err.Error()}}
	}

	var errs FieldErrors
	seen := make(map[string]bool)
	for _, fe := range verrs {
		// genres[2] reports against genres.
		field, _, _ := strings.Cut(fe.Field(), "[")
		if seen[field] {
			continue
		}
		seen[field] = true
		errs = append(errs, FieldError{Field: field, Message: messageFor(fe.Tag(), fe.Param())})
	}
	return errs
}

func messageFor(tag, param string) string {
	switch tag {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Field cannot be longer than %s characters.", param)
	case "min":
		return "Select at least one option."
	case "url":
		return "Invalid URL."
	case "usstate", "genre":
		return "Not a valid choice."
	case "phone":
		return "Invalid phone number."
	case "number":
		return "Must be a positive whole number."
	case "showtime":
		return "Not a valid datetime value."
	}
	return "Invalid value."
}
