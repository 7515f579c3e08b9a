package dto

import (
	"time"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/service"
	"github.com/Eursukkul/booking-microservice/directory-service/pkg/flash"
)

// ShowTimeLayout is the fixed display format of a show's start time.
const ShowTimeLayout = "02/01/2006, 15:04"

// Page is the value every template is executed with.
type Page struct {
	Title   string
	Flashes []flash.Message
	Data    any
}

type HomeView struct {
	RecentVenues  []models.Activity
	RecentArtists []models.Activity
}

type SearchView struct {
	SearchTerm string
	Results    *service.SearchResult
}

type ShowView struct {
	VenueID         uint
	VenueName       string
	VenueImageLink  string
	ArtistID        uint
	ArtistName      string
	ArtistImageLink string
	StartTime       string
}

type VenueView struct {
	ID                 uint
	Name               string
	Genres             []string
	Address            string
	City               string
	State              string
	Phone              string
	WebsiteLink        string
	FacebookLink       string
	SeekingTalent      bool
	SeekingDescription string
	ImageLink          string
	PastShows          []ShowView
	UpcomingShows      []ShowView
	PastShowsCount     int
	UpcomingShowsCount int
}

type ArtistView struct {
	ID                 uint
	Name               string
	Genres             []string
	City               string
	State              string
	Phone              string
	WebsiteLink        string
	FacebookLink       string
	SeekingVenue       bool
	SeekingDescription string
	ImageLink          string
	PastShows          []ShowView
	UpcomingShows      []ShowView
	PastShowsCount     int
	UpcomingShowsCount int
}

// FormView carries a form, its errors and the choice lists to a form
// template. ID is set on edit forms.
type FormView struct {
	ID     uint
	Form   any
	Errors FieldErrors
	States []string
	Genres []string
}

type ErrorView struct {
	Code    int
	Message string
}

func NewFormView(id uint, form any, errs FieldErrors) FormView {
	return FormView{ID: id, Form: form, Errors: errs, States: States, Genres: Genres}
}

func FormatShowTime(t time.Time) string {
	return t.Local().Format(ShowTimeLayout)
}

func ToShowView(l models.ShowListing) ShowView {
	return ShowView{
		VenueID:         l.VenueID,
		VenueName:       l.VenueName,
		VenueImageLink:  l.VenueImageLink,
		ArtistID:        l.ArtistID,
		ArtistName:      l.ArtistName,
		ArtistImageLink: l.ArtistImageLink,
		StartTime:       FormatShowTime(l.StartTime),
	}
}

func ToShowViews(listings []models.ShowListing) []ShowView {
	out := make([]ShowView, len(listings))
	for i, l := range listings {
		out[i] = ToShowView(l)
	}
	return out
}

func ToVenueView(d *service.VenueDetail) VenueView {
	v := d.Venue
	return VenueView{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             models.SplitGenres(v.Genres),
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		WebsiteLink:        v.WebsiteLink,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
		PastShows:          ToShowViews(d.Past),
		UpcomingShows:      ToShowViews(d.Upcoming),
		PastShowsCount:     d.PastCount(),
		UpcomingShowsCount: d.UpcomingCount(),
	}
}

func ToArtistView(d *service.ArtistDetail) ArtistView {
	a := d.Artist
	return ArtistView{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             models.SplitGenres(a.Genres),
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		WebsiteLink:        a.WebsiteLink,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
		PastShows:          ToShowViews(d.Past),
		UpcomingShows:      ToShowViews(d.Upcoming),
		PastShowsCount:     d.PastCount(),
		UpcomingShowsCount: d.UpcomingCount(),
	}
}
