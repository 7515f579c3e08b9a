package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/dto"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/service"
	"github.com/labstack/echo/v4"
)

// --- Mock VenueService ---

type mockVenueService struct {
	listAreasFn func(ctx context.Context) ([]service.Area, error)
	searchFn    func(ctx context.Context, term string) (*service.SearchResult, error)
	getFn       func(ctx context.Context, id uint) (*models.Venue, error)
	detailFn    func(ctx context.Context, id uint) (*service.VenueDetail, error)
	createFn    func(ctx context.Context, venue *models.Venue) error
	updateFn    func(ctx context.Context, id uint, changes *models.Venue) (*models.Venue, error)
	deleteFn    func(ctx context.Context, id uint) (*models.Venue, error)
}

func (m *mockVenueService) ListAreas(ctx context.Context) ([]service.Area, error) {
	return m.listAreasFn(ctx)
}
func (m *mockVenueService) SearchVenues(ctx context.Context, term string) (*service.SearchResult, error) {
	return m.searchFn(ctx, term)
}
func (m *mockVenueService) GetVenue(ctx context.Context, id uint) (*models.Venue, error) {
	return m.getFn(ctx, id)
}
func (m *mockVenueService) GetVenueDetail(ctx context.Context, id uint) (*service.VenueDetail, error) {
	return m.detailFn(ctx, id)
}
func (m *mockVenueService) CreateVenue(ctx context.Context, venue *models.Venue) error {
	return m.createFn(ctx, venue)
}
func (m *mockVenueService) UpdateVenue(ctx context.Context, id uint, changes *models.Venue) (*models.Venue, error) {
	return m.updateFn(ctx, id, changes)
}
func (m *mockVenueService) DeleteVenue(ctx context.Context, id uint) (*models.Venue, error) {
	return m.deleteFn(ctx, id)
}

// --- Mock ArtistService ---

type mockArtistService struct {
	listFn   func(ctx context.Context) ([]models.Artist, error)
	searchFn func(ctx context.Context, term string) (*service.SearchResult, error)
	getFn    func(ctx context.Context, id uint) (*models.Artist, error)
	detailFn func(ctx context.Context, id uint) (*service.ArtistDetail, error)
	createFn func(ctx context.Context, artist *models.Artist) error
	updateFn func(ctx context.Context, id uint, changes *models.Artist) (*models.Artist, error)
}

func (m *mockArtistService) ListArtists(ctx context.Context) ([]models.Artist, error) {
	return m.listFn(ctx)
}
func (m *mockArtistService) SearchArtists(ctx context.Context, term string) (*service.SearchResult, error) {
	return m.searchFn(ctx, term)
}
func (m *mockArtistService) GetArtist(ctx context.Context, id uint) (*models.Artist, error) {
	return m.getFn(ctx, id)
}
func (m *mockArtistService) GetArtistDetail(ctx context.Context, id uint) (*service.ArtistDetail, error) {
	return m.detailFn(ctx, id)
}
func (m *mockArtistService) CreateArtist(ctx context.Context, artist *models.Artist) error {
	return m.createFn(ctx, artist)
}
func (m *mockArtistService) UpdateArtist(ctx context.Context, id uint, changes *models.Artist) (*models.Artist, error) {
	return m.updateFn(ctx, id, changes)
}

// --- Mock ShowService ---

type mockShowService struct {
	listFn   func(ctx context.Context) ([]models.ShowListing, error)
	createFn func(ctx context.Context, show *models.Show) error
}

func (m *mockShowService) ListShows(ctx context.Context) ([]models.ShowListing, error) {
	return m.listFn(ctx)
}
func (m *mockShowService) CreateShow(ctx context.Context, show *models.Show) error {
	return m.createFn(ctx, show)
}

// --- Mock ActivityService ---

type mockActivityService struct {
	recentFn func(ctx context.Context) (*service.RecentListings, error)
}

func (m *mockActivityService) RecentlyListed(ctx context.Context) (*service.RecentListings, error) {
	return m.recentFn(ctx)
}

// --- Rendering and request helpers ---

type stubRenderer struct {
	name string
	page dto.Page
}

func (r *stubRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	r.name = name
	r.page, _ = data.(dto.Page)
	_, err := io.WriteString(w, name)
	return err
}

func newContext(method, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder, *stubRenderer) {
	e := echo.New()
	r := &stubRenderer{}
	e.Renderer = r

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec, r
}

func withID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func httpStatus(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return 0
}
