package view

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/dto"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/service"
	"github.com/Eursukkul/booking-microservice/directory-service/pkg/flash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, r *Renderer, name string, page dto.Page) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, name, page, nil))
	return buf.String()
}

func TestNewRenderer_RegistersEveryPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for _, name := range []string{
		"pages/home", "pages/venues", "pages/venue", "pages/artists", "pages/artist",
		"pages/shows", "pages/search_venues", "pages/search_artists",
		"forms/new_venue", "forms/edit_venue", "forms/new_artist", "forms/edit_artist", "forms/new_show",
		"errors/400", "errors/401", "errors/404", "errors/500",
	} {
		assert.True(t, r.Has(name), name)
	}
}

func TestRender_VenueDetail(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	out := render(t, r, "pages/venue", dto.Page{
		Title:   "The Musical Hop",
		Flashes: []flash.Message{flash.Success("Venue The Musical Hop was successfully edited!")},
		Data: dto.VenueView{
			ID:                 1,
			Name:               "The Musical Hop",
			Genres:             []string{"Jazz", "R&B"},
			UpcomingShowsCount: 1,
			UpcomingShows: []dto.ShowView{
				{ArtistID: 4, ArtistName: "Guns N Petals", StartTime: "01/04/2035, 20:00"},
			},
		},
	})

	assert.Contains(t, out, "<title>The Musical Hop | Fyyur</title>")
	assert.Contains(t, out, "successfully edited!")
	assert.Contains(t, out, "R&amp;B")
	assert.Contains(t, out, "1 Upcoming Show<")
	assert.Contains(t, out, "0 Past Shows")
	assert.Contains(t, out, `href="/artists/4"`)
	assert.Contains(t, out, "01/04/2035, 20:00")
}

func TestRender_VenueFormWithErrors(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	form := dto.VenueForm{Name: "Hop", State: "CA", Genres: []string{"Jazz"}, SeekingTalent: "y"}
	errs := dto.FieldErrors{{Field: "city", Message: "This field is required."}}

	out := render(t, r, "forms/new_venue", dto.Page{Data: dto.NewFormView(0, form, errs)})

	assert.Contains(t, out, `action="/venues/create"`)
	assert.Contains(t, out, `value="Hop"`)
	assert.Contains(t, out, `<option value="CA" selected>`)
	assert.Contains(t, out, `<option value="Jazz" selected>`)
	assert.Contains(t, out, `<option value="Blues">`)
	assert.Contains(t, out, "This field is required.")
	assert.Contains(t, out, "checked")
}

func TestRender_EditArtistForm(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	form := dto.FromArtist(&models.Artist{ID: 4, Name: "Guns N Petals", State: "CA", Genres: "Rock n Roll"})
	out := render(t, r, "forms/edit_artist", dto.Page{Data: dto.NewFormView(4, form, nil)})

	assert.Contains(t, out, `action="/artists/4/edit"`)
	assert.Contains(t, out, `<option value="Rock n Roll" selected>`)
	assert.NotContains(t, out, "field-error")
}

func TestRender_SearchResults(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	out := render(t, r, "pages/search_artists", dto.Page{Data: dto.SearchView{
		SearchTerm: "A",
		Results: &service.SearchResult{Count: 1, Data: []service.ListingSummary{
			{ID: 4, Name: "Guns N Petals", NumUpcomingShows: 0},
		}},
	}})

	assert.Contains(t, out, `Number of search results for "A": 1`)
	assert.Contains(t, out, `href="/artists/4"`)
}

func TestRender_ErrorPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	out := render(t, r, "errors/404", dto.Page{Data: dto.ErrorView{Code: 404}})

	assert.Contains(t, out, "Not Found")
}

func TestRender_UnknownTemplate(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.Error(t, r.Render(&buf, "pages/missing", dto.Page{}, nil))
}

func TestNewRenderer_BrokenTemplate(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/layouts/main.html": {Data: []byte(`{{template "content" .}}`)},
		"templates/pages/bad.html":    {Data: []byte(`{{define "content"}}{{if}}{{end}}`)},
	}

	_, err := newRenderer(fsys)

	assert.Error(t, err)
}
