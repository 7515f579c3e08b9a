package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/dto"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/service"
	"github.com/Eursukkul/booking-microservice/directory-service/pkg/flash"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ArtistHandler struct {
	pages
	svc service.ArtistService
}

func NewArtistHandler(svc service.ArtistService, store flash.Store) *ArtistHandler {
	return &ArtistHandler{pages: pages{store: store}, svc: svc}
}

func (h *ArtistHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListArtists)
	g.POST("/search", h.SearchArtists)
	g.GET("/create", h.CreateArtistForm)
	g.POST("/create", h.CreateArtist)
	g.GET("/:id", h.GetArtist)
	g.GET("/:id/edit", h.EditArtistForm)
	g.POST("/:id/edit", h.EditArtist)
}

func (h *ArtistHandler) ListArtists(c echo.Context) error {
	artists, err := h.svc.ListArtists(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return h.render(c, http.StatusOK, "pages/artists", "Artists", artists)
}

func (h *ArtistHandler) SearchArtists(c echo.Context) error {
	var req dto.SearchForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid search form")
	}

	result, err := h.svc.SearchArtists(c.Request().Context(), req.SearchTerm)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return h.render(c, http.StatusOK, "pages/search_artists", "Artist search",
		dto.SearchView{SearchTerm: req.SearchTerm, Results: result})
}

func (h *ArtistHandler) GetArtist(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	detail, err := h.svc.GetArtistDetail(c.Request().Context(), id)
	if err != nil {
		return artistError(err)
	}
	return h.render(c, http.StatusOK, "pages/artist", detail.Artist.Name, dto.ToArtistView(detail))
}

func (h *ArtistHandler) CreateArtistForm(c echo.Context) error {
	return h.render(c, http.StatusOK, "forms/new_artist", "New artist", dto.NewFormView(0, dto.ArtistForm{}, nil))
}

func (h *ArtistHandler) CreateArtist(c echo.Context) error {
	var form dto.ArtistForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid artist form")
	}

	if errs := form.Validate(); errs != nil {
		h.flash(c, flash.Error(fmt.Sprintf("An error occurred. The creation input for Artist %s were not all valid.", form.Name)))
		return h.render(c, http.StatusBadRequest, "forms/new_artist", "New artist", dto.NewFormView(0, form, errs))
	}

	artist := form.ToModel()
	if err := h.svc.CreateArtist(c.Request().Context(), artist); err != nil {
		log.Error().Err(err).Str("name", form.Name).Msg("failed to create artist")
		h.flash(c, flash.Error(fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name)))
		return echo.NewHTTPError(http.StatusBadRequest, "artist could not be listed")
	}

	h.flash(c, flash.Success(fmt.Sprintf("Artist %s was successfully listed!", artist.Name)))
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *ArtistHandler) EditArtistForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	artist, err := h.svc.GetArtist(c.Request().Context(), id)
	if err != nil {
		return artistError(err)
	}
	return h.render(c, http.StatusOK, "forms/edit_artist", "Edit "+artist.Name,
		dto.NewFormView(artist.ID, dto.FromArtist(artist), nil))
}

func (h *ArtistHandler) EditArtist(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	detailURL := fmt.Sprintf("/artists/%d", id)

	var form dto.ArtistForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid artist form")
	}
	if errs := form.Validate(); errs != nil {
		artist, err := h.svc.GetArtist(ctx, id)
		if err != nil {
			return artistError(err)
		}
		log.Debug().Str("errors", errs.Error()).Uint("artist_id", id).Msg("rejected artist edit")
		h.flash(c, flash.Error(fmt.Sprintf("An error occurred. The edit input for Artist %s were not all valid.", artist.Name)))
		return c.Redirect(http.StatusSeeOther, detailURL)
	}

	updated, err := h.svc.UpdateArtist(ctx, id, form.ToModel())
	if err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			return artistError(err)
		}
		log.Error().Err(err).Uint("artist_id", id).Msg("failed to edit artist")
		h.flash(c, flash.Error(fmt.Sprintf("An error occurred. Artist %s could not be edited.", form.Name)))
		return echo.NewHTTPError(http.StatusBadRequest, "artist could not be edited")
	}

	h.flash(c, flash.Success(fmt.Sprintf("Artist %s was successfully edited!", updated.Name)))
	return c.Redirect(http.StatusSeeOther, detailURL)
}

func artistError(err error) error {
	if errors.Is(err, service.ErrArtistNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "artist not found")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
