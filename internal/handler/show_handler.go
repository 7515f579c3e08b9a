package handler

import (
	"errors"
	"net/http"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/dto"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/service"
	"github.com/Eursukkul/booking-microservice/directory-service/pkg/flash"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ShowHandler struct {
	pages
	svc service.ShowService
}

func NewShowHandler(svc service.ShowService, store flash.Store) *ShowHandler {
	return &ShowHandler{pages: pages{store: store}, svc: svc}
}

func (h *ShowHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListShows)
	g.GET("/create", h.CreateShowForm)
	g.POST("/create", h.CreateShow)
}

func (h *ShowHandler) ListShows(c echo.Context) error {
	shows, err := h.svc.ListShows(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return h.render(c, http.StatusOK, "pages/shows", "Shows", dto.ToShowViews(shows))
}

func (h *ShowHandler) CreateShowForm(c echo.Context) error {
	return h.render(c, http.StatusOK, "forms/new_show", "New show", dto.NewFormView(0, dto.ShowForm{}, nil))
}

func (h *ShowHandler) CreateShow(c echo.Context) error {
	var form dto.ShowForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid show form")
	}

	errs := form.Validate()
	if errs == nil {
		show, err := form.ToModel()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		err = h.svc.CreateShow(c.Request().Context(), show)
		switch {
		case err == nil:
			h.flash(c, flash.Success("Show was successfully listed!"))
			return c.Redirect(http.StatusSeeOther, "/")
		case errors.Is(err, service.ErrVenueNotFound):
			errs = dto.FieldErrors{{Field: "venue_id", Message: "No venue with this id."}}
		case errors.Is(err, service.ErrArtistNotFound):
			errs = dto.FieldErrors{{Field: "artist_id", Message: "No artist with this id."}}
		default:
			log.Error().Err(err).Msg("failed to create show")
			h.flash(c, flash.Error("An error occurred. Show could not be listed."))
			return echo.NewHTTPError(http.StatusBadRequest, "show could not be listed")
		}
	}

	h.flash(c, flash.Error("An error occurred. The creation inputs were not all valid."))
	return h.render(c, http.StatusBadRequest, "forms/new_show", "New show", dto.NewFormView(0, form, errs))
}
