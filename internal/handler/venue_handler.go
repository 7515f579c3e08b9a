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

type VenueHandler struct {
	pages
	svc service.VenueService
}

func NewVenueHandler(svc service.VenueService, store flash.Store) *VenueHandler {
	return &VenueHandler{pages: pages{store: store}, svc: svc}
}

func (h *VenueHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListVenues)
	g.POST("/search", h.SearchVenues)
	g.GET("/create", h.CreateVenueForm)
	g.POST("/create", h.CreateVenue)
	g.GET("/:id", h.GetVenue)
	g.DELETE("/:id", h.DeleteVenue)
	g.GET("/:id/edit", h.EditVenueForm)
	g.POST("/:id/edit", h.EditVenue)
}

func (h *VenueHandler) ListVenues(c echo.Context) error {
	areas, err := h.svc.ListAreas(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return h.render(c, http.StatusOK, "pages/venues", "Venues", areas)
}

func (h *VenueHandler) SearchVenues(c echo.Context) error {
	var req dto.SearchForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid search form")
	}

	result, err := h.svc.SearchVenues(c.Request().Context(), req.SearchTerm)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return h.render(c, http.StatusOK, "pages/search_venues", "Venue search",
		dto.SearchView{SearchTerm: req.SearchTerm, Results: result})
}

func (h *VenueHandler) GetVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	detail, err := h.svc.GetVenueDetail(c.Request().Context(), id)
	if err != nil {
		return venueError(err)
	}
	return h.render(c, http.StatusOK, "pages/venue", detail.Venue.Name, dto.ToVenueView(detail))
}

func (h *VenueHandler) CreateVenueForm(c echo.Context) error {
	return h.render(c, http.StatusOK, "forms/new_venue", "New venue", dto.NewFormView(0, dto.VenueForm{}, nil))
}

func (h *VenueHandler) CreateVenue(c echo.Context) error {
	var form dto.VenueForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid venue form")
	}

	if errs := form.Validate(); errs != nil {
		h.flash(c, flash.Error(fmt.Sprintf("An error occurred. The creation input for Venue %s were not all valid.", form.Name)))
		return h.render(c, http.StatusBadRequest, "forms/new_venue", "New venue", dto.NewFormView(0, form, errs))
	}

	venue := form.ToModel()
	if err := h.svc.CreateVenue(c.Request().Context(), venue); err != nil {
		log.Error().Err(err).Str("name", form.Name).Msg("failed to create venue")
		h.flash(c, flash.Error(fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name)))
		return echo.NewHTTPError(http.StatusBadRequest, "venue could not be listed")
	}

	h.flash(c, flash.Success(fmt.Sprintf("Venue %s was successfully listed!", venue.Name)))
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *VenueHandler) EditVenueForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	venue, err := h.svc.GetVenue(c.Request().Context(), id)
	if err != nil {
		return venueError(err)
	}
	return h.render(c, http.StatusOK, "forms/edit_venue", "Edit "+venue.Name,
		dto.NewFormView(venue.ID, dto.FromVenue(venue), nil))
}

// EditVenue overwrites the venue and returns to its detail page with a flash
// describing the outcome. A missing venue is reported by the service.
func (h *VenueHandler) EditVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	detailURL := fmt.Sprintf("/venues/%d", id)

	var form dto.VenueForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid venue form")
	}
	if errs := form.Validate(); errs != nil {
		venue, err := h.svc.GetVenue(ctx, id)
		if err != nil {
			return venueError(err)
		}
		log.Debug().Str("errors", errs.Error()).Uint("venue_id", id).Msg("rejected venue edit")
		h.flash(c, flash.Error(fmt.Sprintf("An error occurred. The edit input for Venue %s were not all valid.", venue.Name)))
		return c.Redirect(http.StatusSeeOther, detailURL)
	}

	updated, err := h.svc.UpdateVenue(ctx, id, form.ToModel())
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			return venueError(err)
		}
		log.Error().Err(err).Uint("venue_id", id).Msg("failed to edit venue")
		h.flash(c, flash.Error(fmt.Sprintf("An error occurred. Venue %s could not be edited.", form.Name)))
		return echo.NewHTTPError(http.StatusBadRequest, "venue could not be edited")
	}

	h.flash(c, flash.Success(fmt.Sprintf("Venue %s was successfully edited!", updated.Name)))
	return c.Redirect(http.StatusSeeOther, detailURL)
}

func (h *VenueHandler) DeleteVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	venue, err := h.svc.DeleteVenue(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			return venueError(err)
		}
		log.Error().Err(err).Uint("venue_id", id).Msg("failed to delete venue")
		return echo.NewHTTPError(http.StatusBadRequest, "venue could not be deleted")
	}

	h.flash(c, flash.Success(fmt.Sprintf("Venue %s was successfully deleted.", venue.Name)))
	return c.NoContent(http.StatusNoContent)
}

func venueError(err error) error {
	if errors.Is(err, service.ErrVenueNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "venue not found")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
