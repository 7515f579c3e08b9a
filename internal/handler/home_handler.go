package handler

import (
	"net/http"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/dto"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/service"
	"github.com/Eursukkul/booking-microservice/directory-service/pkg/flash"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type HomeHandler struct {
	pages
	svc service.ActivityService
}

func NewHomeHandler(svc service.ActivityService, store flash.Store) *HomeHandler {
	return &HomeHandler{pages: pages{store: store}, svc: svc}
}

func (h *HomeHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Index)
}

// Index renders the landing page. The recent listings are decoration, so a
// failure to load them still renders the page.
func (h *HomeHandler) Index(c echo.Context) error {
	view := dto.HomeView{}
	recent, err := h.svc.RecentlyListed(c.Request().Context())
	if err != nil {
		log.Warn().Err(err).Msg("failed to load recent listings")
	} else {
		view.RecentVenues = recent.Venues
		view.RecentArtists = recent.Artists
	}
	return h.render(c, http.StatusOK, "pages/home", "", view)
}
