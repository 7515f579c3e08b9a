package handler

import (
	"net/http"
	"strconv"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/dto"
	"github.com/Eursukkul/booking-microservice/directory-service/pkg/flash"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// pages renders templates with the browser's pending flash messages and
// queues new ones. A nil store disables flashing.
type pages struct {
	store flash.Store
}

func (p pages) render(c echo.Context, code int, name, title string, data any) error {
	var flashes []flash.Message
	if p.store != nil {
		var err error
		if flashes, err = p.store.Pop(c); err != nil {
			log.Warn().Err(err).Msg("failed to read flash messages")
		}
	}
	return c.Render(code, name, dto.Page{Title: title, Flashes: flashes, Data: data})
}

func (p pages) flash(c echo.Context, msg flash.Message) {
	if p.store == nil {
		return
	}
	if err := p.store.Add(c, msg); err != nil {
		log.Warn().Err(err).Str("text", msg.Text).Msg("failed to queue flash message")
	}
}

// parseID reads the :id path parameter. Anything that is not a positive
// integer cannot name an entity and is reported as not found.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	return uint(id), nil
}
