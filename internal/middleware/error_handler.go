package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/dto"
	"github.com/Eursukkul/booking-microservice/directory-service/pkg/flash"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// NewErrorHandler renders the error page matching the status code. Codes
// without a page of their own fall back to the 404 page for client errors
// and the 500 page otherwise. DELETE requests get the bare status.
func NewErrorHandler(store flash.Store) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			}
		}

		event := log.Debug()
		if code >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.Err(err).
			Int("status", code).
			Str("method", c.Request().Method).
			Str("uri", c.Request().RequestURI).
			Msg("request failed")

		if c.Request().Method == http.MethodDelete || c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}

		var flashes []flash.Message
		if store != nil {
			if flashes, err = store.Pop(c); err != nil {
				log.Warn().Err(err).Msg("failed to read flash messages")
			}
		}

		page := dto.Page{
			Title:   http.StatusText(code),
			Flashes: flashes,
			Data:    dto.ErrorView{Code: code, Message: msg},
		}
		if rerr := c.Render(code, errorTemplate(code), page); rerr != nil {
			log.Error().Err(rerr).Int("status", code).Msg("failed to render error page")
			_ = c.String(code, http.StatusText(code))
		}
	}
}

func errorTemplate(code int) string {
	switch code {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound, http.StatusInternalServerError:
		return "errors/" + strconv.Itoa(code)
	}
	if code >= 400 && code < 500 {
		return "errors/404"
	}
	return "errors/500"
}
