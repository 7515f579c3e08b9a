package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	cookieFlashName = "directory_flash"
	pendingKey      = "flash.pending"
)

// CookieStore keeps pending messages in a browser cookie. Used when no
// Redis is configured.
type CookieStore struct{}

func NewCookieStore() *CookieStore {
	return &CookieStore{}
}

func (s *CookieStore) Add(c echo.Context, msg Message) error {
	msgs := append(s.current(c), msg)
	c.Set(pendingKey, msgs)

	value, err := encodeMessages(msgs)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     cookieFlashName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *CookieStore) Pop(c echo.Context) ([]Message, error) {
	msgs := s.current(c)
	c.Set(pendingKey, []Message{})

	if _, err := c.Cookie(cookieFlashName); err == nil || len(msgs) > 0 {
		c.SetCookie(&http.Cookie{
			Name:     cookieFlashName,
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
	}
	return msgs, nil
}

func (s *CookieStore) current(c echo.Context) []Message {
	if msgs, ok := c.Get(pendingKey).([]Message); ok {
		return msgs
	}

	cookie, err := c.Cookie(cookieFlashName)
	if err != nil {
		return nil
	}
	msgs, err := decodeMessages(cookie.Value)
	if err != nil {
		// A tampered or stale cookie is dropped.
		return nil
	}
	return msgs
}

func encodeMessages(msgs []Message) (string, error) {
	raw, err := json.Marshal(msgs)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func decodeMessages(value string) ([]Message, error) {
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, err
	}
	var msgs []Message
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}
