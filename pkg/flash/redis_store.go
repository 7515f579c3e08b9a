package flash

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const (
	sessionCookieName = "directory_session"
	sessionKey        = "flash.session"
	keyPrefix         = "flash:"
)

// popScript reads and clears the list in one step so a message queued
// concurrently is never lost between the read and the delete.
const popScript = `
local msgs = redis.call('LRANGE', KEYS[1], 0, -1)
redis.call('DEL', KEYS[1])
return msgs
`

// RedisStore keeps messages in a Redis list per browser session. The
// session is identified by a random id cookie.
type RedisStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisStore(client redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Add(c echo.Context, msg Message) error {
	sid := s.sessionID(c, true)
	key := keyPrefix + sid
	ctx := c.Request().Context()

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal flash: %w", err)
	}
	if err := s.client.RPush(ctx, key, string(body)).Err(); err != nil {
		return fmt.Errorf("push flash: %w", err)
	}
	if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
		return fmt.Errorf("expire flash: %w", err)
	}
	return nil
}

func (s *RedisStore) Pop(c echo.Context) ([]Message, error) {
	sid := s.sessionID(c, false)
	if sid == "" {
		return nil, nil
	}

	res, err := s.client.Eval(c.Request().Context(), popScript, []string{keyPrefix + sid}).Slice()
	if err != nil {
		return nil, fmt.Errorf("pop flash: %w", err)
	}

	msgs := make([]Message, 0, len(res))
	for _, item := range res {
		str, ok := item.(string)
		if !ok {
			continue
		}
		var msg Message
		if err := json.Unmarshal([]byte(str), &msg); err != nil {
			continue
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

// sessionID returns the browser's session id, issuing a new one when
// create is set and the request carries none.
func (s *RedisStore) sessionID(c echo.Context, create bool) string {
	if sid, ok := c.Get(sessionKey).(string); ok {
		return sid
	}

	if cookie, err := c.Cookie(sessionCookieName); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			sid := id.String()
			c.Set(sessionKey, sid)
			return sid
		}
	}

	if !create {
		return ""
	}

	sid := uuid.NewString()
	c.Set(sessionKey, sid)
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sid
}
