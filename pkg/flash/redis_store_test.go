package flash

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSession = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

func sessionRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: testSession})
	return req
}

func TestRedisStore_Add(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer mock.ClearExpect()
	store := NewRedisStore(db, 10*time.Minute)

	key := keyPrefix + testSession
	mock.ExpectRPush(key, `{"category":"success","text":"Artist Guns N Petals was successfully listed!"}`).SetVal(1)
	mock.ExpectExpire(key, 10*time.Minute).SetVal(true)

	c, rec := newContext(sessionRequest(http.MethodPost, "/artists/create"))
	err := store.Add(c, Success("Artist Guns N Petals was successfully listed!"))

	assert.NoError(t, err)
	assert.Empty(t, rec.Result().Cookies(), "existing session must be reused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_AddIssuesSession(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer mock.ClearExpect()
	store := NewRedisStore(db, time.Minute)

	mock.Regexp().ExpectRPush(`flash:.*`, `.*`).SetVal(1)
	mock.Regexp().ExpectExpire(`flash:.*`, time.Minute).SetVal(true)

	c, rec := newContext(httptest.NewRequest(http.MethodPost, "/venues/create", nil))
	require.NoError(t, store.Add(c, Error("oops")))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Pop(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer mock.ClearExpect()
	store := NewRedisStore(db, time.Minute)

	mock.ExpectEval(popScript, []string{keyPrefix + testSession}).SetVal([]interface{}{
		`{"category":"success","text":"Venue The Musical Hop was successfully edited!"}`,
		`not json`,
	})

	c, _ := newContext(sessionRequest(http.MethodGet, "/venues/1"))
	msgs, err := store.Pop(c)

	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Venue The Musical Hop was successfully edited!", msgs[0].Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_PopWithoutSession(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisStore(db, time.Minute)

	c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
	msgs, err := store.Pop(c)

	assert.NoError(t, err)
	assert.Empty(t, msgs)
	assert.Empty(t, rec.Result().Cookies())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_PopError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer mock.ClearExpect()
	store := NewRedisStore(db, time.Minute)

	mock.ExpectEval(popScript, []string{keyPrefix + testSession}).SetErr(errors.New("connection refused"))

	c, _ := newContext(sessionRequest(http.MethodGet, "/"))
	_, err := store.Pop(c)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "pop flash")
}
