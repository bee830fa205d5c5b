package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTokenFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/watch?token=from-query", nil)
	r.Header.Set("Authorization", "Bearer from-header")
	r.AddCookie(&http.Cookie{Name: WatchCookieName, Value: "from-cookie"})

	token, err := GetTokenFromRequest(r)
	require.NoError(t, err)
	assert.Equal(t, "from-header", token)

	r.Header.Del("Authorization")
	token, err = GetTokenFromRequest(r)
	require.NoError(t, err)
	assert.Equal(t, "from-query", token)

	r = httptest.NewRequest(http.MethodGet, "/api/watch", nil)
	r.AddCookie(&http.Cookie{Name: WatchCookieName, Value: "from-cookie"})
	token, err = GetTokenFromRequest(r)
	require.NoError(t, err)
	assert.Equal(t, "from-cookie", token)
}

func TestGetTokenFromRequestMissing(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/watch", nil)
	_, err := GetTokenFromRequest(r)
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestSetWatchCookie(t *testing.T) {
	w := httptest.NewRecorder()
	SetWatchCookie(w, "abc", 60)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, WatchCookieName, cookies[0].Name)
	assert.Equal(t, "abc", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}
