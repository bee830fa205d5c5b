package httputil

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

const WatchCookieName = "watch_token"

var ErrNoToken = errors.New("no watch token found in header, query or cookie")

// SetWatchCookie stores token so browsers can reopen the watch page.
func SetWatchCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     WatchCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// GetTokenFromRequest looks for a token in the Authorization header, then
// the token query parameter (websocket clients cannot set headers), then
// the watch cookie.
func GetTokenFromRequest(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		// Support "Bearer <token>" format
		if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
			return token, nil
		}
		return authHeader, nil
	}

	if token := r.URL.Query().Get("token"); token != "" {
		return token, nil
	}

	if cookie, err := r.Cookie(WatchCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	return "", ErrNoToken
}
