package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect-n/pkg/auth"
	"github.com/iamasit07/connect-n/pkg/httputil"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ClaimsKey is where WatchAuth stores the validated claims on the gin context.
const ClaimsKey = "watch_claims"

// WatchAuth lets a request through only when it carries a watch token for
// gameID. A token passed as ?token= is copied into a cookie so browsers keep
// access after the first visit.
func WatchAuth(issuer *auth.TokenIssuer, gameID string, cookieMaxAge int, log *zap.Logger) gin.HandlerFunc {
	log = log.Named("watch")

	return func(c *gin.Context) {
		// 1. Extract token (header, query or cookie)
		tokenString, err := httputil.GetTokenFromRequest(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		// 2. Validate signature, expiry and game
		claims, err := issuer.ValidateForGame(tokenString, gameID)
		if err != nil {
			log.Debug("rejected watch token", zap.String("remote", c.ClientIP()), zap.Error(err))
			msg := "Invalid token"
			if errors.Is(err, auth.ErrWrongGame) {
				msg = "Token is not valid for this game"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		if c.Query("token") == tokenString {
			httputil.SetWatchCookie(c.Writer, tokenString, cookieMaxAge)
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}
