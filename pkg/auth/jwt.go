package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrWrongGame    = errors.New("token was issued for another game")
)

// WatchClaims represents JWT claims for spectator access to one game
type WatchClaims struct {
	GameID string `json:"game_id"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and checks watch tokens with a shared HMAC secret.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// GenerateWatchToken creates a token that lets its bearer watch gameID
func (i *TokenIssuer) GenerateWatchToken(gameID string) (string, error) {
	now := i.now()
	claims := &WatchClaims{
		GameID: gameID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "watch",
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// ValidateWatchToken validates a watch token and returns its claims
func (i *TokenIssuer) ValidateWatchToken(tokenString string) (*WatchClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &WatchClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))

	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}

	if claims, ok := token.Claims.(*WatchClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// ValidateForGame validates the token and checks it belongs to gameID
func (i *TokenIssuer) ValidateForGame(tokenString, gameID string) (*WatchClaims, error) {
	claims, err := i.ValidateWatchToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.GameID != gameID {
		return nil, ErrWrongGame
	}
	return claims, nil
}
