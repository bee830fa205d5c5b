package uid

import "github.com/google/uuid"

// GenerateGameID returns a random identifier for a game session.
func GenerateGameID() string {
	return uuid.NewString()
}

// GenerateSecret returns a random value suitable as a signing key when none
// is configured.
func GenerateSecret() string {
	return uuid.NewString() + uuid.NewString()
}
