package uid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGameID(t *testing.T) {
	a, b := GenerateGameID(), GenerateGameID()
	assert.NotEqual(t, a, b)

	_, err := uuid.Parse(a)
	require.NoError(t, err)
}

func TestGenerateSecret(t *testing.T) {
	s := GenerateSecret()
	assert.Len(t, s, 72)
	assert.NotEqual(t, s, GenerateSecret())
}
