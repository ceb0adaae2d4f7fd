package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomToken(t *testing.T) {
	token, err := GenerateRandomToken(16)
	require.NoError(t, err)

	decoded, err := base64.URLEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, decoded, 16)
}

func TestGenerateRandomToken_Uniqueness(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token, err := GenerateRandomToken(16)
		require.NoError(t, err)
		_, dup := seen[token]
		assert.False(t, dup, "duplicate token %s", token)
		seen[token] = struct{}{}
	}
}

func TestGenerateRandomString(t *testing.T) {
	s, err := GenerateRandomString(12)
	require.NoError(t, err)
	assert.Len(t, s, 12)
	assert.NotContains(t, s, "=")
}
