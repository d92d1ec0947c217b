package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAPIKey(t *testing.T) {
	t.Setenv(APIKeyEnv, "test-key-123")

	key, err := LoadAPIKey()
	require.NoError(t, err)
	assert.Equal(t, "test-key-123", key)
}

func TestLoadAPIKeyMissing(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	_, err := LoadAPIKey()
	require.Error(t, err)
	assert.Contains(t, err.Error(), APIKeyEnv)
}
