package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPIN(t *testing.T) {
	hash, err := HashPIN("123456")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, CheckPIN("123456", hash))
	assert.False(t, CheckPIN("654321", hash))
	assert.False(t, CheckPIN("123456", "not-a-hash"))
}

func TestGenerateWebhookToken(t *testing.T) {
	token, err := GenerateWebhookToken(16)
	require.NoError(t, err)
	assert.Len(t, token, 32)

	other, err := GenerateWebhookToken(16)
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}
