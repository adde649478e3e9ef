package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRecordNumber(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	number, err := GenerateRecordNumber(now)
	require.NoError(t, err)
	assert.Len(t, number, 16)
	assert.Equal(t, "20250101", number[:8])

	other, err := GenerateRecordNumber(now)
	require.NoError(t, err)
	assert.NotEqual(t, number, other)
}
