package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id, err := GenerateID()
		require.NoError(t, err)
		assert.Len(t, id, idLength)

		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
	}
}

func TestParsePositiveInt(t *testing.T) {
	value, err := ParsePositiveInt("", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, value)

	value, err = ParsePositiveInt(" 3 ", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, value)

	_, err = ParsePositiveInt("abc", 1)
	assert.Error(t, err)

	_, err = ParsePositiveInt("0", 1)
	assert.Error(t, err)

	_, err = ParsePositiveInt("-2", 1)
	assert.Error(t, err)
}
