package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	a, err := GenerateID()
	require.NoError(t, err)
	b, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, a, idLength)
	assert.NotEqual(t, a, b)
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 33.33, RoundWithTwoDecimalPlace(100.0/3))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 1.01, RoundWithTwoDecimalPlace(1.005000001))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2024-01-07 ")
	require.NoError(t, err)
	assert.Equal(t, 7, d.Day())

	_, err = ParseDate("07/01/2024")
	assert.Error(t, err)
}
