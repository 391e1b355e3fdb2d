package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDeadline_RFC3339(t *testing.T) {
	got, err := ParseDeadline("2025-12-31T15:04:05Z")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, time.Date(2025, 12, 31, 15, 4, 5, 0, time.UTC), got.UTC())
}

func TestParseDeadline_DateOnly(t *testing.T) {
	got, err := ParseDeadline("2025-12-31")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), *got)
}

func TestParseDeadline_Empty(t *testing.T) {
	got, err := ParseDeadline("")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestParseDeadline_Invalid(t *testing.T) {
	_, err := ParseDeadline("next tuesday")
	require.Error(t, err)
}
