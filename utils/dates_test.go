package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("plain date", func(t *testing.T) {
		got, err := ParseDate("2025-10-14")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("rfc3339 truncates to midnight", func(t *testing.T) {
		got, err := ParseDate("2025-10-14T18:45:00Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("rfc3339 with offset normalizes to UTC first", func(t *testing.T) {
		got, err := ParseDate("2025-10-14T23:30:00-05:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("surrounding whitespace", func(t *testing.T) {
		got, err := ParseDate("  2025-01-02 ")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("rejects empty and garbage", func(t *testing.T) {
		_, err := ParseDate("")
		assert.Error(t, err)
		_, err = ParseDate("14/10/2025")
		assert.Error(t, err)
		_, err = ParseDate("2025-13-40")
		assert.Error(t, err)
	})
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2025, 10, 14, 22, 15, 3, 999, time.FixedZone("IST", 5*3600+1800))
	got := DateOnly(in)
	assert.Equal(t, time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, got, DateOnly(got))
}
