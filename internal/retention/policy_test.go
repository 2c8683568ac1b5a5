package retention

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsExpiredBoundary(t *testing.T) {
	now := time.Date(2023, 7, 1, 12, 0, 0, 0, time.UTC)
	exactly := now.Add(-30 * 24 * time.Hour)

	assert.True(t, IsExpired(exactly, now, 30), "exactly max age is expired")
	assert.False(t, IsExpired(exactly.Add(time.Second), now, 30), "one second younger is kept")
	assert.True(t, IsExpired(exactly.Add(-time.Second), now, 30))
}

func TestIsExpiredZeroDays(t *testing.T) {
	now := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsExpired(now, now, 0))
	assert.False(t, IsExpired(now.Add(time.Minute), now, 0), "future mtime is never expired")
}

func TestCutoff(t *testing.T) {
	now := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), Cutoff(now, 30))
}
