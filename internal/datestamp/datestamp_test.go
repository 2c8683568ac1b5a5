package datestamp

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"no date", "no date here", "", false},
		{"leading date", "2024-03-05 event", "2024-03-05", true},
		{"log line", "2023-01-01 10:00:00,123 - INFO - start", "2023-01-01", true},
		{"mid line", "ERROR at 2022-11-30: disk full", "2022-11-30", true},
		{"first match wins", "2021-01-01 retried from 2020-12-31", "2021-01-01", true},
		{"invalid calendar day", "2023-13-45 - INFO - x", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract(tt.in)
			require.Equal(t, tt.ok, ok)
			if !tt.ok {
				assert.True(t, got.IsZero())
				return
			}
			assert.Equal(t, tt.want, got.Format(Layout))
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestExtractWithLocationAndPattern(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)

	got, ok := ExtractWith("2024-03-05 event", ISODate, loc)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, loc), got)

	bracketed := regexp.MustCompile(`\[(\d{4}-\d{2}-\d{2})\]`)
	got, ok = ExtractWith("seen 1999-01-01 first, [2024-03-05] event", bracketed, time.UTC)
	require.True(t, ok)
	assert.Equal(t, "2024-03-05", got.Format(Layout))
}
