package retention

import "time"

// DefaultMaxAgeDays is the retention window used when none is configured.
const DefaultMaxAgeDays = 30

// Cutoff returns the instant maxAgeDays whole days before now.
func Cutoff(now time.Time, maxAgeDays int) time.Time {
	return now.Add(-time.Duration(maxAgeDays) * 24 * time.Hour)
}

// IsExpired reports whether a file last modified at lastModified has aged
// out of a maxAgeDays window. The boundary is inclusive: a file exactly
// maxAgeDays old is expired.
func IsExpired(lastModified, now time.Time, maxAgeDays int) bool {
	return !lastModified.After(Cutoff(now, maxAgeDays))
}
