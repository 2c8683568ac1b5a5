// Package datestamp pulls calendar dates out of free-form log lines.
package datestamp

import (
	"regexp"
	"time"
)

// Layout is the calendar date layout logkeeper reads and writes.
const Layout = "2006-01-02"

// ISODate matches an ISO-8601 calendar date anywhere in a line.
var ISODate = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// Extract returns the first ISO date in text, at midnight UTC.
// ok is false when the line carries no date.
func Extract(text string) (date time.Time, ok bool) {
	return ExtractWith(text, ISODate, time.UTC)
}

// ExtractWith returns the first match of pattern in text parsed with Layout
// in loc. If pattern has capture groups, the first group is parsed instead
// of the whole match. A match that is not a real calendar day (2023-13-45)
// counts as no match; later matches on the same line are never considered.
func ExtractWith(text string, pattern *regexp.Regexp, loc *time.Location) (time.Time, bool) {
	sub := pattern.FindStringSubmatch(text)
	if sub == nil {
		return time.Time{}, false
	}

	m := sub[0]
	if len(sub) > 1 {
		m = sub[1]
	}

	t, err := time.ParseInLocation(Layout, m, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
