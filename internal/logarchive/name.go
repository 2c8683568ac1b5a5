package logarchive

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/raoulx24/logkeeper/internal/datestamp"
)

// ArchiveName names the archived copy of the log at logPath:
// "{base} {first} - {last}{ext}", where last falls back to today when the
// last line carries no date.
func ArchiveName(logPath string, span LogSpan, today time.Time) string {
	file := filepath.Base(logPath)
	ext := filepath.Ext(file)
	base := strings.TrimSuffix(file, ext)

	last := today
	if span.HasLast() {
		last = span.Last
	}

	return fmt.Sprintf("%s %s - %s%s", base,
		span.First.Format(datestamp.Layout), last.Format(datestamp.Layout), ext)
}

// withCounter turns "app 2023-01-01 - 2023-06-01.log" into
// "app 2023-01-01 - 2023-06-01 (n).log".
func withCounter(name string, n int) string {
	ext := filepath.Ext(name)
	return fmt.Sprintf("%s (%d)%s", strings.TrimSuffix(name, ext), n, ext)
}
