package logarchive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/raoulx24/logkeeper/internal/datestamp"
)

// LogSpan is the calendar range a log file covers, read from its first
// and last lines. A zero date means the line carried none.
type LogSpan struct {
	First time.Time
	Last  time.Time
}

func (s LogSpan) HasFirst() bool { return !s.First.IsZero() }
func (s LogSpan) HasLast() bool  { return !s.Last.IsZero() }

// maxKeptLine is how much of a line is kept for date extraction. Longer
// lines are read through and counted, but their tail is dropped.
const maxKeptLine = 64 << 10

// edgeLines streams r and keeps only its first and last lines, each cut
// to maxKeptLine bytes. lines is 0 for an empty input.
func edgeLines(r io.Reader) (first, last string, lines int, err error) {
	br := bufio.NewReaderSize(r, 64<<10)
	cur := make([]byte, 0, 256)
	read := false

	for {
		chunk, rerr := br.ReadSlice('\n')
		if len(chunk) > 0 {
			read = true
			if room := maxKeptLine - len(cur); room > 0 {
				cur = append(cur, chunk[:min(room, len(chunk))]...)
			}
		}

		switch {
		case errors.Is(rerr, bufio.ErrBufferFull):
			continue
		case rerr != nil && !errors.Is(rerr, io.EOF):
			return "", "", 0, rerr
		}

		if read {
			line := strings.TrimRight(string(cur), "\r\n")
			if lines == 0 {
				first = line
			}
			last = line
			lines++
		}
		if rerr != nil {
			return first, last, lines, nil
		}
		cur, read = cur[:0], false
	}
}

var errEmptyLog = errors.New("log file is empty")

// readSpan reads the span of the log at path, with dates in loc.
func (a *Archiver) readSpan(path string, loc *time.Location) (LogSpan, error) {
	f, err := a.fs.Open(path)
	if err != nil {
		return LogSpan{}, err
	}
	defer f.Close()

	first, last, n, err := edgeLines(f)
	if err != nil {
		return LogSpan{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if n == 0 {
		return LogSpan{}, errEmptyLog
	}

	var span LogSpan
	if d, ok := datestamp.ExtractWith(first, datestamp.ISODate, loc); ok {
		span.First = d
	}
	if d, ok := datestamp.ExtractWith(last, datestamp.ISODate, loc); ok {
		span.Last = d
	}
	return span, nil
}
