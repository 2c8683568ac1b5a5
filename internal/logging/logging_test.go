package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lineRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2},\d{3} - INFO - Deleted a.txt, b.txt root=/tmp/x mode=live\n$`)

func TestLineFormat(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, Options{Level: "info", Format: FormatLine})
	require.NoError(t, err)

	l.Info("Deleted a.txt, b.txt", "root", "/tmp/x", "mode", "live")

	assert.Regexp(t, lineRE, buf.String())
}

func TestLineFormatWithAndQuoting(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, Options{Format: FormatLine})
	require.NoError(t, err)

	l.With("pass_id", "p1").Error("remove failed", "path", "/tmp/Email Attachments/a b.xlsx")

	out := buf.String()
	assert.Contains(t, out, " - ERROR - remove failed pass_id=p1 path=\"/tmp/Email Attachments/a b.xlsx\"")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, Options{Level: "warn"})
	require.NoError(t, err)

	l.Debug("debug")
	l.Info("info")
	l.Warn("warn")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], " - WARN - warn")
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, Options{Level: "debug", Format: FormatJSON})
	require.NoError(t, err)

	l.Debug("would delete", "path", "/x")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "would delete", rec["msg"])
	assert.Equal(t, "/x", rec["path"])
}

func TestNewRejectsUnknownValues(t *testing.T) {
	_, err := New(&bytes.Buffer{}, Options{Level: "loud"})
	assert.ErrorContains(t, err, "unknown log level")

	_, err = New(&bytes.Buffer{}, Options{Format: "xml"})
	assert.ErrorContains(t, err, "unknown log format")
}

func TestFileSinkReopenAfterMove(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Logs", "logkeeper.log")

	sink, err := NewFileSink(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sink.Close() })

	_, err = sink.Write([]byte("first\n"))
	require.NoError(t, err)

	moved := filepath.Join(dir, "moved.log")
	require.NoError(t, os.Rename(path, moved))
	require.NoError(t, sink.Reopen())

	_, err = sink.Write([]byte("second\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))

	data, err = os.ReadFile(moved)
	require.NoError(t, err)
	assert.Equal(t, "first\n", string(data))
}

func TestTee(t *testing.T) {
	var a, b bytes.Buffer
	la, err := New(&a, Options{Level: "debug", Format: FormatLine})
	require.NoError(t, err)
	lb, err := New(&b, Options{Level: "warn", Format: FormatText})
	require.NoError(t, err)

	l := Tee(la, lb).With("pass_id", "p")
	l.Info("hello")
	l.Warn("careful")

	assert.Contains(t, a.String(), " - INFO - hello pass_id=p")
	assert.Contains(t, a.String(), " - WARN - careful pass_id=p")
	assert.NotContains(t, b.String(), "hello")
	assert.Contains(t, b.String(), "msg=careful")
	assert.Contains(t, b.String(), "pass_id=p")
}
