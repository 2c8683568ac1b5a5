// Package logarchive rotates a continuously appended log file into dated
// archive files once its oldest line ages out of the retention window.
package logarchive

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/raoulx24/logkeeper/internal/fs"
	"github.com/raoulx24/logkeeper/internal/logging"
	"github.com/raoulx24/logkeeper/internal/metrics"
	"github.com/raoulx24/logkeeper/internal/retention"
)

// ErrArchiveDirMissing is returned when the archive directory does not
// exist. The archiver never creates it.
var ErrArchiveDirMissing = errors.New("archive directory does not exist")

// maxCollisions bounds the " (n)" suffixes tried for one archive name.
const maxCollisions = 1000

// Rotation is the outcome of one MaybeRotate call.
type Rotation struct {
	Rotated      bool
	ArchivedPath string
	Span         LogSpan
}

// Archiver moves an aged log file into its archive directory.
type Archiver struct {
	fs       fs.FS
	log      logging.Logger
	metrics  *metrics.Collector
	onRotate func(archivedPath string)
}

// Option configures an Archiver.
type Option func(*Archiver)

// WithMetrics records every rotation outcome on c.
func WithMetrics(c *metrics.Collector) Option {
	return func(a *Archiver) { a.metrics = c }
}

// WithLogger replaces the logger given to New.
func WithLogger(log logging.Logger) Option {
	return func(a *Archiver) { a.log = log }
}

// OnRotate registers a hook run after a successful move and before the move
// is logged, typically to make the log writer reopen its file.
func OnRotate(fn func(archivedPath string)) Option {
	return func(a *Archiver) { a.onRotate = fn }
}

// New creates an archiver. A nil filesystem means the OS filesystem.
func New(filesystem fs.FS, log logging.Logger, opts ...Option) *Archiver {
	if filesystem == nil {
		filesystem = fs.New()
	}
	if log == nil {
		log = logging.Discard()
	}
	a := &Archiver{fs: filesystem, log: log}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// With returns a copy of a with opts applied; a itself is unchanged.
func (a *Archiver) With(opts ...Option) *Archiver {
	c := *a
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

// MaybeRotate moves the log at logPath into archiveDir when the date on its
// first line is at least maxAgeDays before now.
//
// A missing or empty log, or one whose first line has no date, is left
// alone without error. Dates are read in now's location. If the archive name
// is taken, " (2)", " (3)", ... is inserted before the extension; an
// existing archive is never overwritten.
//
// Lines appended by another process while the move runs may end up in
// either file; the move is only as atomic as the filesystem's rename.
func (a *Archiver) MaybeRotate(ctx context.Context, logPath, archiveDir string, maxAgeDays int, now time.Time) (Rotation, error) {
	rot, err := a.maybeRotate(ctx, logPath, archiveDir, maxAgeDays, now)
	switch {
	case err != nil:
		a.metrics.ObserveRotation("error")
	case rot.Rotated:
		a.metrics.ObserveRotation("rotated")
	default:
		a.metrics.ObserveRotation("skipped")
	}
	return rot, err
}

func (a *Archiver) maybeRotate(ctx context.Context, logPath, archiveDir string, maxAgeDays int, now time.Time) (Rotation, error) {
	if maxAgeDays < 0 {
		return Rotation{}, fmt.Errorf("logarchive: max age must not be negative, got %d", maxAgeDays)
	}

	span, err := a.readSpan(logPath, now.Location())
	switch {
	case errors.Is(err, os.ErrNotExist):
		a.log.Debug("logarchive: no log file yet", "path", logPath)
		return Rotation{}, nil
	case errors.Is(err, errEmptyLog):
		a.log.Debug("logarchive: log file is empty", "path", logPath)
		return Rotation{}, nil
	case err != nil:
		return Rotation{}, fmt.Errorf("logarchive: %w", err)
	}

	rot := Rotation{Span: span}
	if !span.HasFirst() {
		a.log.Debug("logarchive: first line has no date", "path", logPath)
		return rot, nil
	}
	if !retention.IsExpired(span.First, now, maxAgeDays) {
		return rot, nil
	}

	ok, err := a.isDir(archiveDir)
	if err != nil {
		return rot, fmt.Errorf("logarchive: checking archive dir %s: %w", archiveDir, err)
	}
	if !ok {
		return rot, fmt.Errorf("logarchive: %s: %w", archiveDir, ErrArchiveDirMissing)
	}

	dest, err := a.freeName(archiveDir, ArchiveName(logPath, span, now))
	if err != nil {
		return rot, err
	}

	if err := a.fs.Rename(ctx, logPath, dest); err != nil {
		return rot, fmt.Errorf("logarchive: moving %s to %s: %w", logPath, dest, err)
	}

	rot.Rotated = true
	rot.ArchivedPath = dest
	if a.onRotate != nil {
		a.onRotate(dest)
	}
	a.log.Info("Archived log", "from", logPath, "to", dest)
	return rot, nil
}

func (a *Archiver) isDir(path string) (bool, error) {
	st, err := a.fs.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return st.IsDir, nil
}

// freeName returns the first unused path for name inside dir.
func (a *Archiver) freeName(dir, name string) (string, error) {
	candidate := filepath.Join(dir, name)
	for n := 2; n <= maxCollisions+1; n++ {
		taken, err := a.fs.Exists(candidate)
		if err != nil {
			return "", fmt.Errorf("logarchive: checking %s: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = filepath.Join(dir, withCounter(name, n))
	}
	return "", fmt.Errorf("logarchive: no free archive name for %s after %d attempts", name, maxCollisions)
}
