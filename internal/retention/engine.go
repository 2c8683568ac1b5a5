// Package retention deletes files that have aged out of a retention window.
package retention

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/raoulx24/logkeeper/internal/fs"
	"github.com/raoulx24/logkeeper/internal/logging"
	"github.com/raoulx24/logkeeper/internal/metrics"
	"github.com/raoulx24/logkeeper/internal/scan"
)

// FailurePolicy decides what a pass does after a file fails to be removed.
type FailurePolicy int

const (
	// ContinueOnError records the failure and keeps sweeping.
	ContinueOnError FailurePolicy = iota
	// AbortOnFirst stops the pass at the first failed removal.
	AbortOnFirst
)

// Engine applies the retention policy to directory trees.
type Engine struct {
	fs      fs.FS
	log     logging.Logger
	metrics *metrics.Collector
	now     func() time.Time
	onError FailurePolicy
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces time.Now as the source of "now".
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithFailurePolicy sets what happens after a failed removal.
func WithFailurePolicy(p FailurePolicy) Option {
	return func(e *Engine) { e.onError = p }
}

// WithMetrics records sweep results on c.
func WithMetrics(c *metrics.Collector) Option {
	return func(e *Engine) { e.metrics = c }
}

// WithLogger replaces the logger given to New.
func WithLogger(log logging.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// New creates an engine. A nil filesystem means the OS filesystem.
func New(filesystem fs.FS, log logging.Logger, opts ...Option) *Engine {
	if filesystem == nil {
		filesystem = fs.New()
	}
	if log == nil {
		log = logging.Discard()
	}

	e := &Engine{
		fs:  filesystem,
		log: log,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// With returns a copy of e with opts applied; e itself is unchanged.
func (e *Engine) With(opts ...Option) *Engine {
	c := *e
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

// action is what a pass does to an expired file.
type action func(ctx context.Context, rec scan.FileRecord) error

func (e *Engine) actionFor(mode Mode) action {
	if mode == Live {
		return func(ctx context.Context, rec scan.FileRecord) error {
			return e.fs.Remove(ctx, rec.Path)
		}
	}
	return func(_ context.Context, rec scan.FileRecord) error {
		e.log.Debug("would delete", "path", rec.Path)
		return nil
	}
}

// Apply sweeps every file under root and handles those last modified at
// least maxAgeDays ago. In Live mode they are removed; in DryRun mode they
// are only reported. Both modes share the same selection.
//
// A root that does not exist yields an empty report. Removal failures do
// not stop the sweep (unless AbortOnFirst is set); they are returned in
// the report and as a *DeletionErrors. A failing directory walk ends the
// pass with a *ScanError alongside whatever was processed so far.
func (e *Engine) Apply(ctx context.Context, root string, maxAgeDays int, mode Mode, opts ...scan.Option) (Report, error) {
	report := Report{Root: root, Mode: mode}
	if maxAgeDays < 0 {
		return report, fmt.Errorf("retention: max age must not be negative, got %d", maxAgeDays)
	}

	start := time.Now()
	now := e.now()
	act := e.actionFor(mode)

	var passErr error
	for rec, err := range scan.Scan(root, opts...) {
		if err != nil {
			passErr = &ScanError{Root: root, Err: err}
			break
		}
		if err := ctx.Err(); err != nil {
			passErr = err
			break
		}
		if !IsExpired(rec.ModTime, now, maxAgeDays) {
			continue
		}

		if err := act(ctx, rec); err != nil {
			report.Failures = append(report.Failures, DeletionError{Path: rec.Path, Err: err})
			e.log.Error("retention: remove failed", "path", rec.Path, "error", err)
			if e.onError == AbortOnFirst {
				break
			}
			continue
		}
		report.DeletedNames = append(report.DeletedNames, rec.Name)
	}

	if summary := report.Summary(); summary != "" {
		e.log.Info(summary, "root", root, "mode", mode.String())
	}
	e.metrics.ObserveSweep(root, mode.String(), len(report.DeletedNames), len(report.Failures), time.Since(start))

	return report, errors.Join(passErr, report.Err())
}
