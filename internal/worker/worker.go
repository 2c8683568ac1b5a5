// Package worker runs retention passes: every configured target through
// the retention engine, then the active log through the log archiver.
package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/raoulx24/logkeeper/internal/config"
	"github.com/raoulx24/logkeeper/internal/logarchive"
	"github.com/raoulx24/logkeeper/internal/logging"
	"github.com/raoulx24/logkeeper/internal/mailbox"
	"github.com/raoulx24/logkeeper/internal/metrics"
	"github.com/raoulx24/logkeeper/internal/retention"
	"github.com/raoulx24/logkeeper/internal/scan"
)

// Worker executes passes one at a time.
type Worker struct {
	mu       sync.RWMutex
	cfg      *config.Config
	log      logging.Logger
	engine   *retention.Engine
	archiver *logarchive.Archiver
	metrics  *metrics.Collector
	mb       *mailbox.Mailbox[Job]
	now      func() time.Time
}

// Option configures a Worker.
type Option func(*Worker)

// WithMetrics stamps each finished pass on c and writes its textfile.
func WithMetrics(c *metrics.Collector) Option {
	return func(w *Worker) { w.metrics = c }
}

// WithClock sets the clock used for log rotation decisions. The engine
// keeps its own clock.
func WithClock(now func() time.Time) Option {
	return func(w *Worker) { w.now = now }
}

// New creates a worker. mb may be nil when only RunPass is used.
func New(cfg *config.Config, log logging.Logger, engine *retention.Engine, archiver *logarchive.Archiver, mb *mailbox.Mailbox[Job], opts ...Option) *Worker {
	log.Debug("creating worker")
	w := &Worker{
		cfg:      cfg,
		log:      log,
		engine:   engine,
		archiver: archiver,
		mb:       mb,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// UpdateConfig swaps the config used by the next pass.
func (w *Worker) UpdateConfig(cfg *config.Config) {
	w.mu.Lock()
	w.cfg = cfg
	w.mu.Unlock()
}

// Pass is the outcome of one RunPass.
type Pass struct {
	ID       string
	Kind     Kind
	Mode     retention.Mode
	Reports  []retention.Report
	Rotation logarchive.Rotation
}

// Deleted counts the files deleted (or selected, in dry-run) over all targets.
func (p Pass) Deleted() int {
	n := 0
	for _, r := range p.Reports {
		n += len(r.DeletedNames)
	}
	return n
}

// RunPass runs one pass. Targets are processed strictly one after the
// other; an error on one target does not skip the rest. The returned error
// joins every failure of the pass.
func (w *Worker) RunPass(ctx context.Context, job Job) (Pass, error) {
	w.mu.RLock()
	cfg := w.cfg
	w.mu.RUnlock()

	pass := Pass{ID: uuid.NewString(), Kind: job.Kind, Mode: retention.Live}
	if cfg.DryRun || job.DryRun {
		pass.Mode = retention.DryRun
	}

	log := w.log.With("pass_id", pass.ID)
	log.Debug("pass started", "kind", job.Kind.String(), "reason", job.Reason, "mode", pass.Mode.String())

	var errs []error

	if job.Kind != KindRotate {
		pass.Reports, errs = w.sweep(ctx, cfg, pass.Mode, log)
	}

	if job.Kind != KindSweep && cfg.Log.Path != "" {
		rot, err := w.rotate(ctx, cfg, pass.Mode, log)
		pass.Rotation = rot
		if err != nil {
			errs = append(errs, err)
		}
	}

	w.metrics.PassFinished(w.now())
	if err := w.metrics.WriteTextfile(cfg.Metrics.Textfile); err != nil {
		log.Warn("writing metrics textfile failed", "path", cfg.Metrics.Textfile, "error", err)
	}

	log.Debug("pass finished",
		"deleted", pass.Deleted(),
		"rotated", pass.Rotation.Rotated,
		"errors", len(errs),
	)

	return pass, errors.Join(errs...)
}

func (w *Worker) sweep(ctx context.Context, cfg *config.Config, mode retention.Mode, log logging.Logger) ([]retention.Report, []error) {
	policy := retention.ContinueOnError
	if cfg.OnError == "abort" {
		policy = retention.AbortOnFirst
	}
	eng := w.engine.With(retention.WithFailurePolicy(policy), retention.WithLogger(log))

	var (
		reports []retention.Report
		errs    []error
	)
	for _, t := range cfg.Targets {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		report, err := eng.Apply(ctx, t.Path, t.MaxAge(cfg.MaxAge()), mode, scanOptions(t)...)
		reports = append(reports, report)
		if err != nil {
			log.Error("retention failed", "target", t.Path, "error", err)
			errs = append(errs, fmt.Errorf("target %s: %w", t.Path, err))
			if policy == retention.AbortOnFirst {
				break
			}
		}
	}
	return reports, errs
}

func (w *Worker) rotate(ctx context.Context, cfg *config.Config, mode retention.Mode, log logging.Logger) (logarchive.Rotation, error) {
	if mode == retention.DryRun {
		log.Debug("dry-run: log rotation skipped", "path", cfg.Log.Path)
		return logarchive.Rotation{}, nil
	}

	arch := w.archiver.With(logarchive.WithLogger(log))
	rot, err := arch.MaybeRotate(ctx, cfg.Log.Path, cfg.Log.ArchiveDir, cfg.Log.MaxAge(cfg.MaxAge()), w.now())
	if err != nil {
		log.Error("log rotation failed", "path", cfg.Log.Path, "error", err)
		return rot, fmt.Errorf("log %s: %w", cfg.Log.Path, err)
	}
	return rot, nil
}

func scanOptions(t config.TargetConfig) []scan.Option {
	var opts []scan.Option
	if len(t.Exclude) > 0 {
		opts = append(opts, scan.WithExclude(t.Exclude...))
	}
	if t.IgnoreFile != "" {
		opts = append(opts, scan.WithIgnoreFile(t.IgnoreFile))
	}
	return opts
}
