package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/raoulx24/logkeeper/internal/config"
	"github.com/raoulx24/logkeeper/internal/fs"
	"github.com/raoulx24/logkeeper/internal/logarchive"
	"github.com/raoulx24/logkeeper/internal/logging"
	"github.com/raoulx24/logkeeper/internal/mailbox"
	"github.com/raoulx24/logkeeper/internal/metrics"
	"github.com/raoulx24/logkeeper/internal/retention"
	"github.com/raoulx24/logkeeper/internal/worker"
)

// app is everything a command needs for one config.
type app struct {
	mu     sync.Mutex
	cfg    *config.Config
	log    logging.Logger
	sink   *logging.FileSink
	fs     fs.FS
	worker *worker.Worker
}

// newApp builds the logger, engine, archiver and worker for cfg. The log
// goes to console (in the configured format) and, when a log path is set,
// to that file in line format so the archiver can read its dates back.
// It also creates the log's archive directory, which the archiver itself
// never does.
func newApp(cfg *config.Config, console io.Writer, clock func() time.Time, mb *mailbox.Mailbox[worker.Job]) (*app, error) {
	a := &app{cfg: cfg, fs: fs.New()}

	consoleLog, err := logging.New(console, logging.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	if err != nil {
		return nil, err
	}
	a.log = consoleLog

	if cfg.Log.Path != "" {
		if a.sink, err = logging.NewFileSink(cfg.Log.Path); err != nil {
			return nil, err
		}
		fileLog, err := logging.New(a.sink, logging.Options{Level: cfg.Logging.Level, Format: logging.FormatLine})
		if err != nil {
			return nil, err
		}
		a.log = logging.Tee(consoleLog, fileLog)

		if err := a.fs.MkdirAll(cfg.Log.ArchiveDir); err != nil {
			return nil, fmt.Errorf("create archive dir: %w", err)
		}
	}

	var col *metrics.Collector
	if cfg.Metrics.Textfile != "" {
		col = metrics.NewCollector(nil)
	}

	engine := retention.New(a.fs, a.log,
		retention.WithClock(clock),
		retention.WithMetrics(col),
	)
	archiver := logarchive.New(a.fs, a.log,
		logarchive.WithMetrics(col),
		logarchive.OnRotate(a.reopenLog),
	)

	a.worker = worker.New(cfg, a.log, engine, archiver, mb,
		worker.WithClock(clock),
		worker.WithMetrics(col),
	)
	return a, nil
}

func (a *app) reopenLog(string) {
	if a.sink == nil {
		return
	}
	if err := a.sink.Reopen(); err != nil {
		a.log.Error("reopening log file failed", "error", err)
	}
}

func (a *app) Close() error {
	if a.sink == nil {
		return nil
	}
	return a.sink.Close()
}

// parseNow turns the --now flag into a clock. Empty means the wall clock.
func parseNow(s string) (func() time.Time, error) {
	if s == "" {
		return time.Now, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return func() time.Time { return t }, nil
		}
	}
	return nil, fmt.Errorf("invalid --now %q: want RFC 3339 or YYYY-MM-DD", s)
}
