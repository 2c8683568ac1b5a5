// Package watcher notices edits to the config file and triggers a reload.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/raoulx24/logkeeper/internal/config"
	"github.com/raoulx24/logkeeper/internal/fsprobe"
	"github.com/raoulx24/logkeeper/internal/logging"
)

// Watcher observes one file and calls onChange after it settles on new
// content.
type Watcher struct {
	mu sync.RWMutex

	dir       string
	name      string
	interval  time.Duration
	mode      string
	debounce  time.Duration
	stability time.Duration

	log logging.Logger

	lastModTime time.Time

	onChange func()
}

// New creates a watcher for path using the reload settings.
func New(path string, cfg config.ReloadConfig, log logging.Logger, onChange func()) *Watcher {
	return &Watcher{
		dir:       filepath.Dir(path),
		name:      filepath.Base(path),
		interval:  cfg.PollInterval,
		mode:      cfg.Method,
		debounce:  cfg.DebounceWindow,
		stability: cfg.StabilityWindow,
		log:       log,
		onChange:  onChange,
	}
}

// Start chooses the watching strategy from the configured mode and blocks
// until ctx is done.
func (w *Watcher) Start(ctx context.Context) error {
	w.prime()

	w.mu.RLock()
	mode, dir := w.mode, w.dir
	w.mu.RUnlock()

	switch mode {
	case "fsnotify":
		return w.StartFsNotify(ctx)

	case "poll":
		w.StartPolling(ctx)
		return nil

	case "auto":
		res := fsprobe.Probe(dir)
		if res.FsnotifySupported {
			return w.StartFsNotify(ctx)
		}
		w.log.Warn("fsnotify disabled, polling config", "reason", res.Reason)
		w.StartPolling(ctx)
		return nil

	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}
