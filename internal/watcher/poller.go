package watcher

import (
	"context"
	"time"
)

func (w *Watcher) pollInterval() time.Duration {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.interval
}

// StartPolling stats the config file every poll interval until ctx is
// done. A new interval from UpdateConfig takes effect on the next tick.
func (w *Watcher) StartPolling(ctx context.Context) {
	current := w.pollInterval()
	ticker := time.NewTicker(current)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		w.detect()

		if next := w.pollInterval(); next != current {
			current = next
			ticker.Reset(current)
			w.log.Debug("config poll interval changed", "interval", current)
		}
	}
}
