package watcher

import (
	"github.com/raoulx24/logkeeper/internal/config"
)

// UpdateConfig updates watcher timings for hot-reload. The mode in effect
// only changes on the next Start.
func (w *Watcher) UpdateConfig(cfg config.ReloadConfig) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.interval = cfg.PollInterval
	w.mode = cfg.Method
	w.debounce = cfg.DebounceWindow
	w.stability = cfg.StabilityWindow
}

// Config returns the reload settings currently in effect.
func (w *Watcher) Config() config.ReloadConfig {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return config.ReloadConfig{
		Method:          w.mode,
		PollInterval:    w.interval,
		DebounceWindow:  w.debounce,
		StabilityWindow: w.stability,
	}
}
