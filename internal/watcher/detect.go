package watcher

import (
	"os"
	"path/filepath"
	"time"
)

// prime records the current mtime so the file as loaded at startup does
// not count as a change.
func (w *Watcher) prime() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if info, err := os.Stat(filepath.Join(w.dir, w.name)); err == nil {
		w.lastModTime = info.ModTime()
	}
}

// detect calls onChange if the file was modified since the last call and
// has stopped growing.
func (w *Watcher) detect() {
	w.mu.RLock()
	path := filepath.Join(w.dir, w.name)
	last := w.lastModTime
	w.mu.RUnlock()

	info, err := os.Stat(path)
	if err != nil {
		return
	}

	mod := info.ModTime()
	if !mod.After(last) {
		return
	}
	if !w.isStable(path) {
		w.log.Debug("config still being written, retrying on next event", "path", path)
		return
	}

	w.mu.Lock()
	w.lastModTime = mod
	w.mu.Unlock()

	w.log.Info("config change detected", "path", path)
	w.onChange()
}

// isStable reports whether path kept the same size over the stability window.
func (w *Watcher) isStable(path string) bool {
	w.mu.RLock()
	stability := w.stability
	w.mu.RUnlock()

	info1, err := os.Stat(path)
	if err != nil {
		return false
	}

	time.Sleep(stability)

	info2, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info1.Size() == info2.Size()
}
