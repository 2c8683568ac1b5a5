package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// StartFsNotify watches the config file's directory, so editors that save
// through a rename are still seen, and calls detect once events for the
// file stop arriving for the debounce window.
func (w *Watcher) StartFsNotify(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	w.mu.RLock()
	dir, name := w.dir, w.name
	w.mu.RUnlock()

	if err := fw.Add(dir); err != nil {
		return err
	}

	quiet := time.NewTimer(time.Hour)
	quiet.Stop()
	defer quiet.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != name || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			w.log.Debug("config event", "name", ev.Name, "op", ev.Op.String())

			w.mu.RLock()
			debounce := w.debounce
			w.mu.RUnlock()
			quiet.Reset(debounce)

		case <-quiet.C:
			w.detect()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("fsnotify error", "error", err)
		}
	}
}
