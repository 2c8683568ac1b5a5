// Package fsprobe checks whether fsnotify works reliably for a directory.
// Network mounts and some container volumes accept a watch but never
// deliver events; a real create+rename tells the two apart.
package fsprobe

import (
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultTimeout is how long Probe waits for the first event.
const DefaultTimeout = 200 * time.Millisecond

// Result reports whether fsnotify is usable and why.
type Result struct {
	FsnotifySupported bool   // true if events are delivered
	Reason            string // explanation when unsupported
}

// Probe tests whether fsnotify reliably reports changes in dir.
func Probe(dir string) Result {
	return ProbeWithTimeout(dir, DefaultTimeout)
}

// ProbeWithTimeout is Probe with an explicit wait for events.
func ProbeWithTimeout(dir string, timeout time.Duration) Result {
	st, err := os.Stat(dir)
	if err != nil {
		return Result{false, fmt.Sprintf("stat failed: %v", err)}
	}
	if !st.IsDir() {
		return Result{false, "not a directory"}
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return Result{false, fmt.Sprintf("fsnotify unavailable: %v", err)}
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return Result{false, fmt.Sprintf("cannot watch directory: %v", err)}
	}

	tmp, err := os.CreateTemp(dir, ".logkeeper-probe-*")
	if err != nil {
		return Result{false, fmt.Sprintf("cannot create temp file: %v", err)}
	}
	tmpName := tmp.Name()
	tmp.Close()

	final := tmpName + ".done"
	if err := os.Rename(tmpName, final); err != nil {
		os.Remove(tmpName)
		return Result{false, fmt.Sprintf("rename failed: %v", err)}
	}
	defer os.Remove(final)

	deadline := time.After(timeout)
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return Result{false, "event channel closed"}
			}
			if ev.Op&(fsnotify.Rename|fsnotify.Create|fsnotify.Write) != 0 {
				return Result{true, ""}
			}
		case <-deadline:
			return Result{false, "no events received (rename not reported)"}
		}
	}
}
