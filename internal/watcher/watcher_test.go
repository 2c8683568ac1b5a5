package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raoulx24/logkeeper/internal/config"
	"github.com/raoulx24/logkeeper/internal/logging"
)

func reloadCfg(method string) config.ReloadConfig {
	return config.ReloadConfig{
		Enabled:         true,
		Method:          method,
		PollInterval:    20 * time.Millisecond,
		DebounceWindow:  20 * time.Millisecond,
		StabilityWindow: 5 * time.Millisecond,
	}
}

func touch(t *testing.T, path, content string, mtime time.Time) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func TestDetectOnlyOnNewerModTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logkeeper.yaml")
	base := time.Now().Add(-time.Hour)
	touch(t, path, "a: 1\n", base)

	var calls atomic.Int32
	w := New(path, reloadCfg("poll"), logging.Discard(), func() { calls.Add(1) })
	w.prime()

	w.detect()
	assert.Zero(t, calls.Load(), "unchanged file is not a change")

	touch(t, path, "a: 2\n", base.Add(time.Minute))
	w.detect()
	w.detect()
	assert.EqualValues(t, 1, calls.Load())
}

func TestDetectMissingFile(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "gone.yaml"), reloadCfg("poll"), logging.Discard(), func() {
		t.Fatal("onChange must not run for a missing file")
	})
	w.detect()
}

func TestPollingTriggersReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logkeeper.yaml")
	touch(t, path, "a: 1\n", time.Now().Add(-time.Hour))

	var calls atomic.Int32
	w := New(path, reloadCfg("poll"), logging.Discard(), func() { calls.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	touch(t, path, "a: 22\n", time.Now())

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestFsNotifyTriggersReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logkeeper.yaml")
	touch(t, path, "a: 1\n", time.Now().Add(-time.Hour))

	var calls atomic.Int32
	w := New(path, reloadCfg("fsnotify"), logging.Discard(), func() { calls.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Start(ctx) }()

	time.Sleep(100 * time.Millisecond)
	touch(t, filepath.Join(dir, "unrelated.txt"), "x", time.Now())
	require.NoError(t, os.WriteFile(path, []byte("a: 2\n"), 0o644))

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 3*time.Second, 10*time.Millisecond)
}

func TestStartUnknownMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logkeeper.yaml")
	w := New(path, reloadCfg("telepathy"), logging.Discard(), func() {})
	assert.ErrorContains(t, w.Start(context.Background()), "unknown mode")
}

func TestUpdateConfig(t *testing.T) {
	w := New("/etc/logkeeper.yaml", reloadCfg("poll"), logging.Discard(), func() {})
	next := reloadCfg("fsnotify")
	next.PollInterval = time.Minute
	w.UpdateConfig(next)

	assert.Equal(t, "fsnotify", w.mode)
	assert.Equal(t, time.Minute, w.interval)
	assert.Equal(t, "logkeeper.yaml", w.name)
	assert.Equal(t, time.Minute, w.Config().PollInterval)
}
