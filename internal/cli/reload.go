package cli

import (
	"strings"

	"github.com/raoulx24/logkeeper/internal/config"
	"github.com/raoulx24/logkeeper/internal/schedule"
	"github.com/raoulx24/logkeeper/internal/watcher"
)

// restartOnly copies the settings that are bound when the app is built
// (log file, logger, metrics, watch method) from cur into next, and names
// the ones next tried to change.
func restartOnly(cur, next *config.Config) []string {
	var changed []string
	pin := func(name string, same bool, keep func()) {
		if !same {
			changed = append(changed, name)
		}
		keep()
	}

	pin("log.path", next.Log.Path == cur.Log.Path, func() { next.Log.Path = cur.Log.Path })
	pin("log.archiveDir", next.Log.ArchiveDir == cur.Log.ArchiveDir, func() { next.Log.ArchiveDir = cur.Log.ArchiveDir })
	pin("logging", next.Logging == cur.Logging, func() { next.Logging = cur.Logging })
	pin("metrics.textfile", next.Metrics == cur.Metrics, func() { next.Metrics = cur.Metrics })
	pin("configReload.enabled", next.ConfigReload.Enabled == cur.ConfigReload.Enabled, func() { next.ConfigReload.Enabled = cur.ConfigReload.Enabled })
	pin("configReload.method", next.ConfigReload.Method == cur.ConfigReload.Method, func() { next.ConfigReload.Method = cur.ConfigReload.Method })

	return changed
}

// reload applies next to a running app. Targets, retention windows, the
// failure policy, dry-run and the schedule change in place; settings listed
// by restartOnly keep their startup values until the process restarts.
// sched and w may be nil.
func (a *app) reload(next *config.Config, sched *schedule.Scheduler, w *watcher.Watcher) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if changed := restartOnly(a.cfg, next); len(changed) > 0 {
		a.log.Warn("config reload keeps startup values, restart to apply", "fields", strings.Join(changed, ", "))
	}

	if sched != nil {
		if err := sched.Update(next.Schedule.Cron); err != nil {
			return err
		}
	}
	if w != nil {
		w.UpdateConfig(next.ConfigReload)
	}

	a.worker.UpdateConfig(next)
	a.cfg = next
	return nil
}
