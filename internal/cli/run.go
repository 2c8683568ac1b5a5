package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/raoulx24/logkeeper/internal/config"
	"github.com/raoulx24/logkeeper/internal/mailbox"
	"github.com/raoulx24/logkeeper/internal/schedule"
	"github.com/raoulx24/logkeeper/internal/watcher"
	"github.com/raoulx24/logkeeper/internal/worker"
)

func newRunCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run passes on the configured cron schedule until stopped",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDaemon(cmd, root.configPath)
		},
	}
}

// runDaemon runs a pass at startup and then on every cron tick. SIGHUP or
// an edit of the config file reloads it; SIGINT/SIGTERM stop the daemon.
func runDaemon(cmd *cobra.Command, configPath string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	mb := mailbox.New[worker.Job]()

	a, err := newApp(cfg, cmd.ErrOrStderr(), time.Now, mb)
	if err != nil {
		return err
	}
	defer a.Close()
	logg := a.log

	sched := schedule.New(logg, mb)
	if err := sched.Start(ctx, cfg.Schedule.Cron); err != nil {
		return err
	}
	defer sched.Stop()

	var w *watcher.Watcher

	reload := func() {
		newCfg, err := config.Load(configPath)
		if err == nil {
			err = a.reload(newCfg, sched, w)
		}
		if err != nil {
			logg.Error("config reload failed", "error", err)
			return
		}
		logg.Info("config reloaded")
	}

	if cfg.ConfigReload.Enabled {
		w = watcher.New(configPath, cfg.ConfigReload, logg, reload)
		go func() {
			if err := w.Start(ctx); err != nil {
				logg.Error("config watcher stopped", "error", err)
			}
		}()
	}

	go func() {
		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		defer signal.Stop(hup)

		for {
			select {
			case <-ctx.Done():
				return
			case <-hup:
				reload()
			}
		}
	}()

	mb.Put(worker.Job{Kind: worker.KindFull, Reason: "startup", Requested: time.Now()})
	a.worker.Start(ctx)

	logg.Info("exit complete")
	return nil
}
