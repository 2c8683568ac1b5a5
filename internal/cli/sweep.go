package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raoulx24/logkeeper/internal/config"
	"github.com/raoulx24/logkeeper/internal/worker"
)

type passOptions struct {
	dryRun bool
	now    string
}

func newSweepCommand(root *rootOptions) *cobra.Command {
	opts := &passOptions{}
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Delete expired files in every target, then rotate the log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd, root, opts, worker.KindFull)
		},
	}
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "report what would be deleted without deleting")
	cmd.Flags().StringVar(&opts.now, "now", "", "evaluate ages as of this time (RFC 3339 or YYYY-MM-DD)")
	return cmd
}

func newRotateCommand(root *rootOptions) *cobra.Command {
	opts := &passOptions{}
	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "Archive the log if its first entry has aged out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd, root, opts, worker.KindRotate)
		},
	}
	cmd.Flags().StringVar(&opts.now, "now", "", "evaluate ages as of this time (RFC 3339 or YYYY-MM-DD)")
	return cmd
}

func runOnce(cmd *cobra.Command, root *rootOptions, opts *passOptions, kind worker.Kind) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(root.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	clock, err := parseNow(opts.now)
	if err != nil {
		return err
	}

	a, err := newApp(cfg, cmd.ErrOrStderr(), clock, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	pass, err := a.worker.RunPass(ctx, worker.Job{Kind: kind, Reason: "manual", DryRun: opts.dryRun, Requested: clock()})
	printPass(cmd.OutOrStdout(), pass, err)
	if err != nil {
		return fmt.Errorf("%s pass: %w", kind, err)
	}
	return nil
}
