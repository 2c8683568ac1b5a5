// Package cli wires the logkeeper commands.
package cli

import (
	"github.com/spf13/cobra"
)

const defaultConfigPath = "logkeeper.yaml"

type rootOptions struct {
	configPath string
}

func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "logkeeper",
		Short:         "Delete aged files and rotate the report log",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "path to the YAML config")

	root.AddCommand(newSweepCommand(opts))
	root.AddCommand(newRotateCommand(opts))
	root.AddCommand(newRunCommand(opts))
	root.AddCommand(newVersionCommand())

	return root
}

func Execute() error {
	return NewRootCommand().Execute()
}
