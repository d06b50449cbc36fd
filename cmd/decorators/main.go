package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "decorators",
		Short:         "Run sample functions through the endpoint decorators",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.AddCommand(newDemoCommand(), newPluginsCommand())
	return cmd
}
