package versionCommand

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set with -ldflags at release time.
var Version string
var Revision string

type VersionCommand struct {
	CobraCommand *cobra.Command
}

func NewVersionCommand() *VersionCommand {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of jobconf",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			version := Version
			if version == "" {
				version = "dev"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "jobconf version %s (rev: %s)\n", version, Revision)
		},
	}

	return &VersionCommand{
		CobraCommand: cmd,
	}
}
