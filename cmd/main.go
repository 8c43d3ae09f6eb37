package cmd

import (
	"fmt"
	"io"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/t-kuni/jobconf/cmd/completeCommand"
	"github.com/t-kuni/jobconf/cmd/globalFlags"
	"github.com/t-kuni/jobconf/cmd/setupCommand"
	"github.com/t-kuni/jobconf/cmd/showCommand"
	"github.com/t-kuni/jobconf/cmd/versionCommand"
	"github.com/t-kuni/jobconf/domain/service/pathComplete"
	"github.com/t-kuni/jobconf/domain/service/promptSequence"
	"github.com/t-kuni/jobconf/infrastructure/external/probe"
	fileRepo "github.com/t-kuni/jobconf/infrastructure/repository/file"
	"github.com/t-kuni/jobconf/infrastructure/system/ksuid"
)

type RootCommand struct {
	CobraCommand *cobra.Command
}

func NewRootCommand() *RootCommand {
	globals := &globalFlags.GlobalFlags{}

	fileRepository := fileRepo.NewFileRepository()
	idGenerator := ksuid.NewGenerator()
	pathCompleteSrv := pathComplete.NewPathCompleteService(fileRepository)
	prober := probe.NewHTTPProber()

	setupCmd := setupCommand.NewSetupCommand(globals, fileRepository, idGenerator, pathCompleteSrv, prober)

	cmd := &cobra.Command{
		Use:   "jobconf",
		Short: "Write the job directory and service endpoints into a client config file",
		Long: `jobconf asks a few questions and writes the answers into an existing client
configuration file (JSON or YAML). Running it without a subcommand is the same as "jobconf setup".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:         setupCmd.CobraCommand.RunE,
	}

	cmd.PersistentFlags().StringVarP(&globals.ConfigPath, "config", "c", globalFlags.ConfigPathDefault(), "Path of the config file to update")
	cmd.PersistentFlags().BoolVarP(&globals.Verbose, "verbose", "v", false, "Log every step to stderr")
	cmd.Flags().AddFlagSet(setupCmd.CobraCommand.Flags())

	cmd.AddCommand(setupCmd.CobraCommand)
	cmd.AddCommand(completeCommand.NewCompleteCommand(pathCompleteSrv).CobraCommand)
	cmd.AddCommand(showCommand.NewShowCommand(globals, fileRepository, idGenerator).CobraCommand)
	cmd.AddCommand(versionCommand.NewVersionCommand().CobraCommand)

	return &RootCommand{
		CobraCommand: cmd,
	}
}

// ReportError prints err unless the prompt sequence already showed it to the user.
func ReportError(w io.Writer, err error) {
	if eris.Is(err, promptSequence.ErrInvalidPath) || eris.Is(err, promptSequence.ErrInvalidAnswer) {
		return
	}
	fmt.Fprintf(w, "Error: %s\n", err)
}
