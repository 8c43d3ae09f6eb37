package completeCommand

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/t-kuni/jobconf/domain/service/pathComplete"
)

type CompleteCommand struct {
	CobraCommand *cobra.Command
}

func NewCompleteCommand(pathCompleteService *pathComplete.PathCompleteService) *CompleteCommand {
	cmd := &cobra.Command{
		Use:   "complete [partial-path]",
		Short: "Print path completions the way the job directory prompt offers them",
		Long: `Print the completion candidates for a partial path, one per line. A single match is
printed as a full path ending in a separator; several matches are printed as entry names.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			partial := ""
			if len(args) == 1 {
				partial = args[0]
			}

			result, err := pathCompleteService.Complete(partial)
			if err != nil {
				return err
			}

			for _, candidate := range result.Candidates {
				fmt.Fprintln(cmd.OutOrStdout(), candidate)
			}
			return nil
		},
	}

	return &CompleteCommand{
		CobraCommand: cmd,
	}
}
