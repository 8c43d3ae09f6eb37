package setupCommand

import (
	"fmt"
	"io"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"github.com/t-kuni/jobconf/cmd/globalFlags"
	"github.com/t-kuni/jobconf/domain/external/probe"
	"github.com/t-kuni/jobconf/domain/model/patch"
	"github.com/t-kuni/jobconf/domain/repository/file"
	"github.com/t-kuni/jobconf/domain/service/pathComplete"
	"github.com/t-kuni/jobconf/domain/service/promptSequence"
	configRepo "github.com/t-kuni/jobconf/infrastructure/repository/config"
	lineReaderImpl "github.com/t-kuni/jobconf/infrastructure/system/lineReader"
)

type SetupCommand struct {
	CobraCommand *cobra.Command
}

type setupFlags struct {
	validation    string
	ignoreMissing bool
	probe         bool
	showDiff      bool
}

func NewSetupCommand(
	globals *globalFlags.GlobalFlags,
	fileRepository file.Repository,
	idGenerator configRepo.IDGenerator,
	pathCompleteService *pathComplete.PathCompleteService,
	prober probe.Prober,
) *SetupCommand {
	flags := &setupFlags{}

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Ask for the job directory and endpoints and write them to the config file",
		Long: `Ask, in order, for the job directory, the builder hostname and port and the MQTT
hostname. Every answer is written into the existing config file right away; all other
content of the file is kept as it is. Press Tab while typing the job directory to complete it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(cmd, flags, globals, fileRepository, idGenerator, pathCompleteService, prober)
		},
	}

	cmd.Flags().StringVar(&flags.validation, "validate", string(promptSequence.ValidationNone), "Validation of host and port answers: none or strict")
	cmd.Flags().BoolVar(&flags.ignoreMissing, "ignore-missing", false, "Skip answers whose field is missing from the config file instead of failing")
	cmd.Flags().BoolVar(&flags.probe, "probe", false, "Warn when the builder endpoint does not answer HTTP")
	cmd.Flags().BoolVar(&flags.showDiff, "show-diff", false, "Print the change made by every answer")

	return &SetupCommand{
		CobraCommand: cmd,
	}
}

func runSetup(
	cmd *cobra.Command,
	flags *setupFlags,
	globals *globalFlags.GlobalFlags,
	fileRepository file.Repository,
	idGenerator configRepo.IDGenerator,
	pathCompleteService *pathComplete.PathCompleteService,
	prober probe.Prober,
) error {
	out := cmd.OutOrStdout()
	logger := globals.Logger(cmd.ErrOrStderr())

	validation, err := promptSequence.ParseValidation(flags.validation)
	if err != nil {
		return err
	}

	repo, err := configRepo.NewConfigRepository(globals.ConfigPath, fileRepository, idGenerator, logger)
	if err != nil {
		return err
	}

	unlock, err := repo.Lock()
	if err != nil {
		return err
	}
	defer func() {
		if err := unlock(); err != nil {
			logger.Warn("Failed to release lock", "error", err.Error())
		}
	}()

	options := promptSequence.Options{
		IgnoreMissing: flags.ignoreMissing,
	}
	if flags.probe {
		options.Prober = prober
	}
	if flags.showDiff {
		options.OnPatch = printDiff(out)
	}

	reader := lineReaderImpl.NewReader(cmd.InOrStdin(), out)
	questions := promptSequence.Questions(repo.Syntax(), fileRepository, validation)
	service := promptSequence.NewPromptSequenceService(
		reader,
		repo,
		pathCompleteService.Complete,
		questions,
		out,
		logger,
		options,
	)

	if err := service.Run(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintf(out, "Configuration written to %s\n", repo.Path())
	return nil
}

func printDiff(out io.Writer) func(result patch.Result, before, after string) {
	dmp := diffmatchpatch.New()
	return func(result patch.Result, before, after string) {
		fmt.Fprintf(out, "--- %s (%s)\n", result.Rule, result.Status)
		if result.Status != patch.StatusPatched {
			return
		}
		diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(before, after, false))
		fmt.Fprintln(out, dmp.DiffPrettyText(diffs))
	}
}
