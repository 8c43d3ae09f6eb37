package showCommand

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/t-kuni/jobconf/cmd/globalFlags"
	"github.com/t-kuni/jobconf/domain/repository/file"
	configRepo "github.com/t-kuni/jobconf/infrastructure/repository/config"
)

type ShowCommand struct {
	CobraCommand *cobra.Command
}

func NewShowCommand(
	globals *globalFlags.GlobalFlags,
	fileRepository file.Repository,
	idGenerator configRepo.IDGenerator,
) *ShowCommand {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the fields jobconf writes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := configRepo.NewConfigRepository(globals.ConfigPath, fileRepository, idGenerator, globals.Logger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			cfg, err := repo.Read()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "exampleDirectory: %s\n", cfg.ExampleDirectory)
			fmt.Fprintf(out, "builder.hostname: %s\n", cfg.Builder.Hostname)
			fmt.Fprintf(out, "builder.port:     %s\n", scalar(cfg.Builder.Port))
			fmt.Fprintf(out, "mqtt.hostname:    %s\n", cfg.MQTT.Hostname)
			return nil
		},
	}

	return &ShowCommand{
		CobraCommand: cmd,
	}
}

func scalar(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
