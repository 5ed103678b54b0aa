package cmd

import (
	"github.com/spf13/cobra"

	"github.com/senabank/operator-console/internal/console"
	"github.com/senabank/operator-console/internal/pkg/config"
)

func newConsoleCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Run an interactive operator session in the terminal",
		Long:  "console reads one command per line: login <username> <password>, then the commands of your workspace (type help). Results print as indented JSON; any failure prints \"Invalid info entered.\".",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := wireApp(cmd.Context(), cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = a.Close(cmd.Context()) }()

			return console.New(a.auth, cmd.OutOrStdout(), a.log).Run(cmd.Context(), cmd.InOrStdin())
		},
	}
}
