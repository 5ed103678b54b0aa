package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/senabank/operator-console/internal/pkg/config"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "operator",
		Short:         "Sena Bank operator console: role-gated back office over the core ledger",
		Long:          "operator runs the back-office console for clerks and managers, either as an HTTP service (serve) or as an interactive terminal session (console). Every command is role-checked and validated before it reaches the ledger.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cfg, err := config.LoadContext(context.Background())
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		rootCmd.AddCommand(newVersionCmd())
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(cfg),
		newConsoleCmd(cfg),
	)

	return rootCmd
}
