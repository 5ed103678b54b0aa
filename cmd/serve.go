package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/senabank/operator-console/internal/api"
	"github.com/senabank/operator-console/internal/api/handler"
	"github.com/senabank/operator-console/internal/pkg/config"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(cfg *config.Config) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP operator console",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := wireApp(ctx, cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = a.Close(context.WithoutCancel(ctx)) }()

			e := api.NewRouter(api.Deps{
				Auth: a.auth,
				Health: map[string]handler.Pinger{
					"ledger":   a.ledger,
					"sessions": a.store,
				},
				Log: a.log,
			})

			errCh := make(chan error, 1)
			go func() {
				a.log.Info().Str("port", port).Str("env", cfg.Env).Msg("operator console listening")
				if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			a.log.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&port, "port", cfg.Port, "listen port (PORT)")
	return cmd
}
