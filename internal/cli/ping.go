package cli

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mon-voyage/voyage-cli/pkg/api"
)

func newPingCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the API is reachable",
		Long:  "Check that the API is reachable and the configured key is accepted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd, runOptions{
				Message: "Pinging the API...",
				Call: func(ctx context.Context, client *api.Client) (*api.Envelope, error) {
					return client.Ping(ctx)
				},
				Render: func(env *api.Envelope) error {
					message := env.Message
					if message == "" {
						message = "API is reachable"
					}
					pterm.Success.WithWriter(app.Stdout).Println(message)
					return nil
				},
			})
		},
	}
}
