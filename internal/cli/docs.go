package cli

import (
	"fmt"

	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"
)

// docsURL is the hosted API reference.
const docsURL = "https://api.mon-voyage-pas-cher.com/docs"

func newDocsCmd(app *App) *cobra.Command {
	var noBrowser bool

	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Open the API documentation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noBrowser {
				fmt.Fprintln(app.Stdout, docsURL)
				return nil
			}

			if err := open.Run(docsURL); err != nil {
				return fmt.Errorf("failed to open browser: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noBrowser, "no-browser", false, "Print the URL instead of opening a browser")

	return cmd
}
