// Package cli wires the voyage commands: it maps each verb to one API
// client call, enforces preconditions, bounds the round-trip with a
// spinner, and selects table or JSON rendering.
package cli

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mon-voyage/voyage-cli/pkg/config"
)

// App holds the dependencies shared by all commands. Everything is
// explicit; no command reaches for ambient global state.
type App struct {
	Store      *config.Store
	BaseURL    string
	HTTPClient *http.Client
	Stdout     io.Writer
	Stderr     io.Writer

	// JSON switches data commands from table output to the raw
	// pretty-printed envelope. Bound to the persistent --json flag.
	JSON bool

	// NoSpinner suppresses the progress indicator. JSON output implies it.
	NoSpinner bool

	configPath string
}

// NewApp creates an App with production defaults. The config store is
// loaded lazily in PersistentPreRunE so the --config flag can take effect.
func NewApp() *App {
	return &App{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd(app *App, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "voyage",
		Short: "Travel geography from the command line",
		Long: `voyage is a command-line client for the mon-voyage-pas-cher travel
geography API: airports, cities, countries, continents, distance,
elevation, sun positions and timezones.

To get started:
  voyage config set apiKey <your-key>
  voyage ping`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Store != nil && app.configPath == "" {
				return nil
			}
			store, err := config.Load(&config.Options{Path: app.configPath})
			if err != nil {
				return err
			}
			app.Store = store
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&app.JSON, "json", false, "Output the raw API response as pretty-printed JSON")
	cmd.PersistentFlags().StringVar(&app.configPath, "config", "", "Path to the config file")
	cmd.PersistentFlags().BoolVar(&app.NoSpinner, "no-spinner", false, "Disable the progress indicator")

	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newAirportsCmd(app))
	cmd.AddCommand(newCitiesCmd(app))
	cmd.AddCommand(newContinentsCmd(app))
	cmd.AddCommand(newCountriesCmd(app))
	cmd.AddCommand(newElevationCmd(app))
	cmd.AddCommand(newDistanceCmd(app))
	cmd.AddCommand(newSunCmd(app))
	cmd.AddCommand(newTimezoneCmd(app))
	cmd.AddCommand(newPingCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// Execute runs the root command, printing any failure as a single line on
// stderr and exiting non-zero.
func Execute(version string) {
	app := NewApp()
	if err := NewRootCmd(app, version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// addLanguageFlag registers the shared --language override on geography
// lookup commands.
func addLanguageFlag(fs *pflag.FlagSet, p *string) {
	fs.StringVarP(p, "language", "l", "", "Response language (en, fr, de, es)")
}

// addFilterFlag registers the shared --filter expression on list commands.
func addFilterFlag(fs *pflag.FlagSet, p *string) {
	fs.StringVar(p, "filter", "", `Keep only records matching an expression, e.g. 'population > 10'`)
}
