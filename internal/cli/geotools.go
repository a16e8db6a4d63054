package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mon-voyage/voyage-cli/pkg/api"
	"github.com/mon-voyage/voyage-cli/pkg/output"
)

var elevationColumns = []output.Column{
	{Header: "LOCATION", Field: "location"},
	{Header: "ELEVATION", Field: "elevation"},
}

var distanceColumns = []output.Column{
	{Header: "FROM", Field: "from"},
	{Header: "TO", Field: "to"},
	{Header: "DISTANCE", Field: "distance"},
	{Header: "UNIT", Field: "unit"},
}

var sunColumns = []output.Column{
	{Header: "SUNRISE", Field: "sunrise"},
	{Header: "SUNSET", Field: "sunset"},
	{Header: "LOCATION", Field: "location"},
}

var timezoneColumns = []output.Column{
	{Header: "TIMEZONE", Field: "timezone"},
	{Header: "OFFSET", Field: "offset"},
	{Header: "TIME", Field: "time"},
}

func newElevationCmd(app *App) *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "elevation <lat,long> [<lat,long>...]",
		Short: "Look up ground elevation",
		Long: `Look up the ground elevation of one or more coordinate pairs. The
remote accepts up to 20 locations per call.

Examples:
  voyage elevation "45.8326,6.8652"
  voyage elevation "27.9881,86.9250" "45.8326,6.8652" --unit feet`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedUnit, err := api.ParseElevationUnit(unit)
			if err != nil {
				return err
			}

			return app.run(cmd, runOptions{
				Message: "Fetching elevation...",
				Columns: elevationColumns,
				Call: func(ctx context.Context, client *api.Client) (*api.Envelope, error) {
					return client.Elevation(ctx, api.ElevationParams{
						Locations: args,
						Unit:      parsedUnit,
					})
				},
			})
		},
	}

	cmd.Flags().StringVar(&unit, "unit", "", "Elevation unit: meters or feet (default meters)")

	return cmd
}

func newDistanceCmd(app *App) *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "distance <from> <to>",
		Short: "Compute the distance between two locations",
		Long: `Compute the distance between two locations. Each location is either a
"lat,long" pair or an IATA airport code.

Examples:
  voyage distance JFK CDG
  voyage distance "48.8566,2.3522" "40.7128,-74.0060" --unit miles`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedUnit, err := api.ParseDistanceUnit(unit)
			if err != nil {
				return err
			}

			return app.run(cmd, runOptions{
				Message: "Computing distance...",
				Columns: distanceColumns,
				Call: func(ctx context.Context, client *api.Client) (*api.Envelope, error) {
					return client.Distance(ctx, api.DistanceParams{
						LocationA: args[0],
						LocationB: args[1],
						Unit:      parsedUnit,
					})
				},
			})
		},
	}

	cmd.Flags().StringVar(&unit, "unit", "", "Distance unit: kms or miles (default kms)")

	return cmd
}

func newSunCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "sun <location>",
		Short: "Look up sunrise and sunset times",
		Long: `Look up sunrise and sunset times for a location, today or on a given
date. The location is a "lat,long" pair or an IATA airport code.

Examples:
  voyage sun CDG
  voyage sun "48.8566,2.3522" --date 2026-06-21`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd, runOptions{
				Message: "Fetching sun positions...",
				Columns: sunColumns,
				Call: func(ctx context.Context, client *api.Client) (*api.Envelope, error) {
					return client.SunPositions(ctx, api.SunParams{
						Location: args[0],
						Date:     date,
					})
				},
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to look up (YYYY-MM-DD, default today)")

	return cmd
}

func newTimezoneCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timezone <location>",
		Short: "Look up the timezone of a location",
		Long: `Look up the timezone of a location. The location is a "lat,long" pair
or an IATA airport code.

Examples:
  voyage timezone JFK
  voyage timezone "35.6762,139.6503"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd, runOptions{
				Message: "Fetching timezone...",
				Columns: timezoneColumns,
				Call: func(ctx context.Context, client *api.Client) (*api.Envelope, error) {
					return client.Timezone(ctx, api.TimezoneParams{
						Location: args[0],
					})
				},
			})
		},
	}

	return cmd
}
