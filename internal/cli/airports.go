package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mon-voyage/voyage-cli/pkg/api"
	"github.com/mon-voyage/voyage-cli/pkg/output"
)

var airportColumns = []output.Column{
	{Header: "NAME", Field: "name"},
	{Header: "IATA", Field: "iata"},
	{Header: "CITY", Field: "city"},
	{Header: "COUNTRY", Field: "country"},
	{Header: "DISTANCE", Field: "distance"},
}

func newAirportsCmd(app *App) *cobra.Command {
	var (
		location string
		radius   int
		country  string
		top      bool
		language string
		filter   string
	)

	cmd := &cobra.Command{
		Use:   "airports",
		Short: "Search airports",
		Long: `Search airports around a location, within a country, or list the
major airports worldwide.

Examples:
  voyage airports --location "48.8566,2.3522" --radius 100
  voyage airports --country FR
  voyage airports --top`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := api.ParseLanguage(language)
			if err != nil {
				return err
			}

			radiusOpt := intFlag(cmd, "radius", radius)

			return app.run(cmd, runOptions{
				Message: "Searching airports...",
				Columns: airportColumns,
				Filter:  filter,
				Call: func(ctx context.Context, client *api.Client) (*api.Envelope, error) {
					return client.SearchAirports(ctx, api.AirportSearchParams{
						Location:    location,
						Radius:      radiusOpt,
						CountryCode: country,
						TopAirports: top,
						Language:    lang,
					})
				},
			})
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&location, "location", "", `"lat,long" pair to search around`)
	fs.IntVar(&radius, "radius", 0, "Search radius in kilometers (max 500)")
	fs.StringVar(&country, "country", "", "Restrict to a country code")
	fs.BoolVar(&top, "top", false, "Only major airports")
	addLanguageFlag(fs, &language)
	addFilterFlag(fs, &filter)

	return cmd
}
