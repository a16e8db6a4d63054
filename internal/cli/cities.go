package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mon-voyage/voyage-cli/pkg/api"
	"github.com/mon-voyage/voyage-cli/pkg/output"
)

var cityColumns = []output.Column{
	{Header: "NAME", Field: "name"},
	{Header: "COUNTRY", Field: "country"},
	{Header: "POPULATION", Field: "population"},
	{Header: "LOCATION", Field: "location"},
}

// defaultNearbyLocation is used when 'cities nearby' is invoked without a
// location (central Paris).
const defaultNearbyLocation = "48.8566,2.3522"

func newCitiesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cities",
		Short: "Search and list cities",
	}

	cmd.AddCommand(newCitiesSearchCmd(app))
	cmd.AddCommand(newCitiesNearbyCmd(app))
	cmd.AddCommand(newCitiesSignificantCmd(app))

	return cmd
}

func newCitiesSearchCmd(app *App) *cobra.Command {
	var (
		country  string
		language string
		filter   string
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search cities by name",
		Long: `Search cities by free text. The query must be at least 3 characters.

Examples:
  voyage cities search paris
  voyage cities search "san f" --country US`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := api.ParseLanguage(language)
			if err != nil {
				return err
			}

			return app.run(cmd, runOptions{
				Message: "Searching cities...",
				Columns: cityColumns,
				Filter:  filter,
				Call: func(ctx context.Context, client *api.Client) (*api.Envelope, error) {
					return client.SearchCities(ctx, api.CitySearchParams{
						Query:       args[0],
						CountryCode: country,
						Language:    lang,
					})
				},
			})
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&country, "country", "", "Restrict to a country code")
	addLanguageFlag(fs, &language)
	addFilterFlag(fs, &filter)

	return cmd
}

func newCitiesNearbyCmd(app *App) *cobra.Command {
	var (
		location string
		radius   int
		country  string
		limit    int
		language string
		filter   string
	)

	cmd := &cobra.Command{
		Use:   "nearby",
		Short: "List cities around a location",
		Long: `List cities around a location. Without --location the search is
centered on Paris.

Examples:
  voyage cities nearby --location "40.7128,-74.0060" --radius 50
  voyage cities nearby --limit 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := api.ParseLanguage(language)
			if err != nil {
				return err
			}

			if location == "" {
				location = defaultNearbyLocation
			}

			radiusOpt := intFlag(cmd, "radius", radius)
			limitOpt := intFlag(cmd, "limit", limit)

			return app.run(cmd, runOptions{
				Message: "Searching nearby cities...",
				Columns: cityColumns,
				Filter:  filter,
				Call: func(ctx context.Context, client *api.Client) (*api.Envelope, error) {
					return client.NearbyCities(ctx, api.NearbyCitiesParams{
						Location:    location,
						Radius:      radiusOpt,
						CountryCode: country,
						Limit:       limitOpt,
						Language:    lang,
					})
				},
			})
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&location, "location", "", `"lat,long" pair to search around (default: Paris)`)
	fs.IntVar(&radius, "radius", 0, "Search radius in kilometers (max 200)")
	fs.StringVar(&country, "country", "", "Restrict to a country code")
	fs.IntVar(&limit, "limit", 0, "Maximum number of results (max 50)")
	addLanguageFlag(fs, &language)
	addFilterFlag(fs, &filter)

	return cmd
}

func newCitiesSignificantCmd(app *App) *cobra.Command {
	var (
		population int
		location   string
		country    string
		limit      int
		language   string
		filter     string
	)

	cmd := &cobra.Command{
		Use:   "significant",
		Short: "List significant cities",
		Long: `List cities whose population crosses a percentage threshold relative
to their country.

Examples:
  voyage cities significant --population 10
  voyage cities significant --country DE --limit 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := api.ParseLanguage(language)
			if err != nil {
				return err
			}

			populationOpt := intFlag(cmd, "population", population)
			limitOpt := intFlag(cmd, "limit", limit)

			return app.run(cmd, runOptions{
				Message: "Searching significant cities...",
				Columns: cityColumns,
				Filter:  filter,
				Call: func(ctx context.Context, client *api.Client) (*api.Envelope, error) {
					return client.SignificantCities(ctx, api.SignificantCitiesParams{
						Population:  populationOpt,
						Location:    location,
						CountryCode: country,
						Limit:       limitOpt,
						Language:    lang,
					})
				},
			})
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&population, "population", 0, "Population percentage threshold")
	fs.StringVar(&location, "location", "", `"lat,long" pair to search around`)
	fs.StringVar(&country, "country", "", "Restrict to a country code")
	fs.IntVar(&limit, "limit", 0, "Maximum number of results")
	addLanguageFlag(fs, &language)
	addFilterFlag(fs, &filter)

	return cmd
}
