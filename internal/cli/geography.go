package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mon-voyage/voyage-cli/pkg/api"
	"github.com/mon-voyage/voyage-cli/pkg/output"
)

var continentColumns = []output.Column{
	{Header: "NAME", Field: "name"},
	{Header: "CODE", Field: "code"},
}

var countryColumns = []output.Column{
	{Header: "NAME", Field: "name"},
	{Header: "CODE", Field: "code"},
	{Header: "CAPITAL", Field: "capital"},
	{Header: "CONTINENT", Field: "continent"},
}

func newContinentsCmd(app *App) *cobra.Command {
	var (
		code     string
		language string
		filter   string
	)

	cmd := &cobra.Command{
		Use:   "continents",
		Short: "List continents",
		Long: `List all continents, or one continent by code.

Examples:
  voyage continents
  voyage continents --code EU --language fr`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := api.ParseLanguage(language)
			if err != nil {
				return err
			}

			return app.run(cmd, runOptions{
				Message: "Fetching continents...",
				Columns: continentColumns,
				Filter:  filter,
				Call: func(ctx context.Context, client *api.Client) (*api.Envelope, error) {
					return client.Continents(ctx, api.ContinentsParams{
						Code:     code,
						Language: lang,
					})
				},
			})
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&code, "code", "", "Continent code")
	addLanguageFlag(fs, &language)
	addFilterFlag(fs, &filter)

	return cmd
}

func newCountriesCmd(app *App) *cobra.Command {
	var (
		country  string
		language string
		filter   string
	)

	cmd := &cobra.Command{
		Use:   "countries",
		Short: "List countries",
		Long: `List all countries, or one country by code.

Examples:
  voyage countries
  voyage countries --country FR`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := api.ParseLanguage(language)
			if err != nil {
				return err
			}

			return app.run(cmd, runOptions{
				Message: "Fetching countries...",
				Columns: countryColumns,
				Filter:  filter,
				Call: func(ctx context.Context, client *api.Client) (*api.Envelope, error) {
					return client.Countries(ctx, api.CountriesParams{
						CountryCode: country,
						Language:    lang,
					})
				},
			})
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&country, "country", "", "Country code")
	addLanguageFlag(fs, &language)
	addFilterFlag(fs, &filter)

	return cmd
}
