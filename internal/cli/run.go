package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mon-voyage/voyage-cli/pkg/api"
	"github.com/mon-voyage/voyage-cli/pkg/config"
	"github.com/mon-voyage/voyage-cli/pkg/output"
	"github.com/mon-voyage/voyage-cli/pkg/progress"
)

// runOptions describes one data command: spinner text, table layout, and
// the API call to make.
type runOptions struct {
	Message string
	Columns []output.Column
	Filter  string
	Call    func(ctx context.Context, client *api.Client) (*api.Envelope, error)

	// Render overrides the table projection for commands whose success
	// output is not tabular (ping). JSON output still wins over it.
	Render func(env *api.Envelope) error
}

// intFlag returns the flag's value only when the user set it, so an
// untouched numeric option stays absent from the request even at zero.
func intFlag(cmd *cobra.Command, name string, value int) *int {
	if cmd.Flags().Changed(name) {
		return &value
	}
	return nil
}

// requireAuth enforces the auth precondition with remediation before any
// network activity. The client re-checks; this copy exists to give the
// user an actionable message.
func (a *App) requireAuth() error {
	if a.Store.IsConfigured() {
		return nil
	}
	return fmt.Errorf("%w: run 'voyage config set apiKey <your-key>' first", api.ErrAuthenticationRequired)
}

// newClient builds an API client from the stored settings.
func (a *App) newClient() (*api.Client, error) {
	key, _ := a.Store.Get(config.KeyAPIKey)
	language, _ := a.Store.Get(config.KeyLanguage)

	return api.NewClient(&api.ClientConfig{
		BaseURL:    a.BaseURL,
		HTTPClient: a.HTTPClient,
		Key:        key,
		Language:   api.Language(language),
	})
}

// run executes one API call end to end: precondition, spinner-bounded
// request, then rendering or error propagation. All failures surface as a
// returned error; Execute turns that into a one-line stderr message and a
// non-zero exit.
func (a *App) run(cmd *cobra.Command, opts runOptions) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	// Compile the filter before spending a round-trip on it.
	var filter *output.Filter
	if opts.Filter != "" {
		var err error
		filter, err = output.NewFilter(opts.Filter)
		if err != nil {
			return err
		}
	}

	client, err := a.newClient()
	if err != nil {
		return err
	}

	sp := progress.NewSpinner(&progress.Config{
		Enabled: !a.JSON && !a.NoSpinner,
		Writer:  a.Stderr,
	})
	sp.Start(opts.Message)
	env, err := opts.Call(cmd.Context(), client)
	sp.Stop()
	if err != nil {
		return err
	}

	if a.JSON {
		return output.NewJSONFormatter().Format(a.Stdout, env.Raw)
	}
	if opts.Render != nil {
		return opts.Render(env)
	}

	records, err := env.Records()
	if err != nil {
		return err
	}
	if filter != nil {
		records, err = filter.Apply(records)
		if err != nil {
			return err
		}
	}

	return output.NewTableFormatter(true).Format(a.Stdout, opts.Columns, records)
}
