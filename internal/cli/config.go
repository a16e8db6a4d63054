package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mon-voyage/voyage-cli/pkg/api"
	"github.com/mon-voyage/voyage-cli/pkg/config"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `Manage the stored settings: the API key and the default language.

Settings persist in ` + config.DefaultPath() + `.

Recognized keys:
  apiKey    - API key sent with every request
  language  - default response language (en, fr, de, es)`,
	}

	cmd.AddCommand(newConfigSetCmd(app))
	cmd.AddCommand(newConfigGetCmd(app))
	cmd.AddCommand(newConfigUnsetCmd(app))
	cmd.AddCommand(newConfigShowCmd(app))
	cmd.AddCommand(newConfigPathCmd(app))

	return cmd
}

// validateConfigKey rejects unknown keys at the command boundary; the
// store itself does not validate.
func validateConfigKey(key string) error {
	switch key {
	case config.KeyAPIKey, config.KeyLanguage:
		return nil
	}
	return fmt.Errorf("unknown config key %q (expected %s or %s)", key, config.KeyAPIKey, config.KeyLanguage)
}

func newConfigSetCmd(app *App) *cobra.Command {
	var useKeyring bool

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value, overwriting any previous one.

Examples:
  voyage config set apiKey abc123
  voyage config set apiKey abc123 --keyring
  voyage config set language fr`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			if err := validateConfigKey(key); err != nil {
				return err
			}
			if key == config.KeyLanguage {
				if _, err := api.ParseLanguage(value); err != nil {
					return err
				}
			}

			if useKeyring {
				if err := app.Store.SetSecret(key, value); err != nil {
					return err
				}
				fmt.Fprintf(app.Stdout, "Stored %s in the OS keyring\n", key)
				return nil
			}

			if err := app.Store.Set(key, value); err != nil {
				return err
			}
			fmt.Fprintf(app.Stdout, "Set %s\n", key)
			return nil
		},
	}

	cmd.Flags().BoolVar(&useKeyring, "keyring", false, "Store the API key in the OS keyring instead of the config file")

	return cmd
}

func newConfigGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if err := validateConfigKey(key); err != nil {
				return err
			}

			value, ok := app.Store.Get(key)
			if !ok {
				return fmt.Errorf("%s is not set", key)
			}

			fmt.Fprintln(app.Stdout, value)
			return nil
		},
	}
}

func newConfigUnsetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Unset a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if err := validateConfigKey(key); err != nil {
				return err
			}

			if err := app.Store.Unset(key); err != nil {
				return err
			}
			fmt.Fprintf(app.Stdout, "Unset %s\n", key)
			return nil
		},
	}
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored settings",
		Long:  "Display the stored settings in YAML form, with the API key redacted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(app.Store.All())
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}

			fmt.Fprint(app.Stdout, string(data))
			return nil
		},
	}
}

func newConfigPathCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(app.Stdout, app.Store.Path())
			return nil
		},
	}
}
