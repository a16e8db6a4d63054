// Package config persists the CLI settings: the API key and the default
// language. The store is a small YAML file in the XDG config directory,
// read at command start and written only by the config command. The API
// key can optionally live in the OS keyring instead of the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Recognized configuration keys.
const (
	KeyAPIKey   = "apiKey"
	KeyLanguage = "language"
)

// keyringMarker records in the file that the API key is held in the OS
// keyring rather than in the file itself.
const keyringMarker = "apiKeyKeyring"

const cliName = "voyage"

// Environment overrides, checked before any stored value.
var envKeys = map[string]string{
	KeyAPIKey:   "VOYAGE_API_KEY",
	KeyLanguage: "VOYAGE_LANGUAGE",
}

var knownKeys = []string{KeyAPIKey, KeyLanguage, keyringMarker}

// Store reads and writes the configuration file.
type Store struct {
	path    string
	keyring Keyring
	values  map[string]string
}

// Options configures a Store.
type Options struct {
	// Path overrides the default XDG config file location.
	Path string
	// Keyring overrides the OS keyring, mainly for tests.
	Keyring Keyring
}

// DefaultPath returns the XDG-compliant config file path.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, cliName, "config.yaml")
}

// Load opens the store, reading the config file when it exists. A missing
// file is not an error: the store starts empty.
func Load(opts *Options) (*Store, error) {
	if opts == nil {
		opts = &Options{}
	}

	path := opts.Path
	if path == "" {
		path = DefaultPath()
	}

	kr := opts.Keyring
	if kr == nil {
		kr = SystemKeyring{}
	}

	s := &Store{
		path:    path,
		keyring: kr,
		values:  make(map[string]string),
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	for _, key := range knownKeys {
		if v.IsSet(key) {
			s.values[key] = v.GetString(key)
		}
	}

	return s, nil
}

// Path returns the config file location.
func (s *Store) Path() string {
	return s.path
}

// Get reads a configuration value. The second return is false when the
// key is unset; that is not an error. Environment overrides win over the
// stored value, and a keyring-held API key is resolved transparently.
func (s *Store) Get(key string) (string, bool) {
	if env, ok := envKeys[key]; ok {
		if value := os.Getenv(env); value != "" {
			return value, true
		}
	}

	if key == KeyAPIKey && s.values[keyringMarker] == "true" {
		value, err := s.keyring.Get(cliName, KeyAPIKey)
		if err != nil || value == "" {
			return "", false
		}
		return value, true
	}

	value, ok := s.values[key]
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// Set writes a configuration value durably, overwriting silently. The
// store does not validate values; the command boundary does.
func (s *Store) Set(key, value string) error {
	if key == KeyAPIKey && s.values[keyringMarker] == "true" {
		// Moving the key back into the file; drop the keyring copy.
		_ = s.keyring.Delete(cliName, KeyAPIKey)
		delete(s.values, keyringMarker)
	}

	s.values[key] = value
	return s.write()
}

// SetSecret stores the API key in the OS keyring and leaves only a marker
// in the config file.
func (s *Store) SetSecret(key, value string) error {
	if key != KeyAPIKey {
		return fmt.Errorf("only %s can be stored in the keyring", KeyAPIKey)
	}

	if err := s.keyring.Set(cliName, KeyAPIKey, value); err != nil {
		return fmt.Errorf("failed to store key in keyring: %w", err)
	}

	delete(s.values, KeyAPIKey)
	s.values[keyringMarker] = "true"
	return s.write()
}

// Unset removes a configuration value.
func (s *Store) Unset(key string) error {
	if key == KeyAPIKey && s.values[keyringMarker] == "true" {
		_ = s.keyring.Delete(cliName, KeyAPIKey)
		delete(s.values, keyringMarker)
	}

	delete(s.values, key)
	return s.write()
}

// IsConfigured reports whether an API key is present from any source.
func (s *Store) IsConfigured() bool {
	_, ok := s.Get(KeyAPIKey)
	return ok
}

// All returns the stored settings with the API key redacted, for display.
func (s *Store) All() map[string]string {
	out := make(map[string]string, len(s.values))
	for key, value := range s.values {
		if key == KeyAPIKey && value != "" {
			value = "********"
		}
		out[key] = value
	}
	if s.values[keyringMarker] == "true" {
		out[KeyAPIKey] = "******** (keyring)"
		delete(out, keyringMarker)
	}
	return out
}

// write persists the current values with restricted permissions.
func (s *Store) write() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	out := make(map[string]string, len(s.values))
	for key, value := range s.values {
		if value != "" {
			out[key] = value
		}
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
