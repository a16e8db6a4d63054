package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	t.Setenv("VOYAGE_API_KEY", "")
	t.Setenv("VOYAGE_LANGUAGE", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	store, err := Load(&Options{Path: path, Keyring: NewMemoryKeyring()})
	require.NoError(t, err)
	return store, path
}

func TestStore_MissingFileIsEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	_, ok := store.Get(KeyAPIKey)
	assert.False(t, ok)
	_, ok = store.Get(KeyLanguage)
	assert.False(t, ok)
	assert.False(t, store.IsConfigured())
}

func TestStore_RoundTrip(t *testing.T) {
	store, path := newTestStore(t)

	require.NoError(t, store.Set(KeyLanguage, "es"))

	// Same instance.
	value, ok := store.Get(KeyLanguage)
	require.True(t, ok)
	assert.Equal(t, "es", value)

	// Fresh load from disk: no reformatting or loss.
	reloaded, err := Load(&Options{Path: path, Keyring: NewMemoryKeyring()})
	require.NoError(t, err)
	value, ok = reloaded.Get(KeyLanguage)
	require.True(t, ok)
	assert.Equal(t, "es", value)
}

func TestStore_SilentOverwrite(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Set(KeyLanguage, "fr"))
	require.NoError(t, store.Set(KeyLanguage, "de"))

	value, _ := store.Get(KeyLanguage)
	assert.Equal(t, "de", value)
}

func TestStore_IsConfigured(t *testing.T) {
	store, _ := newTestStore(t)
	assert.False(t, store.IsConfigured())

	require.NoError(t, store.Set(KeyAPIKey, "abc123"))
	assert.True(t, store.IsConfigured())

	require.NoError(t, store.Unset(KeyAPIKey))
	assert.False(t, store.IsConfigured())
}

func TestStore_EnvOverride(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Set(KeyAPIKey, "from-file"))
	require.NoError(t, store.Set(KeyLanguage, "fr"))

	t.Setenv("VOYAGE_API_KEY", "from-env")
	t.Setenv("VOYAGE_LANGUAGE", "de")

	value, _ := store.Get(KeyAPIKey)
	assert.Equal(t, "from-env", value)
	value, _ = store.Get(KeyLanguage)
	assert.Equal(t, "de", value)
}

func TestStore_KeyringSecret(t *testing.T) {
	kr := NewMemoryKeyring()
	path := filepath.Join(t.TempDir(), "config.yaml")
	store, err := Load(&Options{Path: path, Keyring: kr})
	require.NoError(t, err)

	require.NoError(t, store.SetSecret(KeyAPIKey, "hidden"))

	// The secret resolves transparently but never touches the file.
	value, ok := store.Get(KeyAPIKey)
	require.True(t, ok)
	assert.Equal(t, "hidden", value)
	assert.True(t, store.IsConfigured())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")

	// A reload still finds it through the marker.
	reloaded, err := Load(&Options{Path: path, Keyring: kr})
	require.NoError(t, err)
	value, ok = reloaded.Get(KeyAPIKey)
	require.True(t, ok)
	assert.Equal(t, "hidden", value)

	// Unset clears both marker and keyring entry.
	require.NoError(t, reloaded.Unset(KeyAPIKey))
	assert.False(t, reloaded.IsConfigured())
	_, err = kr.Get(cliName, KeyAPIKey)
	assert.Error(t, err)
}

func TestStore_SetMovesKeyOutOfKeyring(t *testing.T) {
	kr := NewMemoryKeyring()
	path := filepath.Join(t.TempDir(), "config.yaml")
	store, err := Load(&Options{Path: path, Keyring: kr})
	require.NoError(t, err)

	require.NoError(t, store.SetSecret(KeyAPIKey, "hidden"))
	require.NoError(t, store.Set(KeyAPIKey, "plain"))

	value, _ := store.Get(KeyAPIKey)
	assert.Equal(t, "plain", value)
	_, err = kr.Get(cliName, KeyAPIKey)
	assert.Error(t, err, "keyring copy must be dropped")
}

func TestStore_SetSecretOnlyAPIKey(t *testing.T) {
	store, _ := newTestStore(t)
	assert.Error(t, store.SetSecret(KeyLanguage, "fr"))
}

func TestStore_AllRedactsAPIKey(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Set(KeyAPIKey, "abc123"))
	require.NoError(t, store.Set(KeyLanguage, "es"))

	all := store.All()
	assert.Equal(t, "es", all[KeyLanguage])
	assert.NotContains(t, all[KeyAPIKey], "abc123")
}
