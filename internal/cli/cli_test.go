package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mon-voyage/voyage-cli/pkg/api"
	"github.com/mon-voyage/voyage-cli/pkg/config"
)

// testServer replies with a fixed body and records every request.
type testServer struct {
	*httptest.Server
	requests []*http.Request
}

func newServer(t *testing.T, status int, body string) *testServer {
	t.Helper()

	ts := &testServer{}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clone := *r
		ts.requests = append(ts.requests, &clone)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)

	return ts
}

func (ts *testServer) lastQuery(t *testing.T) map[string][]string {
	t.Helper()
	require.NotEmpty(t, ts.requests)
	return ts.requests[len(ts.requests)-1].URL.Query()
}

type testApp struct {
	*App
	stdout *bytes.Buffer
}

func newTestApp(t *testing.T, baseURL string) *testApp {
	t.Helper()

	t.Setenv("VOYAGE_API_KEY", "")
	t.Setenv("VOYAGE_LANGUAGE", "")

	store, err := config.Load(&config.Options{
		Path:    filepath.Join(t.TempDir(), "config.yaml"),
		Keyring: config.NewMemoryKeyring(),
	})
	require.NoError(t, err)

	stdout := &bytes.Buffer{}
	return &testApp{
		App: &App{
			Store:     store,
			BaseURL:   baseURL,
			Stdout:    stdout,
			Stderr:    io.Discard,
			NoSpinner: true,
		},
		stdout: stdout,
	}
}

func (a *testApp) execute(args ...string) error {
	root := NewRootCmd(a.App, "test")
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	return root.Execute()
}

func (a *testApp) configure(t *testing.T) {
	t.Helper()
	require.NoError(t, a.Store.Set(config.KeyAPIKey, "test-key"))
}

const countriesBody = `{"status":"success","message":"ok","count":2,"data":[` +
	`{"name":"France","code":"FR","capital":"Paris","continent":"Europe"},` +
	`{"name":"Germany","code":"DE","capital":"Berlin","continent":"Europe"}]}`

func TestCommandsRequireAuth(t *testing.T) {
	server := newServer(t, http.StatusOK, countriesBody)

	commands := [][]string{
		{"airports"},
		{"cities", "search", "paris"},
		{"cities", "nearby"},
		{"cities", "significant"},
		{"continents"},
		{"countries"},
		{"elevation", "45.8,6.8"},
		{"distance", "JFK", "CDG"},
		{"sun", "CDG"},
		{"timezone", "CDG"},
		{"ping"},
	}

	for _, args := range commands {
		t.Run(args[0], func(t *testing.T) {
			app := newTestApp(t, server.URL)
			err := app.execute(args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, api.ErrAuthenticationRequired)
			assert.Contains(t, err.Error(), "voyage config set apiKey")
		})
	}

	assert.Empty(t, server.requests, "no request may be sent without a key")
}

func TestJSONOutputIsPrettyPrintedEnvelope(t *testing.T) {
	server := newServer(t, http.StatusOK, countriesBody)
	app := newTestApp(t, server.URL)
	app.configure(t)

	require.NoError(t, app.execute("countries", "--json"))

	var want bytes.Buffer
	require.NoError(t, json.Indent(&want, []byte(countriesBody), "", "  "))

	assert.Equal(t, want.String()+"\n", app.stdout.String())
}

func TestTableOutput(t *testing.T) {
	server := newServer(t, http.StatusOK, countriesBody)
	app := newTestApp(t, server.URL)
	app.configure(t)

	require.NoError(t, app.execute("countries"))

	out := app.stdout.String()
	assert.Contains(t, out, "France")
	assert.Contains(t, out, "Berlin")
	assert.NotContains(t, out, "{")
	assert.NotContains(t, out, `"`)
}

func TestLanguageFlagPrecedence(t *testing.T) {
	server := newServer(t, http.StatusOK, countriesBody)
	app := newTestApp(t, server.URL)
	app.configure(t)
	require.NoError(t, app.Store.Set(config.KeyLanguage, "fr"))

	require.NoError(t, app.execute("countries", "--language", "de"))
	assert.Equal(t, "de", server.lastQuery(t)["language"][0])

	require.NoError(t, app.execute("countries"))
	assert.Equal(t, "fr", server.lastQuery(t)["language"][0])
}

func TestLanguageFlagValidated(t *testing.T) {
	server := newServer(t, http.StatusOK, countriesBody)
	app := newTestApp(t, server.URL)
	app.configure(t)

	err := app.execute("countries", "--language", "xx")
	require.Error(t, err)
	var validationErr *api.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Empty(t, server.requests)
}

func TestCitiesSearchShortQuery(t *testing.T) {
	server := newServer(t, http.StatusOK, countriesBody)
	app := newTestApp(t, server.URL)
	app.configure(t)

	err := app.execute("cities", "search", "pa")
	require.Error(t, err)
	var validationErr *api.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Empty(t, server.requests)

	require.NoError(t, app.execute("cities", "search", "par"))
	assert.Len(t, server.requests, 1)
}

func TestCitiesNearbyDefaultLocation(t *testing.T) {
	server := newServer(t, http.StatusOK, countriesBody)
	app := newTestApp(t, server.URL)
	app.configure(t)

	require.NoError(t, app.execute("cities", "nearby"))
	assert.Equal(t, "48.8566,2.3522", server.lastQuery(t)["location"][0])
}

func TestDistanceParams(t *testing.T) {
	server := newServer(t, http.StatusOK, `{"status":"success","data":{"distance":5834,"unit":"miles"}}`)
	app := newTestApp(t, server.URL)
	app.configure(t)

	require.NoError(t, app.execute("distance", "JFK", "CDG", "--unit", "miles"))

	query := server.lastQuery(t)
	assert.Equal(t, "JFK", query["locationA"][0])
	assert.Equal(t, "CDG", query["locationB"][0])
	assert.Equal(t, "miles", query["unit"][0])
	assert.Len(t, query, 3)
}

func TestDistanceInvalidUnit(t *testing.T) {
	server := newServer(t, http.StatusOK, countriesBody)
	app := newTestApp(t, server.URL)
	app.configure(t)

	err := app.execute("distance", "JFK", "CDG", "--unit", "leagues")
	require.Error(t, err)
	assert.Empty(t, server.requests)
}

func TestRemoteErrorSurfacesMessage(t *testing.T) {
	server := newServer(t, http.StatusOK, `{"status":"error","message":"rate limited"}`)
	app := newTestApp(t, server.URL)
	app.configure(t)

	err := app.execute("countries")
	require.Error(t, err)
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "rate limited", apiErr.Message)
}

func TestFilterFlag(t *testing.T) {
	server := newServer(t, http.StatusOK, countriesBody)
	app := newTestApp(t, server.URL)
	app.configure(t)

	require.NoError(t, app.execute("countries", "--filter", `code == "FR"`))

	out := app.stdout.String()
	assert.Contains(t, out, "France")
	assert.NotContains(t, out, "Germany")
}

func TestFilterCompileFailsBeforeRequest(t *testing.T) {
	server := newServer(t, http.StatusOK, countriesBody)
	app := newTestApp(t, server.URL)
	app.configure(t)

	err := app.execute("countries", "--filter", "code ==")
	require.Error(t, err)
	assert.Empty(t, server.requests)
}

func TestPing(t *testing.T) {
	server := newServer(t, http.StatusOK, `{"status":"success","message":"pong"}`)
	app := newTestApp(t, server.URL)
	app.configure(t)

	require.NoError(t, app.execute("ping"))
	assert.Contains(t, app.stdout.String(), "pong")
	assert.Equal(t, "/ping", server.requests[0].URL.Path)
}

func TestPingJSONOutput(t *testing.T) {
	const body = `{"status":"success","message":"pong"}`
	server := newServer(t, http.StatusOK, body)
	app := newTestApp(t, server.URL)
	app.configure(t)

	require.NoError(t, app.execute("ping", "--json"))

	var want bytes.Buffer
	require.NoError(t, json.Indent(&want, []byte(body), "", "  "))
	want.WriteByte('\n')
	assert.Equal(t, want.String(), app.stdout.String())
}

func TestExplicitZeroRadiusSerialized(t *testing.T) {
	server := newServer(t, http.StatusOK, countriesBody)
	app := newTestApp(t, server.URL)
	app.configure(t)

	require.NoError(t, app.execute("airports", "--radius", "0"))
	assert.Equal(t, "0", server.lastQuery(t)["radius"][0])

	require.NoError(t, app.execute("airports"))
	assert.NotContains(t, server.lastQuery(t), "radius")
}

func TestConfigSetGetRoundTrip(t *testing.T) {
	app := newTestApp(t, "")

	require.NoError(t, app.execute("config", "set", "language", "es"))
	app.stdout.Reset()

	require.NoError(t, app.execute("config", "get", "language"))
	assert.Equal(t, "es\n", app.stdout.String())
}

func TestConfigSetValidatesLanguage(t *testing.T) {
	app := newTestApp(t, "")

	err := app.execute("config", "set", "language", "xx")
	require.Error(t, err)

	_, ok := app.Store.Get(config.KeyLanguage)
	assert.False(t, ok, "invalid value must not be persisted")
}

func TestConfigRejectsUnknownKey(t *testing.T) {
	app := newTestApp(t, "")

	assert.Error(t, app.execute("config", "set", "color", "blue"))
	assert.Error(t, app.execute("config", "get", "color"))
	assert.Error(t, app.execute("config", "unset", "color"))
}

func TestConfigUnset(t *testing.T) {
	app := newTestApp(t, "")

	require.NoError(t, app.execute("config", "set", "language", "fr"))
	require.NoError(t, app.execute("config", "unset", "language"))

	err := app.execute("config", "get", "language")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not set")
}

func TestConfigShowRedactsKey(t *testing.T) {
	app := newTestApp(t, "")

	require.NoError(t, app.execute("config", "set", "apiKey", "super-secret"))
	app.stdout.Reset()

	require.NoError(t, app.execute("config", "show"))
	assert.NotContains(t, app.stdout.String(), "super-secret")
}

func TestConfigKeyringSet(t *testing.T) {
	app := newTestApp(t, "")

	require.NoError(t, app.execute("config", "set", "apiKey", "hidden", "--keyring"))
	app.stdout.Reset()

	require.NoError(t, app.execute("config", "get", "apiKey"))
	assert.Equal(t, "hidden\n", app.stdout.String())
}

func TestConfigPath(t *testing.T) {
	app := newTestApp(t, "")

	require.NoError(t, app.execute("config", "path"))
	assert.Contains(t, app.stdout.String(), "config.yaml")
}

func TestDocsNoBrowser(t *testing.T) {
	app := newTestApp(t, "")

	require.NoError(t, app.execute("docs", "--no-browser"))
	assert.Equal(t, docsURL+"\n", app.stdout.String())
}
