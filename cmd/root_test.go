package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/consts"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_SearchWithoutQueryPrintsUsage(t *testing.T) {
	t.Setenv("URI", "")

	code, stdout, _ := runCLI(t, "search")

	assert.Equal(t, 1, code)
	assert.Equal(t, consts.SearchUsage+"\n", stdout)
}

func TestRun_SearchRefusesStandaloneLocalDeployment(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{
			name: "query from args",
			env:  map[string]string{"URI": "mongodb://localhost:27017"},
			args: []string{"search", "mat"},
		},
		{
			name: "query from config",
			env: map[string]string{
				"URI":                                 "mongodb://127.0.0.1:27017/?directConnection=true",
				"MOVIESEARCH_APP_SEARCH_DEFAULTQUERY": "The Matrix",
			},
			args: []string{"search"},
		},
		{
			name: "index subcommand",
			env:  map[string]string{"URI": "mongodb://localhost:27017"},
			args: []string{"index", "list"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			code, stdout, _ := runCLI(t, tt.args...)

			assert.Equal(t, 1, code)
			assert.Equal(t, consts.LocalAtlasSetup+"\n", stdout)
		})
	}
}

func TestRun_InvalidFormat(t *testing.T) {
	t.Setenv("URI", "mongodb://localhost:27017")

	code, stdout, stderr := runCLI(t, "search", "--format", "xml", "mat")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "app.search.output")
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := runCLI(t, "version")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "moviesearch dev")
}

func TestRun_MissingConfigFile(t *testing.T) {
	code, _, stderr := runCLI(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "search", "mat")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unable to read config from file")
}

func TestRun_ConfigFileHost(t *testing.T) {
	t.Setenv("URI", "")
	file := filepath.Join(t.TempDir(), "moviesearch.yaml")
	require.NoError(t, os.WriteFile(file, []byte("mongodatabase:\n  host: mongodb://localhost:27017\n"), 0644))

	code, stdout, _ := runCLI(t, "--config", file, "search", "mat")

	assert.Equal(t, 1, code)
	assert.Equal(t, consts.LocalAtlasSetup+"\n", stdout)
}

func TestInitConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("URI", "")
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, initConfig(""))

	assert.Equal(t, consts.DefaultURI, viper.GetString("mongodatabase.host"))
	assert.Equal(t, consts.DefaultIndexName, viper.GetString("app.index.name"))
	assert.Equal(t, consts.MaxResults, viper.GetInt("app.search.limit"))
	assert.True(t, viper.GetBool("mongodatabase.localGuard"))
}

func TestInitConfig_URIOverridesHost(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("URI", "mongodb://atlas.example.net:27017")

	require.NoError(t, initConfig(""))

	assert.Equal(t, "mongodb://atlas.example.net:27017", viper.GetString("mongodatabase.host"))
}
