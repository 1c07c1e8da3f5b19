package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLConfiguration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("marker: OWNER\next: .sv\nhidden: true\n"), 0o644))

	var cli CheckCmd
	parser, err := kong.New(&cli, kong.Configuration(YAML, path))
	require.NoError(t, err)
	_, err = parser.Parse([]string{"--ext", ".v"})
	require.NoError(t, err)

	assert.Equal(t, "OWNER", cli.Marker)
	assert.Equal(t, ".v", cli.Extension, "flags take precedence over configuration")
	assert.True(t, cli.Hidden)
}

func TestYAMLResolver(t *testing.T) {
	resolver, err := YAML(strings.NewReader("marker: FROM_FILE\n"))
	require.NoError(t, err)

	var cli CheckCmd
	parser, err := kong.New(&cli, kong.Resolvers(resolver))
	require.NoError(t, err)
	_, err = parser.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, "FROM_FILE", cli.Marker)
}

func TestYAMLEmptyDocument(t *testing.T) {
	_, err := YAML(strings.NewReader(""))
	assert.NoError(t, err)
}

func TestYAMLInvalidDocument(t *testing.T) {
	_, err := YAML(strings.NewReader("marker: [unclosed\n"))
	assert.ErrorContains(t, err, "invalid YAML configuration")
}

func TestLoadDotEnv(t *testing.T) {
	const key = "MARKERCHECK_DOTENV_TEST"
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=from_file\n"), 0o644))

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from_file", os.Getenv(key))
}

func TestLoadDotEnvKeepsExisting(t *testing.T) {
	const key = "MARKERCHECK_DOTENV_EXISTING"
	t.Setenv(key, "from_env")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=from_file\n"), 0o644))

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from_env", os.Getenv(key))
}

func TestLoadDotEnvMissing(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestYAMLConfigurationOverridesEnvironment(t *testing.T) {
	t.Setenv("MARKERCHECK_MARKER", "FROM_ENV")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("marker: FROM_FILE\n"), 0o644))

	var cli CheckCmd
	parser, err := kong.New(&cli, kong.Configuration(YAML, path))
	require.NoError(t, err)
	_, err = parser.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, "FROM_FILE", cli.Marker)
}
