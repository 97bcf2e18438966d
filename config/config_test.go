package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dldp-project/lib-support-go/config"
)

const envVar = "TEST_APP_CONFIG"

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "app.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestNew_RoundTrip(t *testing.T) {
	path := writeConfigFile(t, `[DB]
host = localhost
port = 5432

[API]
Key = Secret-Value
`)
	t.Setenv(envVar, path)

	cfg, err := config.New(envVar)
	require.NoError(t, err)

	host, err := cfg.Get("db_host")
	require.NoError(t, err)
	assert.Equal(t, "localhost", host)

	port, err := cfg.Get("db_port")
	require.NoError(t, err)
	assert.Equal(t, "5432", port)

	// Section and key are lowercased in the setting name; the value keeps
	// its case.
	key, err := cfg.Get("api_key")
	require.NoError(t, err)
	assert.Equal(t, "Secret-Value", key)

	assert.Equal(t, []string{"db_host", "db_port", "api_key"}, cfg.Settings())
	assert.Equal(t, path, cfg.Path())
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T)
	}{
		{
			name:  "env var unset",
			setup: func(t *testing.T) {},
		},
		{
			name: "env var empty",
			setup: func(t *testing.T) {
				t.Setenv(envVar, "")
			},
		},
		{
			name: "file does not exist",
			setup: func(t *testing.T) {
				t.Setenv(envVar, filepath.Join(t.TempDir(), "missing.ini"))
			},
		},
		{
			name: "file is not valid INI",
			setup: func(t *testing.T) {
				t.Setenv(envVar, writeConfigFile(t, "[unterminated\nkey = value\n"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Unsetenv(envVar)
			tt.setup(t)

			cfg, err := config.New(envVar)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.True(t, config.IsLoadError(err))
		})
	}
}

func TestNew_EnvVarNotSetCause(t *testing.T) {
	os.Unsetenv(envVar)

	_, err := config.New(envVar)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrEnvVarNotSet))
}

func TestGet_UnknownSetting(t *testing.T) {
	t.Setenv(envVar, writeConfigFile(t, "[DB]\nhost = localhost\n"))

	cfg, err := config.New(envVar)
	require.NoError(t, err)

	_, err = cfg.Get("db_port")
	require.Error(t, err)
	assert.True(t, config.IsUnknownSetting(err))

	var unknown *config.UnknownSettingError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "db_port", unknown.Name)

	_, ok := cfg.Lookup("db_port")
	assert.False(t, ok)
}

func TestMustGet(t *testing.T) {
	t.Setenv(envVar, writeConfigFile(t, "[DB]\nhost = localhost\n"))

	cfg, err := config.New(envVar)
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.MustGet("db_host"))
	assert.Panics(t, func() {
		cfg.MustGet("db_port")
	})
}

func TestWithDotenv(t *testing.T) {
	configPath := writeConfigFile(t, "[DB]\nhost = localhost\n")

	dotenv := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte(envVar+"="+configPath+"\n"), 0o644))

	os.Unsetenv(envVar)
	t.Cleanup(func() { os.Unsetenv(envVar) })

	cfg, err := config.New(envVar, config.WithDotenv(dotenv))
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.MustGet("db_host"))
}

func TestWithDotenv_MissingExplicitFile(t *testing.T) {
	os.Unsetenv(envVar)

	_, err := config.New(envVar, config.WithDotenv(filepath.Join(t.TempDir(), "nope.env")))
	require.Error(t, err)
	assert.True(t, config.IsLoadError(err))
}
