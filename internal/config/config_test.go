package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("STAFF_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.StaffAPIKey, "admin API is off unless a key is set")
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "./data/restauflow.db", cfg.DBPath)
	assert.Equal(t, 4*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.True(t, cfg.SeedMenu)
	assert.Equal(t, "USD", cfg.Settings.CurrencyCode())
	assert.Equal(t, "0.085", cfg.Settings.TaxRate().String())
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_FromEnvFile(t *testing.T) {
	dir := t.TempDir()
	env := "SESSION_SECRET=from-file\nTAX_RATE_PERCENT=10\nCURRENCY_CODE=eur\nSEED_MENU=false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))
	chdir(t, dir)

	// godotenv writes into the process environment; register cleanups first.
	for _, key := range []string{"TAX_RATE_PERCENT", "CURRENCY_CODE", "SEED_MENU"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	// Real environment wins over the file.
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_SECRET", "from-env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "from-env", cfg.SessionSecret)
	assert.Equal(t, "0.1", cfg.Settings.TaxRate().String())
	assert.Equal(t, "EUR", cfg.Settings.CurrencyCode())
	assert.False(t, cfg.SeedMenu)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing secret", env: map[string]string{}},
		{name: "bad port", env: map[string]string{"SESSION_SECRET": "s", "PORT": "http"}},
		{name: "port out of range", env: map[string]string{"SESSION_SECRET": "s", "PORT": "70000"}},
		{name: "negative tax", env: map[string]string{"SESSION_SECRET": "s", "TAX_RATE_PERCENT": "-1"}},
		{name: "bad tax", env: map[string]string{"SESSION_SECRET": "s", "TAX_RATE_PERCENT": "eight"}},
		{name: "bad ttl", env: map[string]string{"SESSION_SECRET": "s", "SESSION_TTL": "soon"}},
		{name: "zero ttl", env: map[string]string{"SESSION_SECRET": "s", "SESSION_TTL": "0s"}},
		{name: "bad currency", env: map[string]string{"SESSION_SECRET": "s", "CURRENCY_CODE": "dollars"}},
		{name: "bad log format", env: map[string]string{"SESSION_SECRET": "s", "LOG_FORMAT": "xml"}},
		{name: "short staff key", env: map[string]string{"SESSION_SECRET": "s", "STAFF_API_KEY": "letmein"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv("SESSION_SECRET", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
