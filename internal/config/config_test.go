package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Lutefd/curconv/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CURCONV_DEFAULT_FROM", "CURCONV_DEFAULT_TO", "CURCONV_OUTPUT_FORMAT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		path     func(t *testing.T) string
		expected config.Config
	}{
		{
			name: "Missing file",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "config.json")
			},
			expected: config.Default(),
		},
		{
			name: "Valid file",
			path: func(t *testing.T) string {
				return writeConfig(t, "config.json", `{"default_from":"eur","default_to":"jpy","output_format":"JSON"}`)
			},
			expected: config.Config{DefaultFrom: "EUR", DefaultTo: "JPY", OutputFormat: "json"},
		},
		{
			name: "Partial file",
			path: func(t *testing.T) string {
				return writeConfig(t, "config.json", `{"output_format":"csv"}`)
			},
			expected: config.Config{DefaultFrom: "USD", DefaultTo: "RUB", OutputFormat: "csv"},
		},
		{
			name: "Malformed file",
			path: func(t *testing.T) string {
				return writeConfig(t, "config.json", `{"default_from": "EUR",`)
			},
			expected: config.Default(),
		},
		{
			name: "Wrong value types",
			path: func(t *testing.T) string {
				return writeConfig(t, "config.json", `{"default_from": 42}`)
			},
			expected: config.Default(),
		},
		{
			name: "Invalid fields fall back individually",
			path: func(t *testing.T) string {
				return writeConfig(t, "config.json", `{"default_from":"EURO","default_to":"gbp","output_format":"xml"}`)
			},
			expected: config.Config{DefaultFrom: "USD", DefaultTo: "GBP", OutputFormat: "text"},
		},
		{
			name: "Unsupported extension",
			path: func(t *testing.T) string {
				return writeConfig(t, "config.ini", `default_from=EUR`)
			},
			expected: config.Default(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)

			cfg := config.Load(tt.path(t))

			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "config.json", `{"default_from":"EUR","default_to":"JPY","output_format":"json"}`)
	t.Setenv("CURCONV_DEFAULT_TO", "chf")

	cfg := config.Load(path)

	assert.Equal(t, "EUR", cfg.DefaultFrom)
	assert.Equal(t, "CHF", cfg.DefaultTo)
	assert.Equal(t, "json", cfg.OutputFormat)
}

func TestLoad_EnvironmentWithoutFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CURCONV_OUTPUT_FORMAT", "csv")

	cfg := config.Load(filepath.Join(t.TempDir(), "absent.json"))

	assert.Equal(t, config.Config{DefaultFrom: "USD", DefaultTo: "RUB", OutputFormat: "csv"}, cfg)
}
