package commons_test

import (
	"testing"

	"github.com/Lutefd/curconv/internal/commons"
	"github.com/stretchr/testify/assert"
)

func TestLoadEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("CURCONV_API_URL", "")
		t.Setenv("CURCONV_CONFIG_FILE", "")
		t.Setenv("CURCONV_HISTORY_FILE", "")
		t.Setenv("CURCONV_LOG_LEVEL", "")

		env, err := commons.LoadEnv()

		assert.NoError(t, err)
		assert.Equal(t, commons.DefaultAPIBaseURL, env.APIBaseURL)
		assert.Equal(t, "config.json", env.ConfigPath)
		assert.Equal(t, "history.json", env.HistoryPath)
		assert.Equal(t, "warn", env.LogLevel)
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("CURCONV_API_URL", "http://localhost:9999/v4/latest/")
		t.Setenv("CURCONV_CONFIG_FILE", "/etc/curconv.json")
		t.Setenv("CURCONV_HISTORY_FILE", "/var/lib/curconv/history.json")
		t.Setenv("CURCONV_LOG_LEVEL", "DEBUG")

		env, err := commons.LoadEnv()

		assert.NoError(t, err)
		assert.Equal(t, "http://localhost:9999/v4/latest", env.APIBaseURL)
		assert.Equal(t, "/etc/curconv.json", env.ConfigPath)
		assert.Equal(t, "/var/lib/curconv/history.json", env.HistoryPath)
		assert.Equal(t, "debug", env.LogLevel)
	})

	t.Run("Invalid API URL scheme", func(t *testing.T) {
		t.Setenv("CURCONV_API_URL", "ftp://rates.example.com")

		_, err := commons.LoadEnv()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "configuration errors occurred")
	})

	t.Run("Unparsable API URL", func(t *testing.T) {
		t.Setenv("CURCONV_API_URL", "http://[::1")

		_, err := commons.LoadEnv()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "CURCONV_API_URL")
	})
}
