package commons

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

type Env struct {
	APIBaseURL  string
	ConfigPath  string
	HistoryPath string
	LogLevel    string
}

func LoadEnv() (Env, error) {
	var env Env
	var errors []string

	env.APIBaseURL = strings.TrimRight(getEnv("CURCONV_API_URL", DefaultAPIBaseURL), "/")
	if u, err := url.Parse(env.APIBaseURL); err != nil {
		errors = append(errors, fmt.Sprintf("invalid CURCONV_API_URL: %s", err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid CURCONV_API_URL: unsupported scheme %q", u.Scheme))
	}

	env.ConfigPath = getEnv("CURCONV_CONFIG_FILE", DefaultConfigFile)
	env.HistoryPath = getEnv("CURCONV_HISTORY_FILE", DefaultHistoryFile)
	env.LogLevel = strings.ToLower(getEnv("CURCONV_LOG_LEVEL", DefaultLogLevel))

	if len(errors) > 0 {
		return Env{}, fmt.Errorf("configuration errors occurred: %s", strings.Join(errors, "; "))
	}

	return env, nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
