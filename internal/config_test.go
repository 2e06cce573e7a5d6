package internal

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	t.Setenv(envPictureAPIKey, "")
	t.Setenv(envDataset, "")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "launchday.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	clearConfigEnv(t)

	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.yaml")} {
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, DefaultConfig(), cfg)
		require.Equal(t, DatasetSource{URL: DefaultDatasetURL}, cfg.DatasetSource())
		require.Equal(t, DefaultHTTPTimeout, cfg.GetHTTPTimeout())
		require.Equal(t, slog.LevelInfo, cfg.GetLogLevel())
		require.True(t, cfg.ObserverLocation().IsZero())
	}
}

func TestLoadConfigFile(t *testing.T) {
	clearConfigEnv(t)

	path := writeConfig(t, `
dataset:
  path: ./launches.csv
picture:
  api_key: FILE_KEY
summary:
  base_url: https://de.wikipedia.org/api/rest_v1
  max_chars: 300
observer:
  lat: 52.52
  lon: 13.405
http_timeout: 3s
log_level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, DatasetSource{FilePath: "./launches.csv", URL: DefaultDatasetURL}, cfg.DatasetSource())
	require.Equal(t, "FILE_KEY", cfg.Picture.APIKey)
	require.Equal(t, DefaultPictureBaseURL, cfg.Picture.BaseURL)
	require.Equal(t, "https://de.wikipedia.org/api/rest_v1", cfg.Summary.BaseURL)
	require.Equal(t, DefaultUserAgent, cfg.Summary.UserAgent)
	require.Equal(t, 300, cfg.Summary.MaxChars)
	require.Equal(t, NewCoordinates(52.52, 13.405), cfg.ObserverLocation())
	require.Equal(t, 3*time.Second, cfg.GetHTTPTimeout())
	require.Equal(t, slog.LevelDebug, cfg.GetLogLevel())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv(envPictureAPIKey, "ENV_KEY")
	t.Setenv(envDataset, "https://example.com/launches.csv")

	path := writeConfig(t, "picture:\n  api_key: FILE_KEY\ndataset:\n  path: ./launches.csv\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "ENV_KEY", cfg.Picture.APIKey)
	require.Equal(t, DatasetSource{URL: "https://example.com/launches.csv"}, cfg.DatasetSource())
}

func TestLoadConfigInvalid(t *testing.T) {
	clearConfigEnv(t)

	tests := []struct {
		name    string
		content string
	}{
		{name: "broken yaml", content: "dataset: [unclosed"},
		{name: "observer out of range", content: "observer:\n  lat: 91\n"},
		{name: "negative summary budget", content: "summary:\n  max_chars: -1\n"},
		{name: "bad timeout", content: "http_timeout: soon\n"},
		{name: "no dataset", content: "dataset:\n  url: \"\"\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, test.content))
			require.Error(t, err)
		})
	}
}

func TestSetDatasetSource(t *testing.T) {
	cfg := DefaultConfig()

	cfg.SetDatasetSource("data/launches.csv")
	require.Equal(t, DatasetSource{FilePath: "data/launches.csv"}, cfg.DatasetSource())

	cfg.SetDatasetSource("http://localhost:8000/launches.csv")
	require.Equal(t, DatasetSource{URL: "http://localhost:8000/launches.csv"}, cfg.DatasetSource())
}

func TestGetLogLevelFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "chatty"
	require.Equal(t, slog.LevelInfo, cfg.GetLogLevel())

	cfg.LogLevel = "warn"
	require.Equal(t, slog.LevelWarn, cfg.GetLogLevel())
}
