package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	apperrors "lastdrop/internal/errors"
)

const DefaultBackendURL = "http://localhost:8000"

type Config struct {
	Backend BackendConfig
	Stub    StubConfig
	Log     LogConfig
}

type BackendConfig struct {
	URL string
	// Timeout of zero leaves the http.Client default (no timeout).
	Timeout time.Duration
}

type StubConfig struct {
	Port int
}

type LogConfig struct {
	Level  string
	Format string
}

// Load resolves configuration from, in increasing priority: defaults, the
// optional config file, a .env file in the working directory and the process
// environment.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("BACKEND_URL", DefaultBackendURL)
	v.SetDefault("HTTP_TIMEOUT", "0s")
	v.SetDefault("STUB_PORT", 8000)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	timeout, err := time.ParseDuration(v.GetString("HTTP_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("parsing HTTP_TIMEOUT: %w", err)
	}

	backendURL, err := normalizeBackendURL(v.GetString("BACKEND_URL"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Backend: BackendConfig{
			URL:     backendURL,
			Timeout: timeout,
		},
		Stub: StubConfig{
			Port: v.GetInt("STUB_PORT"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	return cfg, nil
}

func normalizeBackendURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultBackendURL, nil
	}

	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", apperrors.NewValidationError("invalid backend url", apperrors.ValidationDetail{
			Field:   "BACKEND_URL",
			Message: "must be an absolute http(s) origin",
		})
	}

	return strings.TrimRight(raw, "/"), nil
}
