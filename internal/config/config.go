package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is built once at startup and passed explicitly to constructors.
type Config struct {
	HTTPAddr      string
	LogLevel      slog.Level
	StaticDir     string
	CohereAPIKey  string
	CohereBaseURL string
	CohereModel   string
	LLMTimeout    time.Duration
}

// Load reads envFiles (default ".env") into the process environment without
// overriding variables that are already set, then builds a Config. Missing
// env files are not an error. An empty COHERE_API_KEY is allowed: hint
// requests then fail individually instead of the server refusing to start.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	c := Config{
		HTTPAddr:      envOr("HTTP_ADDR", defaultAddr()),
		StaticDir:     envOr("STATIC_DIR", "web"),
		CohereAPIKey:  os.Getenv("COHERE_API_KEY"),
		CohereBaseURL: envOr("COHERE_BASE_URL", "https://api.cohere.ai/v1"),
		CohereModel:   envOr("COHERE_MODEL", "command"),
		LLMTimeout:    10 * time.Second,
	}

	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LLM_TIMEOUT %q: %w", v, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("invalid LLM_TIMEOUT %q: must be positive", v)
		}
		c.LLMTimeout = d
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	return c, nil
}

func defaultAddr() string {
	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		return ":" + p
	}
	return ":8000"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
