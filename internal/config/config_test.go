package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/soapsrc/ImposterGame/internal/config"
)

var configVars = []string{
	"HTTP_ADDR", "PORT", "STATIC_DIR", "COHERE_API_KEY", "COHERE_BASE_URL",
	"COHERE_MODEL", "LLM_TIMEOUT", "LOG_LEVEL",
}

// clearEnv blanks every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configVars {
		t.Setenv(k, "")
	}
}

func noEnvFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	c, err := config.Load(noEnvFile(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.HTTPAddr != ":8000" {
		t.Errorf("HTTPAddr = %q", c.HTTPAddr)
	}
	if c.StaticDir != "web" {
		t.Errorf("StaticDir = %q", c.StaticDir)
	}
	if c.CohereAPIKey != "" {
		t.Errorf("CohereAPIKey = %q", c.CohereAPIKey)
	}
	if c.CohereBaseURL != "https://api.cohere.ai/v1" {
		t.Errorf("CohereBaseURL = %q", c.CohereBaseURL)
	}
	if c.CohereModel != "command" {
		t.Errorf("CohereModel = %q", c.CohereModel)
	}
	if c.LLMTimeout != 10*time.Second {
		t.Errorf("LLMTimeout = %v", c.LLMTimeout)
	}
	if c.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v", c.LogLevel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("COHERE_API_KEY", "k")
	t.Setenv("LLM_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "DEBUG")

	c, err := config.Load(noEnvFile(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.HTTPAddr != ":9000" {
		t.Errorf("HTTPAddr = %q", c.HTTPAddr)
	}
	if c.CohereAPIKey != "k" {
		t.Errorf("CohereAPIKey = %q", c.CohereAPIKey)
	}
	if c.LLMTimeout != 3*time.Second {
		t.Errorf("LLMTimeout = %v", c.LLMTimeout)
	}
	if c.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", c.LogLevel)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("COHERE_API_KEY")
	t.Setenv("COHERE_MODEL", "command-r")

	f := filepath.Join(t.TempDir(), ".env")
	content := "COHERE_API_KEY=from-file\nCOHERE_MODEL=from-file-model\n"
	if err := os.WriteFile(f, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("COHERE_API_KEY") })

	c, err := config.Load(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.CohereAPIKey != "from-file" {
		t.Errorf("CohereAPIKey = %q", c.CohereAPIKey)
	}
	if c.CohereModel != "command-r" {
		t.Errorf("environment should win over .env, got %q", c.CohereModel)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"LLM_TIMEOUT": "soon",
		"LOG_LEVEL":   "verbose",
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(k, v)
			if _, err := config.Load(noEnvFile(t)); err == nil {
				t.Errorf("expected error for %s=%q", k, v)
			}
		})
	}
}
