package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var managedKeys = []string{
	"PORT", "HTTP_ADDR", "LOG_LEVEL", "TRANSCRIBE_DELAY", "ASSISTANT_DELAY",
	"CORS_ORIGINS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "METRICS_ENABLED",
}

func TestLoad(t *testing.T) {
	clearEnvs(t, managedKeys...)

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(Overrides{EnvFile: "nonexistent.env"})
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Port != 5003 {
			t.Errorf("Port = %d, want 5003", cfg.Port)
		}
		if cfg.ListenAddr() != "0.0.0.0:5003" {
			t.Errorf("ListenAddr = %q, want 0.0.0.0:5003", cfg.ListenAddr())
		}
		if cfg.LogLevel != "info" {
			t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
		}
		if cfg.TranscribeDelay != 2*time.Second {
			t.Errorf("TranscribeDelay = %v, want 2s", cfg.TranscribeDelay)
		}
		if cfg.AssistantDelay != 1500*time.Millisecond {
			t.Errorf("AssistantDelay = %v, want 1.5s", cfg.AssistantDelay)
		}
		if cfg.RateLimitRPS != 0 {
			t.Errorf("RateLimitRPS = %v, want 0 (disabled)", cfg.RateLimitRPS)
		}
		if !cfg.MetricsEnabled {
			t.Error("MetricsEnabled = false, want true")
		}
		if len(cfg.CORSOrigins) != 0 {
			t.Errorf("CORSOrigins = %v, want empty", cfg.CORSOrigins)
		}
	})

	t.Run("env_vars_read", func(t *testing.T) {
		setEnvs(t, map[string]string{
			"PORT":             "8081",
			"ASSISTANT_DELAY":  "0s",
			"CORS_ORIGINS":     "https://a.example,https://b.example",
			"RATE_LIMIT_RPS":   "2.5",
			"METRICS_ENABLED":  "false",
			"TRANSCRIBE_DELAY": "250ms",
		})
		cfg, err := Load(Overrides{EnvFile: "nonexistent.env"})
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.ListenAddr() != "0.0.0.0:8081" {
			t.Errorf("ListenAddr = %q, want 0.0.0.0:8081", cfg.ListenAddr())
		}
		if cfg.AssistantDelay != 0 {
			t.Errorf("AssistantDelay = %v, want 0", cfg.AssistantDelay)
		}
		if cfg.TranscribeDelay != 250*time.Millisecond {
			t.Errorf("TranscribeDelay = %v, want 250ms", cfg.TranscribeDelay)
		}
		if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
			t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
		}
		if cfg.RateLimitRPS != 2.5 {
			t.Errorf("RateLimitRPS = %v, want 2.5", cfg.RateLimitRPS)
		}
		if cfg.MetricsEnabled {
			t.Error("MetricsEnabled = true, want false")
		}
	})

	t.Run("cli_overrides_take_priority", func(t *testing.T) {
		setEnvs(t, map[string]string{"PORT": "8081", "LOG_LEVEL": "warn"})
		cfg, err := Load(Overrides{
			EnvFile:  "nonexistent.env",
			Port:     9090,
			LogLevel: "debug",
		})
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Port != 9090 {
			t.Errorf("Port = %d, want 9090", cfg.Port)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
		}
	})

	t.Run("http_addr_wins_over_port", func(t *testing.T) {
		cfg, err := Load(Overrides{EnvFile: "nonexistent.env", HTTPAddr: "127.0.0.1:7000", Port: 9090})
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.ListenAddr() != "127.0.0.1:7000" {
			t.Errorf("ListenAddr = %q, want 127.0.0.1:7000", cfg.ListenAddr())
		}
	})

	t.Run("env_file_loaded", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		if err := os.WriteFile(path, []byte("PORT=6001\nLOG_LEVEL=debug\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		// godotenv does not override variables that are already set.
		t.Cleanup(func() { os.Unsetenv("PORT"); os.Unsetenv("LOG_LEVEL") })

		cfg, err := Load(Overrides{EnvFile: path})
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Port != 6001 {
			t.Errorf("Port = %d, want 6001", cfg.Port)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
		}
	})

	t.Run("invalid_value", func(t *testing.T) {
		setEnvs(t, map[string]string{"PORT": "not-a-port"})
		if _, err := Load(Overrides{EnvFile: "nonexistent.env"}); err == nil {
			t.Error("expected error for non-numeric PORT")
		}
	})
}

// setEnvs sets environment variables for the duration of the test.
func setEnvs(t *testing.T, envs map[string]string) {
	t.Helper()
	for k, v := range envs {
		t.Setenv(k, v)
	}
}

// clearEnvs unsets variables and restores them when the test ends.
func clearEnvs(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		if orig, ok := os.LookupEnv(k); ok {
			os.Unsetenv(k)
			t.Cleanup(func() { os.Setenv(k, orig) })
		}
	}
}
