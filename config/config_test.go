package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func mapEnv(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(mapEnv(nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Addr() != "0.0.0.0:5003" {
		t.Errorf("Expected address 0.0.0.0:5003, got %s", cfg.Addr())
	}
	if cfg.PreferencesFile != "/app/data/filter_preferences.json" {
		t.Errorf("Expected default preferences file, got %s", cfg.PreferencesFile)
	}
	if cfg.Backend != BackendFile {
		t.Errorf("Expected file backend, got %s", cfg.Backend)
	}
	if cfg.LogLevel != logrus.InfoLevel {
		t.Errorf("Expected info level, got %v", cfg.LogLevel)
	}
	if cfg.RateLimit != 0 || cfg.RateBurst != 20 {
		t.Errorf("Expected rate limiting off with burst 20, got %v/%d", cfg.RateLimit, cfg.RateBurst)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("Expected 10s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(mapEnv(map[string]string{
		"PORT":               "8080",
		"PREFERENCE_BACKEND": "redis",
		"REDIS_ADDR":         "localhost:6379",
		"REDIS_DB":           "2",
		"LOG_LEVEL":          "debug",
		"RATE_LIMIT":         "2",
	}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.Backend != BackendRedis || cfg.RedisDB != 2 {
		t.Errorf("Expected overrides to apply, got %+v", cfg)
	}
	if cfg.LogLevel != logrus.DebugLevel {
		t.Errorf("Expected debug level, got %v", cfg.LogLevel)
	}
	if cfg.RateLimit != 2 {
		t.Errorf("Expected rate limit 2, got %v", cfg.RateLimit)
	}
}

func TestFromEnvErrors(t *testing.T) {
	cases := []map[string]string{
		{"PREFERENCE_BACKEND": "sqlite"},
		{"PREFERENCE_BACKEND": "redis"},
		{"RATE_BURST": "many"},
		{"LOG_LEVEL": "loud"},
		{"SHUTDOWN_TIMEOUT": "soon"},
	}
	for _, env := range cases {
		if _, err := FromEnv(mapEnv(env)); err == nil {
			t.Errorf("Expected error for %v", env)
		}
	}
}
