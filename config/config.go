// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Preference backends.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendMySQL  = "mysql"
	BackendRedis  = "redis"
)

type Config struct {
	Host            string
	Port            string
	PreferencesFile string
	Backend         string
	LogLevel        logrus.Level

	// RateLimit is in events per second, zero or less disables limiting.
	// Limiting is off unless RATE_LIMIT is set.
	RateLimit float64
	RateBurst int

	DBUsername string
	DBPassword string
	DBAddress  string
	DBName     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisKey      string

	ShutdownTimeout time.Duration
}

// Addr is the address the HTTP server binds to.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Load reads .env if present and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds the configuration from getenv, applying defaults for
// anything unset.
func FromEnv(getenv func(string) string) (*Config, error) {
	env := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Host:            env("HOST", "0.0.0.0"),
		Port:            env("PORT", "5003"),
		PreferencesFile: env("PREFERENCES_FILE", "/app/data/filter_preferences.json"),
		Backend:         env("PREFERENCE_BACKEND", BackendFile),
		DBUsername:      getenv("DB_USERNAME"),
		DBPassword:      getenv("DB_PASSWORD"),
		DBAddress:       env("DB_ADDRESS", "127.0.0.1:3306"),
		DBName:          env("DB_NAME", "taskdb"),
		RedisAddr:       getenv("REDIS_ADDR"),
		RedisPassword:   getenv("REDIS_PASSWORD"),
		RedisKey:        env("REDIS_KEY", "taskfilter:preferences"),
	}

	var err error
	if cfg.LogLevel, err = logrus.ParseLevel(env("LOG_LEVEL", "info")); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if cfg.RateLimit, err = strconv.ParseFloat(env("RATE_LIMIT", "0"), 64); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT: %w", err)
	}
	if cfg.RateBurst, err = strconv.Atoi(env("RATE_BURST", "20")); err != nil {
		return nil, fmt.Errorf("RATE_BURST: %w", err)
	}
	if cfg.RedisDB, err = strconv.Atoi(env("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("REDIS_DB: %w", err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(env("SHUTDOWN_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}

	switch cfg.Backend {
	case BackendFile, BackendMemory, BackendMySQL:
	case BackendRedis:
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("REDIS_ADDR is required for the %s backend", BackendRedis)
		}
	default:
		return nil, fmt.Errorf("unknown PREFERENCE_BACKEND %q", cfg.Backend)
	}
	return cfg, nil
}
