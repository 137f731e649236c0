// TaskFilterService is a web service that filters a fixed set of tasks and keeps
// the caller's saved filter preferences.
//
// The task table is seeded once at startup with three tasks whose due dates are
// today and tomorrow. Saved preferences live in a JSON file by default; the
// PREFERENCE_BACKEND variable switches to an in-memory, MySQL or Redis store.
// Setting RATE_LIMIT (events per second) and RATE_BURST turns on rate limiting of
// every API route, and Prometheus metrics are exposed for monitoring.
//
// The following endpoints are available:
//
//  1. GET /filter_tasks - Filter tasks by priority, completed and due_date
//  2. POST /save_filter_preferences - Save a filter preference set
//  3. GET /get_saved_preferences - Get the saved preferences
//  4. POST /clear_preferences - Clear the saved preferences
//  5. GET /health - Liveness check
//  6. GET /metrics - Display Prometheus metrics
//
// You may use godoc -http=:6060 to view the documentation in your browser.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	redis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"TaskFilterService/config"
	"TaskFilterService/handlers"
	"TaskFilterService/metrics"
	"TaskFilterService/store"
	"TaskFilterService/tasks"
)

var log = logrus.New()

func main() {
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(cfg.LogLevel)

	m := metrics.New(prometheus.DefaultRegisterer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, closeStore, err := openStore(ctx, cfg, m)
	if err != nil {
		log.Fatal(err)
	}
	defer closeStore()
	if err := st.Init(ctx); err != nil {
		log.Fatal(err)
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}

	h := handlers.NewHandler(tasks.NewEngine(tasks.Seed(time.Now())), st, log, m, limiter)
	h.Gatherer = prometheus.DefaultGatherer

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{
			"address": cfg.Addr(),
			"backend": cfg.Backend,
		}).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown: ", err)
	}
	log.Info("server exited")
}

// openStore builds the preference store selected by the configuration and
// returns a function releasing its connections.
func openStore(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (store.Store, func(), error) {
	opts := []store.Option{
		store.WithLogger(log),
		store.WithFallbackCounter(m.PreferenceFallbacks),
	}
	noop := func() {}

	switch cfg.Backend {
	case config.BackendMemory:
		return store.NewMemoryStore(opts...), noop, nil
	case config.BackendMySQL:
		dsn := store.MySQLConfig(cfg.DBUsername, cfg.DBPassword, cfg.DBAddress, cfg.DBName).FormatDSN()
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		st, err := store.OpenMySQL(pingCtx, dsn, opts...)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Connected to preference database")
		return st, func() { st.Close() }, nil
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		st := store.NewRedisStore(client, cfg.RedisKey, opts...)
		return st, func() { st.Close() }, nil
	default:
		st := store.NewFileStore(cfg.PreferencesFile, opts...)
		log.WithField("path", st.Path()).Info("Using preference file")
		return st, noop, nil
	}
}
