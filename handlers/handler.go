// Package handlers provides the HTTP request handlers for TaskFilterService.
//
// The service answers task filter queries over a fixed in-memory task table and
// keeps one saved set of filter preferences in a pluggable store.
//
// The following endpoints are available:
//
//  1. GET /filter_tasks - Filter tasks by priority, completed and due_date
//  2. POST /save_filter_preferences - Save a preference set, replacing the previous one
//  3. GET /get_saved_preferences - Get the saved preference document
//  4. POST /clear_preferences - Remove the saved preferences
//  5. GET /health - Liveness check
//  6. GET /metrics - Display Prometheus metrics
//
// Every route except /health and /metrics goes through the rate limiter and the
// endpoint/error counters, and faults inside a handler are turned into a 500
// JSON response instead of reaching the server.
package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"TaskFilterService/metrics"
	"TaskFilterService/response"
	"TaskFilterService/store"
	"TaskFilterService/tasks"
	"TaskFilterService/validation"
)

// Handler carries the dependencies shared by every route.
type Handler struct {
	Engine   *tasks.Engine
	Store    store.Store
	Log      logrus.FieldLogger
	Metrics  *metrics.Metrics
	Limiter  *rate.Limiter
	Gatherer prometheus.Gatherer

	validate *validator.Validate
}

// NewHandler wires a handler. A nil limiter disables rate limiting.
func NewHandler(engine *tasks.Engine, st store.Store, log logrus.FieldLogger, m *metrics.Metrics, limiter *rate.Limiter) *Handler {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	return &Handler{
		Engine:   engine,
		Store:    st,
		Log:      log,
		Metrics:  m,
		Limiter:  limiter,
		validate: validation.New(),
	}
}

// Routes returns the router of the service.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /filter_tasks", h.MetricsHandler("/filter_tasks", response.ErrorFilteringPrefix, h.FilterTasksHandler))
	mux.Handle("POST /save_filter_preferences", h.MetricsHandler("/save_filter_preferences", response.ErrorSavingPrefix, h.SavePreferencesHandler))
	mux.Handle("GET /get_saved_preferences", h.MetricsHandler("/get_saved_preferences", response.ErrorLoadingPrefix, h.GetSavedPreferencesHandler))
	mux.Handle("POST /clear_preferences", h.MetricsHandler("/clear_preferences", response.ErrorClearingPrefix, h.ClearPreferencesHandler))
	mux.HandleFunc("GET /health", func(res http.ResponseWriter, req *http.Request) {
		response.WriteJSON(res, http.StatusOK, map[string]string{"status": "ok"})
	})
	if h.Gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(h.Gatherer, promhttp.HandlerOpts{}))
	}
	return RequestID(mux)
}

// logger returns a log entry carrying the fields of the current request.
func (h *Handler) logger(req *http.Request, operation, endpoint string) *logrus.Entry {
	return h.Log.WithFields(logrus.Fields{
		"task operation": operation,
		"request":        req.Method + " " + endpoint,
		"request id":     req.Header.Get(RequestIDHeader),
	})
}

// fail counts, logs and writes an error response.
func (h *Handler) fail(res http.ResponseWriter, req *http.Request, endpoint, operation string, status int, message string) {
	h.Metrics.ErrorCounter.WithLabelValues(endpoint).Inc()
	h.logger(req, operation, endpoint).Error(message)
	response.WriteJSON(res, status, response.Error{Error: message})
}
