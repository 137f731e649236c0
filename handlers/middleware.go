package handlers

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"TaskFilterService/response"
)

// RequestIDHeader carries the id used to correlate log lines of one request.
const RequestIDHeader = "X-Request-ID"

// RequestID makes sure every request has an id, reusing the caller's one when
// present, and echoes it in the response headers.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		id := req.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			req.Header.Set(RequestIDHeader, id)
		}
		res.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(res, req)
	})
}

// rateLimiter is a middleware function that implements rate limiting for HTTP requests.
// If the request is not allowed due to rate limiting, it returns a JSON response with an error message
// and HTTP status code 429 (Too Many Requests).
func (h *Handler) rateLimiter(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		if !h.Limiter.Allow() {
			h.fail(res, req, endpoint, "rate limiting", http.StatusTooManyRequests, response.TooManyRequestsMessage)
			return
		}
		next(res, req)
	}
}

// recoverFault turns a panic inside next into a 500 response whose error is
// faultPrefix followed by the panic value, so one bad request never takes the
// process down.
func (h *Handler) recoverFault(endpoint, faultPrefix string, next http.HandlerFunc) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			if r == http.ErrAbortHandler {
				panic(r)
			}
			h.fail(res, req, endpoint, "recovering from fault", http.StatusInternalServerError, fmt.Sprintf("%s: %v", faultPrefix, r))
		}()
		next(res, req)
	}
}

// MetricsHandler is a middleware function that wraps the provided handler function
// with metrics collection, rate limiting and fault recovery.
// The endpoint call counter is incremented for every request, including the rejected ones.
func (h *Handler) MetricsHandler(endpoint, faultPrefix string, handlerFunc http.HandlerFunc) http.HandlerFunc {
	limited := h.rateLimiter(endpoint, h.recoverFault(endpoint, faultPrefix, handlerFunc))
	return func(res http.ResponseWriter, req *http.Request) {
		h.Metrics.EndPointCounter.WithLabelValues(endpoint).Inc()
		limited(res, req)
	}
}
