package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Chain func(next http.Handler) http.Handler

type RouteChain func(next http.HandlerFunc) http.HandlerFunc

// SetChain wraps a root handler with router-level middlewares, applied in
// the order they are passed.
func SetChain(handler http.Handler, chains ...Chain) http.Handler {
	for i := len(chains) - 1; i >= 0; i-- {
		handler = chains[i](handler)
	}

	return handler
}

// SetRouteChain wraps a single route with per-route middlewares.
func SetRouteChain(handler http.HandlerFunc, chains ...RouteChain) http.HandlerFunc {
	for i := len(chains) - 1; i >= 0; i-- {
		handler = chains[i](handler)
	}

	return handler
}

// HTTPResponseTraceInjection stamps every response with a request id so a
// user-reported failure can be matched against the logs.
func HTTPResponseTraceInjection(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

type HTTPRequestLogger struct {
	logger          *logrus.Logger
	debug           bool
	statusThreshold int
}

func NewHTTPRequestLogger(logger *logrus.Logger, debug bool, statusThreshold int) *HTTPRequestLogger {
	return &HTTPRequestLogger{
		logger:          logger,
		debug:           debug,
		statusThreshold: statusThreshold,
	}
}

func (l *HTTPRequestLogger) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(recorder, r)

		if !l.debug && recorder.statusCode < l.statusThreshold {
			return
		}

		l.logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   recorder.statusCode,
			"duration": time.Since(start).String(),
		}).Info("http request")
	})
}
