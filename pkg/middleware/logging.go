package middleware

import (
	"fmt"
	"net/http"
	"time"

	"post-board-backend/pkg/config"

	"github.com/go-chi/chi/v5/middleware"
)

// Logger creates the request logging middleware: a structured line per
// request in production, a colored line in development.
func Logger(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Wrap the writer to capture the status code
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			duration := time.Since(start)

			if cfg.IsProduction() {
				logProductionRequest(r, ww, duration)
			} else {
				logDevelopmentRequest(r, ww, duration)
			}
		})
	}
}

// logProductionRequest emits one structured log line
func logProductionRequest(r *http.Request, ww middleware.WrapResponseWriter, duration time.Duration) {
	fmt.Printf(`{"time":"%s","method":"%s","path":"%s","status":%d,"duration":"%s","ip":"%s","user_agent":"%s"}`+"\n",
		time.Now().Format(time.RFC3339),
		r.Method,
		r.URL.Path,
		ww.Status(),
		duration,
		getClientIP(r),
		r.UserAgent(),
	)
}

// logDevelopmentRequest emits one colored log line
func logDevelopmentRequest(r *http.Request, ww middleware.WrapResponseWriter, duration time.Duration) {
	statusColor := getStatusColor(ww.Status())
	methodColor := getMethodColor(r.Method)

	fmt.Printf("%s %s %s%s%s %s%d%s %s %s\n",
		time.Now().Format("15:04:05"),
		methodColor+r.Method+"\033[0m",
		"\033[36m",
		r.URL.Path,
		"\033[0m",
		statusColor,
		ww.Status(),
		"\033[0m",
		duration,
		getClientIP(r),
	)
}

// getClientIP resolves the client address behind proxies
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

// getStatusColor maps an HTTP status to an ANSI color
func getStatusColor(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "\033[32m" // green
	case status >= 300 && status < 400:
		return "\033[33m" // yellow
	case status >= 400 && status < 500:
		return "\033[31m" // red
	case status >= 500:
		return "\033[35m" // magenta
	default:
		return "\033[0m"
	}
}

// getMethodColor maps an HTTP method to an ANSI color
func getMethodColor(method string) string {
	switch method {
	case "GET":
		return "\033[34m" // blue
	case "POST":
		return "\033[32m" // green
	case "DELETE":
		return "\033[31m" // red
	default:
		return "\033[0m"
	}
}
