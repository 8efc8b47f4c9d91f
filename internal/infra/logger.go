package infra

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/vgi/vgi-server/internal/config"
)

const headerRequestID = "X-Request-ID"

// LoggerHTTP puts the service logger and a request id into the request context.
// Responses with a 5xx status are logged once the handler returns.
func LoggerHTTP(next http.Handler, logger logger_lib.LoggerInterface) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(headerRequestID, requestID)

		ctx := context.WithValue(r.Context(), config.KeyLogger, logger)
		ctx = context.WithValue(ctx, config.KeyRequestID, requestID)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r.WithContext(ctx))

		if ww.Status() >= http.StatusInternalServerError {
			logger.Error(fmt.Sprintf("%s %s -> %d in %s (request %s)",
				r.Method, r.URL.Path, ww.Status(), time.Since(start).Round(time.Millisecond), requestID))
		}
	})
}

// RequestID returns the id assigned by LoggerHTTP, or "" outside a request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(config.KeyRequestID).(string)
	return id
}
