package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/andreluoliveira82/car-api/internal/api/shared"
	"github.com/andreluoliveira82/car-api/internal/platform/logger"
)

// Trace assigns each request a trace ID and stores a logger enriched with it
// in the context, so handler and store logs correlate with error responses.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := uuid.New().String()

		ctx := shared.WithTraceID(r.Context(), traceID)
		ctx = logger.WithContext(ctx, logger.FromContext(ctx).With("trace_id", traceID))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
