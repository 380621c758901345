package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID assigns every request a trace identifier — reused from the
// incoming header when the caller supplied one — and binds a child logger
// carrying it to the request context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = utils.NewTraceID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
