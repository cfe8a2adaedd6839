package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type contextKey string

const htmxContextKey contextKey = "htmx.info"

// HTMXInfo captures the HX-* headers htmx sends with each request.
type HTMXInfo struct {
	IsHTMX    bool
	Target    string
	TriggerID string
}

func htmx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := HTMXInfo{
			IsHTMX:    strings.EqualFold(r.Header.Get("HX-Request"), "true"),
			Target:    r.Header.Get("HX-Target"),
			TriggerID: r.Header.Get("HX-Trigger"),
		}
		w.Header().Add("Vary", "HX-Request")
		ctx := context.WithValue(r.Context(), htmxContextKey, info)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func HTMXInfoFromContext(ctx context.Context) HTMXInfo {
	info, _ := ctx.Value(htmxContextKey).(HTMXInfo)
	return info
}

func isHTMX(r *http.Request) bool {
	return HTMXInfoFromContext(r.Context()).IsHTMX
}

// requestLogger writes one structured line per request. It reads the htmx
// headers from the context, so it must run inside the htmx middleware.
func requestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			info := HTMXInfoFromContext(r.Context())
			event := log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Dur("duration", time.Since(start)).
				Str("request_id", chimw.GetReqID(r.Context())).
				Bool("htmx", info.IsHTMX)
			if info.IsHTMX {
				event = event.Str("hx_target", info.Target).Str("hx_trigger", info.TriggerID)
			}
			event.Msg("request")
		})
	}
}
