package http

import (
	"net/http"
	"strings"

	"github.com/gfranca/atalho/internal/config"
	"github.com/gfranca/atalho/internal/constants"
	"github.com/gfranca/atalho/internal/infrastructure/db"
	"github.com/gfranca/atalho/internal/infrastructure/telemetry"
	"github.com/gfranca/atalho/internal/processing/links"
	"github.com/gfranca/atalho/internal/transport/http/middleware"
	"github.com/gfranca/atalho/pkg/httputils"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var spanNames = map[string]string{
	"GET /healthz":             "healthz",
	"GET /metrics":             "metrics",
	"POST /api/links":          "links.create",
	"GET /api/links":           "links.list",
	"GET /api/links/{code}":    "links.stats",
	"DELETE /api/links/{code}": "links.delete",
	"GET /{code}":              "links.redirect",
}

type RouterOptions struct {
	EnableCORS    bool
	EnableLogging bool
	EnableMetrics bool
}

func DefaultRouterOptions() RouterOptions {
	return RouterOptions{
		EnableCORS:    true,
		EnableLogging: true,
		EnableMetrics: true,
	}
}

func NewRouter(cfg *config.Config, linkService *links.Service, mongoConn *db.Mongo) http.Handler {
	return NewRouterWithOptions(cfg, linkService, mongoConn, DefaultRouterOptions())
}

func NewRouterWithOptions(cfg *config.Config, linkService *links.Service, mongoConn *db.Mongo, opts RouterOptions) http.Handler {
	mux := http.NewServeMux()

	healthHandler := NewHealthHandler(cfg.App.Version, mongoConn)
	linksHandler := NewLinksHandler(cfg, linkService)

	mux.HandleFunc("GET /healthz", healthHandler.Health)
	mux.Handle("GET /metrics", healthHandler.Metrics())

	mux.Handle("POST /api/links", middleware.Chain(
		http.HandlerFunc(linksHandler.Create),
		middleware.APIKeyMiddleware(cfg.Security.APIKeys),
	))
	mux.HandleFunc("GET /api/links", linksHandler.List)
	mux.HandleFunc("GET /api/links/{code}", linksHandler.Stats)
	mux.HandleFunc("DELETE /api/links/{code}", linksHandler.Delete)

	mux.HandleFunc("GET /{code}", linksHandler.Redirect)

	// Catch-all so unknown routes get the JSON envelope, not plain text.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httputils.WriteAPIError(w, r, constants.ErrRouteNotFound)
	})

	var innerHandler http.Handler = mux
	if opts.EnableCORS {
		innerHandler = middleware.CORSMiddleware(innerHandler)
	}
	if opts.EnableLogging {
		innerHandler = middleware.LoggingMiddleware(innerHandler)
	}
	if opts.EnableMetrics {
		innerHandler = middleware.MetricsMiddleware(innerHandler)
	}

	otelOptions := []otelhttp.Option{
		otelhttp.WithSpanNameFormatter(func(operation string, r *http.Request) string {
			key := r.Method + " " + r.Pattern
			if name, ok := spanNames[key]; ok {
				return name
			}
			if r.Pattern != "" {
				return r.Pattern
			}
			path := strings.TrimSpace(r.URL.Path)
			if path == "" {
				path = "/"
			}
			return path
		}),
	}

	if telemetry.TracerProvider != nil {
		otelOptions = append(otelOptions, otelhttp.WithTracerProvider(telemetry.TracerProvider))
	}

	return otelhttp.NewHandler(innerHandler, cfg.App.Name, otelOptions...)
}
