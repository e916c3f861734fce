package app

import (
	"log/slog"
	"net/http"

	"github.com/aiyyappann/EchoVision/internal/config"
	"github.com/aiyyappann/EchoVision/internal/service/document"
	"github.com/aiyyappann/EchoVision/internal/transport/middleware"
	"github.com/aiyyappann/EchoVision/internal/transport/rest"
	"github.com/aiyyappann/EchoVision/internal/transport/web"
)

type routerDeps struct {
	web    *web.Handler
	api    *rest.APIHandler
	health *rest.HealthHandler
	// limiter is nil when rate limiting is disabled.
	limiter *middleware.RateLimiter
	rpm     int
	cors    config.CORSConfig
	logger  *slog.Logger
}

// newRouter registers all routes. Upload and transcode are rate limited.
func newRouter(d routerDeps) http.Handler {
	var limit middleware.Middleware
	if d.limiter != nil {
		limit = d.limiter.Limit(d.rpm)
	}
	limited := func(h http.HandlerFunc) http.Handler {
		return middleware.Chain(limit)(h)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", d.web.Index)
	mux.Handle("POST /{$}", limited(d.web.Upload))
	mux.HandleFunc("GET /download_braille/{pdf_filename}", d.web.DownloadBraille)
	mux.HandleFunc("GET "+document.AudioURLPrefix+"{name}", d.web.Audio)

	mux.HandleFunc("GET /api/documents", d.api.ListDocuments)
	mux.Handle("POST /api/braille", limited(d.api.Transcode))

	mux.HandleFunc("GET /live", d.health.Live)
	mux.HandleFunc("GET /ready", d.health.Ready)
	mux.HandleFunc("GET /health", d.health.Health)

	return middleware.Chain(
		middleware.Recovery(d.logger),
		middleware.RequestID,
		middleware.Logger(d.logger),
		middleware.CORS(d.cors),
	)(mux)
}
