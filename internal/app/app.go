package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aiyyappann/EchoVision/internal/adapter/pdftext"
	"github.com/aiyyappann/EchoVision/internal/adapter/postgres"
	docrepo "github.com/aiyyappann/EchoVision/internal/adapter/postgres/document"
	"github.com/aiyyappann/EchoVision/internal/adapter/render/braillepdf"
	"github.com/aiyyappann/EchoVision/internal/adapter/storage/local"
	"github.com/aiyyappann/EchoVision/internal/braille"
	"github.com/aiyyappann/EchoVision/internal/config"
	"github.com/aiyyappann/EchoVision/internal/service/document"
	"github.com/aiyyappann/EchoVision/internal/transport/middleware"
	"github.com/aiyyappann/EchoVision/internal/transport/rest"
	"github.com/aiyyappann/EchoVision/internal/transport/web"
)

// Run is the application entry point. It wires storage, providers and the
// document service behind an HTTP server, and blocks until ctx is cancelled
// or the server fails. Shutdown drains in-flight requests for at most
// ShutdownTimeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	build := CurrentBuild()

	logger.Info("starting application",
		slog.String("version", build.String()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("summarizer", cfg.Summarizer.Provider),
		slog.String("braille_scheme", cfg.Braille.Scheme),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	health := []rest.Component{{Name: "database", Pinger: pool}}

	var opts []document.Option
	cache, closeCache := newSummaryCache(ctx, cfg.Redis, logger)
	defer closeCache()
	if cache != nil {
		opts = append(opts, document.WithSummaryCache(cache))
		health = append(health, rest.Component{Name: "redis", Pinger: cache, Optional: true})
	}
	if speech := newSynthesizer(cfg.Speech, cfg.Summarizer.MaxRetries, logger); speech != nil {
		opts = append(opts, document.WithSynthesizer(speech))
	}

	uploads, err := local.New(cfg.Storage.UploadDir, logger)
	if err != nil {
		return fmt.Errorf("upload storage: %w", err)
	}
	audio, err := local.New(cfg.Storage.AudioDir, logger)
	if err != nil {
		return fmt.Errorf("audio storage: %w", err)
	}

	renderer, err := braillepdf.New(braillepdf.Config{
		FontPath:   cfg.Braille.FontPath,
		FontSize:   cfg.Braille.FontSize,
		LineHeight: cfg.Braille.LineHeight,
		Margin:     cfg.Braille.Margin,
		Title:      "EchoVision Braille",
	}, logger)
	if err != nil {
		return fmt.Errorf("braille renderer: %w", err)
	}

	scheme, err := braille.ParseScheme(cfg.Braille.Scheme)
	if err != nil {
		return err
	}

	svc := document.NewService(
		logger,
		document.Config{
			MaxUploadBytes: cfg.Server.MaxUploadBytes,
			PreserveLayout: cfg.Braille.PreserveLayout,
		},
		braille.New(braille.WithScheme(scheme)),
		pdftext.New(logger),
		newSummarizer(cfg.Summarizer, logger),
		docrepo.New(pool),
		uploads,
		audio,
		renderer,
		opts...,
	)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
	}

	handler := newRouter(routerDeps{
		web:     web.NewHandler(svc, cfg.Server.MaxUploadBytes, logger),
		api:     rest.NewAPIHandler(svc, logger),
		health:  rest.NewHealthHandler(build.Short(), health...),
		limiter: limiter,
		rpm:     cfg.RateLimit.RequestsPerMin,
		cors:    cfg.CORS,
		logger:  logger,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil {
		return fmt.Errorf("http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
