// Command cleanup removes documents older than the configured retention
// period together with their uploaded PDFs and generated audio. It is
// intended to be invoked by an external cron job, not as an in-process
// goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/aiyyappann/EchoVision/internal/adapter/postgres"
	docrepo "github.com/aiyyappann/EchoVision/internal/adapter/postgres/document"
	"github.com/aiyyappann/EchoVision/internal/adapter/storage/local"
	"github.com/aiyyappann/EchoVision/internal/app"
	"github.com/aiyyappann/EchoVision/internal/config"
	"github.com/aiyyappann/EchoVision/internal/service/document"
)

func main() {
	days := flag.Int("days", 0, "retention in days; overrides storage.retention_days")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	retention := cfg.Storage.RetentionDays
	if *days > 0 {
		retention = *days
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	uploads, err := local.New(cfg.Storage.UploadDir, logger)
	if err != nil {
		logger.Error("open upload storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	audio, err := local.New(cfg.Storage.AudioDir, logger)
	if err != nil {
		logger.Error("open audio storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Purge touches only the registry and the stores; the other collaborators
	// are never called.
	svc := document.NewService(logger, document.Config{}, nil, nil, nil, docrepo.New(pool), uploads, audio, nil)

	threshold := time.Now().AddDate(0, 0, -retention)

	res, err := svc.Purge(ctx, threshold)
	if err != nil {
		logger.Error("purge failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("cleanup completed",
		slog.Int("documents", res.Documents),
		slog.Int("files", res.FilesRemoved),
		slog.Int("retention_days", retention),
	)
}
