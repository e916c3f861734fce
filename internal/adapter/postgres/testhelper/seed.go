package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aiyyappann/EchoVision/internal/domain"
)

// UniqueFilename returns a PDF name that does not collide with other tests
// sharing the container.
func UniqueFilename(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8] + ".pdf"
}

// SeedDocument inserts a document row with the given filename and returns it.
func SeedDocument(t *testing.T, pool *pgxpool.Pool, filename string) domain.Document {
	t.Helper()
	return SeedDocumentAt(t, pool, filename, time.Now())
}

// SeedDocumentAt is SeedDocument with an explicit creation time.
func SeedDocumentAt(t *testing.T, pool *pgxpool.Pool, filename string, createdAt time.Time) domain.Document {
	t.Helper()

	doc := domain.Document{
		ID:           uuid.New(),
		Filename:     filename,
		StoredPath:   "uploads/" + filename,
		SizeBytes:    2048,
		PageCount:    3,
		SummaryModel: "claude-test",
		AudioFile:    domain.AudioFilename(filename),
		CreatedAt:    createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO documents (id, filename, stored_path, size_bytes, page_count, summary_model, audio_file, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		doc.ID, doc.Filename, doc.StoredPath, doc.SizeBytes, doc.PageCount, doc.SummaryModel, doc.AudioFile, doc.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDocument: %v", err)
	}

	return doc
}
