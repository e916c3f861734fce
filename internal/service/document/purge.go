package document

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aiyyappann/EchoVision/internal/domain"
)

// PurgeResult summarizes a retention run.
type PurgeResult struct {
	Documents    int
	FilesRemoved int
}

// Purge deletes documents created before threshold along with their uploaded
// PDF and audio. Files still referenced by a newer upload of the same name
// are kept. File removal failures are logged and do not abort the run.
func (s *Service) Purge(ctx context.Context, threshold time.Time) (PurgeResult, error) {
	deleted, err := s.docs.DeleteOlderThan(ctx, threshold)
	if err != nil {
		return PurgeResult{}, fmt.Errorf("purge documents: %w", err)
	}

	res := PurgeResult{Documents: len(deleted)}
	seen := make(map[string]bool, len(deleted))
	for _, doc := range deleted {
		if seen[doc.Filename] {
			continue
		}
		seen[doc.Filename] = true

		_, err := s.docs.GetByFilename(ctx, doc.Filename)
		switch {
		case err == nil:
			continue
		case !errors.Is(err, domain.ErrNotFound):
			s.log.WarnContext(ctx, "purge: keep files, lookup failed",
				slog.String("filename", doc.Filename),
				slog.String("error", err.Error()),
			)
			continue
		}

		if s.removeFile(ctx, s.uploads, doc.Filename) {
			res.FilesRemoved++
		}
		audioFile := doc.AudioFile
		if audioFile == "" {
			audioFile = domain.AudioFilename(doc.Filename)
		}
		if s.removeFile(ctx, s.audio, audioFile) {
			res.FilesRemoved++
		}
	}

	s.log.InfoContext(ctx, "purge completed",
		slog.Time("threshold", threshold),
		slog.Int("documents", res.Documents),
		slog.Int("files", res.FilesRemoved),
	)
	return res, nil
}

// removeFile reports whether a file was actually deleted.
func (s *Service) removeFile(ctx context.Context, store fileStore, name string) bool {
	removed, err := store.Remove(name)
	if err != nil {
		s.log.WarnContext(ctx, "purge: remove file", slog.String("name", name), slog.String("error", err.Error()))
		return false
	}
	return removed
}
