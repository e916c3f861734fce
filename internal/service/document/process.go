package document

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/aiyyappann/EchoVision/internal/domain"
)

var pdfMagic = []byte("%PDF-")

// Process stores an uploaded PDF, registers it, summarizes its text, and
// returns the summary in print and in Braille together with an audio URL
// when speech is enabled.
func (s *Service) Process(ctx context.Context, input UploadInput) (*domain.ProcessedDocument, error) {
	if err := input.Validate(s.cfg.MaxUploadBytes); err != nil {
		return nil, err
	}

	name := SecureFilename(input.Filename)
	if domain.BaseName(name) == "" || !strings.EqualFold(filepath.Ext(name), ".pdf") {
		return nil, domain.NewValidationError("pdf_file", "invalid file name")
	}

	body := bufio.NewReader(input.Body)
	head, err := body.Peek(len(pdfMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if !bytes.Equal(head, pdfMagic) {
		return nil, domain.ErrInvalidFileType
	}

	start := time.Now()

	path, size, err := s.store(ctx, name, body)
	if err != nil {
		return nil, err
	}

	extracted, err := s.extractStored(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", name, err)
	}

	doc := domain.Document{
		Filename:     name,
		StoredPath:   path,
		SizeBytes:    size,
		PageCount:    extracted.PageCount,
		SummaryModel: s.summarizer.Model(),
	}
	if err := s.docs.Create(ctx, &doc); err != nil {
		return nil, fmt.Errorf("register %s: %w", name, err)
	}

	summary, err := s.summarize(ctx, extracted.Text)
	if err != nil {
		return nil, err
	}

	result := &domain.ProcessedDocument{
		Text:           extracted.Text,
		Summary:        summary,
		SummaryBraille: s.transcoder.Transcode(summary),
	}

	if audioFile := s.synthesize(ctx, name, summary); audioFile != "" {
		if err := s.docs.UpdateAudio(ctx, doc.ID, audioFile); err != nil {
			s.log.WarnContext(ctx, "record audio file", slog.String("document_id", doc.ID.String()), slog.String("error", err.Error()))
		} else {
			doc.AudioFile = audioFile
		}
		result.AudioURL = AudioURLPrefix + audioFile
	}
	result.Document = doc

	s.log.InfoContext(ctx, "document processed",
		slog.String("document_id", doc.ID.String()),
		slog.String("filename", name),
		slog.Int64("size", size),
		slog.Int("pages", extracted.PageCount),
		slog.Bool("audio", result.AudioURL != ""),
		slog.Duration("duration", time.Since(start)),
	)

	return result, nil
}

// store saves the upload and enforces the size limit on the actual body.
func (s *Service) store(ctx context.Context, name string, body io.Reader) (string, int64, error) {
	if s.cfg.MaxUploadBytes > 0 {
		body = io.LimitReader(body, s.cfg.MaxUploadBytes+1)
	}

	path, size, err := s.uploads.Save(ctx, name, body)
	if err != nil {
		return "", 0, fmt.Errorf("store %s: %w", name, err)
	}

	if s.cfg.MaxUploadBytes > 0 && size > s.cfg.MaxUploadBytes {
		if _, err := s.uploads.Remove(name); err != nil {
			s.log.WarnContext(ctx, "remove oversized upload", slog.String("filename", name), slog.String("error", err.Error()))
		}
		return "", 0, domain.ErrFileTooLarge
	}
	return path, size, nil
}

// summarize consults the cache before calling the model. Cache failures are
// logged and treated as misses.
func (s *Service) summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		s.log.WarnContext(ctx, "document has no extractable text")
		return "", nil
	}

	model := s.summarizer.Model()
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, model, text)
		switch {
		case err != nil:
			s.log.WarnContext(ctx, "summary cache get", slog.String("error", err.Error()))
		case ok:
			s.log.DebugContext(ctx, "summary cache hit", slog.String("model", model))
			return cached, nil
		}
	}

	summary, err := s.summarizer.Summarize(ctx, text)
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, model, text, summary); err != nil {
			s.log.WarnContext(ctx, "summary cache set", slog.String("error", err.Error()))
		}
	}
	return summary, nil
}

// synthesize writes <base>.mp3 to the audio store and returns its name, or ""
// when speech is disabled or fails.
func (s *Service) synthesize(ctx context.Context, name, summary string) string {
	if s.speech == nil || strings.TrimSpace(summary) == "" {
		return ""
	}

	audio, err := s.speech.Synthesize(ctx, summary)
	if err != nil {
		s.log.ErrorContext(ctx, "synthesize speech", slog.String("filename", name), slog.String("error", err.Error()))
		return ""
	}

	audioFile := domain.AudioFilename(name)
	if _, _, err := s.audio.Save(ctx, audioFile, bytes.NewReader(audio)); err != nil {
		s.log.ErrorContext(ctx, "store speech", slog.String("filename", audioFile), slog.String("error", err.Error()))
		return ""
	}
	return audioFile
}
