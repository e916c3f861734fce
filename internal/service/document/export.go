package document

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aiyyappann/EchoVision/internal/domain"
)

// ExportBraille transcribes the full text of a stored upload and renders it
// as a Braille PDF named <base>_braille.pdf.
func (s *Service) ExportBraille(ctx context.Context, filename string) (*domain.BrailleFile, error) {
	name := SecureFilename(filename)
	if name == "" || name != filename {
		return nil, fmt.Errorf("file %q: %w", filename, domain.ErrNotFound)
	}

	doc, err := s.docs.GetByFilename(ctx, name)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.log.DebugContext(ctx, "export of unregistered upload", slog.String("filename", name))
	case err != nil:
		s.log.WarnContext(ctx, "document lookup", slog.String("filename", name), slog.String("error", err.Error()))
	}

	extracted, err := s.extractStored(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", name, err)
	}

	var cells string
	if s.cfg.PreserveLayout {
		cells = s.transcoder.TranscodeLayout(extracted.Text)
	} else {
		cells = s.transcoder.Transcode(extracted.Text)
	}

	content, err := s.renderer.Render(ctx, cells)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}

	attrs := []any{
		slog.String("filename", name),
		slog.Int("pages", extracted.PageCount),
		slog.Int("bytes", len(content)),
	}
	if doc != nil {
		attrs = append(attrs, slog.String("document_id", doc.ID.String()))
	}
	s.log.InfoContext(ctx, "braille exported", attrs...)

	return &domain.BrailleFile{
		Filename: domain.BrailleFilename(name),
		Content:  content,
	}, nil
}
