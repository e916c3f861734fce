package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aiyyappann/EchoVision/internal/braille"
	"github.com/aiyyappann/EchoVision/internal/domain"
)

// List returns registered documents, newest first, with the total count.
func (s *Service) List(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, int, error) {
	filter.Normalize()

	docs, total, err := s.docs.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list documents: %w", err)
	}
	return docs, total, nil
}

// OpenAudio opens a generated mp3 for streaming. The caller closes the file.
func (s *Service) OpenAudio(_ context.Context, name string) (*os.File, error) {
	if !strings.EqualFold(filepath.Ext(name), ".mp3") || SecureFilename(name) != name {
		return nil, fmt.Errorf("audio %q: %w", name, domain.ErrNotFound)
	}
	return s.audio.Open(name)
}

// Transcode converts text directly, optionally with another scheme or with
// the original whitespace kept.
func (s *Service) Transcode(_ context.Context, input TranscodeInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	t := s.transcoder
	if input.Scheme != "" {
		scheme, _ := braille.ParseScheme(input.Scheme)
		if scheme != t.Scheme() {
			t = braille.New(braille.WithScheme(scheme))
		}
	}

	if input.PreserveLayout {
		return t.TranscodeLayout(input.Text), nil
	}
	return t.Transcode(input.Text), nil
}
