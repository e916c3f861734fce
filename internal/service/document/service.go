// Package document turns uploaded PDFs into summaries, Braille and speech.
package document

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/aiyyappann/EchoVision/internal/braille"
	"github.com/aiyyappann/EchoVision/internal/domain"
)

type extractor interface {
	Extract(ctx context.Context, r io.ReaderAt, size int64) (*domain.ExtractedText, error)
}

type summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
	Model() string
}

type summaryCache interface {
	Get(ctx context.Context, model, text string) (string, bool, error)
	Set(ctx context.Context, model, text, summary string) error
}

type synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type documentRepo interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByFilename(ctx context.Context, filename string) (*domain.Document, error)
	List(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, int, error)
	UpdateAudio(ctx context.Context, id uuid.UUID, audioFile string) error
	DeleteOlderThan(ctx context.Context, threshold time.Time) ([]domain.Document, error)
}

type fileStore interface {
	Save(ctx context.Context, name string, r io.Reader) (string, int64, error)
	Open(name string) (*os.File, error)
	Remove(name string) (bool, error)
}

type renderer interface {
	Render(ctx context.Context, text string) ([]byte, error)
}

// AudioURLPrefix is the public path audio files are served under.
const AudioURLPrefix = "/static/audio/"

// Config holds service settings.
type Config struct {
	MaxUploadBytes int64
	PreserveLayout bool
}

// Option configures optional collaborators.
type Option func(*Service)

// WithSummaryCache enables summary caching.
func WithSummaryCache(c summaryCache) Option {
	return func(s *Service) { s.cache = c }
}

// WithSynthesizer enables audio generation.
func WithSynthesizer(sy synthesizer) Option {
	return func(s *Service) { s.speech = sy }
}

// Service provides document processing operations.
type Service struct {
	cfg        Config
	transcoder *braille.Transcoder
	extractor  extractor
	summarizer summarizer
	docs       documentRepo
	uploads    fileStore
	audio      fileStore
	renderer   renderer
	cache      summaryCache
	speech     synthesizer
	log        *slog.Logger
}

// NewService creates a new document service.
func NewService(
	log *slog.Logger,
	cfg Config,
	transcoder *braille.Transcoder,
	extractor extractor,
	summarizer summarizer,
	docs documentRepo,
	uploads fileStore,
	audio fileStore,
	renderer renderer,
	opts ...Option,
) *Service {
	s := &Service{
		cfg:        cfg,
		transcoder: transcoder,
		extractor:  extractor,
		summarizer: summarizer,
		docs:       docs,
		uploads:    uploads,
		audio:      audio,
		renderer:   renderer,
		log:        log.With("service", "document"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scheme returns the configured Braille scheme.
func (s *Service) Scheme() braille.Scheme { return s.transcoder.Scheme() }

// extractStored opens a stored upload and extracts its text.
func (s *Service) extractStored(ctx context.Context, name string) (*domain.ExtractedText, error) {
	f, err := s.uploads.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return s.extractor.Extract(ctx, f, info.Size())
}
