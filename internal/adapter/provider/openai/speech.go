package openai

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	openai "github.com/openai/openai-go"

	"github.com/aiyyappann/EchoVision/internal/provider"
)

// maxSpeechInput is the longest input the speech endpoint accepts.
const maxSpeechInput = 4096

// SpeechConfig configures the speech endpoint.
type SpeechConfig struct {
	ClientConfig
	Model string
	Voice string
}

// Synthesizer turns text into MP3 audio.
type Synthesizer struct {
	client openai.Client
	cfg    SpeechConfig
	log    *slog.Logger
}

// NewSynthesizer creates a Synthesizer.
func NewSynthesizer(cfg SpeechConfig, logger *slog.Logger) *Synthesizer {
	return &Synthesizer{
		client: newClient(cfg.ClientConfig),
		cfg:    cfg,
		log:    logger.With("adapter", "openai_speech"),
	}
}

// Synthesize returns MP3 bytes for text. Input beyond the endpoint limit is cut.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := s.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Input:          provider.Truncate(text, maxSpeechInput),
		Model:          openai.SpeechModel(s.cfg.Model),
		Voice:          openai.AudioSpeechNewParamsVoice(s.cfg.Voice),
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	})
	if err != nil {
		return nil, fmt.Errorf("openai: synthesize: %w", mapError(err))
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openai: read audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("openai: %w", provider.ErrEmptyResponse)
	}

	s.log.DebugContext(ctx, "speech synthesized",
		slog.String("voice", s.cfg.Voice),
		slog.Int("bytes", len(audio)),
	)

	return audio, nil
}
