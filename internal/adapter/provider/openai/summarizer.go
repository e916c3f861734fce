package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/openai/openai-go"

	"github.com/aiyyappann/EchoVision/internal/provider"
)

// SummarizerConfig configures the chat completion call.
type SummarizerConfig struct {
	ClientConfig
	Model         string
	Temperature   float64
	MaxTokens     int64
	MaxInputChars int
}

// Summarizer condenses text with a chat completion model.
type Summarizer struct {
	client openai.Client
	cfg    SummarizerConfig
	log    *slog.Logger
}

// NewSummarizer creates a Summarizer.
func NewSummarizer(cfg SummarizerConfig, logger *slog.Logger) *Summarizer {
	return &Summarizer{
		client: newClient(cfg.ClientConfig),
		cfg:    cfg,
		log:    logger.With("adapter", "openai"),
	}
}

// Model returns the configured model name.
func (s *Summarizer) Model() string { return s.cfg.Model }

// Summarize returns a 7 to 8 line summary of text.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	start := time.Now()

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(s.cfg.Model),
		Temperature:         openai.Float(s.cfg.Temperature),
		MaxCompletionTokens: openai.Int(s.cfg.MaxTokens),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(provider.SummarySystemPrompt),
			openai.UserMessage(provider.SummaryUserPrompt(text, s.cfg.MaxInputChars)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: summarize: %w", mapError(err))
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: %w", provider.ErrEmptyResponse)
	}
	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", fmt.Errorf("openai: %w", provider.ErrEmptyResponse)
	}

	s.log.DebugContext(ctx, "summary generated",
		slog.String("model", s.cfg.Model),
		slog.Int64("prompt_tokens", resp.Usage.PromptTokens),
		slog.Int64("completion_tokens", resp.Usage.CompletionTokens),
		slog.Duration("duration", time.Since(start)),
	)

	return summary, nil
}
