// Package anthropic summarizes document text with the Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/aiyyappann/EchoVision/internal/domain"
	"github.com/aiyyappann/EchoVision/internal/provider"
)

// Config holds the client settings.
type Config struct {
	APIKey        string
	BaseURL       string
	Model         string
	Temperature   float64
	MaxTokens     int64
	MaxInputChars int
	Timeout       time.Duration
	MaxRetries    int
}

// Summarizer condenses text with a Claude model.
type Summarizer struct {
	client anthropic.Client
	cfg    Config
	log    *slog.Logger
}

// NewSummarizer creates a Summarizer. BaseURL overrides the API host (for testing).
func NewSummarizer(cfg Config, logger *slog.Logger) *Summarizer {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	return &Summarizer{
		client: anthropic.NewClient(opts...),
		cfg:    cfg,
		log:    logger.With("adapter", "anthropic"),
	}
}

// Model returns the configured model name. It is part of the summary cache key.
func (s *Summarizer) Model() string { return s.cfg.Model }

// Summarize returns a 7 to 8 line summary of text.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	start := time.Now()

	msg, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(s.cfg.Model),
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: anthropic.Float(s.cfg.Temperature),
		System: []anthropic.TextBlockParam{
			{Text: provider.SummarySystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(provider.SummaryUserPrompt(text, s.cfg.MaxInputChars))),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: summarize: %w", mapError(err))
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	summary := strings.TrimSpace(b.String())
	if summary == "" {
		return "", fmt.Errorf("anthropic: %w", provider.ErrEmptyResponse)
	}

	s.log.DebugContext(ctx, "summary generated",
		slog.String("model", s.cfg.Model),
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
		slog.Duration("duration", time.Since(start)),
	)

	return summary, nil
}

// mapError marks rate limiting and server-side failures as ErrUnavailable.
func mapError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500 {
			return fmt.Errorf("%w: status %d: %w", domain.ErrUnavailable, apiErr.StatusCode, err)
		}
	}
	return err
}
