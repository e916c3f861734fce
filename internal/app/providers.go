package app

import (
	"context"
	"log/slog"

	"github.com/aiyyappann/EchoVision/internal/adapter/provider/anthropic"
	"github.com/aiyyappann/EchoVision/internal/adapter/provider/openai"
	redisadapter "github.com/aiyyappann/EchoVision/internal/adapter/redis"
	"github.com/aiyyappann/EchoVision/internal/config"
)

type summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
	Model() string
}

// newSummarizer picks the adapter for the configured provider. The provider
// name is validated at load time.
func newSummarizer(cfg config.SummarizerConfig, logger *slog.Logger) summarizer {
	if cfg.Provider == config.ProviderOpenAI {
		return openai.NewSummarizer(openai.SummarizerConfig{
			ClientConfig: openai.ClientConfig{
				APIKey:     cfg.OpenAIAPIKey,
				BaseURL:    cfg.BaseURL,
				Timeout:    cfg.Timeout,
				MaxRetries: cfg.MaxRetries,
			},
			Model:         cfg.Model,
			Temperature:   cfg.Temperature,
			MaxTokens:     cfg.MaxTokens,
			MaxInputChars: cfg.MaxInputChars,
		}, logger)
	}

	return anthropic.NewSummarizer(anthropic.Config{
		APIKey:        cfg.AnthropicAPIKey,
		BaseURL:       cfg.BaseURL,
		Model:         cfg.Model,
		Temperature:   cfg.Temperature,
		MaxTokens:     cfg.MaxTokens,
		MaxInputChars: cfg.MaxInputChars,
		Timeout:       cfg.Timeout,
		MaxRetries:    cfg.MaxRetries,
	}, logger)
}

// newSynthesizer returns nil when speech is disabled.
func newSynthesizer(cfg config.SpeechConfig, maxRetries int, logger *slog.Logger) *openai.Synthesizer {
	if !cfg.Enabled {
		return nil
	}
	return openai.NewSynthesizer(openai.SpeechConfig{
		ClientConfig: openai.ClientConfig{
			APIKey:     cfg.APIKey,
			BaseURL:    cfg.BaseURL,
			Timeout:    cfg.Timeout,
			MaxRetries: maxRetries,
		},
		Model: cfg.Model,
		Voice: cfg.Voice,
	}, logger)
}

// newSummaryCache connects to Redis when enabled. An unreachable server
// disables the cache instead of failing startup. The returned func closes
// the client and is always non-nil.
func newSummaryCache(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (*redisadapter.SummaryCache, func()) {
	if !cfg.Enabled {
		return nil, func() {}
	}

	client, err := redisadapter.NewClient(ctx, cfg)
	if err != nil {
		logger.Warn("summary cache disabled", slog.String("addr", cfg.Addr), slog.String("error", err.Error()))
		return nil, func() {}
	}

	logger.Info("summary cache enabled", slog.String("addr", cfg.Addr), slog.Duration("ttl", cfg.SummaryTTL))
	return redisadapter.NewSummaryCache(client, cfg.SummaryTTL), func() { client.Close() } //nolint:errcheck
}
