package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// Supported summarizer providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

var (
	logLevels   = []string{"debug", "info", "warn", "error"}
	logFormats  = []string{"json", "text"}
	providers   = []string{ProviderAnthropic, ProviderOpenAI}
	schemes     = []string{"compat", "ueb"}
	speechVoice = []string{"alloy", "ash", "ballad", "coral", "echo", "fable", "onyx", "nova", "sage", "shimmer", "verse"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("server.max_upload_bytes must be > 0 (got %d)", c.Server.MaxUploadBytes)
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Summarizer.validate(); err != nil {
		return fmt.Errorf("summarizer: %w", err)
	}
	if err := c.Speech.validate(c.Summarizer.OpenAIAPIKey); err != nil {
		return fmt.Errorf("speech: %w", err)
	}
	if err := c.Braille.validate(); err != nil {
		return fmt.Errorf("braille: %w", err)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be > 0 (got %d)", c.RateLimit.RequestsPerMin)
	}
	if c.Storage.RetentionDays < 1 {
		return fmt.Errorf("storage.retention_days must be >= 1 (got %d)", c.Storage.RetentionDays)
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required when redis is enabled")
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	if strings.TrimSpace(d.DSN) == "" {
		return fmt.Errorf("dsn is required")
	}
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be in 0..max_conns (got %d)", d.MinConns)
	}
	return nil
}

func (l *LogConfig) validate() error {
	if !slices.Contains(logLevels, strings.ToLower(l.Level)) {
		return fmt.Errorf("level must be one of %v (got %q)", logLevels, l.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(l.Format)) {
		return fmt.Errorf("format must be one of %v (got %q)", logFormats, l.Format)
	}
	return nil
}

func (s *SummarizerConfig) validate() error {
	if !slices.Contains(providers, s.Provider) {
		return fmt.Errorf("provider must be one of %v (got %q)", providers, s.Provider)
	}
	if s.Model == "" {
		return fmt.Errorf("model is required")
	}
	switch s.Provider {
	case ProviderAnthropic:
		if s.AnthropicAPIKey == "" {
			return fmt.Errorf("anthropic_api_key is required for provider %q", s.Provider)
		}
	case ProviderOpenAI:
		if s.OpenAIAPIKey == "" {
			return fmt.Errorf("openai_api_key is required for provider %q", s.Provider)
		}
	}
	if s.Temperature < 0 || s.Temperature > 1 {
		return fmt.Errorf("temperature must be in 0..1 (got %v)", s.Temperature)
	}
	if s.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", s.MaxTokens)
	}
	if s.MaxInputChars <= 0 {
		return fmt.Errorf("max_input_chars must be > 0 (got %d)", s.MaxInputChars)
	}
	return nil
}

// validate fills APIKey from the summarizer's OpenAI key when unset, so a
// single OPENAI_API_KEY serves both.
func (s *SpeechConfig) validate(openAIKey string) error {
	if !s.Enabled {
		return nil
	}
	if s.APIKey == "" {
		s.APIKey = openAIKey
	}
	if s.APIKey == "" {
		return fmt.Errorf("api_key is required when speech is enabled")
	}
	if !slices.Contains(speechVoice, s.Voice) {
		return fmt.Errorf("voice must be one of %v (got %q)", speechVoice, s.Voice)
	}
	return nil
}

func (b *BrailleConfig) validate() error {
	if !slices.Contains(schemes, strings.ToLower(b.Scheme)) {
		return fmt.Errorf("scheme must be one of %v (got %q)", schemes, b.Scheme)
	}
	if b.FontSize <= 0 {
		return fmt.Errorf("font_size must be > 0 (got %v)", b.FontSize)
	}
	if b.LineHeight <= 0 {
		return fmt.Errorf("line_height must be > 0 (got %v)", b.LineHeight)
	}
	if b.Margin < 0 {
		return fmt.Errorf("margin must be >= 0 (got %v)", b.Margin)
	}
	if b.FontPath != "" {
		if _, err := os.Stat(b.FontPath); err != nil {
			return fmt.Errorf("font_path: %w", err)
		}
	}
	return nil
}
