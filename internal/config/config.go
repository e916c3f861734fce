package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	Storage    StorageConfig    `yaml:"storage"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Speech     SpeechConfig     `yaml:"speech"`
	Braille    BrailleConfig    `yaml:"braille"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// MaxUploadBytes caps the size of an uploaded PDF. Default 50 MiB.
	MaxUploadBytes int64 `yaml:"max_upload_bytes" env:"SERVER_MAX_UPLOAD_BYTES" env-default:"52428800"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"`
	// ApplicationName is reported to Postgres and shows up in pg_stat_activity.
	ApplicationName   string        `yaml:"application_name"    env:"DATABASE_APPLICATION_NAME"    env-default:"echovision"`
	HealthCheckPeriod time.Duration `yaml:"health_check_period" env:"DATABASE_HEALTH_CHECK_PERIOD" env-default:"1m"`
}

// RedisConfig holds summary cache settings. The cache is optional.
type RedisConfig struct {
	Enabled    bool          `yaml:"enabled"     env:"REDIS_ENABLED"     env-default:"false"`
	Addr       string        `yaml:"addr"        env:"REDIS_ADDR"        env-default:"localhost:6379"`
	Password   string        `yaml:"password"    env:"REDIS_PASSWORD"`
	DB         int           `yaml:"db"          env:"REDIS_DB"          env-default:"0"`
	SummaryTTL time.Duration `yaml:"summary_ttl" env:"REDIS_SUMMARY_TTL" env-default:"168h"`
}

// StorageConfig holds local directories for uploaded PDFs and generated audio.
type StorageConfig struct {
	UploadDir string `yaml:"upload_dir" env:"STORAGE_UPLOAD_DIR" env-default:"uploads"`
	AudioDir  string `yaml:"audio_dir"  env:"STORAGE_AUDIO_DIR"  env-default:"static/audio"`
	// RetentionDays is how long cmd/cleanup keeps documents and their files.
	RetentionDays int `yaml:"retention_days" env:"STORAGE_RETENTION_DAYS" env-default:"30"`
}

// SummarizerConfig selects and configures the text summarization model.
type SummarizerConfig struct {
	Provider        string        `yaml:"provider"          env:"SUMMARIZER_PROVIDER"          env-default:"anthropic"`
	Model           string        `yaml:"model"             env:"SUMMARIZER_MODEL"             env-default:"claude-3-5-haiku-latest"`
	AnthropicAPIKey string        `yaml:"anthropic_api_key" env:"ANTHROPIC_API_KEY"`
	OpenAIAPIKey    string        `yaml:"openai_api_key"    env:"OPENAI_API_KEY"`
	BaseURL         string        `yaml:"base_url"          env:"SUMMARIZER_BASE_URL"`
	Temperature     float64       `yaml:"temperature"       env:"SUMMARIZER_TEMPERATURE"       env-default:"0.5"`
	MaxTokens       int64         `yaml:"max_tokens"        env:"SUMMARIZER_MAX_TOKENS"        env-default:"1024"`
	MaxInputChars   int           `yaml:"max_input_chars"   env:"SUMMARIZER_MAX_INPUT_CHARS"   env-default:"150000"`
	Timeout         time.Duration `yaml:"timeout"           env:"SUMMARIZER_TIMEOUT"           env-default:"60s"`
	MaxRetries      int           `yaml:"max_retries"       env:"SUMMARIZER_MAX_RETRIES"       env-default:"2"`
}

// SpeechConfig configures text-to-speech for the summary.
type SpeechConfig struct {
	Enabled bool          `yaml:"enabled"  env:"SPEECH_ENABLED"`
	Model   string        `yaml:"model"    env:"SPEECH_MODEL"    env-default:"tts-1"`
	Voice   string        `yaml:"voice"    env:"SPEECH_VOICE"    env-default:"alloy"`
	APIKey  string        `yaml:"api_key"  env:"SPEECH_API_KEY"`
	BaseURL string        `yaml:"base_url" env:"SPEECH_BASE_URL"`
	Timeout time.Duration `yaml:"timeout"  env:"SPEECH_TIMEOUT"  env-default:"60s"`
}

// BrailleConfig controls transcoding and the downloadable Braille PDF.
type BrailleConfig struct {
	// Scheme is "compat" (observed glyphs) or "ueb" (unambiguous parentheses).
	Scheme string `yaml:"scheme" env:"BRAILLE_SCHEME" env-default:"compat"`
	// PreserveLayout keeps line breaks of the extracted text in the exported PDF.
	PreserveLayout bool `yaml:"preserve_layout" env:"BRAILLE_PRESERVE_LAYOUT" env-default:"false"`
	// FontPath points at a TTF covering U+2800-U+28FF. Empty uses the embedded font.
	FontPath   string  `yaml:"font_path"   env:"BRAILLE_FONT_PATH"`
	FontSize   float64 `yaml:"font_size"   env:"BRAILLE_FONT_SIZE"   env-default:"12"`
	LineHeight float64 `yaml:"line_height" env:"BRAILLE_LINE_HEIGHT" env-default:"10"`
	Margin     float64 `yaml:"margin"      env:"BRAILLE_MARGIN"      env-default:"10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds the per-IP token bucket for expensive endpoints.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"`
	RequestsPerMin  int           `yaml:"requests_per_min" env:"RATE_LIMIT_REQUESTS_PER_MIN" env-default:"10"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// defaults returns a Config with the switches that are on unless turned off.
// env-default cannot express these: cleanenv treats an explicit false as unset.
func defaults() Config {
	var c Config
	c.Database.AutoMigrate = true
	c.Speech.Enabled = true
	c.RateLimit.Enabled = true
	return c
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
