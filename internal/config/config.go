package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	GeminiAPIKey     string `env:"GEMINI_API_KEY"`
	GeminiBaseURL    string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	GeminiAPIVersion string `env:"GEMINI_API_VERSION" envDefault:"v1beta"`

	WebAddr  string `env:"WEB_ADDR" envDefault:":8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	PreferIPv4 bool `env:"PREFER_IPV4" envDefault:"true"`

	HTTPTimeout    time.Duration `env:"HTTP_TIMEOUT" envDefault:"180s"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"240s"`
	MaxConcurrent  int           `env:"MAX_CONCURRENT" envDefault:"4"`

	StorageURL    string `env:"STORAGE_URL"`
	StorageKey    string `env:"STORAGE_KEY"`
	StorageBucket string `env:"STORAGE_BUCKET" envDefault:"stickers"`

	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`
	LocalStoreDir string `env:"LOCAL_STORE_DIR" envDefault:"public"`

	WebhookURL        string `env:"WEBHOOK_URL"`
	WebhookAuthHeader string `env:"WEBHOOK_AUTH_HEADER"`
	WebhookAuthValue  string `env:"WEBHOOK_AUTH_VALUE"`

	SMTPHost string `env:"SMTP_HOST"`
	SMTPPort int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`
	SMTPFrom string `env:"SMTP_FROM"`

	FramePath string `env:"FRAME_PATH" envDefault:"assets/frame.png"`

	SessionTTL  time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	JanitorSpec string        `env:"JANITOR_SPEC" envDefault:"*/5 * * * *"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.GeminiAPIKey = strings.TrimSpace(cfg.GeminiAPIKey)
	cfg.GeminiBaseURL = strings.TrimRight(strings.TrimSpace(cfg.GeminiBaseURL), "/")
	cfg.StorageURL = strings.TrimRight(strings.TrimSpace(cfg.StorageURL), "/")
	cfg.PublicBaseURL = strings.TrimRight(strings.TrimSpace(cfg.PublicBaseURL), "/")
	cfg.WebhookURL = strings.TrimSpace(cfg.WebhookURL)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if cfg.GeminiAPIKey == "" {
		return Config{}, errors.New("GEMINI_API_KEY is required")
	}

	if cfg.MaxConcurrent < 1 {
		cfg.MaxConcurrent = 1
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 180 * time.Second
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 240 * time.Second
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 30 * time.Minute
	}

	return cfg, nil
}

// StorageConfigured reports whether the remote object store can be used.
// When false, composed stickers land in the local public directory instead.
func (c Config) StorageConfigured() bool {
	return c.StorageURL != "" && c.StorageKey != ""
}

func (c Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPFrom != ""
}
