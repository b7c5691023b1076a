// Package config reads server configuration from the environment.
// A .env file in the working directory is loaded first when present;
// variables already set in the process environment take precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort             = 3000
	defaultCORSOrigin       = "*"
	defaultSlackTimeout     = 10 * time.Second
	defaultContactRateLimit = 30
)

// Config holds every setting the server reads at startup.
type Config struct {
	Port       int
	CORSOrigin string

	LogLevel  string
	LogFormat string

	// DatabaseURL selects the Postgres contact store. Empty keeps
	// submissions in memory for the lifetime of the process.
	DatabaseURL string

	// ContentFile optionally replaces the embedded site content.
	ContentFile string

	// ContactRateLimit is the number of contact submissions allowed per
	// client IP per minute. Zero disables the limiter.
	ContactRateLimit int

	Slack SlackConfig
	Wix   WixConfig
}

// SlackConfig configures the contact notification webhook.
type SlackConfig struct {
	WebhookURL string
	Timeout    time.Duration
}

// Enabled reports whether a webhook URL is set.
func (c SlackConfig) Enabled() bool {
	return c.WebhookURL != ""
}

// WixConfig holds Wix API credentials.
type WixConfig struct {
	APIKey     string
	APIToken   string
	SiteID     string
	AccountID  string
	DomainName string
}

// Configured reports whether both the API key and token are present.
func (c WixConfig) Configured() bool {
	return c.APIKey != "" && c.APIToken != ""
}

// Load reads .env (if any) and the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config using getenv as the variable source.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:             defaultPort,
		CORSOrigin:       firstNonEmpty(getenv("CORS_ORIGIN"), getenv("FRONTEND_URL"), defaultCORSOrigin),
		LogLevel:         getenv("LOG_LEVEL"),
		LogFormat:        getenv("LOG_FORMAT"),
		DatabaseURL:      getenv("DATABASE_URL"),
		ContentFile:      getenv("CONTENT_FILE"),
		ContactRateLimit: defaultContactRateLimit,
		Slack: SlackConfig{
			WebhookURL: getenv("SLACK_WEBHOOK_URL"),
			Timeout:    defaultSlackTimeout,
		},
		Wix: WixConfig{
			APIKey:     getenv("WIX_API_KEY"),
			APIToken:   getenv("WIX_API_TOKEN"),
			SiteID:     getenv("WIX_SITE_ID"),
			AccountID:  getenv("WIX_ACCOUNT_ID"),
			DomainName: getenv("DOMAIN_NAME"),
		},
	}

	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: PORT: %w", err)
		}
		cfg.Port = port
	}
	if v := getenv("SLACK_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: SLACK_TIMEOUT: %w", err)
		}
		cfg.Slack.Timeout = d
	}
	if v := getenv("CONTACT_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: CONTACT_RATE_LIMIT: %w", err)
		}
		cfg.ContactRateLimit = n
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: PORT out of range: %d", c.Port)
	}
	if c.ContactRateLimit < 0 {
		return errors.New("config: CONTACT_RATE_LIMIT must not be negative")
	}
	if c.Slack.Timeout < 0 {
		return errors.New("config: SLACK_TIMEOUT must not be negative")
	}
	return nil
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
