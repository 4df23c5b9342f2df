// Package config provides configuration for the lhsite binary.
// Loads from: env vars > lhsite.toml > built-in defaults. A .env file in
// the working directory is folded into the environment first.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all lhsite configuration.
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Content    ContentConfig    `toml:"content"`
	Database   DatabaseConfig   `toml:"database"`
	SMTP       SMTPConfig       `toml:"smtp"`
	Newsletter NewsletterConfig `toml:"newsletter"`
	LogLevel   string           `toml:"log_level"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// ContentConfig locates the markdown content store.
type ContentConfig struct {
	Dir string `toml:"dir"`
}

// DatabaseConfig selects the inquiry store backend. A non-empty URL means
// Postgres; otherwise inquiries land in the local SQLite file.
type DatabaseConfig struct {
	URL        string `toml:"url"`
	SQLitePath string `toml:"sqlite_path"`
}

// SMTPConfig holds transactional-mail settings. An empty Host disables
// outbound mail (sends are logged and succeed).
type SMTPConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
	NotifyTo string `toml:"notify_to"`
}

// NewsletterConfig holds the newsletter provider endpoint. An empty BaseURL
// disables subscriptions (the endpoint reports a provider failure).
type NewsletterConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
}

// DefaultConfig returns a Config with all built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Server:   ServerConfig{Addr: "127.0.0.1:8080"},
		Content:  ContentConfig{Dir: "content"},
		Database: DatabaseConfig{SQLitePath: filepath.Join("data", "lhsite.db")},
		SMTP:     SMTPConfig{Port: 587},
		LogLevel: "info",
	}
}

// Load merges all configuration sources: defaults < TOML file < env vars.
// A missing config file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			meta, err := toml.DecodeFile(path, cfg)
			if err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
			warnUnknownKeys(meta, path)
		}
	}

	if v := os.Getenv("LHSITE_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("LHSITE_CONTENT_DIR"); v != "" {
		cfg.Content.Dir = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("LHSITE_SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.SMTP.Host = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.SMTP.Port = p
		}
	}
	if v := os.Getenv("SMTP_USERNAME"); v != "" {
		cfg.SMTP.Username = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		cfg.SMTP.Password = v
	}
	if v := os.Getenv("SMTP_FROM"); v != "" {
		cfg.SMTP.From = v
	}
	if v := os.Getenv("SMTP_NOTIFY_TO"); v != "" {
		cfg.SMTP.NotifyTo = v
	}
	if v := os.Getenv("NEWSLETTER_BASE_URL"); v != "" {
		cfg.Newsletter.BaseURL = v
	}
	if v := os.Getenv("NEWSLETTER_API_KEY"); v != "" {
		cfg.Newsletter.APIKey = v
	}
	if v := os.Getenv("LHSITE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}

// configSuggestions maps common wrong keys to the correct TOML key name.
var configSuggestions = map[string]string{
	"content_dir": "dir",
	"address":     "addr",
	"dsn":         "url",
	"apikey":      "api_key",
	"api-key":     "api_key",
	"baseurl":     "base_url",
	"base-url":    "base_url",
}

// warnUnknownKeys prints warnings for unrecognized config keys.
func warnUnknownKeys(meta toml.MetaData, configPath string) {
	undecoded := meta.Undecoded()
	if len(undecoded) == 0 {
		return
	}

	fname := filepath.Base(configPath)
	for _, key := range undecoded {
		keyStr := key.String()
		lastPart := key[len(key)-1]

		if suggestion, ok := configSuggestions[lastPart]; ok {
			fmt.Fprintf(os.Stderr, "lhsite: WARNING: unknown key %q in %s — did you mean %q?\n",
				keyStr, fname, suggestion)
		} else {
			fmt.Fprintf(os.Stderr, "lhsite: WARNING: unknown key %q in %s (will be ignored)\n",
				keyStr, fname)
		}
	}
}
