package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrStorageProviderUnknown = errors.New("menu config: storage provider is invalid")
var ErrStorageDriverUnknown = errors.New("menu config: storage driver is invalid")
var ErrStorageDSNRequired = errors.New("menu config: storage DSN is required for the bun provider")
var ErrSessionCredentialsRequired = errors.New("menu config: admin credentials are required when the session feature is enabled")
var ErrTranslationTimeoutInvalid = errors.New("menu config: translation timeout must be zero or positive")
var ErrLoggingProviderRequired = errors.New("menu config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("menu config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("menu config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("menu config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the menu module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled         bool
	DefaultLanguage string
	Storage         StorageConfig
	Cache           CacheConfig
	Translation     TranslationConfig
	Session         SessionConfig
	Features        Features
	Logging         LoggingConfig
}

// StorageConfig selects the durable store for the catalog document.
// Provider "memory" keeps everything in process; "bun" persists through a
// SQL database selected by Driver/DSN.
type StorageConfig struct {
	Provider  string
	Driver    string
	DSN       string
	Namespace string
}

// CacheConfig captures read-through cache behaviour for the bun provider.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// TranslationConfig wires the AI translation gateway. The gateway is active
// only when Features.Translation is set and an API key is present.
type TranslationConfig struct {
	APIKey   string
	Model    string
	Endpoint string
	Timeout  time.Duration
}

// SessionConfig holds the single admin credential pair.
type SessionConfig struct {
	Username string
	Password string
}

// Features toggles module functionality.
type Features struct {
	Translation bool
	Session     bool
	Logger      bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults: in-memory storage, translation
// disabled until a credential is supplied, logging through go-logger.
func DefaultConfig() Config {
	return Config{
		Enabled:         true,
		DefaultLanguage: "en",
		Storage: StorageConfig{
			Provider:  "memory",
			Driver:    "sqlite",
			Namespace: "crystal_plaza_menu_data",
		},
		Cache: CacheConfig{
			Enabled:    false,
			DefaultTTL: time.Minute,
		},
		Translation: TranslationConfig{
			Model:   "gemini-3-flash-preview",
			Timeout: 30 * time.Second,
		},
		Session:  SessionConfig{},
		Features: Features{},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	switch normalize(cfg.Storage.Provider) {
	case "", "memory":
	case "bun":
		switch normalize(cfg.Storage.Driver) {
		case "sqlite", "postgres":
		default:
			return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, cfg.Storage.Driver)
		}
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	default:
		return fmt.Errorf("%w: %s", ErrStorageProviderUnknown, cfg.Storage.Provider)
	}

	if cfg.Features.Session {
		if strings.TrimSpace(cfg.Session.Username) == "" || strings.TrimSpace(cfg.Session.Password) == "" {
			return ErrSessionCredentialsRequired
		}
	}

	if cfg.Translation.Timeout < 0 {
		return ErrTranslationTimeoutInvalid
	}

	if cfg.Features.Logger {
		provider := normalize(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if provider != "gologger" {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
