package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrContentDirRequired = errors.New("site config: content directory is required")
var ErrCollectionInvalid = errors.New("site config: collection name is invalid")
var ErrWatchRequiresCache = errors.New("site config: watch feature requires cache to be enabled")
var ErrServerAddrRequired = errors.New("site config: server address is required when the server is enabled")
var ErrServerBasePathInvalid = errors.New("site config: server base path must start with /")
var ErrLoggingProviderRequired = errors.New("site config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("site config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("site config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("site config: logging format is invalid")

// Config aggregates feature flags and runtime bindings for the site module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Content  ContentConfig
	Server   ServerConfig
	Markdown MarkdownConfig
	Cache    CacheConfig
	Features Features
	Logging  LoggingConfig
}

// ContentConfig captures filesystem layout for markdown collections.
type ContentConfig struct {
	BaseDir     string
	Collections []string
	Pattern     string
}

// ServerConfig captures the HTTP query API bindings.
type ServerConfig struct {
	Enabled  bool
	Addr     string
	BasePath string
}

// MarkdownConfig mirrors interfaces.ParseOptions for runtime configuration.
type MarkdownConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// CacheConfig captures listing cache behaviour.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// Features toggles module functionality.
type Features struct {
	Cache  bool
	Watch  bool
	Logger bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for a content-backed site.
func DefaultConfig() Config {
	return Config{
		Content: ContentConfig{
			BaseDir:     "content",
			Collections: []string{"tutorials", "blog"},
			Pattern:     "",
		},
		Server: ServerConfig{
			Enabled:  true,
			Addr:     ":8080",
			BasePath: "/api",
		},
		Markdown: MarkdownConfig{
			Extensions: []string{"gfm"},
		},
		Cache: CacheConfig{
			Enabled:    false,
			DefaultTTL: time.Minute,
		},
		Features: Features{
			Logger: true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Content.BaseDir) == "" {
		return ErrContentDirRequired
	}
	for _, collection := range cfg.Content.Collections {
		name := strings.TrimSpace(collection)
		if name == "" || strings.ContainsAny(name, "/\\") || name == "." || name == ".." {
			return fmt.Errorf("%w: %q", ErrCollectionInvalid, collection)
		}
	}
	if cfg.Features.Watch && !cfg.Features.Cache {
		return ErrWatchRequiresCache
	}
	if cfg.Server.Enabled {
		if strings.TrimSpace(cfg.Server.Addr) == "" {
			return ErrServerAddrRequired
		}
		if base := strings.TrimSpace(cfg.Server.BasePath); base != "" && !strings.HasPrefix(base, "/") {
			return fmt.Errorf("%w: %s", ErrServerBasePathInvalid, base)
		}
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
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
