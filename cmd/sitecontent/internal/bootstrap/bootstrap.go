// Package bootstrap shares module construction between the sitecontent CLIs.
package bootstrap

import (
	"fmt"
	"strings"

	sitecontent "github.com/goliatone/go-sitecontent"
	"github.com/goliatone/go-sitecontent/internal/logging"
	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

// Options captures configuration for site content CLI bootstraps.
type Options struct {
	ContentDir     string
	Collections    []string
	Pattern        string
	Addr           string
	BasePath       string
	Serve          bool
	Cache          bool
	Watch          bool
	LogLevel       string
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the site module plus the logger the CLI should use.
type Module struct {
	Module *sitecontent.Module
	Logger interfaces.Logger
}

// BuildModule constructs a site content module from CLI options.
func BuildModule(opts Options) (*Module, error) {
	cfg := sitecontent.DefaultConfig()
	cfg.Content.BaseDir = strings.TrimSpace(opts.ContentDir)
	if cfg.Content.BaseDir == "" {
		cfg.Content.BaseDir = "content"
	}
	if len(opts.Collections) > 0 {
		cfg.Content.Collections = cloneStrings(opts.Collections)
	}
	if trimmed := strings.TrimSpace(opts.Pattern); trimmed != "" {
		cfg.Content.Pattern = trimmed
	}

	cfg.Server.Enabled = opts.Serve
	if trimmed := strings.TrimSpace(opts.Addr); trimmed != "" {
		cfg.Server.Addr = trimmed
	}
	if trimmed := strings.TrimSpace(opts.BasePath); trimmed != "" {
		cfg.Server.BasePath = trimmed
	}

	cfg.Features.Cache = opts.Cache
	cfg.Features.Watch = opts.Watch
	cfg.Cache.Enabled = opts.Cache

	if trimmed := strings.TrimSpace(opts.LogLevel); trimmed != "" {
		cfg.Logging.Level = trimmed
	}

	moduleOpts := []sitecontent.Option{}
	if opts.LoggerProvider != nil {
		moduleOpts = append(moduleOpts, sitecontent.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := sitecontent.New(cfg, moduleOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise site module: %w", err)
	}

	return &Module{
		Module: module,
		Logger: logging.ModuleLogger(module.LoggerProvider(), "site.cli"),
	}, nil
}

// SplitCollections turns a comma separated flag value into a clean slice.
func SplitCollections(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func cloneStrings(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}
