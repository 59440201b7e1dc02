package sitecontent

import (
	"context"
	"net/http"

	"github.com/goliatone/go-sitecontent/content"
	"github.com/goliatone/go-sitecontent/internal/catalog"
	sitehttp "github.com/goliatone/go-sitecontent/internal/http"
	"github.com/goliatone/go-sitecontent/internal/logging"
	"github.com/goliatone/go-sitecontent/internal/logging/console"
	"github.com/goliatone/go-sitecontent/internal/logging/gologger"
	"github.com/goliatone/go-sitecontent/internal/markdown"
	"github.com/goliatone/go-sitecontent/internal/watch"
	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

// ContentService exports the catalog read contract.
type ContentService = content.Service

// Record exports the catalog record shape.
type Record = content.Record

// Module represents the top level site content runtime façade.
type Module struct {
	cfg      Config
	provider interfaces.LoggerProvider
	md       *markdown.Service
	catalog  content.Service
	cache    *catalog.CachedService
	watcher  *watch.Watcher
	handler  http.Handler
}

// Option overrides a module dependency during construction.
type Option func(*Module)

// WithLoggerProvider replaces the provider derived from the logging config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		if provider != nil {
			m.provider = provider
		}
	}
}

// New constructs a site content module using the provided configuration.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{cfg: cfg}
	for _, opt := range opts {
		opt(m)
	}

	if m.provider == nil {
		provider, err := buildProvider(cfg)
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}

	md, err := markdown.NewService(markdown.Config{
		BasePath:  cfg.Content.BaseDir,
		Pattern:   cfg.Content.Pattern,
		Recursive: true,
		Parser: interfaces.ParseOptions{
			Extensions: cfg.Markdown.Extensions,
			Sanitize:   cfg.Markdown.Sanitize,
			HardWraps:  cfg.Markdown.HardWraps,
			SafeMode:   cfg.Markdown.SafeMode,
		},
	}, nil)
	if err != nil {
		return nil, err
	}
	m.md = md

	service := catalog.NewService(catalog.Config{
		BasePath: cfg.Content.BaseDir,
		Pattern:  cfg.Content.Pattern,
	}, md, catalog.WithLogger(logging.CatalogLogger(m.provider)))
	m.catalog = service

	if cfg.Features.Cache {
		cached := catalog.NewCachedService(service)
		m.cache = cached
		m.catalog = cached
	}

	if cfg.Features.Watch {
		watcher, err := watch.New(cfg.Content.BaseDir, m.cache,
			watch.WithLogger(logging.WatchLogger(m.provider)))
		if err != nil {
			return nil, err
		}
		m.watcher = watcher
	}

	if cfg.Server.Enabled {
		api := sitehttp.NewContentAPI(
			sitehttp.WithBasePath(cfg.Server.BasePath),
			sitehttp.WithCatalog(m.catalog),
			sitehttp.WithMarkdownService(md),
			sitehttp.WithCollections(cfg.Content.Collections...),
			sitehttp.WithLogger(logging.HTTPLogger(m.provider)),
		)
		mux := http.NewServeMux()
		if err := api.Register(mux); err != nil {
			return nil, err
		}
		logger := logging.HTTPLogger(m.provider)
		m.handler = sitehttp.RequestID(sitehttp.RequestLogger(logger, mux))
	}

	return m, nil
}

// Content returns the configured catalog service.
func (m *Module) Content() ContentService {
	return m.catalog
}

// Markdown returns the underlying markdown service.
func (m *Module) Markdown() *markdown.Service {
	return m.md
}

// Handler returns the HTTP query API handler, or nil when the server is disabled.
func (m *Module) Handler() http.Handler {
	return m.handler
}

// LoggerProvider exposes the configured provider for host applications.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	return m.provider
}

// Watch runs the filesystem watcher until ctx is cancelled. It returns
// immediately when the watch feature is disabled.
func (m *Module) Watch(ctx context.Context) error {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Run(ctx)
}

func buildProvider(cfg Config) (interfaces.LoggerProvider, error) {
	if !cfg.Features.Logger {
		return noopProvider{}, nil
	}
	switch cfg.Logging.Provider {
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
	default:
		return console.NewProvider(console.Options{}), nil
	}
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger {
	return logging.NoOp()
}
