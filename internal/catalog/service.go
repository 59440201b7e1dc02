package catalog

import (
	"context"
	"errors"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-sitecontent/content"
	"github.com/goliatone/go-sitecontent/internal/logging"
	"github.com/goliatone/go-sitecontent/internal/markdown"
	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

// Config controls how the catalog scans the content store.
type Config struct {
	// BasePath is the content root; collections are its immediate
	// sub-directories (e.g. "articles", "applications").
	BasePath string
	// Pattern optionally restricts candidate files (defaults to the
	// recognized content extensions).
	Pattern string
}

// Service resolves content records from the filesystem on every call. There
// is no persistent cache: results are derived state, safe to rebuild per
// request. Wrap with CachedService when a deployment needs otherwise.
type Service struct {
	cfg    Config
	md     *markdown.Service
	logger interfaces.Logger
}

var _ content.Service = (*Service)(nil)

// Option configures the service at construction time.
type Option func(*Service)

// WithLogger attaches a module logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService builds a catalog service over the supplied markdown service.
func NewService(cfg Config, md *markdown.Service, opts ...Option) *Service {
	svc := &Service{
		cfg:    cfg,
		md:     md,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(svc)
		}
	}
	return svc
}

// List returns every record in the collection sorted by date descending.
// Records whose dates cannot be parsed sort last; ties keep directory scan
// order. A missing collection directory yields an empty list.
func (s *Service) List(ctx context.Context, collection string) ([]content.Record, error) {
	collection = strings.TrimSpace(collection)
	if collection == "" {
		return nil, content.ErrCollectionRequired
	}

	results, err := s.md.Loader().LoadDirectory(ctx, collection, markdown.LoadParams{
		Pattern:   s.cfg.Pattern,
		Recursive: boolPtr(true),
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("collection directory missing, returning empty list", "collection", collection)
			return []content.Record{}, nil
		}
		return nil, err
	}

	records := make([]content.Record, 0, len(results))
	for _, result := range results {
		category := markdown.CategoryOf(collection, result.Path)
		if result.Err != nil {
			s.logger.Warn("content file failed to parse", "path", result.Path, "error", result.Err)
			records = append(records, errorRecord(result.Path, category, result.Err))
			continue
		}
		records = append(records, buildRecord(result.Document, category))
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SortDate.After(records[j].SortDate)
	})

	s.logger.Debug("listed collection", "collection", collection, "records", len(records))
	return records, nil
}

// GetBySlug resolves a record inside a category partition. The category is a
// hard scope: a slug that only exists under a different category is reported
// as not found.
func (s *Service) GetBySlug(ctx context.Context, collection, category, slug string) (*content.Record, error) {
	collection = strings.TrimSpace(collection)
	if collection == "" {
		return nil, content.ErrCollectionRequired
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, content.ErrSlugRequired
	}

	dir := collection
	if category = strings.TrimSpace(category); category != "" {
		dir = path.Join(collection, category)
	}

	results, err := s.md.Loader().LoadDirectory(ctx, dir, markdown.LoadParams{
		Pattern:   s.cfg.Pattern,
		Recursive: boolPtr(false),
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &content.NotFoundError{Resource: "content", Key: slug}
		}
		return nil, err
	}

	for _, result := range results {
		if content.SlugFromFilename(result.Path) != slug {
			continue
		}
		if result.Err != nil {
			record := errorRecord(result.Path, category, result.Err)
			return &record, nil
		}
		record := buildRecord(result.Document, category)
		return &record, nil
	}

	return nil, &content.NotFoundError{Resource: "content", Key: slug}
}

// FindBySlug searches the whole collection tree for the first file whose
// derived slug matches. Component artifacts (MDX-style files with module
// syntax) are skipped so implementation files never serve as articles.
func (s *Service) FindBySlug(ctx context.Context, collection, slug string) (*content.Record, error) {
	collection = strings.TrimSpace(collection)
	if collection == "" {
		return nil, content.ErrCollectionRequired
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, content.ErrSlugRequired
	}

	results, err := s.md.Loader().LoadDirectory(ctx, collection, markdown.LoadParams{
		Pattern:   s.cfg.Pattern,
		Recursive: boolPtr(true),
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &content.NotFoundError{Resource: "content", Key: slug}
		}
		return nil, err
	}

	for _, result := range results {
		if content.SlugFromFilename(result.Path) != slug {
			continue
		}
		category := markdown.CategoryOf(collection, result.Path)
		if result.Err != nil {
			record := errorRecord(result.Path, category, result.Err)
			return &record, nil
		}
		if isComponentArtifact(result.Document.Body) {
			s.logger.Debug("skipping component artifact", "path", result.Path)
			continue
		}
		record := buildRecord(result.Document, category)
		return &record, nil
	}

	return nil, &content.NotFoundError{Resource: "content", Key: slug}
}

// Adjacent reports the records surrounding slug in the collection's sort
// order. An absent slug yields empty adjacency, not an error.
func (s *Service) Adjacent(ctx context.Context, collection, slug string) (content.Adjacency, error) {
	records, err := s.List(ctx, collection)
	if err != nil {
		return content.Adjacency{}, err
	}
	return content.Adjacent(records, slug), nil
}

func boolPtr(value bool) *bool {
	return &value
}
