package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/goliatone/go-sitecontent/content"
	"github.com/goliatone/go-sitecontent/internal/logging"
	"github.com/goliatone/go-sitecontent/internal/markdown"
	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

// ContentAPI registers the read-only content endpoints for collection
// listings and slug lookups.
type ContentAPI struct {
	basePath    string
	catalog     content.Service
	md          *markdown.Service
	collections map[string]struct{}
	logger      interfaces.Logger
}

// Option mutates the ContentAPI configuration.
type Option func(*ContentAPI)

// NewContentAPI constructs a ContentAPI instance.
func NewContentAPI(opts ...Option) *ContentAPI {
	api := &ContentAPI{
		basePath: "/api",
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithBasePath overrides the base API path (defaults to "/api").
func WithBasePath(path string) Option {
	return func(api *ContentAPI) {
		if api == nil {
			return
		}
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithCatalog wires the content catalog service.
func WithCatalog(service content.Service) Option {
	return func(api *ContentAPI) {
		if api != nil {
			api.catalog = service
		}
	}
}

// WithMarkdownService wires the renderer used for contentHTML and headings.
func WithMarkdownService(service *markdown.Service) Option {
	return func(api *ContentAPI) {
		if api != nil {
			api.md = service
		}
	}
}

// WithCollections restricts the API to a known set of collections. Requests
// for anything else return not_found instead of leaking directory probing
// into the content store.
func WithCollections(names ...string) Option {
	return func(api *ContentAPI) {
		if api == nil || len(names) == 0 {
			return
		}
		api.collections = make(map[string]struct{}, len(names))
		for _, name := range names {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				api.collections[trimmed] = struct{}{}
			}
		}
	}
}

// WithLogger attaches a module logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(api *ContentAPI) {
		if api != nil && logger != nil {
			api.logger = logger
		}
	}
}

// Register attaches the content endpoints to the provided mux.
func (api *ContentAPI) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}
	if api == nil {
		return fmt.Errorf("http: content api is nil")
	}

	base := joinPath(api.basePath, "")
	mux.HandleFunc("GET "+base+"/{collection}", api.handleCollection)
	mux.HandleFunc("GET "+base+"/{collection}/{slug}/headings", api.handleHeadings)
	mux.HandleFunc("GET "+base+"/{collection}/{slug}/adjacent", api.handleAdjacent)
	mux.HandleFunc("GET /healthz", api.handleHealth)

	return nil
}

// listResponse is the shape listing pages consume. Featured is the newest
// record in the collection and is omitted when the collection is empty.
type listResponse struct {
	Articles []content.Record `json:"articles"`
	Featured *content.Record  `json:"featured,omitempty"`
}

// detailResponse wraps a single record lookup. The field name predates the
// collections split; every detail consumer reads "tutorial" regardless of
// which collection the record came from.
type detailResponse struct {
	Tutorial *content.Record `json:"tutorial"`
}

func (api *ContentAPI) handleCollection(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.catalog == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}

	collection := r.PathValue("collection")
	if !api.knownCollection(collection) {
		writeError(w, content.ErrCollectionUnknown)
		return
	}

	slug := strings.TrimSpace(r.URL.Query().Get("slug"))
	if slug == "" {
		api.handleList(w, r, collection)
		return
	}
	api.handleDetail(w, r, collection, slug)
}

func (api *ContentAPI) handleList(w http.ResponseWriter, r *http.Request, collection string) {
	records, err := api.catalog.List(r.Context(), collection)
	if err != nil {
		api.logger.Error("list collection failed", "collection", collection, "error", err)
		writeError(w, err)
		return
	}

	resp := listResponse{Articles: records}
	if len(records) > 0 {
		resp.Featured = &records[0]
	}
	writeJSON(w, http.StatusOK, resp)
}

func (api *ContentAPI) handleDetail(w http.ResponseWriter, r *http.Request, collection, slug string) {
	if !content.IsValidSlug(slug) {
		writeError(w, content.ErrSlugInvalid)
		return
	}

	var (
		record *content.Record
		err    error
	)
	if category := strings.TrimSpace(r.URL.Query().Get("category")); category != "" {
		record, err = api.catalog.GetBySlug(r.Context(), collection, category, slug)
	} else {
		record, err = api.catalog.FindBySlug(r.Context(), collection, slug)
	}
	if err != nil {
		if !content.IsNotFound(err) {
			api.logger.Error("detail lookup failed", "collection", collection, "slug", slug, "error", err)
		}
		writeError(w, err)
		return
	}

	if parseBoolQuery(r.URL.Query().Get("render"), false) && api.md != nil && !record.IsError {
		html, renderErr := api.md.Render(r.Context(), []byte(record.Content), interfaces.ParseOptions{})
		if renderErr != nil {
			api.logger.Warn("render failed, serving raw content", "slug", slug, "error", renderErr)
		} else {
			record.ContentHTML = string(html)
		}
	}

	writeJSON(w, http.StatusOK, detailResponse{Tutorial: record})
}

func (api *ContentAPI) handleHeadings(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.catalog == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}

	collection := r.PathValue("collection")
	if !api.knownCollection(collection) {
		writeError(w, content.ErrCollectionUnknown)
		return
	}

	record, err := api.catalog.FindBySlug(r.Context(), collection, r.PathValue("slug"))
	if err != nil {
		writeError(w, err)
		return
	}

	headings := markdown.ExtractHeadings([]byte(record.Content))
	if headings == nil {
		headings = []content.Heading{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"headings": headings})
}

func (api *ContentAPI) handleAdjacent(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.catalog == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}

	collection := r.PathValue("collection")
	if !api.knownCollection(collection) {
		writeError(w, content.ErrCollectionUnknown)
		return
	}

	adjacency, err := api.catalog.Adjacent(r.Context(), collection, r.PathValue("slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, adjacency)
}

func (api *ContentAPI) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (api *ContentAPI) knownCollection(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	if len(api.collections) == 0 {
		return true
	}
	_, ok := api.collections[name]
	return ok
}
