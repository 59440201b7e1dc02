package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-sitecontent/content"
	"github.com/goliatone/go-sitecontent/internal/catalog"
	"github.com/goliatone/go-sitecontent/internal/markdown"
)

func writeContent(t *testing.T, root, rel, body string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func newTestServer(t *testing.T, root string, opts ...Option) *httptest.Server {
	t.Helper()

	md, err := markdown.NewService(markdown.Config{BasePath: root, Recursive: true}, nil)
	if err != nil {
		t.Fatalf("markdown.NewService: %v", err)
	}
	svc := catalog.NewService(catalog.Config{BasePath: root}, md)

	options := append([]Option{
		WithCatalog(svc),
		WithMarkdownService(md),
	}, opts...)

	api := NewContentAPI(options...)
	mux := http.NewServeMux()
	if err := api.Register(mux); err != nil {
		t.Fatalf("Register: %v", err)
	}

	server := httptest.NewServer(RequestID(mux))
	t.Cleanup(server.Close)
	return server
}

func seedTutorials(t *testing.T, root string) {
	t.Helper()
	writeContent(t, root, "tutorials/newest.md", `---
title: Newest
date: 2024-03-01
---

# Newest

## Setup

Body.
`)
	writeContent(t, root, "tutorials/oldest.md", `---
title: Oldest
date: 2024-01-01
---

Body.
`)
	writeContent(t, root, "tutorials/advanced/deep.md", `---
title: Deep
date: 2024-02-01
---

Body.
`)
}

func getJSON(t *testing.T, server *httptest.Server, path string, out any) *http.Response {
	t.Helper()
	resp, err := server.Client().Get(server.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
	return resp
}

func TestListEndpoint(t *testing.T) {
	root := t.TempDir()
	seedTutorials(t, root)
	server := newTestServer(t, root)

	var payload struct {
		Articles []content.Record `json:"articles"`
		Featured *content.Record  `json:"featured"`
	}
	resp := getJSON(t, server, "/api/tutorials", &payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	if len(payload.Articles) != 3 {
		t.Fatalf("got %d articles, want 3", len(payload.Articles))
	}
	if payload.Articles[0].Title != "Newest" {
		t.Fatalf("articles[0] = %q, want newest first", payload.Articles[0].Title)
	}
	if payload.Featured == nil || payload.Featured.Slug != "newest" {
		t.Fatalf("featured = %+v", payload.Featured)
	}
	if resp.Header.Get("X-Request-Id") == "" {
		t.Fatal("X-Request-Id header missing")
	}
}

func TestListEmptyCollection(t *testing.T) {
	server := newTestServer(t, t.TempDir())

	var payload struct {
		Articles []content.Record `json:"articles"`
		Featured *content.Record  `json:"featured"`
	}
	resp := getJSON(t, server, "/api/tutorials", &payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if len(payload.Articles) != 0 || payload.Featured != nil {
		t.Fatalf("payload = %+v, want empty", payload)
	}
}

func TestDetailEndpoint(t *testing.T) {
	root := t.TempDir()
	seedTutorials(t, root)
	server := newTestServer(t, root)

	var payload struct {
		Tutorial *content.Record `json:"tutorial"`
	}
	resp := getJSON(t, server, "/api/tutorials?slug=deep", &payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if payload.Tutorial == nil || payload.Tutorial.Title != "Deep" {
		t.Fatalf("tutorial = %+v", payload.Tutorial)
	}
	if payload.Tutorial.ContentHTML != "" {
		t.Fatal("contentHTML should be empty without render=true")
	}
}

func TestDetailRendersHTML(t *testing.T) {
	root := t.TempDir()
	seedTutorials(t, root)
	server := newTestServer(t, root)

	var payload struct {
		Tutorial *content.Record `json:"tutorial"`
	}
	getJSON(t, server, "/api/tutorials?slug=newest&render=true", &payload)
	if payload.Tutorial == nil || !strings.Contains(payload.Tutorial.ContentHTML, "<h1") {
		t.Fatalf("tutorial = %+v", payload.Tutorial)
	}
}

func TestDetailCategoryScope(t *testing.T) {
	root := t.TempDir()
	seedTutorials(t, root)
	server := newTestServer(t, root)

	resp := getJSON(t, server, "/api/tutorials?slug=deep&category=advanced", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	// Wrong category scope is a miss even though the slug exists elsewhere.
	var errPayload struct {
		Error string `json:"error"`
	}
	resp = getJSON(t, server, "/api/tutorials?slug=deep&category=basics", &errPayload)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if errPayload.Error != "not_found" {
		t.Fatalf("error = %q", errPayload.Error)
	}
}

func TestDetailInvalidSlug(t *testing.T) {
	root := t.TempDir()
	seedTutorials(t, root)
	server := newTestServer(t, root)

	resp := getJSON(t, server, "/api/tutorials?slug=Not%20A%20Slug%21", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestDetailMissingSlug(t *testing.T) {
	root := t.TempDir()
	seedTutorials(t, root)
	server := newTestServer(t, root)

	var errPayload struct {
		Error string `json:"error"`
	}
	resp := getJSON(t, server, "/api/tutorials?slug=nope", &errPayload)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestCollectionAllowlist(t *testing.T) {
	root := t.TempDir()
	seedTutorials(t, root)
	server := newTestServer(t, root, WithCollections("tutorials"))

	resp := getJSON(t, server, "/api/tutorials", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	resp = getJSON(t, server, "/api/secrets", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 for unknown collection", resp.StatusCode)
	}
}

func TestHeadingsEndpoint(t *testing.T) {
	root := t.TempDir()
	seedTutorials(t, root)
	server := newTestServer(t, root)

	var payload struct {
		Headings []content.Heading `json:"headings"`
	}
	resp := getJSON(t, server, "/api/tutorials/newest/headings", &payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if len(payload.Headings) != 2 {
		t.Fatalf("headings = %+v, want 2 entries", payload.Headings)
	}
	if payload.Headings[0].ID != "newest" || payload.Headings[1].ID != "setup" {
		t.Fatalf("headings = %+v", payload.Headings)
	}
}

func TestAdjacentEndpoint(t *testing.T) {
	root := t.TempDir()
	seedTutorials(t, root)
	server := newTestServer(t, root)

	var payload content.Adjacency
	resp := getJSON(t, server, "/api/tutorials/deep/adjacent", &payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if payload.Previous == nil || payload.Previous.Slug != "newest" {
		t.Fatalf("previous = %+v", payload.Previous)
	}
	if payload.Next == nil || payload.Next.Slug != "oldest" {
		t.Fatalf("next = %+v", payload.Next)
	}
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t, t.TempDir())

	var payload map[string]string
	resp := getJSON(t, server, "/healthz", &payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if payload["status"] != "ok" {
		t.Fatalf("payload = %+v", payload)
	}
}
