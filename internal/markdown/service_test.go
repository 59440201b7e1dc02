package markdown

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

func newFixtureService(t *testing.T) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	src := readFixture(t, "testdata/basic.md")
	if err := os.WriteFile(filepath.Join(dir, "basic.md"), src, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	svc, err := NewService(Config{BasePath: dir, Recursive: true}, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, dir
}

func TestServiceLoad(t *testing.T) {
	svc, _ := newFixtureService(t)

	doc, err := svc.Load(context.Background(), "basic.md")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.FrontMatter.Title != "Sample Article" {
		t.Fatalf("title = %q", doc.FrontMatter.Title)
	}
	if len(doc.BodyHTML) != 0 {
		t.Fatal("BodyHTML should be empty until rendered")
	}
}

func TestServiceRenderDocument(t *testing.T) {
	svc, _ := newFixtureService(t)

	doc, err := svc.Load(context.Background(), "basic.md")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	html, err := svc.RenderDocument(context.Background(), doc, interfaces.ParseOptions{})
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	if !strings.Contains(string(html), "<h1") {
		t.Fatalf("rendered output missing heading: %s", html)
	}
	if string(doc.BodyHTML) != string(html) {
		t.Fatal("BodyHTML should be stored on the document")
	}
}

func TestServiceRenderAnchorsMatchHeadings(t *testing.T) {
	svc, _ := newFixtureService(t)

	doc, err := svc.Load(context.Background(), "basic.md")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	html, err := svc.RenderDocument(context.Background(), doc, interfaces.ParseOptions{})
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}

	for _, heading := range svc.Headings(doc) {
		if !strings.Contains(string(html), `id="`+heading.ID+`"`) {
			t.Fatalf("rendered HTML missing anchor %q:\n%s", heading.ID, html)
		}
	}
}

func TestServiceHeadingsNilDocument(t *testing.T) {
	svc, _ := newFixtureService(t)
	if headings := svc.Headings(nil); headings != nil {
		t.Fatalf("headings = %+v, want nil", headings)
	}
}

func TestServiceRenderDocumentNil(t *testing.T) {
	svc, _ := newFixtureService(t)
	if _, err := svc.RenderDocument(context.Background(), nil, interfaces.ParseOptions{}); err == nil {
		t.Fatal("RenderDocument(nil) should fail")
	}
}
