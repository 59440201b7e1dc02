package markdown

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

func readFixture(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture %s: %v", path, err)
	}
	return data
}

func TestParseFrontMatter(t *testing.T) {
	data := readFixture(t, "testdata/basic.md")

	fm, body, err := ParseFrontMatter(data)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if fm.Title != "Sample Article" {
		t.Fatalf("FrontMatter Title mismatch, got %q", fm.Title)
	}
	if fm.Author != "Dana Rivers" {
		t.Fatalf("FrontMatter Author mismatch, got %q", fm.Author)
	}
	if len(fm.Keywords) != 2 || fm.Keywords[0] != "content" {
		t.Fatalf("FrontMatter Keywords mismatch: %#v", fm.Keywords)
	}
	if fm.Date != "2024-03-15" {
		t.Fatalf("FrontMatter Date mismatch, got %q", fm.Date)
	}
	if fm.EstimatedTime != "10 min" {
		t.Fatalf("FrontMatter EstimatedTime mismatch, got %q", fm.EstimatedTime)
	}
	if fm.Custom["custom_flag"] != true {
		t.Fatalf("FrontMatter Custom flag missing: %#v", fm.Custom)
	}
	if len(body) == 0 || !strings.Contains(string(body), "# Sample Article") {
		t.Fatalf("Markdown body not returned correctly: %q", string(body))
	}
}

func TestParseFrontMatterCapitalisedKeys(t *testing.T) {
	data := readFixture(t, "testdata/basic.md")

	fm, _, err := ParseFrontMatter(data)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	// Capitalised keys resolve to the typed fields, not Custom.
	if _, ok := fm.Custom["Title"]; ok {
		t.Fatalf("capitalised Title leaked into Custom: %#v", fm.Custom)
	}
	if fm.Difficulty != "Beginner" {
		t.Fatalf("FrontMatter Difficulty mismatch, got %q", fm.Difficulty)
	}
}

func TestParseFrontMatterKeywordsCSV(t *testing.T) {
	data := readFixture(t, "testdata/csv-keywords.md")

	fm, _, err := ParseFrontMatter(data)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	want := []string{"alpha", "beta", "gamma"}
	if len(fm.Keywords) != len(want) {
		t.Fatalf("Keywords = %#v, want %v", fm.Keywords, want)
	}
	for i, keyword := range want {
		if fm.Keywords[i] != keyword {
			t.Fatalf("Keywords[%d] = %q, want %q", i, fm.Keywords[i], keyword)
		}
	}
}

func TestParseFrontMatterBroken(t *testing.T) {
	data := readFixture(t, "testdata/broken.md")

	if _, _, err := ParseFrontMatter(data); err == nil {
		t.Fatal("ParseFrontMatter should fail on malformed metadata")
	}
}

func TestParseFrontMatterWithoutEnvelope(t *testing.T) {
	fm, body, err := ParseFrontMatter([]byte("# Just a heading\n\nBody.\n"))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if fm.Title != "" {
		t.Fatalf("expected empty title, got %q", fm.Title)
	}
	if fm.Custom == nil || fm.Keywords == nil {
		t.Fatal("Custom and Keywords should be initialised")
	}
	if !strings.Contains(string(body), "# Just a heading") {
		t.Fatalf("body not preserved: %q", string(body))
	}
}

func TestBuildDocument(t *testing.T) {
	data := readFixture(t, "testdata/basic.md")
	modified := time.Now().UTC()

	doc, err := BuildDocument("testdata/basic.md", data, modified)
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}

	if doc.FilePath != "testdata/basic.md" {
		t.Fatalf("expected FilePath to be set, got %q", doc.FilePath)
	}
	if doc.LastModified != modified {
		t.Fatal("expected LastModified to equal the provided timestamp")
	}
	if len(doc.Body) == 0 {
		t.Fatal("expected Body to contain markdown content")
	}
	if doc.FrontMatter.Title != "Sample Article" {
		t.Fatalf("FrontMatter Title mismatch, got %q", doc.FrontMatter.Title)
	}
}

func TestGoldmarkParserRendersAnchors(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("## Getting Started\n\n## Getting Started\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	rendered := string(html)
	if !strings.Contains(rendered, `id="getting-started"`) {
		t.Fatalf("first heading anchor missing: %s", rendered)
	}
	if !strings.Contains(rendered, `id="getting-started-2"`) {
		t.Fatalf("duplicate heading anchor not suffixed: %s", rendered)
	}
}
