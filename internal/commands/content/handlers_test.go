package contentcmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-sitecontent/internal/markdown"
	"github.com/goliatone/go-sitecontent/internal/validation"
)

func writeFile(t *testing.T, root, rel, body string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func TestLintDirectoryReportsFindings(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "guides/clean.md", `---
title: Clean Guide
date: 2024-02-01
---

Body.
`)
	writeFile(t, dir, "guides/missing-date.md", `---
title: No Date Here
---

Body.
`)
	writeFile(t, dir, "guides/broken.md", `---
title: [unterminated
---

Body.
`)

	service, err := markdown.NewService(markdown.Config{BasePath: dir, Recursive: true}, nil)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	checker, err := validation.New()
	if err != nil {
		t.Fatalf("validation.New() error = %v", err)
	}

	var findings []Finding
	handler := NewLintDirectoryHandler(service, checker, nil, func(f Finding) {
		findings = append(findings, f)
	})

	if err := handler.Execute(context.Background(), LintDirectoryCommand{}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(findings) != 3 {
		t.Fatalf("got %d findings, want 3", len(findings))
	}

	byPath := map[string]Finding{}
	for _, f := range findings {
		byPath[f.Path] = f
	}

	if f := byPath["guides/clean.md"]; !f.Clean() {
		t.Fatalf("clean.md should pass, got err=%v issues=%v", f.Err, f.Issues)
	}
	if f := byPath["guides/missing-date.md"]; f.Err != nil || len(f.Issues) == 0 {
		t.Fatalf("missing-date.md should report schema issues, got err=%v issues=%v", f.Err, f.Issues)
	}
	if f := byPath["guides/broken.md"]; f.Err == nil {
		t.Fatalf("broken.md should report a parse error")
	}
}

func TestLintDirectoryScopesToSubtree(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "guides/clean.md", `---
title: Clean Guide
date: 2024-02-01
---

Body.
`)
	writeFile(t, dir, "notes/other.md", `---
title: Other
date: 2024-02-02
---

Body.
`)

	service, err := markdown.NewService(markdown.Config{BasePath: dir, Recursive: true}, nil)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	checker, err := validation.New()
	if err != nil {
		t.Fatalf("validation.New() error = %v", err)
	}

	var findings []Finding
	handler := NewLintDirectoryHandler(service, checker, nil, func(f Finding) {
		findings = append(findings, f)
	})

	if err := handler.Execute(context.Background(), LintDirectoryCommand{Directory: "guides"}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(findings))
	}
	if findings[0].Path != "guides/clean.md" {
		t.Fatalf("finding path = %q", findings[0].Path)
	}
}

func TestLintDirectoryRejectsInvalidMessage(t *testing.T) {
	service, err := markdown.NewService(markdown.Config{BasePath: t.TempDir()}, nil)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	checker, err := validation.New()
	if err != nil {
		t.Fatalf("validation.New() error = %v", err)
	}

	handler := NewLintDirectoryHandler(service, checker, nil, nil)
	if err := handler.Execute(context.Background(), LintDirectoryCommand{Directory: "../escape"}); err == nil {
		t.Fatal("Execute() accepted a path escape")
	}
}
