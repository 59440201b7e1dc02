package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateAcceptsTypicalFrontMatter(t *testing.T) {
	v, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	meta := map[string]any{
		"title":       "Deploying With Confidence",
		"author":      "Dana",
		"description": "A rollout checklist",
		"date":        "2024-03-15",
		"keywords":    []any{"deploy", "ops"},
		"difficulty":  "intermediate",
		"customField": map[any]any{"nested": true},
	}

	if err := v.Validate(meta); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestValidateAcceptsKeywordsAsString(t *testing.T) {
	v, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	meta := map[string]any{
		"title":    "Short Note",
		"date":     "2024-01-02",
		"keywords": "go, content, markdown",
	}

	if err := v.Validate(meta); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestValidateReportsMissingRequiredFields(t *testing.T) {
	v, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	err = v.Validate(map[string]any{"author": "Dana"})
	if err == nil {
		t.Fatal("Validate() expected error for missing title and date")
	}
	if !errors.Is(err, ErrInvalidMeta) {
		t.Fatalf("Validate() error = %v, want ErrInvalidMeta", err)
	}

	issues := IssuesOf(err)
	if len(issues) == 0 {
		t.Fatal("IssuesOf() returned no issues")
	}
	combined := err.Error()
	if !strings.Contains(combined, "title") || !strings.Contains(combined, "date") {
		t.Fatalf("error message %q should mention title and date", combined)
	}
}

func TestValidateRejectsWrongTypes(t *testing.T) {
	v, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	err = v.Validate(map[string]any{
		"title":    "Typed",
		"date":     "2024-01-02",
		"keywords": 42,
	})
	if err == nil {
		t.Fatal("Validate() expected error for numeric keywords")
	}

	found := false
	for _, issue := range IssuesOf(err) {
		if strings.Contains(issue.Location, "keywords") {
			found = true
		}
	}
	if !found {
		t.Fatalf("issues %v should reference keywords", IssuesOf(err))
	}
}

func TestValidateTreatsNilAsEmpty(t *testing.T) {
	v, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := v.Validate(nil); err == nil {
		t.Fatal("Validate(nil) expected error for missing required fields")
	}
}
