package catalog

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-sitecontent/content"
	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

// dateLayouts are tried in order when parsing front matter dates. The date is
// only ever parsed for sort ordering; an unrecognized value is not an error,
// it simply sorts last.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"Jan 2, 2006",
	"January 2, 2006",
}

func parseDate(value string) time.Time {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Unix(0, 0).UTC()
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed
		}
	}
	return time.Unix(0, 0).UTC()
}

// buildRecord normalizes a parsed document into a content record. Empty
// metadata stays an empty string rather than nil, and the difficulty/label
// aliases resolve to whichever the author supplied first.
func buildRecord(doc *interfaces.Document, category string) content.Record {
	meta := doc.FrontMatter

	difficulty := strings.TrimSpace(meta.Difficulty)
	label := strings.TrimSpace(meta.Label)
	if difficulty == "" {
		difficulty = label
	}
	if label == "" {
		label = difficulty
	}
	if category == "" {
		category = difficulty
	}

	keywords := []string(meta.Keywords)
	if keywords == nil {
		keywords = []string{}
	}

	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = content.SlugFromFilename(doc.FilePath)
	}

	return content.Record{
		Slug:          content.SlugFromFilename(doc.FilePath),
		Title:         title,
		Author:        strings.TrimSpace(meta.Author),
		Description:   strings.TrimSpace(meta.Description),
		Keywords:      keywords,
		Date:          strings.TrimSpace(meta.Date),
		Category:      category,
		Difficulty:    difficulty,
		EstimatedTime: strings.TrimSpace(meta.EstimatedTime),
		Label:         label,
		Image:         strings.TrimSpace(meta.Image),
		Content:       string(doc.Body),
		SortDate:      parseDate(meta.Date),
	}
}

// errorRecord converts a per-file parse failure into a synthetic record so a
// single bad file never takes down a listing. The record is flagged, carries
// the offending filename in the title, and sorts last (zero date).
func errorRecord(path string, category string, err error) content.Record {
	name := filepath.Base(path)
	return content.Record{
		Slug:        content.SlugFromFilename(path),
		Title:       "Error: " + name,
		Author:      "",
		Description: "This file could not be parsed: " + err.Error(),
		Keywords:    []string{"error"},
		Date:        "",
		Category:    category,
		Content:     "",
		IsError:     true,
		SortDate:    time.Unix(0, 0).UTC(),
	}
}
