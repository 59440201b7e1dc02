package markdown

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

// ParseFrontMatter extracts metadata and Markdown body content from the
// provided source bytes. It returns the structured front matter, the Markdown
// body without delimiters, and any error encountered. When no front matter
// block is present, the metadata is empty and the body is the entire input.
//
// Recognized keys match case-insensitively: `Title:` and `title:` both
// populate the Title field. Unrecognized keys are preserved in Custom.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta interfaces.FrontMatter

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	if meta.Custom == nil {
		meta.Custom = map[string]any{}
	}
	promoteRecognizedKeys(&meta)
	if meta.Keywords == nil {
		meta.Keywords = interfaces.StringList{}
	}

	return meta, body, nil
}

// promoteRecognizedKeys folds case variants of the recognized keys out of
// Custom into the typed fields. The YAML decoder only matches exact
// lowercase keys, so `Title:` initially lands in Custom.
func promoteRecognizedKeys(meta *interfaces.FrontMatter) {
	for key, value := range meta.Custom {
		target := stringTarget(meta, strings.ToLower(key))
		if target != nil {
			if *target == "" {
				*target = stringValue(value)
			}
			delete(meta.Custom, key)
			continue
		}
		if strings.ToLower(key) == "keywords" && key != "keywords" {
			if len(meta.Keywords) == 0 {
				meta.Keywords = keywordValues(value)
			}
			delete(meta.Custom, key)
		}
	}
}

func stringTarget(meta *interfaces.FrontMatter, key string) *string {
	switch key {
	case "title":
		return &meta.Title
	case "author":
		return &meta.Author
	case "description":
		return &meta.Description
	case "date":
		return &meta.Date
	case "difficulty":
		return &meta.Difficulty
	case "label":
		return &meta.Label
	case "estimatedtime":
		return &meta.EstimatedTime
	case "image":
		return &meta.Image
	default:
		return nil
	}
}

func stringValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case time.Time:
		// Plain YAML dates resolve to timestamps; keep the compact form
		// when no time component is present.
		if v.Equal(v.Truncate(24 * time.Hour)) {
			return v.Format("2006-01-02")
		}
		return v.Format(time.RFC3339)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func keywordValues(value any) interfaces.StringList {
	switch v := value.(type) {
	case string:
		return interfaces.SplitList(v)
	case []any:
		out := make(interfaces.StringList, 0, len(v))
		for _, item := range v {
			if trimmed := strings.TrimSpace(stringValue(item)); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	default:
		return interfaces.StringList{}
	}
}

// BuildDocument assembles an interfaces.Document from the supplied file path,
// raw content, and modification time. BodyHTML is intentionally left empty so
// callers can render lazily.
func BuildDocument(path string, source []byte, modified time.Time) (*interfaces.Document, error) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	return &interfaces.Document{
		FilePath:     path,
		FrontMatter:  meta,
		Body:         body,
		LastModified: modified,
	}, nil
}
