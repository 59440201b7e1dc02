package interfaces

import (
	"strings"
	"time"
)

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// Implementations should be stateless so a single instance can be shared
// across requests without additional locking.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// Document represents a Markdown file with parsed metadata and content. The
// struct is shared between the interfaces package and internal implementations
// so consumers can depend on a stable contract.
type Document struct {
	FilePath     string
	FrontMatter  FrontMatter
	Body         []byte
	BodyHTML     []byte
	LastModified time.Time
}

// FrontMatter models metadata extracted from content files. Field names map
// onto the recognized keys of the content store; YAML matching is
// case-insensitive, so `Title:` and `title:` resolve to the same field. Keys
// outside the recognized set land in Custom.
type FrontMatter struct {
	Title         string         `yaml:"title" json:"title"`
	Author        string         `yaml:"author" json:"author"`
	Description   string         `yaml:"description" json:"description"`
	Keywords      StringList     `yaml:"keywords" json:"keywords"`
	Date          string         `yaml:"date" json:"date"`
	Difficulty    string         `yaml:"difficulty" json:"difficulty,omitempty"`
	Label         string         `yaml:"label" json:"label,omitempty"`
	EstimatedTime string         `yaml:"estimatedTime" json:"estimatedTime,omitempty"`
	Image         string         `yaml:"image" json:"image,omitempty"`
	Custom        map[string]any `yaml:",inline" json:"custom,omitempty"`
}

// StringList accepts either a YAML sequence or a comma-separated scalar and
// normalizes both to a slice of trimmed strings. Any other shape decodes to
// an empty list rather than failing the document.
type StringList []string

// UnmarshalYAML implements the yaml.v2 unmarshaler contract used by the
// frontmatter decoder.
func (s *StringList) UnmarshalYAML(unmarshal func(any) error) error {
	var seq []string
	if err := unmarshal(&seq); err == nil {
		out := make([]string, 0, len(seq))
		for _, item := range seq {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		*s = out
		return nil
	}

	var scalar string
	if err := unmarshal(&scalar); err == nil {
		*s = SplitList(scalar)
		return nil
	}

	*s = StringList{}
	return nil
}

// SplitList breaks a comma-separated value into trimmed elements, dropping
// empty segments.
func SplitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
