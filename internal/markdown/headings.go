package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark/ast"

	"github.com/goliatone/go-sitecontent/content"
)

var (
	headingPattern = regexp.MustCompile(`^(#{1,6})[ \t]+(.+)$`)
	anchorStrip    = regexp.MustCompile(`[^a-z0-9\s-]`)
	anchorCollapse = regexp.MustCompile(`[\s-]+`)
)

// ExtractHeadings scans raw Markdown for heading lines and returns one entry
// per heading in document order. Anchor IDs are derived from the heading text;
// repeated text within the same document gets an incrementing numeric suffix
// (base, base-2, base-3, ...). The duplicate counter is scoped to this call,
// so extraction is a pure function of the input.
func ExtractHeadings(body []byte) []content.Heading {
	if len(body) == 0 {
		return nil
	}

	ids := newAnchorIDs()
	var headings []content.Heading
	inFence := false
	fenceMarker := ""

	for _, line := range strings.Split(string(body), "\n") {
		trimmed := strings.TrimSpace(line)

		// Skip fenced code blocks so # lines inside them are not mistaken
		// for headings.
		if marker := fenceDelimiter(trimmed); marker != "" {
			if !inFence {
				inFence = true
				fenceMarker = marker
			} else if marker == fenceMarker {
				inFence = false
			}
			continue
		}
		if inFence {
			continue
		}

		match := headingPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		text := strings.TrimSpace(match[2])
		headings = append(headings, content.Heading{
			ID:    string(ids.Generate([]byte(text), ast.KindHeading)),
			Text:  text,
			Level: len(match[1]),
		})
	}
	return headings
}

func fenceDelimiter(line string) string {
	switch {
	case strings.HasPrefix(line, "```"):
		return "```"
	case strings.HasPrefix(line, "~~~"):
		return "~~~"
	default:
		return ""
	}
}

// anchorID lowercases the text, strips everything outside letters, digits,
// whitespace and hyphens, and collapses separator runs into single hyphens.
func anchorID(text string) string {
	value := strings.ToLower(text)
	value = anchorStrip.ReplaceAllString(value, "")
	value = anchorCollapse.ReplaceAllString(value, "-")
	return strings.Trim(value, "-")
}

// anchorIDs implements goldmark's parser.IDs so rendered heading anchors use
// the same derivation (and the same duplicate suffixes) as ExtractHeadings.
type anchorIDs struct {
	counts map[string]int
}

func newAnchorIDs() *anchorIDs {
	return &anchorIDs{counts: map[string]int{}}
}

func (a *anchorIDs) Generate(value []byte, kind ast.NodeKind) []byte {
	base := anchorID(string(value))
	if base == "" {
		base = "heading"
	}
	a.counts[base]++
	if a.counts[base] > 1 {
		return []byte(fmt.Sprintf("%s-%d", base, a.counts[base]))
	}
	return []byte(base)
}

func (a *anchorIDs) Put(value []byte) {}
