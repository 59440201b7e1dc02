package catalog

import (
	"regexp"
	"strings"
)

var moduleSyntaxPattern = regexp.MustCompile(`^\s*(import\s+[\w{].*\bfrom\s+['"]|export\s+(default\s+|const\s+|function\s+))`)

// isComponentArtifact reports whether a document body looks like an MDX/ESM
// component file rather than prose content. Such files live alongside real
// articles in some content trees and must never be served as one.
func isComponentArtifact(body []byte) bool {
	lines := strings.Split(string(body), "\n")
	limit := len(lines)
	if limit > 40 {
		limit = 40
	}
	for _, line := range lines[:limit] {
		if moduleSyntaxPattern.MatchString(line) {
			return true
		}
	}
	return false
}
