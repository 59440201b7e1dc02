package content

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/goliatone/go-slug"
)

// SlugNormalizer exposes the slug normalizer interface.
type SlugNormalizer = slug.Normalizer

// DefaultSlugNormalizer returns the default slug normalizer.
func DefaultSlugNormalizer() SlugNormalizer {
	return slug.Default()
}

// NormalizeSlug applies the default slug normalization rules. Use this for
// author-supplied slugs coming from front matter or request parameters.
func NormalizeSlug(value string) (string, error) {
	return slug.Normalize(value)
}

// IsValidSlug reports whether the slug matches the default rules.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}

var (
	slugStripPattern    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugCollapsePattern = regexp.MustCompile(`[\s-]+`)
)

// SlugFromFilename derives the canonical URL identifier for a content file:
// the extension is stripped, the rest lowercased, characters outside letters,
// digits, whitespace and hyphens removed, and runs of whitespace or hyphens
// collapsed into a single hyphen. The function is idempotent, so a filename
// that is already a slug maps onto itself.
func SlugFromFilename(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	value := strings.ToLower(base)
	value = slugStripPattern.ReplaceAllString(value, "")
	value = slugCollapsePattern.ReplaceAllString(value, "-")
	return strings.Trim(value, "-")
}

// SlugFromTitle derives a slug from a display title using the same rules as
// SlugFromFilename.
func SlugFromTitle(title string) string {
	value := strings.ToLower(title)
	value = slugStripPattern.ReplaceAllString(value, "")
	value = slugCollapsePattern.ReplaceAllString(value, "-")
	return strings.Trim(value, "-")
}
