package content

import "testing"

func TestSlugFromFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"My Cool Article!.md", "my-cool-article"},
		{"articles/advanced/Deep Dive.md", "deep-dive"},
		{"already-a-slug.md", "already-a-slug"},
		{"Spaces   and---dashes.mdx", "spaces-and-dashes"},
		{"Ünïcode Stripped.md", "ncode-stripped"},
		{"___.md", ""},
	}

	for _, tc := range cases {
		if got := SlugFromFilename(tc.in); got != tc.want {
			t.Fatalf("SlugFromFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlugFromFilenameIdempotent(t *testing.T) {
	for _, in := range []string{"My Cool Article!.md", "plain.md", "a b c.md"} {
		first := SlugFromFilename(in)
		if second := SlugFromFilename(first + ".md"); second != first {
			t.Fatalf("not idempotent for %q: %q then %q", in, first, second)
		}
	}
}

func TestSlugFromTitle(t *testing.T) {
	if got := SlugFromTitle("Reading Lists & You"); got != "reading-lists-you" {
		t.Fatalf("SlugFromTitle = %q", got)
	}
}

func TestIsValidSlug(t *testing.T) {
	if !IsValidSlug("my-cool-article") {
		t.Fatal("expected valid slug")
	}
	if IsValidSlug("Not A Slug!") {
		t.Fatal("expected invalid slug")
	}
}
