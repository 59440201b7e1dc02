// Package markdown turns content files into parsed documents: front matter
// extraction, goldmark HTML rendering, and heading/TOC derivation.
package markdown
