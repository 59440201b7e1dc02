// Package http exposes the public content query API consumed by page
// components: collection listings, slug lookups, headings, and adjacency.
package http
