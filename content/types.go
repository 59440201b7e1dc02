package content

import "time"

// Record is the normalized in-memory representation of one content file plus
// its metadata. String fields are never empty-for-nil: a record that fails to
// parse still carries usable title/author/description values so listing
// consumers never have to guard against missing fields.
type Record struct {
	Slug          string   `json:"slug"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Description   string   `json:"description"`
	Keywords      []string `json:"keywords"`
	Date          string   `json:"date"`
	Category      string   `json:"category,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
	EstimatedTime string   `json:"estimatedTime,omitempty"`
	Label         string   `json:"label,omitempty"`
	Image         string   `json:"image,omitempty"`
	Content       string   `json:"content"`
	ContentHTML   string   `json:"contentHTML,omitempty"`
	IsError       bool     `json:"isError,omitempty"`

	// SortDate is the parsed form of Date used for ordering. Unparseable
	// dates collapse to the zero of the Unix epoch so they sort last in the
	// date-descending listing.
	SortDate time.Time `json:"-"`
}

// Summary carries the fields listing and navigation surfaces need without the
// full body text.
type Summary struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Date        string `json:"date,omitempty"`
}

// Summarize projects a record onto its summary form.
func (r Record) Summarize() Summary {
	return Summary{
		Slug:        r.Slug,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Date:        r.Date,
	}
}

// Adjacency names the records surrounding the current one in the collection's
// sort order. Previous is the newer neighbour, Next the older one; either is
// nil at the respective boundary, and both are nil when the current slug is
// not part of the collection.
type Adjacency struct {
	Previous *Summary `json:"previous"`
	Next     *Summary `json:"next"`
}

// Heading is one table-of-contents entry extracted from a document body. ID
// is unique within a document and stable across repeated extractions of the
// same content.
type Heading struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}
