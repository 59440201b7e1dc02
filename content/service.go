package content

import "context"

// Service exposes the content catalog use cases consumed by page components
// and the HTTP layer. Records are built fresh from the content store on every
// call; implementations do not cache unless explicitly wrapped.
type Service interface {
	// List returns every record in the collection sorted by date descending.
	// Ties keep directory scan order. A missing collection directory yields
	// an empty list, not an error.
	List(ctx context.Context, collection string) ([]Record, error)
	// GetBySlug resolves a single record inside a category partition of the
	// collection. Category may be empty for flat collections. A slug that
	// exists only under a different category is still a *NotFoundError.
	GetBySlug(ctx context.Context, collection, category, slug string) (*Record, error)
	// FindBySlug searches the whole collection tree for the first file whose
	// derived slug matches, skipping non-content component files.
	FindBySlug(ctx context.Context, collection, slug string) (*Record, error)
	// Adjacent reports the previous/next records relative to slug in the
	// collection's sort order.
	Adjacent(ctx context.Context, collection, slug string) (Adjacency, error)
}

// Adjacent computes the neighbours of slug within an already ordered record
// list. It is the pure core behind Service.Adjacent; both neighbours are nil
// when slug is absent.
func Adjacent(records []Record, slug string) Adjacency {
	for i, record := range records {
		if record.Slug != slug {
			continue
		}
		var adj Adjacency
		if i > 0 {
			prev := records[i-1].Summarize()
			adj.Previous = &prev
		}
		if i < len(records)-1 {
			next := records[i+1].Summarize()
			adj.Next = &next
		}
		return adj
	}
	return Adjacency{}
}
