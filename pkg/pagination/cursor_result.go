package pagination

// CursorResult represents a cursor-based paginated result
// Generic type T allows reuse across different entity types
type CursorResult[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *string `json:"next_cursor,omitempty"`
	HasMore    bool    `json:"has_more"`
}

// NewCursorResult creates a new cursor-based result. Backends trim
// their own size+1 overfetch, so items arrive already page-sized.
func NewCursorResult[T any](items []T, nextCursor *string, hasMore bool) *CursorResult[T] {
	return &CursorResult[T]{
		Items:      items,
		NextCursor: nextCursor,
		HasMore:    hasMore,
	}
}
