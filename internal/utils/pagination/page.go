package pagination

const (
	DefaultSize = 10
	MaxSize     = 50
)

// Page is a validated offset/size window over a sorted candidate list.
// Offset pagination (rather than an opaque cursor) because the underlying
// order is recomputed per request from a stable sort: a page is only
// meaningful as a contiguous slice of that order.
type Page struct {
	Offset int
	Size   int
}

// New clamps raw query values into a usable page.
// Negative offsets become 0; a non-positive size falls back to DefaultSize;
// size is capped at MaxSize.
func New(offset, size int) Page {
	if offset < 0 {
		offset = 0
	}
	switch {
	case size <= 0:
		size = DefaultSize
	case size > MaxSize:
		size = MaxSize
	}
	return Page{Offset: offset, Size: size}
}

// Slice returns the [Offset, Offset+Size) window of items, clamped to the
// list bounds. An offset past the end yields an empty (non-nil) slice.
func Slice[T any](items []T, p Page) []T {
	if p.Offset >= len(items) {
		return []T{}
	}
	end := p.Offset + p.Size
	if end > len(items) {
		end = len(items)
	}
	return items[p.Offset:end]
}

// Envelope is the standard paged response payload: the page's items plus
// total-count metadata for the whole sorted list.
type Envelope[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Offset   int   `json:"offset"`
	PageSize int   `json:"page_size"`
}

// Wrap builds an Envelope for the given page of items.
func Wrap[T any](items []T, total int64, p Page) Envelope[T] {
	return Envelope[T]{
		Items:    items,
		Total:    total,
		Offset:   p.Offset,
		PageSize: p.Size,
	}
}
