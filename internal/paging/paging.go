// Package paging windows an ordered sequence into fixed-size pages.
package paging

const (
	// DefaultPageSize is the product listing page size.
	DefaultPageSize = 6
	// MaxVisiblePages bounds the page-number buttons shown at once.
	MaxVisiblePages = 5
)

// TotalPages is ceil(n/size); zero items means zero pages.
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Window returns items[(page-1)*size : page*size], clamped to the slice.
// Pages before the first or past the last yield an empty window.
func Window[T any](items []T, page, size int) []T {
	if page < 1 || size <= 0 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := min(start+size, len(items))
	return items[start:end:end]
}

// PageNumbers lists the page buttons to render: every page when total fits,
// otherwise a MaxVisiblePages-wide window around current, clamped to [1, total].
func PageNumbers(current, total int) []int {
	if total <= 0 {
		return nil
	}
	n := min(total, MaxVisiblePages)
	start := 1
	if total > MaxVisiblePages {
		start = max(1, min(current-MaxVisiblePages/2, total-MaxVisiblePages+1))
	}
	out := make([]int, n)
	for i := range out {
		out[i] = start + i
	}
	return out
}

// Paginator tracks the current page over a sequence.
// It is not safe for concurrent use.
type Paginator[T any] struct {
	items []T
	size  int
	page  int
}

// New starts at page 1. A non-positive size falls back to DefaultPageSize.
func New[T any](items []T, size int) *Paginator[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Paginator[T]{items: items, size: size, page: 1}
}

// Reset swaps the sequence and returns to page 1. Any re-filter or re-sort
// must go through Reset, since old page positions are meaningless afterwards.
func (p *Paginator[T]) Reset(items []T) {
	p.items = items
	p.page = 1
}

func (p *Paginator[T]) Page() int       { return p.page }
func (p *Paginator[T]) PageSize() int   { return p.size }
func (p *Paginator[T]) Len() int        { return len(p.items) }
func (p *Paginator[T]) TotalPages() int { return TotalPages(len(p.items), p.size) }

// Items returns the window for the current page.
func (p *Paginator[T]) Items() []T { return Window(p.items, p.page, p.size) }

// GoToPage moves to page n when 1 <= n <= TotalPages and reports whether it
// did. Out-of-range requests are ignored.
func (p *Paginator[T]) GoToPage(n int) bool {
	if n < 1 || n > p.TotalPages() {
		return false
	}
	p.page = n
	return true
}

func (p *Paginator[T]) Next() bool { return p.GoToPage(p.page + 1) }
func (p *Paginator[T]) Prev() bool { return p.GoToPage(p.page - 1) }

func (p *Paginator[T]) HasNext() bool { return p.page < p.TotalPages() }
func (p *Paginator[T]) HasPrev() bool { return p.page > 1 }

// PageNumbers returns the visible page buttons for the current page.
func (p *Paginator[T]) PageNumbers() []int { return PageNumbers(p.page, p.TotalPages()) }
