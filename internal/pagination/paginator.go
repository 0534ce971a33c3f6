package pagination

import (
	"errors"
	"fmt"
)

// Pagination defaults and validation limits.
const (
	FirstPage          = 1
	DefaultPageSize    = 20
	MinPageSize        = 1
	MaxPageSize        = 1000
	DefaultWindowLimit = 10
	MinWindowLimit     = 1
	MaxWindowLimit     = 50
)

// ErrInvalidPageSize is returned when a page size below MinPageSize is requested.
var ErrInvalidPageSize = errors.New("page size must be >= 1")

// halfDivisor splits the control window around the current page.
const halfDivisor = 2

// Paginator holds 1-based page state over an ordered, read-only record set.
//
// Every derived value (page count, visible slice, control window) is computed
// from the records, the page size and the current page. Navigation requests that
// fall outside [1, PageCount] are ignored rather than reported.
type Paginator[T any] struct {
	// records is the full record set, never modified by the paginator
	records []T

	// pageSize is the number of records per page (always >= 1)
	pageSize int

	// currentPage is the 1-based page, clamped to [1, max(pageCount, 1)]
	currentPage int

	// pageCount is ceil(len(records) / pageSize)
	pageCount int
}

// New creates a Paginator positioned on the first page.
// It returns ErrInvalidPageSize when pageSize is less than 1.
func New[T any](records []T, pageSize int) (*Paginator[T], error) {
	if pageSize < MinPageSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPageSize, pageSize)
	}

	p := &Paginator[T]{
		records:     records,
		pageSize:    pageSize,
		currentPage: FirstPage,
	}
	p.recompute()
	return p, nil
}

// recompute derives the page count and re-clamps the current page.
func (p *Paginator[T]) recompute() {
	p.pageCount = 0
	if len(p.records) > 0 {
		p.pageCount = len(p.records) / p.pageSize
		if len(p.records)%p.pageSize != 0 {
			p.pageCount++
		}
	}

	switch {
	case p.currentPage < FirstPage:
		p.currentPage = FirstPage
	case p.pageCount > 0 && p.currentPage > p.pageCount:
		p.currentPage = p.pageCount
	case p.pageCount == 0:
		p.currentPage = FirstPage
	}
}

// Records returns the full record set.
func (p *Paginator[T]) Records() []T {
	return p.records
}

// TotalItems returns the number of records across all pages.
func (p *Paginator[T]) TotalItems() int {
	return len(p.records)
}

// PageSize returns the number of records per page.
func (p *Paginator[T]) PageSize() int {
	return p.pageSize
}

// CurrentPage returns the 1-based current page.
func (p *Paginator[T]) CurrentPage() int {
	return p.currentPage
}

// PageCount returns ceil(TotalItems / PageSize), or 0 for an empty record set.
func (p *Paginator[T]) PageCount() int {
	return p.pageCount
}

// IsEmpty reports whether there are no pages to show.
func (p *Paginator[T]) IsEmpty() bool {
	return p.pageCount == 0
}

// HasPrevious reports whether Previous would move.
func (p *Paginator[T]) HasPrevious() bool {
	return p.currentPage > FirstPage
}

// HasNext reports whether Next would move.
func (p *Paginator[T]) HasNext() bool {
	return p.currentPage < p.pageCount
}

// GoToPage moves to page n when 1 <= n <= PageCount and reports whether it did.
// Out-of-range requests leave the current page unchanged.
func (p *Paginator[T]) GoToPage(n int) bool {
	if n < FirstPage || n > p.pageCount {
		return false
	}
	p.currentPage = n
	return true
}

// Next advances one page, saturating at the last page.
func (p *Paginator[T]) Next() bool {
	if !p.HasNext() {
		return false
	}
	p.currentPage++
	return true
}

// Previous goes back one page, saturating at the first page.
func (p *Paginator[T]) Previous() bool {
	if !p.HasPrevious() {
		return false
	}
	p.currentPage--
	return true
}

// First moves to page 1.
func (p *Paginator[T]) First() bool {
	return p.GoToPage(FirstPage)
}

// Last moves to the final page. It is a no-op for an empty record set.
func (p *Paginator[T]) Last() bool {
	return p.GoToPage(p.pageCount)
}

// Bounds returns the half-open record index range [first, last) of the current page,
// clipped to the record set.
//
//nolint:nonamedreturns // Named returns document which bound is which.
func (p *Paginator[T]) Bounds() (first, last int) {
	// currentPage never exceeds pageCount, so first stays within the record set.
	first = min((p.currentPage-1)*p.pageSize, len(p.records))
	last = first + min(p.pageSize, len(p.records)-first)
	return first, last
}

// VisibleSlice returns the records on the current page.
// The result shares storage with the record set but cannot be appended into it.
func (p *Paginator[T]) VisibleSlice() []T {
	first, last := p.Bounds()
	if first >= last {
		return []T{}
	}
	return p.records[first:last:last]
}

// WindowStart returns the 0-based offset of the first page-number control for a
// window of limit buttons. The window is centered on the current page and then
// clamped so it never runs past the last page or before the first.
func (p *Paginator[T]) WindowStart(limit int) int {
	if limit < MinWindowLimit || p.pageCount == 0 {
		return 0
	}

	// floor(currentPage - 1 - limit/2) with limit/2 taken as a real division.
	start := floorDiv(halfDivisor*(p.currentPage-1)-limit, halfDivisor)
	start = min(start, p.pageCount-limit)
	return max(start, 0)
}

// ControlWindow returns the ascending 1-based page numbers to render as buttons.
// Its length is min(limit, PageCount); it is empty when there are no pages.
func (p *Paginator[T]) ControlWindow(limit int) []int {
	if limit < MinWindowLimit || p.pageCount == 0 {
		return []int{}
	}

	start := p.WindowStart(limit)
	end := min(start+limit, p.pageCount)

	pages := make([]int, 0, end-start)
	for page := start + 1; page <= end; page++ {
		pages = append(pages, page)
	}
	return pages
}

// SetPageSize changes the page size, recomputing the page count and re-clamping
// the current page. It returns ErrInvalidPageSize when size is less than 1.
func (p *Paginator[T]) SetPageSize(size int) error {
	if size < MinPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, size)
	}
	p.pageSize = size
	p.recompute()
	return nil
}

// SetRecords replaces the record set, recomputing the page count and re-clamping
// the current page.
func (p *Paginator[T]) SetRecords(records []T) {
	p.records = records
	p.recompute()
}

// Meta returns pagination metadata for the current page.
func (p *Paginator[T]) Meta() Meta {
	first, last := p.Bounds()

	meta := Meta{
		CurrentPage: p.currentPage,
		PageSize:    p.pageSize,
		TotalPages:  p.pageCount,
		TotalItems:  len(p.records),
		HasPrevious: p.HasPrevious(),
		HasNext:     p.HasNext(),
	}
	if last > first {
		meta.FirstItem = first + 1
		meta.LastItem = last
	}
	return meta
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
