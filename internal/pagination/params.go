package pagination

import (
	"errors"
	"fmt"
)

// Common validation errors.
var (
	ErrPageSizeOutOfRange = errors.New("page-size must be between 1 and 1000")
	ErrWindowOutOfRange   = errors.New("window must be between 1 and 50")
)

// Params holds the CLI pagination flags.
//
// Page is deliberately not validated: a page outside [1, PageCount] is a no-op
// navigation request and the view stays on page 1.
type Params struct {
	// Page is the 1-based page to open.
	Page int

	// PageSize is the number of records per page.
	PageSize int

	// Window is the number of page-number controls to show.
	Window int
}

// NewParams creates Params with default values.
func NewParams() *Params {
	return &Params{
		Page:     FirstPage,
		PageSize: DefaultPageSize,
		Window:   DefaultWindowLimit,
	}
}

// Validate checks the page size and window bounds.
func (p Params) Validate() error {
	if p.PageSize < MinPageSize || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrPageSizeOutOfRange, p.PageSize)
	}
	if p.Window < MinWindowLimit || p.Window > MaxWindowLimit {
		return fmt.Errorf("%w: got %d", ErrWindowOutOfRange, p.Window)
	}
	return nil
}

// Open validates params, builds a Paginator over records and navigates to
// params.Page. An out-of-range page leaves the paginator on page 1.
func Open[T any](records []T, params Params) (*Paginator[T], error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	p, err := New(records, params.PageSize)
	if err != nil {
		return nil, err
	}
	p.GoToPage(params.Page)
	return p, nil
}
