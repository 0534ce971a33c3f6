package pagination

// Meta contains metadata about the current page of a Paginator.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`

	// FirstItem and LastItem are the 1-based positions of the visible records.
	// Both are 0 when the page is empty.
	FirstItem int `json:"first_item" yaml:"first_item"`
	LastItem  int `json:"last_item"  yaml:"last_item"`
}
