package users

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Sort orders.
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// sortPartsMax is the maximum number of parts in a sort expression (field:order).
const sortPartsMax = 2

// Sort expression errors.
var (
	ErrEmptySortField    = errors.New("sort field cannot be empty")
	ErrInvalidSortField  = errors.New("invalid sort field")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'lastname:desc')")
)

// sortFields maps a sort field name to a less function.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var sortFields = map[string]func(a, b User) bool{
	"id":        func(a, b User) bool { return a.ID < b.ID },
	"firstname": func(a, b User) bool { return a.FirstName < b.FirstName },
	"lastname":  func(a, b User) bool { return a.LastName < b.LastName },
	"email":     func(a, b User) bool { return a.Email < b.Email },
	"phone":     func(a, b User) bool { return a.Phone < b.Phone },
	"updatedAt": func(a, b User) bool { return a.UpdatedAt < b.UpdatedAt },
}

// IsValidSortField reports whether field can be sorted on.
func IsValidSortField(field string) bool {
	_, ok := sortFields[field]
	return ok
}

// ValidSortFields returns the sortable field names in a stable order.
func ValidSortFields() []string {
	fields := make([]string, 0, len(sortFields))
	for field := range sortFields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// ParseSort parses "field" or "field:order". The order defaults to ascending.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(expr string) (field, order string, err error) {
	parts := strings.Split(expr, ":")
	if len(parts) > sortPartsMax {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, expr)
	}

	field = strings.TrimSpace(parts[0])
	if field == "" {
		return "", "", ErrEmptySortField
	}
	if !IsValidSortField(field) {
		return "", "", fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field, strings.Join(ValidSortFields(), ", "))
	}

	order = SortOrderAsc
	if len(parts) == sortPartsMax {
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	}
	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return field, order, nil
}

// Sorted returns a stably sorted copy of rs. The receiver is not modified.
// An unknown field returns an unsorted copy.
func (rs RecordSet) Sorted(field, order string) RecordSet {
	sorted := slices.Clone(rs)
	less, ok := sortFields[field]
	if !ok {
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		// For descending order, swap i and j in comparisons to maintain stability
		if order == SortOrderDesc {
			i, j = j, i
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}
