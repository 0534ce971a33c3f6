package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSort(t *testing.T) {
	tests := []struct {
		name      string
		expr      string
		wantField string
		wantOrder string
		wantErr   error
	}{
		{name: "field only", expr: "lastname", wantField: "lastname", wantOrder: SortOrderAsc},
		{name: "explicit asc", expr: "id:asc", wantField: "id", wantOrder: SortOrderAsc},
		{name: "explicit desc", expr: "updatedAt:DESC", wantField: "updatedAt", wantOrder: SortOrderDesc},
		{name: "whitespace", expr: " email : desc ", wantField: "email", wantOrder: SortOrderDesc},
		{name: "empty", expr: "", wantErr: ErrEmptySortField},
		{name: "empty field", expr: ":asc", wantErr: ErrEmptySortField},
		{name: "unknown field", expr: "salary", wantErr: ErrInvalidSortField},
		{name: "bad order", expr: "id:sideways", wantErr: ErrInvalidSortOrder},
		{name: "too many parts", expr: "id:asc:x", wantErr: ErrInvalidSortFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, order, err := ParseSort(tt.expr)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestRecordSet_Sorted(t *testing.T) {
	rs := RecordSet{
		{ID: 2, LastName: "Sidorova", UpdatedAt: "2024-02-01"},
		{ID: 1, LastName: "Petrov", UpdatedAt: "2024-03-01"},
		{ID: 3, LastName: "Petrov", UpdatedAt: "2024-01-01"},
	}

	t.Run("by id asc", func(t *testing.T) {
		sorted := rs.Sorted("id", SortOrderAsc)
		assert.Equal(t, []int{1, 2, 3}, ids(sorted))
	})

	t.Run("by id desc", func(t *testing.T) {
		sorted := rs.Sorted("id", SortOrderDesc)
		assert.Equal(t, []int{3, 2, 1}, ids(sorted))
	})

	t.Run("stable on ties", func(t *testing.T) {
		sorted := rs.Sorted("lastname", SortOrderAsc)
		assert.Equal(t, []int{1, 3, 2}, ids(sorted))
	})

	t.Run("by updatedAt", func(t *testing.T) {
		sorted := rs.Sorted("updatedAt", SortOrderAsc)
		assert.Equal(t, []int{3, 2, 1}, ids(sorted))
	})

	t.Run("does not modify receiver", func(t *testing.T) {
		_ = rs.Sorted("id", SortOrderAsc)
		assert.Equal(t, []int{2, 1, 3}, ids(rs))
	})

	t.Run("unknown field keeps order", func(t *testing.T) {
		assert.Equal(t, []int{2, 1, 3}, ids(rs.Sorted("salary", SortOrderAsc)))
	})
}

func TestValidSortFields(t *testing.T) {
	fields := ValidSortFields()
	assert.Equal(t, []string{"email", "firstname", "id", "lastname", "phone", "updatedAt"}, fields)
}

func ids(rs RecordSet) []int {
	out := make([]int, len(rs))
	for i, u := range rs {
		out[i] = u.ID
	}
	return out
}
