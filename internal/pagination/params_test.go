package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{
			name:   "valid default",
			params: *NewParams(),
		},
		{
			name:   "page is not validated",
			params: Params{Page: -4, PageSize: 20, Window: 10},
		},
		{
			name:    "zero page size",
			params:  Params{Page: 1, PageSize: 0, Window: 10},
			wantErr: ErrPageSizeOutOfRange,
		},
		{
			name:    "page size above max",
			params:  Params{Page: 1, PageSize: MaxPageSize + 1, Window: 10},
			wantErr: ErrPageSizeOutOfRange,
		},
		{
			name:    "zero window",
			params:  Params{Page: 1, PageSize: 20, Window: 0},
			wantErr: ErrWindowOutOfRange,
		},
		{
			name:    "window above max",
			params:  Params{Page: 1, PageSize: 20, Window: MaxWindowLimit + 1},
			wantErr: ErrWindowOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewParams(t *testing.T) {
	p := NewParams()
	assert.Equal(t, FirstPage, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)
	assert.Equal(t, DefaultWindowLimit, p.Window)
}

func TestOpen(t *testing.T) {
	records := makeRecords(47)

	t.Run("opens requested page", func(t *testing.T) {
		p, err := Open(records, Params{Page: 2, PageSize: 20, Window: 10})
		require.NoError(t, err)
		assert.Equal(t, 2, p.CurrentPage())
		assert.Equal(t, records[20:40], p.VisibleSlice())
	})

	t.Run("out of range page stays on first", func(t *testing.T) {
		p, err := Open(records, Params{Page: 9, PageSize: 20, Window: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, p.CurrentPage())
	})

	t.Run("invalid params", func(t *testing.T) {
		_, err := Open(records, Params{Page: 1, PageSize: 0, Window: 10})
		require.ErrorIs(t, err, ErrPageSizeOutOfRange)
	})
}
