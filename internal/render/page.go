package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rshade/userpage/internal/pagination"
	"github.com/rshade/userpage/internal/users"
)

// Output formats accepted by --output.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
	FormatYAML   = "yaml"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Page is a snapshot of one page ready to render.
type Page struct {
	Users    []users.User         `json:"users"      yaml:"users"`
	Meta     pagination.Meta      `json:"pagination" yaml:"pagination"`
	Window   []int                `json:"controls"   yaml:"controls"`
	Controls []pagination.Control `json:"-"          yaml:"-"`
}

// NewPage captures the current page of p with a control window of limit buttons.
func NewPage(p *pagination.Paginator[users.User], limit int) Page {
	return Page{
		Users:    p.VisibleSlice(),
		Meta:     p.Meta(),
		Window:   p.ControlWindow(limit),
		Controls: pagination.Controls(p, limit),
	}
}

// IsEmpty reports whether the page came from an empty record set.
func (pg Page) IsEmpty() bool {
	return pg.Meta.TotalPages == 0
}

// ParseFormat normalises and validates an output format name.
func ParseFormat(format string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	switch f {
	case FormatTable, FormatJSON, FormatNDJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("%w %q: valid formats are %s", ErrUnknownFormat, format,
			strings.Join(Formats(), ", "))
	}
}

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatTable, FormatJSON, FormatNDJSON, FormatYAML}
}

// IsStructured reports whether format is a machine-readable format that never
// goes through the interactive pager.
func IsStructured(format string) bool {
	return format == FormatJSON || format == FormatNDJSON || format == FormatYAML
}
