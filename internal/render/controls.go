package render

import (
	"strconv"
	"strings"

	"github.com/rshade/userpage/internal/i18n"
	"github.com/rshade/userpage/internal/pagination"
)

// Control strip glyphs.
const (
	GlyphFirst    = "«"
	GlyphPrevious = "‹"
	GlyphNext     = "›"
	GlyphLast     = "»"
	GlyphDisabled = "-"
)

// ControlLabel returns the short label of c: a glyph for the navigation
// controls or the page number for page buttons.
func ControlLabel(c pagination.Control) string {
	switch c.Kind {
	case pagination.ControlFirst:
		return GlyphFirst
	case pagination.ControlPrevious:
		return GlyphPrevious
	case pagination.ControlNext:
		return GlyphNext
	case pagination.ControlLast:
		return GlyphLast
	case pagination.ControlPage:
		return strconv.Itoa(c.Page)
	default:
		return ""
	}
}

// ControlTitle returns the localised name of a navigation control, or the page
// number for page buttons.
func ControlTitle(loc *i18n.Localizer, c pagination.Control) string {
	switch c.Kind {
	case pagination.ControlFirst:
		return loc.T(i18n.KeyFirst)
	case pagination.ControlPrevious:
		return loc.T(i18n.KeyPrevious)
	case pagination.ControlNext:
		return loc.T(i18n.KeyNext)
	case pagination.ControlLast:
		return loc.T(i18n.KeyLast)
	default:
		return ControlLabel(c)
	}
}

// ControlStrip renders controls as a single line, e.g. "- - [1] 2 3 › »".
// The active page is bracketed and disabled controls are shown as "-".
func ControlStrip(controls []pagination.Control) string {
	parts := make([]string, 0, len(controls))
	for _, c := range controls {
		switch {
		case c.Disabled:
			parts = append(parts, GlyphDisabled)
		case c.Active:
			parts = append(parts, "["+ControlLabel(c)+"]")
		default:
			parts = append(parts, ControlLabel(c))
		}
	}
	return strings.Join(parts, " ")
}

// Footer returns "Page x of y · N users", or the empty-set message.
func Footer(loc *i18n.Localizer, meta pagination.Meta) string {
	if meta.TotalPages == 0 {
		return loc.T(i18n.KeyNoUsers)
	}
	return loc.PageOf(meta.CurrentPage, meta.TotalPages) + " · " + loc.Total(meta.TotalItems)
}
