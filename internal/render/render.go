package render

import (
	"fmt"
	"io"

	"github.com/rshade/userpage/internal/i18n"
)

// Options selects how a page is written.
type Options struct {
	Format string
	// Styled chooses the lipgloss table over the plain table for FormatTable.
	Styled bool
	Locale *i18n.Localizer
}

// Render writes pg to w in the requested format.
func Render(w io.Writer, pg Page, opts Options) error {
	loc := opts.Locale
	if loc == nil {
		loc = i18n.New(i18n.DefaultLocale)
	}

	switch opts.Format {
	case FormatJSON:
		return RenderJSON(w, pg)
	case FormatNDJSON:
		return RenderNDJSON(w, pg)
	case FormatYAML:
		return RenderYAML(w, pg)
	case FormatTable, "":
		if opts.Styled {
			return RenderStyled(w, pg, loc)
		}
		return RenderPlain(w, pg, loc)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, opts.Format)
	}
}
