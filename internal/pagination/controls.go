package pagination

// ControlKind identifies a navigation control.
type ControlKind int

// Navigation controls in display order around the page-number window.
const (
	ControlFirst ControlKind = iota
	ControlPrevious
	ControlPage
	ControlNext
	ControlLast
)

// String returns a stable identifier for the control kind.
func (k ControlKind) String() string {
	switch k {
	case ControlFirst:
		return "first"
	case ControlPrevious:
		return "previous"
	case ControlPage:
		return "page"
	case ControlNext:
		return "next"
	case ControlLast:
		return "last"
	default:
		return "unknown"
	}
}

// Control is one entry of the control strip.
type Control struct {
	Kind ControlKind `json:"kind"     yaml:"kind"`
	// Page is the page the control navigates to.
	Page     int  `json:"page"     yaml:"page"`
	Active   bool `json:"active"   yaml:"active"`
	Disabled bool `json:"disabled" yaml:"disabled"`
}

// Controls returns the full control strip for the current state:
// first, previous, one button per ControlWindow page, next, last.
// First and previous are disabled on page 1, next and last on the final page.
// An empty record set has no controls.
func Controls[T any](p *Paginator[T], limit int) []Control {
	if p.IsEmpty() {
		return []Control{}
	}

	window := p.ControlWindow(limit)
	current := p.CurrentPage()

	controls := make([]Control, 0, len(window)+4) //nolint:mnd // Four fixed navigation controls.
	controls = append(controls,
		Control{Kind: ControlFirst, Page: FirstPage, Disabled: !p.HasPrevious()},
		Control{Kind: ControlPrevious, Page: max(current-1, FirstPage), Disabled: !p.HasPrevious()},
	)
	for _, page := range window {
		controls = append(controls, Control{Kind: ControlPage, Page: page, Active: page == current})
	}
	controls = append(controls,
		Control{Kind: ControlNext, Page: min(current+1, p.PageCount()), Disabled: !p.HasNext()},
		Control{Kind: ControlLast, Page: p.PageCount(), Disabled: !p.HasNext()},
	)
	return controls
}
