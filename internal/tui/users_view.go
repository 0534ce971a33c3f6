package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/userpage/internal/pagination"
	"github.com/rshade/userpage/internal/render"
)

// View renders the current view (Bubble Tea interface).
func (m UsersModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateLoading:
		return RenderLoading(m.loadingState)
	case ViewStateError:
		return m.renderErrorView()
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

// renderErrorView shows the alert and nothing else.
func (m UsersModel) renderErrorView() string {
	return ErrorStyle.Render(m.loc.FetchError(m.statusCode)) + "\n"
}

func (m UsersModel) renderListView() string {
	sections := []string{
		HeaderStyle.Render(m.loc.Title()),
		m.table.View(),
	}

	if !m.pager.IsEmpty() {
		sections = append(sections, m.renderControlStrip())
	}
	sections = append(sections, SubtleStyle.Render(render.Footer(m.loc, m.pager.Meta())))

	if m.showGoto {
		sections = append(sections, LabelStyle.Render(m.gotoInput.View()))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderControlStrip draws first/previous, the page window and next/last as
// buttons. The current page is highlighted and unavailable moves are dimmed.
func (m UsersModel) renderControlStrip() string {
	controls := pagination.Controls(m.pager, m.opts.Window)
	buttons := make([]string, 0, len(controls))
	for _, c := range controls {
		label := render.ControlLabel(c)
		switch {
		case c.Disabled:
			buttons = append(buttons, DisabledButtonStyle.Render(label))
		case c.Active:
			buttons = append(buttons, ActiveButtonStyle.Render(label))
		default:
			buttons = append(buttons, ButtonStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}
