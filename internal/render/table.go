package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rshade/userpage/internal/i18n"
)

// tabPadding is the minimum padding between columns in the plain table.
const tabPadding = 2

// Styles used by the styled table.
var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1) //nolint:gochecknoglobals,mnd // Style constant.
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)                                              //nolint:gochecknoglobals // Style constant.
	borderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))                          //nolint:gochecknoglobals,mnd // Style constant.
	titleStyle    = lipgloss.NewStyle().Bold(true).MarginBottom(1)                                 //nolint:gochecknoglobals // Style constant.
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))                          //nolint:gochecknoglobals,mnd // Style constant.
	activeStyle   = lipgloss.NewStyle().Bold(true).Reverse(true)                                   //nolint:gochecknoglobals // Style constant.
	disabledStyle = lipgloss.NewStyle().Faint(true)                                                //nolint:gochecknoglobals // Style constant.
)

// RenderPlain writes the page as a tab-aligned table followed by the control
// strip and footer. An empty page has a header row, no strip and the
// "no users" footer.
func RenderPlain(w io.Writer, pg Page, loc *i18n.Localizer) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)

	header := loc.Columns()
	if _, err := fmt.Fprintln(tw, strings.ToUpper(strings.Join(header, "\t"))); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	separators := make([]string, len(header))
	for i, h := range header {
		separators[i] = strings.Repeat("-", len([]rune(h)))
	}
	if _, err := fmt.Fprintln(tw, strings.Join(separators, "\t")); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}

	for _, u := range pg.Users {
		if _, err := fmt.Fprintln(tw, strings.Join(u.Row(), "\t")); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if !pg.IsEmpty() {
		if _, err := fmt.Fprintln(w, ControlStrip(pg.Controls)); err != nil {
			return fmt.Errorf("writing controls: %w", err)
		}
	}
	if _, err := fmt.Fprintln(w, Footer(loc, pg.Meta)); err != nil {
		return fmt.Errorf("writing footer: %w", err)
	}
	return nil
}

// RenderStyled writes the page as a bordered lipgloss table with a styled
// control strip.
func RenderStyled(w io.Writer, pg Page, loc *i18n.Localizer) error {
	rows := make([][]string, 0, len(pg.Users))
	for _, u := range pg.Users {
		rows = append(rows, u.Row())
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(loc.Columns()...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	sections := []string{titleStyle.Render(loc.Title()), t.Render()}
	if !pg.IsEmpty() {
		sections = append(sections, styledStrip(pg))
	}
	sections = append(sections, subtleStyle.Render(Footer(loc, pg.Meta)))

	if _, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, sections...)); err != nil {
		return fmt.Errorf("writing styled table: %w", err)
	}
	return nil
}

func styledStrip(pg Page) string {
	parts := make([]string, 0, len(pg.Controls))
	for _, c := range pg.Controls {
		label := " " + ControlLabel(c) + " "
		switch {
		case c.Disabled:
			parts = append(parts, disabledStyle.Render(label))
		case c.Active:
			parts = append(parts, activeStyle.Render(label))
		default:
			parts = append(parts, label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// RenderAlert writes the localised fetch-failure alert for statusCode.
func RenderAlert(w io.Writer, loc *i18n.Localizer, statusCode int) error {
	_, err := fmt.Fprintln(w, loc.FetchError(statusCode))
	return err
}
