package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/userpage/internal/i18n"
	"github.com/rshade/userpage/internal/logging"
	"github.com/rshade/userpage/internal/pagination"
	"github.com/rshade/userpage/internal/users"
)

// Column widths for the users table.
const (
	colWidthID      = 6
	colWidthFirst   = 14
	colWidthLast    = 14
	colWidthPhone   = 16
	colWidthEmail   = 28
	colWidthUpdated = 24
)

// UsersLoadedMsg carries the record set returned by the one-shot fetch.
type UsersLoadedMsg struct {
	Users users.RecordSet
}

// FetchFailedMsg reports a failed fetch with its upstream status code.
type FetchFailedMsg struct {
	StatusCode int
	Err        error
}

// UsersOptions configures a UsersModel.
type UsersOptions struct {
	Fetcher   users.Fetcher
	Localizer *i18n.Localizer
	PageSize  int
	Window    int
	// Page is applied with GoToPage once the records arrive.
	Page      int
	SortField string
	SortOrder string
}

// UsersModel is the Bubble Tea model for the interactive users pager.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type UsersModel struct {
	ctx  context.Context
	opts UsersOptions
	loc  *i18n.Localizer

	state ViewState
	pager *pagination.Paginator[users.User]

	table     table.Model
	gotoInput textinput.Model
	showGoto  bool
	keys      KeyMap
	help      help.Model

	width  int
	height int

	loadingState *LoadingState

	statusCode int
	err        error
}

// NewUsersModel creates a pager in the loading state. Init starts the fetch.
func NewUsersModel(ctx context.Context, opts UsersOptions) UsersModel {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Localizer == nil {
		opts.Localizer = i18n.New(i18n.DefaultLocale)
	}
	if opts.PageSize < pagination.MinPageSize {
		opts.PageSize = pagination.DefaultPageSize
	}
	if opts.Window < pagination.MinWindowLimit {
		opts.Window = pagination.DefaultWindowLimit
	}

	input := textinput.New()
	input.Prompt = opts.Localizer.T(i18n.KeyGotoPrompt)
	input.CharLimit = 6 //nolint:mnd // Page numbers never need more digits.

	m := UsersModel{
		ctx:          ctx,
		opts:         opts,
		loc:          opts.Localizer,
		state:        ViewStateLoading,
		gotoInput:    input,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		width:        defaultWidth,
		height:       defaultHeight,
		loadingState: NewLoadingState(opts.Localizer.T(i18n.KeyLoading)),
	}
	m.table = m.buildTable()
	return m
}

// Init starts the spinner and the fetch (Bubble Tea interface).
func (m UsersModel) Init() tea.Cmd {
	return tea.Batch(m.loadingState.Init(), fetchUsersCmd(m.ctx, m.opts.Fetcher))
}

// fetchUsersCmd performs the single upstream fetch.
func fetchUsersCmd(ctx context.Context, fetcher users.Fetcher) tea.Cmd {
	return func() tea.Msg {
		if fetcher == nil {
			return FetchFailedMsg{StatusCode: users.StatusTransportFailure}
		}
		rs, err := fetcher.Fetch(ctx)
		if err != nil {
			return FetchFailedMsg{StatusCode: users.StatusCode(err), Err: err}
		}
		return UsersLoadedMsg{Users: rs}
	}
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m UsersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.buildTable()
		return m, nil
	case UsersLoadedMsg:
		return m.handleLoaded(msg)
	case FetchFailedMsg:
		return m.handleFailed(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		if m.state != ViewStateError {
			m.state = ViewStateQuitting
		}
		return m, tea.Quit
	}

	switch m.state {
	case ViewStateLoading:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Quit) {
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
		return m, m.loadingState.Update(msg)
	case ViewStateList:
		if m.showGoto {
			return m.handleGotoInput(msg)
		}
		return m.handleListUpdate(msg)
	case ViewStateError:
		// The alert stays as the final frame.
		if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m UsersModel) handleLoaded(msg UsersLoadedMsg) (tea.Model, tea.Cmd) {
	records := msg.Users
	if m.opts.SortField != "" {
		records = records.Sorted(m.opts.SortField, m.opts.SortOrder)
	}

	pager, err := pagination.New([]users.User(records), m.opts.PageSize)
	if err != nil {
		m.state = ViewStateError
		m.statusCode = users.StatusTransportFailure
		m.err = err
		return m, nil
	}
	pager.GoToPage(m.opts.Page)

	m.pager = pager
	m.state = ViewStateList
	m.table = m.buildTable()

	logging.FromContext(m.ctx).Debug().Ctx(m.ctx).
		Str("component", "tui").
		Int("records", pager.TotalItems()).
		Int("pages", pager.PageCount()).
		Msg("users loaded")
	return m, nil
}

func (m UsersModel) handleFailed(msg FetchFailedMsg) (tea.Model, tea.Cmd) {
	m.state = ViewStateError
	m.statusCode = msg.StatusCode
	m.err = msg.Err
	if m.err == nil {
		m.err = &users.FetchError{StatusCode: msg.StatusCode}
	}
	return m, nil
}

func (m UsersModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.state = ViewStateQuitting
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.First):
		m.navigate(m.pager.First())
	case key.Matches(keyMsg, m.keys.Previous):
		m.navigate(m.pager.Previous())
	case key.Matches(keyMsg, m.keys.Next):
		m.navigate(m.pager.Next())
	case key.Matches(keyMsg, m.keys.Last):
		m.navigate(m.pager.Last())
	case key.Matches(keyMsg, m.keys.Button):
		m.navigate(m.pressButton(keyMsg.String()))
	case key.Matches(keyMsg, m.keys.Goto):
		if m.pager.IsEmpty() {
			return m, nil
		}
		m.showGoto = true
		m.gotoInput.Reset()
		return m, m.gotoInput.Focus()
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(keyMsg)
		return m, cmd
	}
	return m, nil
}

// pressButton jumps to the page shown on the n-th window button.
func (m *UsersModel) pressButton(s string) bool {
	idx, ok := buttonIndex(s)
	if !ok {
		return false
	}
	window := m.pager.ControlWindow(m.opts.Window)
	if idx >= len(window) {
		return false
	}
	return m.pager.GoToPage(window[idx])
}

func (m UsersModel) handleGotoInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Confirm):
			m.showGoto = false
			m.gotoInput.Blur()
			if n, err := strconv.Atoi(strings.TrimSpace(m.gotoInput.Value())); err == nil {
				m.navigate(m.pager.GoToPage(n))
			}
			return m, nil
		case key.Matches(keyMsg, m.keys.Cancel):
			m.showGoto = false
			m.gotoInput.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.gotoInput, cmd = m.gotoInput.Update(msg)
	return m, cmd
}

// navigate rebuilds the table after a page change.
func (m *UsersModel) navigate(moved bool) {
	if moved {
		m.table = m.buildTable()
	}
}

// buildTable creates the table for the current visible slice.
func (m *UsersModel) buildTable() table.Model {
	titles := m.loc.Columns()
	widths := []int{colWidthID, colWidthFirst, colWidthLast, colWidthPhone, colWidthEmail, colWidthUpdated}

	columns := make([]table.Column, len(titles))
	for i, title := range titles {
		columns[i] = table.Column{Title: title, Width: widths[i]}
	}

	var visible []users.User
	if m.pager != nil {
		visible = m.pager.VisibleSlice()
	}
	rows := make([]table.Row, len(visible))
	for i, u := range visible {
		rows[i] = table.Row(u.Row())
	}

	availableHeight := min(m.height-chromeHeight, m.opts.PageSize+1)
	if availableHeight < minHeight {
		availableHeight = minHeight
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(availableHeight),
		table.WithKeyMap(m.keys.tableKeyMap()),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}

// State returns the current view state.
func (m UsersModel) State() ViewState {
	return m.state
}

// Err returns the fetch error, if the model ended in the error state.
func (m UsersModel) Err() error {
	return m.err
}

// StatusCode returns the upstream status of a failed fetch, or 0.
func (m UsersModel) StatusCode() int {
	return m.statusCode
}

// Pager returns the paginator, or nil while loading.
func (m UsersModel) Pager() *pagination.Paginator[users.User] {
	return m.pager
}
