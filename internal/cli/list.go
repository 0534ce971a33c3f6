package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/userpage/internal/config"
	"github.com/rshade/userpage/internal/i18n"
	"github.com/rshade/userpage/internal/logging"
	"github.com/rshade/userpage/internal/pagination"
	"github.com/rshade/userpage/internal/render"
	"github.com/rshade/userpage/internal/tui"
	"github.com/rshade/userpage/internal/users"
)

// ErrUnsupportedLocale is returned for a --locale without a bundled catalog.
var ErrUnsupportedLocale = errors.New("unsupported locale")

// checkLocale accepts an empty locale or one with a bundled catalog.
func checkLocale(locale string) error {
	if locale == "" || i18n.IsSupported(locale) {
		return nil
	}
	return fmt.Errorf("%w %q: use %s or %s", ErrUnsupportedLocale, locale, i18n.LocaleEnglish, i18n.LocaleRussian)
}

// listFlags holds the flags of the list command.
type listFlags struct {
	url      string
	page     int
	pageSize int
	window   int
	output   string
	plain    bool
	noColor  bool
	sort     string
	locale   string
	timeout  time.Duration
}

// listRequest is the validated, config-merged form of listFlags.
type listRequest struct {
	url       string
	params    pagination.Params
	format    string
	sortField string
	sortOrder string
	loc       *i18n.Localizer
	timeout   time.Duration
	plain     bool
	noColor   bool
}

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Fetch users once and show one page",
		Long: `Fetches the user list from the upstream endpoint once and shows one page of it.

On an interactive terminal the table opens in a pager with first/previous/next/last
controls and a window of page buttons. Piped output, --plain and structured formats
print a single page and exit.

A --page outside the available pages is ignored and the first page is shown.`,
		Example: `  # Interactive pager
  userpage list

  # Third page as plain text, 10 users per page
  userpage list --page 3 --page-size 10 --plain

  # Machine-readable output
  userpage list --output json
  userpage list --output ndjson --sort email`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := buildListRequest(cmd, flags, config.GetGlobalConfig())
			if err != nil {
				return err
			}
			return runList(cmd, req)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.url, "url", "", "upstream users endpoint (default from config)")
	f.IntVar(&flags.page, "page", pagination.FirstPage, "page to show; out-of-range values are ignored")
	f.IntVar(&flags.pageSize, "page-size", 0, "users per page, 1-1000 (default from config)")
	f.IntVar(&flags.window, "window", 0, "number of page buttons in the control strip, 1-50 (default from config)")
	f.StringVarP(&flags.output, "output", "o", "", "output format: table, json, ndjson, yaml (default from config)")
	f.BoolVar(&flags.plain, "plain", false, "plain table without styling or interactivity")
	f.BoolVar(&flags.noColor, "no-color", false, "disable colours")
	f.StringVar(&flags.sort, "sort", "", "sort by field[:asc|desc]; fields: id, firstname, lastname, email, phone, updatedAt")
	f.StringVar(&flags.locale, "locale", "", "label language: en, ru (default from config)")
	f.DurationVar(&flags.timeout, "timeout", 0, "upstream request timeout (default from config)")

	return cmd
}

// buildListRequest merges flags over cfg and validates the result.
func buildListRequest(cmd *cobra.Command, flags listFlags, cfg *config.Config) (listRequest, error) {
	changed := cmd.Flags().Changed

	req := listRequest{
		url:     cfg.Source.URL,
		timeout: cfg.Source.Timeout,
		params: pagination.Params{
			Page:     flags.page,
			PageSize: cfg.Pagination.PageSize,
			Window:   cfg.Pagination.Window,
		},
		plain:   flags.plain,
		noColor: flags.noColor,
	}
	if changed("url") {
		req.url = flags.url
	}
	if changed("page-size") {
		req.params.PageSize = flags.pageSize
	}
	if changed("window") {
		req.params.Window = flags.window
	}
	if changed("timeout") {
		req.timeout = flags.timeout
	}
	if req.url == "" {
		return req, errors.New("no upstream URL: set --url, USERPAGE_SOURCE_URL or source.url")
	}
	if err := req.params.Validate(); err != nil {
		return req, err
	}

	output := cfg.Output.DefaultFormat
	if changed("output") {
		output = flags.output
	}
	format, err := render.ParseFormat(output)
	if err != nil {
		return req, err
	}
	req.format = format

	if flags.sort != "" {
		field, order, sortErr := users.ParseSort(flags.sort)
		if sortErr != nil {
			return req, sortErr
		}
		req.sortField, req.sortOrder = field, order
	}

	locale := cfg.Output.Locale
	if changed("locale") {
		locale = flags.locale
	}
	if err := checkLocale(locale); err != nil {
		return req, err
	}
	req.loc = i18n.New(locale)

	return req, nil
}

// runList routes to the interactive pager or a one-shot renderer.
func runList(cmd *cobra.Command, req listRequest) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	fetcher := users.NewHTTPFetcher(req.url, &http.Client{Timeout: req.timeout})

	mode := tui.OutputModePlain
	if !render.IsStructured(req.format) {
		mode = tui.DetectOutputMode(req.plain, req.noColor, false)
	}
	log.Debug().Ctx(ctx).
		Str("url", req.url).
		Str("format", req.format).
		Str("mode", mode.String()).
		Int("page", req.params.Page).
		Int("page_size", req.params.PageSize).
		Msg("listing users")

	if mode == tui.OutputModeInteractive {
		return runInteractiveList(ctx, cmd, fetcher, req)
	}

	records, err := fetcher.Fetch(ctx)
	if err != nil {
		_ = render.RenderAlert(cmd.ErrOrStderr(), req.loc, users.StatusCode(err))
		return err
	}
	if req.sortField != "" {
		records = records.Sorted(req.sortField, req.sortOrder)
	}

	p, err := pagination.Open([]users.User(records), req.params)
	if err != nil {
		return err
	}

	return render.Render(cmd.OutOrStdout(), render.NewPage(p, req.params.Window), render.Options{
		Format: req.format,
		Styled: mode == tui.OutputModeStyled,
		Locale: req.loc,
	})
}

// runInteractiveList runs the Bubble Tea pager. Stderr logging is silenced
// while the pager owns the terminal unless logs go to a file.
func runInteractiveList(ctx context.Context, cmd *cobra.Command, fetcher users.Fetcher, req listRequest) error {
	if !logsToFile(ctx) {
		ctx = zerolog.Nop().WithContext(ctx)
	}

	model := tui.NewUsersModel(ctx, tui.UsersOptions{
		Fetcher:   fetcher,
		Localizer: req.loc,
		PageSize:  req.params.PageSize,
		Window:    req.params.Window,
		Page:      req.params.Page,
		SortField: req.sortField,
		SortOrder: req.sortOrder,
	})

	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}

	if m, ok := final.(tui.UsersModel); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
