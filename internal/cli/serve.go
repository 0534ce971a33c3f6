package cli

import (
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/userpage/internal/config"
	"github.com/rshade/userpage/internal/i18n"
	"github.com/rshade/userpage/internal/logging"
	"github.com/rshade/userpage/internal/pagination"
	"github.com/rshade/userpage/internal/users"
	"github.com/rshade/userpage/internal/web"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	var (
		addr    string
		url     string
		locale  string
		sort    string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the users page over HTTP",
		Long: `Serves the users table as an HTML page. Each request to / fetches the upstream
once and renders the page given by ?page=N with links for the other pages.
Upstream failures render only the alert with HTTP 502. GET /healthz returns ok.`,
		Example: `  userpage serve
  userpage serve --addr 127.0.0.1:9000 --url http://localhost:3000/users --locale ru`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			changed := cmd.Flags().Changed

			if !changed("addr") {
				addr = cfg.Server.Addr
			}
			if !changed("url") {
				url = cfg.Source.URL
			}
			if !changed("locale") {
				locale = cfg.Output.Locale
			}
			if !changed("timeout") {
				timeout = cfg.Source.Timeout
			}
			if err := checkLocale(locale); err != nil {
				return err
			}

			params := pagination.Params{
				PageSize: cfg.Pagination.PageSize,
				Window:   cfg.Pagination.Window,
			}
			if err := params.Validate(); err != nil {
				return err
			}

			opts := web.Options{
				PageSize:  params.PageSize,
				Window:    params.Window,
				Localizer: i18n.New(locale),
			}
			if sort != "" {
				field, order, err := users.ParseSort(sort)
				if err != nil {
					return err
				}
				opts.SortField, opts.SortOrder = field, order
			}

			fetcher := users.NewHTTPFetcher(url, &http.Client{Timeout: timeout})
			srv, err := web.NewServer(fetcher, opts, *logging.FromContext(cmd.Context()))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cmd.Printf("Serving users from %s on %s\n", url, addr)
			return srv.Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().StringVar(&url, "url", "", "upstream users endpoint (default from config)")
	cmd.Flags().StringVar(&locale, "locale", "", "label language: en, ru (default from config)")
	cmd.Flags().StringVar(&sort, "sort", "", "sort by field[:asc|desc]")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "upstream request timeout (default from config)")

	return cmd
}
