package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/userpage/internal/i18n"
	"github.com/rshade/userpage/internal/logging"
	"github.com/rshade/userpage/internal/pagination"
	"github.com/rshade/userpage/internal/render"
	"github.com/rshade/userpage/internal/users"
)

//go:embed templates/*
var templateFS embed.FS

// Server timeouts.
const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Options configures a Server.
type Options struct {
	PageSize  int
	Window    int
	Localizer *i18n.Localizer
	SortField string
	SortOrder string
}

// Server renders the users page over HTTP.
type Server struct {
	fetcher users.Fetcher
	opts    Options
	logger  zerolog.Logger
	tmpl    *template.Template
}

// controlView is a control strip entry as seen by the template.
type controlView struct {
	Label    string
	Title    string
	Href     string
	Active   bool
	Disabled bool
}

// pageView is the template data for the users page.
type pageView struct {
	Lang     string
	Title    string
	Alert    string
	Columns  []string
	Rows     [][]string
	Controls []controlView
	Footer   string
}

// NewServer parses the embedded template and returns a Server.
func NewServer(fetcher users.Fetcher, opts Options, logger zerolog.Logger) (*Server, error) {
	if opts.Localizer == nil {
		opts.Localizer = i18n.New(i18n.DefaultLocale)
	}
	if opts.PageSize < pagination.MinPageSize {
		opts.PageSize = pagination.DefaultPageSize
	}
	if opts.Window < pagination.MinWindowLimit {
		opts.Window = pagination.DefaultWindowLimit
	}

	tmpl, err := template.ParseFS(templateFS, "templates/users.html")
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	return &Server{
		fetcher: fetcher,
		opts:    opts,
		logger:  logging.ComponentLogger(logger, "web"),
		tmpl:    tmpl,
	}, nil
}

// Handler returns the HTTP handler with request logging applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleUsers)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return LoggingMiddleware(s.logger, mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logging.FromContext(ctx)
	loc := s.opts.Localizer

	view := pageView{Lang: loc.Locale(), Title: loc.Title()}
	status := http.StatusOK

	records, err := s.fetcher.Fetch(ctx)
	if err != nil {
		code := users.StatusCode(err)
		log.Warn().Ctx(ctx).Err(err).Int("upstream_status", code).Msg("upstream fetch failed")
		view.Alert = loc.FetchError(code)
		status = http.StatusBadGateway
	} else {
		if s.opts.SortField != "" {
			records = records.Sorted(s.opts.SortField, s.opts.SortOrder)
		}
		if buildErr := s.fillPage(&view, records, requestedPage(r)); buildErr != nil {
			http.Error(w, buildErr.Error(), http.StatusInternalServerError)
			return
		}
	}

	var buf bytes.Buffer
	if execErr := s.tmpl.ExecuteTemplate(&buf, "users.html", view); execErr != nil {
		log.Error().Ctx(ctx).Err(execErr).Msg("rendering template")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// fillPage paginates records onto page and fills the table and control strip.
func (s *Server) fillPage(view *pageView, records users.RecordSet, page int) error {
	p, err := pagination.New([]users.User(records), s.opts.PageSize)
	if err != nil {
		return err
	}
	p.GoToPage(page)

	loc := s.opts.Localizer
	pg := render.NewPage(p, s.opts.Window)

	view.Columns = loc.Columns()
	view.Rows = make([][]string, 0, len(pg.Users))
	for _, u := range pg.Users {
		view.Rows = append(view.Rows, u.Row())
	}

	view.Controls = make([]controlView, 0, len(pg.Controls))
	for _, c := range pg.Controls {
		view.Controls = append(view.Controls, controlView{
			Label:    render.ControlLabel(c),
			Title:    render.ControlTitle(loc, c),
			Href:     "?page=" + strconv.Itoa(c.Page),
			Active:   c.Active,
			Disabled: c.Disabled,
		})
	}
	view.Footer = render.Footer(loc, pg.Meta)
	return nil
}

// requestedPage reads ?page=N. Missing or malformed values select page 1;
// out-of-range values are left for GoToPage to ignore.
func requestedPage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return pagination.FirstPage
	}
	return page
}

// Run listens on addr and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info().Ctx(ctx).Str("addr", ln.Addr().String()).Msg("server listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		s.logger.Info().Ctx(ctx).Msg("shutting down server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	})

	return g.Wait()
}
