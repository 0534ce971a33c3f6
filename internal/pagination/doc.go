// Package pagination provides the client-side pager used by every userpage view.
//
// This package contains the pagination logic shared by the TUI, the plain renderers
// and the HTML server, including:
//   - Paginator: 1-based page state over an in-memory record set
//   - Meta: Response metadata for the current page
//   - Params: CLI flag validation for page, page size and control window
//
// All views derive the visible slice and the page-number control window from the
// same Paginator so navigation behaves identically regardless of the output mode.
package pagination
