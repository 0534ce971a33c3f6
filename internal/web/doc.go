// Package web serves the users table as a server-rendered HTML page.
//
// Every request to "/" fetches the upstream once, paginates the result and
// renders the requested page with a strip of page links. Upstream failures
// render only the localised alert with status 502.
package web
