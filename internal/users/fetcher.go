package users

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rshade/userpage/internal/logging"
)

// maxResponseBytes caps the upstream body read into memory.
const maxResponseBytes = 32 << 20

// Fetcher loads the full user record set.
type Fetcher interface {
	Fetch(ctx context.Context) (RecordSet, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context) (RecordSet, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context) (RecordSet, error) {
	return f(ctx)
}

// HTTPFetcher fetches users with a single GET against an upstream URL.
type HTTPFetcher struct {
	url    string
	client *http.Client
}

// NewHTTPFetcher returns a fetcher for url. A nil client uses http.DefaultClient.
func NewHTTPFetcher(url string, client *http.Client) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{url: url, client: client}
}

// URL returns the upstream endpoint.
func (f *HTTPFetcher) URL() string {
	return f.url
}

// Fetch performs the upstream call. It is not retried: any non-2xx status,
// transport error or undecodable body is returned as a *FetchError.
func (f *HTTPFetcher) Fetch(ctx context.Context) (RecordSet, error) {
	log := logging.FromContext(ctx)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, &FetchError{StatusCode: StatusTransportFailure, URL: f.url, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		log.Warn().
			Ctx(ctx).
			Str("component", "users").
			Str("url", f.url).
			Err(err).
			Msg("upstream request failed")
		return nil, &FetchError{StatusCode: StatusTransportFailure, URL: f.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		log.Warn().
			Ctx(ctx).
			Str("component", "users").
			Str("url", f.url).
			Int("status", resp.StatusCode).
			Msg("upstream returned non-success status")
		return nil, &FetchError{StatusCode: resp.StatusCode, URL: f.url}
	}

	var records RecordSet
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&records); err != nil {
		return nil, &FetchError{StatusCode: StatusTransportFailure, URL: f.url, Err: fmt.Errorf("decode users: %w", err)}
	}
	if records == nil {
		records = RecordSet{}
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "users").
		Str("url", f.url).
		Int("count", len(records)).
		Dur("duration", time.Since(start)).
		Msg("fetched users")

	return records, nil
}
