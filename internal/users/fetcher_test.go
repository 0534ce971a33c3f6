package users

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleUsers = `[
  {"id": 1, "firstname": "Ivan", "lastname": "Petrov", "email": "ivan@example.com", "phone": "+7 900 000-00-01", "updatedAt": "2024-01-02T10:00:00Z"},
  {"id": 2, "firstname": "Anna", "lastname": "Sidorova", "email": "anna@example.com", "phone": "+7 900 000-00-02", "updatedAt": "2024-01-03T11:30:00Z"}
]`

func newUpstream(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPFetcher_Success(t *testing.T) {
	srv := newUpstream(t, http.StatusOK, sampleUsers)

	records, err := NewHTTPFetcher(srv.URL, srv.Client()).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, User{
		ID:        1,
		FirstName: "Ivan",
		LastName:  "Petrov",
		Email:     "ivan@example.com",
		Phone:     "+7 900 000-00-01",
		UpdatedAt: "2024-01-02T10:00:00Z",
	}, records[0])
}

func TestHTTPFetcher_EmptyArray(t *testing.T) {
	srv := newUpstream(t, http.StatusOK, `[]`)

	records, err := NewHTTPFetcher(srv.URL, srv.Client()).Fetch(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestHTTPFetcher_NullBody(t *testing.T) {
	srv := newUpstream(t, http.StatusOK, `null`)

	records, err := NewHTTPFetcher(srv.URL, srv.Client()).Fetch(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestHTTPFetcher_Failures(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
	}{
		{"not found", http.StatusNotFound, `{"error":"missing"}`, http.StatusNotFound},
		{"service unavailable", http.StatusServiceUnavailable, ``, http.StatusServiceUnavailable},
		{"redirect status without location", http.StatusMultipleChoices, ``, http.StatusMultipleChoices},
		{"undecodable body", http.StatusOK, `{"not":"an array"}`, StatusTransportFailure},
		{"truncated body", http.StatusOK, `[{"id": 1`, StatusTransportFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newUpstream(t, tt.status, tt.body)

			records, err := NewHTTPFetcher(srv.URL, srv.Client()).Fetch(context.Background())
			require.Error(t, err)
			assert.Nil(t, records)

			var fetchErr *FetchError
			require.ErrorAs(t, err, &fetchErr)
			assert.Equal(t, tt.wantStatus, fetchErr.StatusCode)
			assert.Equal(t, srv.URL, fetchErr.URL)
		})
	}
}

func TestHTTPFetcher_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPFetcher(url, nil).Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, StatusTransportFailure, StatusCode(err))
	assert.True(t, IsFetchError(err))
}

func TestHTTPFetcher_ContextDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := NewHTTPFetcher(srv.URL, srv.Client()).Fetch(ctx)
	require.Error(t, err)
	assert.Equal(t, StatusTransportFailure, StatusCode(err))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestHTTPFetcher_InvalidURL(t *testing.T) {
	_, err := NewHTTPFetcher("://bad url", nil).Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, StatusTransportFailure, StatusCode(err))
}

func TestFetcherFunc(t *testing.T) {
	want := RecordSet{{ID: 7}}
	f := FetcherFunc(func(context.Context) (RecordSet, error) { return want, nil })

	got, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
