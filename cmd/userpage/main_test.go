package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/userpage/internal/config"
)

func setupMainTest(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvHome, t.TempDir())
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv("NO_COLOR", "1")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
}

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		args       []string
		wantCode   int
		wantStderr string
	}{
		{
			name:     "success",
			status:   http.StatusOK,
			body:     `[{"id":1,"firstname":"Ada","lastname":"Lovelace","email":"ada@example.com","phone":"1","updatedAt":"2024-01-01"}]`,
			args:     []string{"--output", "json"},
			wantCode: 0,
		},
		{
			name:       "fetch failure exits 2 with alert only",
			status:     http.StatusNotFound,
			args:       []string{"--plain"},
			wantCode:   2,
			wantStderr: "Error 404 while loading data\n",
		},
		{
			name:       "usage error exits 1",
			status:     http.StatusOK,
			body:       `[]`,
			args:       []string{"--page-size", "0"},
			wantCode:   1,
			wantStderr: "Error: page-size must be between 1 and 1000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupMainTest(t)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			var stderr bytes.Buffer
			args := append([]string{"list", "--url", srv.URL}, tt.args...)
			code := run(context.Background(), args, &stderr)

			assert.Equal(t, tt.wantCode, code)
			if tt.wantStderr != "" {
				assert.Contains(t, stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestRun_Version(t *testing.T) {
	setupMainTest(t)
	var stderr bytes.Buffer
	assert.Equal(t, 0, run(context.Background(), []string{"--version"}, &stderr))
	assert.Empty(t, stderr.String())
}
