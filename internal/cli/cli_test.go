package cli_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/userpage/internal/cli"
	"github.com/rshade/userpage/internal/config"
	"github.com/rshade/userpage/internal/users"
)

// setupCLITest isolates config and environment and registers cleanup for global state.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv("NO_COLOR", "1")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

func upstream(t *testing.T, n int) *httptest.Server {
	t.Helper()
	rs := make(users.RecordSet, n)
	for i := range rs {
		rs[i] = users.User{
			ID:        i + 1,
			FirstName: fmt.Sprintf("First%d", i+1),
			LastName:  fmt.Sprintf("Last%02d", n-i),
			Email:     fmt.Sprintf("user%d@example.com", i+1),
			Phone:     "+1-555-0100",
			UpdatedAt: "2024-01-01",
		}
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(rs)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func failingUpstream(t *testing.T, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

type listDoc struct {
	Users      []users.User `json:"users"`
	Pagination struct {
		CurrentPage int `json:"current_page"`
		TotalPages  int `json:"total_pages"`
		TotalItems  int `json:"total_items"`
	} `json:"pagination"`
	Controls []int `json:"controls"`
}

func TestList_JSONPage(t *testing.T) {
	setupCLITest(t)
	srv := upstream(t, 47)

	out, _, err := execute(t, "list", "--url", srv.URL, "--page", "3", "--output", "json")
	require.NoError(t, err)

	var doc listDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Users, 7)
	assert.Equal(t, 41, doc.Users[0].ID)
	assert.Equal(t, 3, doc.Pagination.CurrentPage)
	assert.Equal(t, 3, doc.Pagination.TotalPages)
	assert.Equal(t, 47, doc.Pagination.TotalItems)
	assert.Equal(t, []int{1, 2, 3}, doc.Controls)
}

func TestList_OutOfRangePageShowsFirst(t *testing.T) {
	setupCLITest(t)
	srv := upstream(t, 47)

	out, _, err := execute(t, "list", "--url", srv.URL, "--page", "9", "-o", "json")
	require.NoError(t, err)

	var doc listDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 1, doc.Pagination.CurrentPage)
	assert.Equal(t, 1, doc.Users[0].ID)
}

func TestList_PlainTable(t *testing.T) {
	setupCLITest(t)
	srv := upstream(t, 47)

	out, _, err := execute(t, "list", "--url", srv.URL, "--page", "2", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "user21@example.com")
	assert.Contains(t, out, "« ‹ 1 [2] 3 › »")
	assert.Contains(t, out, "Page 2 of 3 · 47 users")
}

func TestList_PageSizeWindowAndSort(t *testing.T) {
	setupCLITest(t)
	srv := upstream(t, 47)

	out, _, err := execute(t, "list", "--url", srv.URL,
		"--page-size", "5", "--window", "3", "--sort", "lastname", "-o", "json")
	require.NoError(t, err)

	var doc listDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Users, 5)
	assert.Equal(t, "Last01", doc.Users[0].LastName)
	assert.Equal(t, 10, doc.Pagination.TotalPages)
	assert.Equal(t, []int{1, 2, 3}, doc.Controls)
}

func TestList_NDJSONAndYAML(t *testing.T) {
	setupCLITest(t)
	srv := upstream(t, 3)

	out, _, err := execute(t, "list", "--url", srv.URL, "-o", "ndjson")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)

	out, _, err = execute(t, "list", "--url", srv.URL, "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "pagination:")
	assert.Contains(t, out, "email: user1@example.com")
}

func TestList_Russian(t *testing.T) {
	setupCLITest(t)
	srv := failingUpstream(t, http.StatusNotFound)

	_, stderr, err := execute(t, "list", "--url", srv.URL, "--locale", "ru", "--plain")
	require.Error(t, err)
	assert.Contains(t, stderr, "Ошибка 404 при загрузке данных")
}

func TestList_UpstreamNotFound(t *testing.T) {
	setupCLITest(t)
	srv := failingUpstream(t, http.StatusNotFound)

	out, stderr, err := execute(t, "list", "--url", srv.URL, "--plain")
	require.Error(t, err)
	assert.Equal(t, cli.ExitFetchFailure, cli.ExitCode(err))
	assert.True(t, cli.IsReported(err))
	assert.Equal(t, 404, users.StatusCode(err))

	assert.Empty(t, out, "no table or controls on failure")
	assert.Contains(t, stderr, "Error 404 while loading data")
}

func TestList_EmptyArray(t *testing.T) {
	setupCLITest(t)
	srv := upstream(t, 0)

	out, _, err := execute(t, "list", "--url", srv.URL, "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "No users")
	assert.NotContains(t, out, "»")

	out, _, err = execute(t, "list", "--url", srv.URL, "-o", "json")
	require.NoError(t, err)
	var doc listDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Empty(t, doc.Users)
	assert.Equal(t, 0, doc.Pagination.TotalPages)
	assert.Equal(t, 1, doc.Pagination.CurrentPage)
}

func TestList_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"page size zero", []string{"--page-size", "0"}, "page-size"},
		{"window too large", []string{"--window", "51"}, "window"},
		{"unknown output", []string{"-o", "csv"}, "unknown output format"},
		{"bad sort field", []string{"--sort", "age"}, "sort field"},
		{"unsupported locale", []string{"--locale", "fr"}, `unsupported locale "fr"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)
			args := append([]string{"list", "--url", "http://127.0.0.1:1/users"}, tt.args...)
			_, _, err := execute(t, args...)
			require.Error(t, err)
			assert.Contains(t, strings.ToLower(err.Error()), tt.want)
			assert.Equal(t, cli.ExitFailure, cli.ExitCode(err))
		})
	}
}

func TestList_ConfigFromEnvironment(t *testing.T) {
	setupCLITest(t)
	srv := upstream(t, 30)
	t.Setenv(config.EnvSourceURL, srv.URL)
	t.Setenv(config.EnvPageSize, "10")
	t.Setenv(config.EnvOutputFormat, "json")

	out, _, err := execute(t, "list")
	require.NoError(t, err)

	var doc listDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc.Users, 10)
	assert.Equal(t, 3, doc.Pagination.TotalPages)
}

func TestServe_RejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
		want string
	}{
		{"page size above limit", map[string]string{config.EnvPageSize: "5000"}, nil, "page-size"},
		{"window above limit", map[string]string{config.EnvWindow: "51"}, nil, "window"},
		{"unsupported locale flag", nil, []string{"--locale", "fr"}, `unsupported locale "fr"`},
		{"unsupported locale env", map[string]string{config.EnvLocale: "de"}, nil, `unsupported locale "de"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			args := append([]string{"serve", "--addr", "127.0.0.1:0", "--url", "http://127.0.0.1:1/users"}, tt.args...)
			out, _, err := execute(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.NotContains(t, out, "Serving users")
		})
	}
}

func TestConfigInitShowValidate(t *testing.T) {
	home := setupCLITest(t)

	out, _, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")
	assert.FileExists(t, filepath.Join(home, "config.yaml"))

	_, _, err = execute(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)

	out, _, err = execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "page_size: 20")
	assert.Contains(t, out, "url: http://localhost:3000/users")

	out, _, err = execute(t, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
}

func TestConfigValidate_Invalid(t *testing.T) {
	home := setupCLITest(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("pagination:\n  page_size: 5000\n"), 0o600))

	_, _, err := execute(t, "config", "validate")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "PageSize")
}

func TestRootCmd(t *testing.T) {
	setupCLITest(t)
	cmd := cli.NewRootCmd("1.2.3")
	assert.Equal(t, "userpage", cmd.Use)
	assert.Equal(t, "1.2.3", cmd.Version)

	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"list", "serve", "config"})
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, cli.ExitOK, cli.ExitCode(nil))
	assert.Equal(t, cli.ExitFailure, cli.ExitCode(fmt.Errorf("boom")))
	assert.Equal(t, cli.ExitFetchFailure, cli.ExitCode(fmt.Errorf("wrapped: %w", &users.FetchError{StatusCode: 503})))
}
