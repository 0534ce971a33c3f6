package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognised by userpage.
const (
	EnvHome          = "USERPAGE_HOME"
	EnvSourceURL     = "USERPAGE_SOURCE_URL"
	EnvSourceTimeout = "USERPAGE_SOURCE_TIMEOUT"
	EnvPageSize      = "USERPAGE_PAGE_SIZE"
	EnvWindow        = "USERPAGE_WINDOW"
	EnvOutputFormat  = "USERPAGE_OUTPUT_FORMAT"
	EnvLocale        = "USERPAGE_LOCALE"
	EnvLogLevel      = "USERPAGE_LOG_LEVEL"
	EnvLogFormat     = "USERPAGE_LOG_FORMAT"
	EnvLogFile       = "USERPAGE_LOG_FILE"
	EnvServerAddr    = "USERPAGE_SERVER_ADDR"
)

// withDotEnv returns a lookup that consults lookupEnv first and falls back to the
// values in the dotenv file at path. The process environment is not modified.
func withDotEnv(path string, lookupEnv func(string) (string, bool)) (func(string) (string, bool), error) {
	if path == "" {
		return lookupEnv, nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return lookupEnv, nil
		}
		return nil, fmt.Errorf("failed to load env file %s: %w", path, err)
	}

	return func(key string) (string, bool) {
		if v, ok := lookupEnv(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}, nil
}

// applyEnv overlays environment values onto c. Values that fail to parse are
// skipped and reported; the remaining values are still applied.
func (c *Config) applyEnv(lookup func(string) (string, bool)) []error {
	strs := map[string]*string{
		EnvSourceURL:    &c.Source.URL,
		EnvOutputFormat: &c.Output.DefaultFormat,
		EnvLocale:       &c.Output.Locale,
		EnvLogLevel:     &c.Logging.Level,
		EnvLogFormat:    &c.Logging.Format,
		EnvLogFile:      &c.Logging.File,
		EnvServerAddr:   &c.Server.Addr,
	}
	for key, target := range strs {
		if v, ok := lookup(key); ok && v != "" {
			*target = v
		}
	}

	ints := map[string]*int{
		EnvPageSize: &c.Pagination.PageSize,
		EnvWindow:   &c.Pagination.Window,
	}
	var errs []error
	for key, target := range ints {
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s must be an integer, got %q", key, v))
			continue
		}
		*target = n
	}

	if v, ok := lookup(EnvSourceTimeout); ok && v != "" {
		d, err := parseTimeout(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSourceTimeout, err))
		} else {
			c.Source.Timeout = d
		}
	}

	return errs
}

// parseTimeout accepts a Go duration ("15s") or a bare number of seconds ("15").
func parseTimeout(v string) (time.Duration, error) {
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", v)
	}
	return d, nil
}
