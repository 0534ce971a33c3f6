package cli

import (
	"github.com/rshade/userpage/internal/users"
)

// Process exit codes.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitFetchFailure = 2
)

// ExitCode maps a command error to the process exit code: upstream fetch
// failures exit with ExitFetchFailure, any other error with ExitFailure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case users.IsFetchError(err):
		return ExitFetchFailure
	default:
		return ExitFailure
	}
}

// IsReported reports whether err has already been shown to the user.
// Fetch failures print their localised alert before returning.
func IsReported(err error) bool {
	return users.IsFetchError(err)
}
