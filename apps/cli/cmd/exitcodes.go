package cmd

import (
	"errors"

	"github.com/abdul-hamid-achik/minihttp/packages/core/config"
	"github.com/abdul-hamid-achik/minihttp/packages/http"
	"github.com/spf13/cobra"
)

// Exit codes for the minihttp CLI
const (
	// ExitSuccess indicates the response was rendered
	ExitSuccess = 0

	// ExitFailure indicates the response could not be rendered, or any
	// other unexpected failure
	ExitFailure = 1

	// ExitInputError indicates an invalid URL or key=value pair
	ExitInputError = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitNetworkError indicates a network/connection error
	ExitNetworkError = 4

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

// KindUsage tags command-line usage errors on the error stream.
const KindUsage = "UsageError"

// UsageError wraps wrong argument counts and flag parsing failures.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

func (e *UsageError) Kind() string { return KindUsage }

// usageArgs tags argument validation failures as usage errors.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return &UsageError{Err: err}
		}
		return nil
	}
}

func exitCode(err error) int {
	var (
		usageErr     *UsageError
		urlErr       *http.InvalidURLError
		kvErr        *http.InvalidKeyValuePairError
		cfgErr       *config.Error
		transportErr *http.TransportError
	)

	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &usageErr):
		return ExitUsageError
	case errors.As(err, &urlErr), errors.As(err, &kvErr):
		return ExitInputError
	case errors.As(err, &cfgErr):
		return ExitConfigError
	case errors.As(err, &transportErr):
		return ExitNetworkError
	default:
		return ExitFailure
	}
}
