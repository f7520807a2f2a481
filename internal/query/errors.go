// Package query implements the four public operations over a loaded
// transaction snapshot: list_transactions, list_grantees, show_grantee
// and aggregate_transactions. Operations are pure: they read the
// snapshot, allocate fresh results, and report failures as typed
// errors rather than panics.
package query

import "fmt"

type (
	// ValidationError marks a malformed or out-of-range parameter.
	// Always recoverable; transports report it as a tagged error
	// result.
	ValidationError struct {
		Msg string
	}

	// NotFoundError marks a failed lookup: unknown grantee, unknown
	// group key, unknown tool.
	NotFoundError struct {
		Msg string
	}
)

func (e *ValidationError) Error() string { return e.Msg }
func (e *NotFoundError) Error() string   { return e.Msg }

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func notFoundf(format string, args ...any) error {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}
