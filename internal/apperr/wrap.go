// internal/apperr/wrap.go
package apperr

import "fmt"

// Wrap adds context to an error at a package boundary.
// Returns nil if err is nil, so it is safe inline. The chain is
// preserved: errors.Is() against the wrapped sentinel keeps working.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf is Wrap with format arguments.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
