package render

import (
	"errors"
	"fmt"
)

// ErrUnsupported is the sentinel wrapped by UnsupportedConstructError.
var ErrUnsupported = errors.New("unsupported construct")

// UnsupportedConstructError indicates a construct the dialect cannot express.
type UnsupportedConstructError struct {
	Dialect   string
	Construct string
	Hint      string
}

func (e *UnsupportedConstructError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s does not support %s: %s", e.Dialect, e.Construct, e.Hint)
	}
	return fmt.Sprintf("%s does not support %s", e.Dialect, e.Construct)
}

func (e *UnsupportedConstructError) Unwrap() error {
	return ErrUnsupported
}

// Unsupported creates a new unsupported construct error.
func Unsupported(dialect, construct string, hint ...string) error {
	err := &UnsupportedConstructError{Dialect: dialect, Construct: construct}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}
