package fastersql

import (
	"errors"
	"fmt"

	"github.com/zoobzio/fastersql/internal/render"
)

var (
	// ErrConstruction is wrapped by every ConstructionError.
	ErrConstruction = errors.New("invalid construction")

	// ErrValidation is wrapped by every ValidationError.
	ErrValidation = errors.New("invalid statement")
)

// ConstructionError reports a missing or blank required argument when
// building a table, column or node.
type ConstructionError struct {
	What   string
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.What, e.Reason)
}

func (e *ConstructionError) Unwrap() error {
	return ErrConstruction
}

// ValidationError reports a statement that cannot be rendered.
type ValidationError struct {
	Statement string
	Reason    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s statement: %s", e.Statement, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func constructionError(what, format string, args ...any) *ConstructionError {
	return &ConstructionError{What: what, Reason: fmt.Sprintf(format, args...)}
}

func invalid(stmt Command, format string, args ...any) *ValidationError {
	return &ValidationError{Statement: string(stmt), Reason: fmt.Sprintf(format, args...)}
}

func unsupported(d Dialect, construct string) error {
	return render.Unsupported(d.Name(), construct)
}
