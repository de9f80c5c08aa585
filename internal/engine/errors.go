package engine

import "fmt"

// ValidationError reports a rejected evaluation input. The engine never
// silently substitutes a default stage profile or clamps an out-of-range
// pillar score; it surfaces the condition to the caller instead.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func validationErrorf(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
