// ABOUTME: Validation error type shared by models and the engine.
// ABOUTME: Validation failures are declined actions, not storage errors.
package models

import "fmt"

// ValidationError marks input that was rejected before reaching storage,
// such as an empty title or a future-dated completion.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
