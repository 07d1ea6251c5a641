// Error taxonomy shared across stores, services and handlers. Sentinel
// values let callers distinguish failure classes: validation and conflict
// errors are rejected before any write, state errors guard one-way
// transitions such as finalization, and anything else is treated as a
// storage failure.
package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a name/ID/position lookup has no record.
var ErrNotFound = errors.New("not found")

// ValidationError reports malformed user input. Nothing is written when one
// is returned.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", joinMessages(e.Messages))
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Messages: []string{fmt.Sprintf(format, args...)}}
}

// ConflictError reports a duplicate name/position or a rename that collides
// with an existing entity.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func NewConflictError(format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// StateError reports an operation rejected by entity state: editing or
// deleting a finalized event, deleting a wrestler or team with a match
// record, finalizing twice.
type StateError struct {
	Message string
}

func (e *StateError) Error() string { return e.Message }

func NewStateError(format string, args ...any) *StateError {
	return &StateError{Message: fmt.Sprintf(format, args...)}
}

// WarningsError carries outstanding consistency warnings when a finalize is
// attempted without acknowledgment. The warnings themselves are advisory;
// only the missing acknowledgment blocks the operation.
type WarningsError struct {
	Warnings []string
}

func (e *WarningsError) Error() string {
	return fmt.Sprintf("outstanding warnings require acknowledgment: %s", joinMessages(e.Warnings))
}

func joinMessages(msgs []string) string {
	out := ""
	for i, m := range msgs {
		if i > 0 {
			out += "; "
		}
		out += m
	}
	return out
}
