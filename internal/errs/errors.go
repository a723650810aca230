package errs

import (
	"github.com/pkg/errors"
)

// NotFound class: the referenced row is absent. Surfaced, never retried.
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrAttachmentNotFound = errors.New("attachment not found")
)

// Validation class: rejected at the mutation/workflow boundary before any
// store call is made.
var (
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidPriority = errors.New("invalid task priority")
	// ErrSubtaskNesting rejects a task whose designated parent is itself a
	// subtask; the hierarchy is two levels deep at most.
	ErrSubtaskNesting = errors.New("parent task is already a subtask")
	ErrEmptyTitle     = errors.New("task title must not be empty")
)

// IsNotFound reports whether err is one of the NotFound sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTaskNotFound) ||
		errors.Is(err, ErrCommentNotFound) ||
		errors.Is(err, ErrAttachmentNotFound)
}

// IsValidation reports whether err is one of the validation sentinels.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidPriority) ||
		errors.Is(err, ErrSubtaskNesting) ||
		errors.Is(err, ErrEmptyTitle)
}
