package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput = errors.New("input text is empty")
	ErrInvalidNow = errors.New("now must be an RFC3339 timestamp")
)
