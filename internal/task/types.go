package task

import (
	"time"

	"task-nlp/pkg/datemath"
)

// ExtractInput is the input for single task extraction.
type ExtractInput struct {
	Text string    // Natural language task description, kept verbatim as the title
	Now  time.Time // Reference instant; zero means the use case clock
}

// ExtractedTask is a task with its resolved due date.
type ExtractedTask struct {
	Title      string
	DueDate    time.Time
	Resolution datemath.Resolution
}

// ExtractOutput is the result of single task extraction.
type ExtractOutput struct {
	Task ExtractedTask
	Now  time.Time // Reference instant actually used
}

// ExtractBulkInput is the input for bulk extraction.
type ExtractBulkInput struct {
	RawText string // One task per line
	Now     time.Time
}

// ExtractBulkOutput is the result of bulk extraction.
type ExtractBulkOutput struct {
	Tasks     []ExtractedTask
	TaskCount int
	Now       time.Time
}
