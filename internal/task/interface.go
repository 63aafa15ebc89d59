package task

import "context"

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Extract resolves the title and due date of a single task utterance.
	Extract(ctx context.Context, input ExtractInput) (ExtractOutput, error)

	// ExtractBulk resolves one task per non-blank line of the input.
	ExtractBulk(ctx context.Context, input ExtractBulkInput) (ExtractBulkOutput, error)
}
