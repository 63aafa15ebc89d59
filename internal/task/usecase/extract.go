package usecase

import (
	"context"
	"strings"
	"time"

	"task-nlp/internal/task"
	"task-nlp/pkg/datemath"
)

// Extract resolves the due date of a single task utterance.
func (uc *implUseCase) Extract(ctx context.Context, input task.ExtractInput) (task.ExtractOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.ExtractOutput{}, task.ErrEmptyInput
	}

	now := uc.referenceInstant(input.Now)
	t := uc.extractOne(ctx, input.Text, now)

	return task.ExtractOutput{
		Task: t,
		Now:  now,
	}, nil
}

// ExtractBulk resolves every non-blank line of the input against one shared reference instant.
func (uc *implUseCase) ExtractBulk(ctx context.Context, input task.ExtractBulkInput) (task.ExtractBulkOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return task.ExtractBulkOutput{}, task.ErrEmptyInput
	}

	lines := splitLines(input.RawText)
	uc.l.Infof(ctx, "ExtractBulk: input_length=%d lines=%d", len(input.RawText), len(lines))

	now := uc.referenceInstant(input.Now)
	tasks := make([]task.ExtractedTask, 0, len(lines))
	for _, line := range lines {
		tasks = append(tasks, uc.extractOne(ctx, line, now))
	}

	return task.ExtractBulkOutput{
		Tasks:     tasks,
		TaskCount: len(tasks),
		Now:       now,
	}, nil
}

func (uc *implUseCase) extractOne(ctx context.Context, text string, now time.Time) task.ExtractedTask {
	info := datemath.ExtractTaskInfo(text, now)
	res := datemath.Explain(text, now)

	uc.l.Debugf(ctx, "Extract: rule=%s date_clause=%q time_clause=%q due=%s",
		res.Kind, res.DateClause, res.TimeClause, info.DueDate.Format(time.RFC3339))

	return task.ExtractedTask{
		Title:      info.Title,
		DueDate:    info.DueDate,
		Resolution: res,
	}
}
