package http

import (
	"strings"
	"time"

	"task-nlp/internal/task"
	"task-nlp/pkg/response"
)

// --- Request DTOs ---

type extractReq struct {
	Text string `json:"text" binding:"required,max=4096"`
	Now  string `json:"now"` // optional RFC3339 reference instant
}

func (r extractReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return task.ErrEmptyInput
	}
	return nil
}

// referenceInstant parses the optional now field, keeping its UTC offset as
// the wall-clock frame.
func (r extractReq) referenceInstant() (time.Time, error) {
	if r.Now == "" {
		return time.Time{}, nil
	}
	now, err := time.Parse(time.RFC3339, r.Now)
	if err != nil {
		return time.Time{}, task.ErrInvalidNow
	}
	return now, nil
}

func (r extractReq) toInput() (task.ExtractInput, error) {
	now, err := r.referenceInstant()
	if err != nil {
		return task.ExtractInput{}, err
	}
	return task.ExtractInput{Text: r.Text, Now: now}, nil
}

func (r extractReq) toBulkInput() (task.ExtractBulkInput, error) {
	now, err := r.referenceInstant()
	if err != nil {
		return task.ExtractBulkInput{}, err
	}
	return task.ExtractBulkInput{RawText: r.Text, Now: now}, nil
}

// --- Response DTOs ---

type taskResp struct {
	Title       string            `json:"title"`
	DueDate     response.DateTime `json:"due_date"`
	Rule        string            `json:"rule"`
	DateClause  string            `json:"date_clause,omitempty"`
	TimeClause  string            `json:"time_clause,omitempty"`
	DefaultTime bool              `json:"default_time"`
}

func newTaskResp(t task.ExtractedTask) taskResp {
	return taskResp{
		Title:       t.Title,
		DueDate:     response.DateTime(t.DueDate),
		Rule:        string(t.Resolution.Kind),
		DateClause:  t.Resolution.DateClause,
		TimeClause:  t.Resolution.TimeClause,
		DefaultTime: t.Resolution.DefaultTime,
	}
}

type extractResp struct {
	Task taskResp          `json:"task"`
	Now  response.DateTime `json:"now"`
}

func (h *handler) newExtractResp(out task.ExtractOutput) extractResp {
	return extractResp{
		Task: newTaskResp(out.Task),
		Now:  response.DateTime(out.Now),
	}
}

type extractBulkResp struct {
	Tasks []taskResp        `json:"tasks"`
	Count int               `json:"count"`
	Now   response.DateTime `json:"now"`
}

func (h *handler) newExtractBulkResp(out task.ExtractBulkOutput) extractBulkResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return extractBulkResp{
		Tasks: tasks,
		Count: out.TaskCount,
		Now:   response.DateTime(out.Now),
	}
}
