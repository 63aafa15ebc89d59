package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"task-nlp/internal/middleware"
	"task-nlp/internal/task"
	taskHTTP "task-nlp/internal/task/delivery/http"
	"task-nlp/internal/task/usecase"
	"task-nlp/pkg/log"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockTaskUseCase struct {
	extractErr     error
	extractBulkErr error
	lastInput      task.ExtractInput
}

func (m *mockTaskUseCase) Extract(ctx context.Context, input task.ExtractInput) (task.ExtractOutput, error) {
	m.lastInput = input
	return task.ExtractOutput{}, m.extractErr
}

func (m *mockTaskUseCase) ExtractBulk(ctx context.Context, input task.ExtractBulkInput) (task.ExtractBulkOutput, error) {
	return task.ExtractBulkOutput{}, m.extractBulkErr
}

// ── Test Helpers ───────────────────────────────────────────────────────────

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

type taskBody struct {
	Title       string `json:"title"`
	DueDate     string `json:"due_date"`
	Rule        string `json:"rule"`
	DateClause  string `json:"date_clause"`
	TimeClause  string `json:"time_clause"`
	DefaultTime bool   `json:"default_time"`
}

func newEngine(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	r := gin.New()
	h := taskHTTP.New(l, uc)
	taskHTTP.RegisterRoutes(r.Group("/api/v1"), h, middleware.New(l, middleware.Config{}))
	return r
}

func post(t *testing.T, r *gin.Engine, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
	}
	return w, env
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestExtract(t *testing.T) {
	r := newEngine(usecase.New(log.NewNop(), time.UTC))

	tests := []struct {
		name     string
		text     string
		wantDue  string
		wantRule string
	}{
		{"Tomorrow with hour", "amanhã às 15h", "2024-06-11T15:00:00", "tomorrow"},
		{"Next friday", "próxima sexta", "2024-06-14T09:00:00", "weekday"},
		{"Same weekday", "segunda-feira", "2024-06-17T09:00:00", "weekday"},
		{"Rollover", "15/03", "2025-03-15T09:00:00", "explicit"},
		{"Invalid date", "31/02/2024", "2024-06-10T09:00:00", "explicit"},
		{"No date", "reunião 14:30", "2024-06-10T14:30:00", "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := post(t, r, "/api/v1/tasks/extract", map[string]string{
				"text": tt.text,
				"now":  "2024-06-10T10:00:00Z",
			})
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
			}

			var data struct {
				Task taskBody `json:"task"`
				Now  string   `json:"now"`
			}
			if err := json.Unmarshal(env.Data, &data); err != nil {
				t.Fatalf("unmarshal data: %v", err)
			}
			if data.Task.Title != tt.text {
				t.Errorf("title = %q, want %q", data.Task.Title, tt.text)
			}
			if data.Task.DueDate != tt.wantDue {
				t.Errorf("due_date = %s, want %s", data.Task.DueDate, tt.wantDue)
			}
			if data.Task.Rule != tt.wantRule {
				t.Errorf("rule = %s, want %s", data.Task.Rule, tt.wantRule)
			}
			if data.Now != "2024-06-10T10:00:00" {
				t.Errorf("now = %s", data.Now)
			}
		})
	}
}

func TestExtract_KeepsCallerOffset(t *testing.T) {
	r := newEngine(usecase.New(log.NewNop(), time.UTC))

	// 23:30 in São Paulo is already the next day in UTC; the wall clock of
	// the caller decides what "amanhã" means.
	_, env := post(t, r, "/api/v1/tasks/extract", map[string]string{
		"text": "amanhã",
		"now":  "2024-06-10T23:30:00-03:00",
	})

	var data struct {
		Task taskBody `json:"task"`
	}
	json.Unmarshal(env.Data, &data)
	if data.Task.DueDate != "2024-06-11T09:00:00" {
		t.Errorf("due_date = %s, want 2024-06-11T09:00:00", data.Task.DueDate)
	}
	if !data.Task.DefaultTime {
		t.Error("expected default_time true")
	}
}

func TestExtract_BadRequests(t *testing.T) {
	muc := &mockTaskUseCase{}
	r := newEngine(muc)

	tests := []struct {
		name string
		body any
	}{
		{"Malformed JSON", "{not json"},
		{"Missing text", map[string]string{"now": "2024-06-10T10:00:00Z"}},
		{"Blank text", map[string]string{"text": "   "}},
		{"Invalid now", map[string]string{"text": "amanhã", "now": "10/06/2024"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := post(t, r, "/api/v1/tasks/extract", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
			if env.ErrorCode != http.StatusBadRequest {
				t.Errorf("expected error_code 400, got %d", env.ErrorCode)
			}
		})
	}
}

func TestExtract_UseCaseError(t *testing.T) {
	muc := &mockTaskUseCase{extractErr: errors.New("boom")}
	r := newEngine(muc)

	w, env := post(t, r, "/api/v1/tasks/extract", map[string]string{"text": "amanhã"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if env.Message == "boom" {
		t.Error("internal error message leaked to client")
	}
	if !muc.lastInput.Now.IsZero() {
		t.Errorf("expected zero now when omitted, got %v", muc.lastInput.Now)
	}
}

func TestExtractBulk(t *testing.T) {
	r := newEngine(usecase.New(log.NewNop(), time.UTC))

	w, env := post(t, r, "/api/v1/tasks/extract/bulk", map[string]string{
		"text": "amanhã às 15h\n\nreunião 14:30\nem 3 dias",
		"now":  "2024-06-10T10:00:00Z",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var data struct {
		Tasks []taskBody `json:"tasks"`
		Count int        `json:"count"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}

	wantDue := []string{"2024-06-11T15:00:00", "2024-06-10T14:30:00", "2024-06-13T09:00:00"}
	if data.Count != len(wantDue) || len(data.Tasks) != len(wantDue) {
		t.Fatalf("count = %d, want %d", data.Count, len(wantDue))
	}
	for i, due := range wantDue {
		if data.Tasks[i].DueDate != due {
			t.Errorf("task %d due = %s, want %s", i, data.Tasks[i].DueDate, due)
		}
	}
}

func TestExtractBulk_EmptyInput(t *testing.T) {
	muc := &mockTaskUseCase{extractBulkErr: task.ErrEmptyInput}
	r := newEngine(muc)

	w, _ := post(t, r, "/api/v1/tasks/extract/bulk", map[string]string{"text": "x"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
