package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"task-nlp/internal/middleware"
	"task-nlp/pkg/log"
)

func newEngine(mw middleware.Middleware, captured *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID(), mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) {
		if captured != nil {
			*captured = log.RequestID(c.Request.Context())
		}
		c.String(http.StatusOK, "pong")
	})
	return r
}

func doGet(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	if header != "" {
		req.Header.Set(middleware.HeaderRequestID, header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	var captured string
	r := newEngine(middleware.New(log.NewNop(), middleware.Config{}), &captured)

	t.Run("Generated", func(t *testing.T) {
		w := doGet(r, "")
		id := w.Header().Get(middleware.HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("expected generated UUID, got %q", id)
		}
		if captured != id {
			t.Errorf("context id = %q, header id = %q", captured, id)
		}
	})

	t.Run("Propagated", func(t *testing.T) {
		want := uuid.NewString()
		w := doGet(r, want)
		if got := w.Header().Get(middleware.HeaderRequestID); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("Invalid replaced", func(t *testing.T) {
		w := doGet(r, "not-a-uuid")
		if got := w.Header().Get(middleware.HeaderRequestID); got == "not-a-uuid" {
			t.Error("expected invalid request id to be replaced")
		}
	})
}

func TestRateLimit(t *testing.T) {
	// 10/min gives a burst of 1 and a refill far slower than the test.
	mw := middleware.New(log.NewNop(), middleware.Config{RateLimitEnabled: true, RequestsPerMin: 10})
	r := newEngine(mw, nil)

	if w := doGet(r, ""); w.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", w.Code)
	}
	if w := doGet(r, ""); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", w.Code)
	}
}

func TestRateLimit_ConcurrentFirstRequests(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{RateLimitEnabled: true, RequestsPerMin: 10})
	r := newEngine(mw, nil)

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if w := doGet(r, ""); w.Code == http.StatusOK {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := allowed.Load(); got != 1 {
		t.Errorf("expected exactly 1 request within the burst, got %d", got)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	r := newEngine(middleware.New(log.NewNop(), middleware.Config{}), nil)

	for i := 0; i < 20; i++ {
		if w := doGet(r, ""); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
}
