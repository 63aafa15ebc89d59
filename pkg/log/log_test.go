package log_test

import (
	"context"
	"testing"

	"task-nlp/pkg/log"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	if got := log.RequestID(ctx); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}

	ctx = log.WithRequestID(ctx, "abc-123")
	if got := log.RequestID(ctx); got != "abc-123" {
		t.Errorf("expected abc-123, got %q", got)
	}
}

func TestInit(t *testing.T) {
	configs := []log.ZapConfig{
		{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true},
		{Level: "info", Mode: "production", Encoding: "json"},
		{Level: "not-a-level", Mode: "debug", Encoding: "console"},
	}

	for _, cfg := range configs {
		l := log.Init(cfg)
		if l == nil {
			t.Fatalf("Init(%+v) returned nil", cfg)
		}
		l.Debugf(log.WithRequestID(context.Background(), "req-1"), "logger ready: %s", cfg.Level)
	}
}

func TestNewNop(t *testing.T) {
	l := log.NewNop()
	l.Info(context.Background(), "discarded")
	l.Errorf(context.Background(), "discarded %d", 1)
}
