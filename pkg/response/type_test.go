package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"task-nlp/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	dt := response.DateTime(time.Date(2024, 6, 11, 15, 0, 0, 0, loc))

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	// Wall clock is kept; no conversion to the runner's zone.
	if string(b) != `"2024-06-11T15:00:00"` {
		t.Errorf("expected \"2024-06-11T15:00:00\", got %s", b)
	}
}

func TestRespOmitEmpty(t *testing.T) {
	b, err := json.Marshal(response.Resp{ErrorCode: 0, Message: "ok"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `{"error_code":0,"message":"ok"}` {
		t.Errorf("unexpected JSON: %s", b)
	}
}
