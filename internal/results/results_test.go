package results

import (
	"errors"
	"testing"
)

func TestMapToHandlerResults(t *testing.T) {
	type payload struct{ Value string }

	t.Run("success maps to the success topic", func(t *testing.T) {
		r := Success(&payload{Value: "ok"})

		out := r.MapToHandlerResults("topic.success", "topic.failure")
		if len(out) != 1 || out[0].Topic != "topic.success" {
			t.Fatalf("unexpected results %v", out)
		}
		if out[0].Payload.(*payload).Value != "ok" {
			t.Errorf("payload not carried through")
		}
	})

	t.Run("failure maps to the failure topic", func(t *testing.T) {
		r := Failure(&payload{Value: "rejected"})

		out := r.MapToHandlerResults("topic.success", "topic.failure")
		if len(out) != 1 || out[0].Topic != "topic.failure" {
			t.Fatalf("unexpected results %v", out)
		}
	})

	t.Run("empty envelope maps to no results", func(t *testing.T) {
		var r OperationResult

		if out := r.MapToHandlerResults("topic.success", "topic.failure"); out != nil {
			t.Fatalf("expected no results, got %v", out)
		}
	})

	t.Run("error envelope maps to no results", func(t *testing.T) {
		r := Error(errors.New("infrastructure down"))

		if out := r.MapToHandlerResults("topic.success", "topic.failure"); out != nil {
			t.Fatalf("expected no results, got %v", out)
		}
	})
}
