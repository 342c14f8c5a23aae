package leaderboardhandlers

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace/noop"

	leaderboardevents "github.com/ultimate-atpl/study-battle-bot/app/events/leaderboard"
	scoreevents "github.com/ultimate-atpl/study-battle-bot/app/events/score"
	leaderboardservice "github.com/ultimate-atpl/study-battle-bot/app/modules/leaderboard/application"
	leaderboardtypes "github.com/ultimate-atpl/study-battle-bot/app/types/leaderboard"
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
	"github.com/ultimate-atpl/study-battle-bot/internal/observability"
	"github.com/ultimate-atpl/study-battle-bot/internal/results"
)

func newTestHandlers(service leaderboardservice.Service) *LeaderboardHandlers {
	return NewLeaderboardHandlers(
		service,
		observability.NoOpLogger,
		noop.NewTracerProvider().Tracer("test"),
	)
}

func TestLeaderboardHandlers_HandleScoreUpdated(t *testing.T) {
	testPayload := &scoreevents.UpdatedPayloadV1{
		UserID: 2, DisplayName: "Bob", ChatID: -100123, Delta: 3, Daily: 11, Lifetime: 40,
	}

	t.Run("overtake plus board refresh", func(t *testing.T) {
		service := NewFakeLeaderboardService()
		service.CheckForOvertakeFunc = func(_ context.Context, actorID sharedtypes.UserID) (results.OperationResult, error) {
			if actorID != 2 {
				t.Errorf("expected actor 2, got %d", actorID)
			}
			return results.Success(&leaderboardservice.OvertakeFound{
				ActorID: 2, ActorName: "Bob",
				DisplacedID: 1, DisplacedName: "Alice",
				OldRank: 2, NewRank: 1,
			}), nil
		}
		service.BuildLeaderboardFunc = func(_ context.Context, scope sharedtypes.Scope, _ int) (results.OperationResult, error) {
			return results.Success(&leaderboardservice.BoardRetrieved{
				Scope:   scope,
				Entries: leaderboardtypes.Snapshot{{DisplayName: "Bob", Score: 11}},
			}), nil
		}
		h := newTestHandlers(service)

		got, err := h.HandleScoreUpdated(context.Background(), testPayload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 results, got %d", len(got))
		}
		if got[0].Topic != leaderboardevents.OvertakeDetectedV1 {
			t.Errorf("expected overtake first, got %s", got[0].Topic)
		}
		overtake := got[0].Payload.(*leaderboardevents.OvertakeDetectedPayloadV1)
		if overtake.DisplacedName != "Alice" || overtake.NewRank != 1 {
			t.Errorf("unexpected overtake payload: %+v", overtake)
		}
		if got[1].Topic != leaderboardevents.RetrievedV1 {
			t.Errorf("expected board second, got %s", got[1].Topic)
		}
		board := got[1].Payload.(*leaderboardevents.RetrievedPayloadV1)
		if !board.AutoTriggered {
			t.Error("expected auto-triggered board")
		}
		if board.ChatID != testPayload.ChatID {
			t.Errorf("expected chat id %d, got %d", testPayload.ChatID, board.ChatID)
		}
	})

	t.Run("no overtake still refreshes the board", func(t *testing.T) {
		service := NewFakeLeaderboardService()
		h := newTestHandlers(service)

		got, err := h.HandleScoreUpdated(context.Background(), testPayload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 result, got %d", len(got))
		}
		if got[0].Topic != leaderboardevents.RetrievedV1 {
			t.Errorf("expected board, got %s", got[0].Topic)
		}
	})

	t.Run("nil payload", func(t *testing.T) {
		h := newTestHandlers(NewFakeLeaderboardService())
		if _, err := h.HandleScoreUpdated(context.Background(), nil); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("detection error propagates", func(t *testing.T) {
		service := NewFakeLeaderboardService()
		service.CheckForOvertakeFunc = func(context.Context, sharedtypes.UserID) (results.OperationResult, error) {
			return results.OperationResult{}, errors.New("query timeout")
		}
		h := newTestHandlers(service)

		if _, err := h.HandleScoreUpdated(context.Background(), testPayload); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestLeaderboardHandlers_HandleDisplayRequested(t *testing.T) {
	t.Run("board retrieved", func(t *testing.T) {
		service := NewFakeLeaderboardService()
		service.BuildLeaderboardFunc = func(_ context.Context, scope sharedtypes.Scope, limit int) (results.OperationResult, error) {
			if scope != sharedtypes.ScopeLifetime || limit != 5 {
				t.Errorf("unexpected args: scope=%s limit=%d", scope, limit)
			}
			return results.Success(&leaderboardservice.BoardRetrieved{
				Scope:   scope,
				Entries: leaderboardtypes.Snapshot{{DisplayName: "Alice", Score: 99}},
			}), nil
		}
		h := newTestHandlers(service)

		got, err := h.HandleDisplayRequested(context.Background(), &leaderboardevents.DisplayRequestedPayloadV1{
			Scope: sharedtypes.ScopeLifetime, ChatID: -1, Limit: 5,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Topic != leaderboardevents.RetrievedV1 {
			t.Fatalf("unexpected results: %+v", got)
		}
	})

	t.Run("invalid scope becomes a failure event", func(t *testing.T) {
		service := NewFakeLeaderboardService()
		service.BuildLeaderboardFunc = func(_ context.Context, scope sharedtypes.Scope, _ int) (results.OperationResult, error) {
			return results.Failure(&leaderboardservice.BoardFailed{Scope: scope, Reason: "unknown leaderboard scope"}), nil
		}
		h := newTestHandlers(service)

		got, err := h.HandleDisplayRequested(context.Background(), &leaderboardevents.DisplayRequestedPayloadV1{
			Scope: sharedtypes.Scope("weekly"), ChatID: -1,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Topic != leaderboardevents.RetrievalFailedV1 {
			t.Fatalf("unexpected results: %+v", got)
		}
	})
}

func TestLeaderboardHandlers_HandleChartRequested(t *testing.T) {
	t.Run("chart rendered", func(t *testing.T) {
		service := NewFakeLeaderboardService()
		service.RenderChartFunc = func(context.Context, int) (results.OperationResult, error) {
			return results.Success(&leaderboardservice.ChartRendered{PNG: []byte{0x89, 'P', 'N', 'G'}}), nil
		}
		h := newTestHandlers(service)

		got, err := h.HandleChartRequested(context.Background(), &leaderboardevents.ChartRequestedPayloadV1{ChatID: -1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Topic != leaderboardevents.ChartRenderedV1 {
			t.Fatalf("unexpected results: %+v", got)
		}
		rendered := got[0].Payload.(*leaderboardevents.ChartRenderedPayloadV1)
		if len(rendered.PNG) == 0 {
			t.Error("expected png bytes")
		}
	})

	t.Run("empty board becomes a failure event", func(t *testing.T) {
		service := NewFakeLeaderboardService()
		service.RenderChartFunc = func(context.Context, int) (results.OperationResult, error) {
			return results.Failure(&leaderboardservice.ChartFailed{Reason: "nobody has scored today"}), nil
		}
		h := newTestHandlers(service)

		got, err := h.HandleChartRequested(context.Background(), &leaderboardevents.ChartRequestedPayloadV1{ChatID: -1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Topic != leaderboardevents.RetrievalFailedV1 {
			t.Fatalf("unexpected results: %+v", got)
		}
	})
}
