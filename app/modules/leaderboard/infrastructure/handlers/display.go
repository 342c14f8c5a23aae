package leaderboardhandlers

import (
	"context"
	"errors"

	leaderboardevents "github.com/ultimate-atpl/study-battle-bot/app/events/leaderboard"
	leaderboardservice "github.com/ultimate-atpl/study-battle-bot/app/modules/leaderboard/application"
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
	"github.com/ultimate-atpl/study-battle-bot/internal/handlerwrapper"
)

// HandleDisplayRequested answers /lb and /top with the requested board.
func (h *LeaderboardHandlers) HandleDisplayRequested(ctx context.Context, payload *leaderboardevents.DisplayRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.BuildLeaderboard(ctx, payload.Scope, payload.Limit)
	if err != nil {
		return nil, err
	}

	if failure, ok := result.Failure.(*leaderboardservice.BoardFailed); ok {
		return []handlerwrapper.Result{{
			Topic: leaderboardevents.RetrievalFailedV1,
			Payload: &leaderboardevents.RetrievalFailedPayloadV1{
				Scope:  failure.Scope,
				ChatID: payload.ChatID,
				Reason: failure.Reason,
			},
		}}, nil
	}

	board, ok := result.Success.(*leaderboardservice.BoardRetrieved)
	if !ok {
		return nil, errors.New("unexpected leaderboard result payload")
	}

	return []handlerwrapper.Result{{
		Topic: leaderboardevents.RetrievedV1,
		Payload: &leaderboardevents.RetrievedPayloadV1{
			Scope:         board.Scope,
			ChatID:        payload.ChatID,
			Entries:       board.Entries,
			AutoTriggered: payload.AutoTriggered,
		},
	}}, nil
}

// HandleChartRequested answers /chart with a rendered PNG of the daily
// board.
func (h *LeaderboardHandlers) HandleChartRequested(ctx context.Context, payload *leaderboardevents.ChartRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.RenderChart(ctx, payload.Limit)
	if err != nil {
		return nil, err
	}

	if failure, ok := result.Failure.(*leaderboardservice.ChartFailed); ok {
		return []handlerwrapper.Result{{
			Topic: leaderboardevents.RetrievalFailedV1,
			Payload: &leaderboardevents.RetrievalFailedPayloadV1{
				Scope:  sharedtypes.ScopeDaily,
				ChatID: payload.ChatID,
				Reason: failure.Reason,
			},
		}}, nil
	}

	rendered, ok := result.Success.(*leaderboardservice.ChartRendered)
	if !ok {
		return nil, errors.New("unexpected chart result payload")
	}

	return []handlerwrapper.Result{{
		Topic: leaderboardevents.ChartRenderedV1,
		Payload: &leaderboardevents.ChartRenderedPayloadV1{
			ChatID: payload.ChatID,
			PNG:    rendered.PNG,
		},
	}}, nil
}
