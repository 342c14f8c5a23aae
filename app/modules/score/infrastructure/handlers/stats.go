package scorehandlers

import (
	"context"
	"errors"

	scoreevents "github.com/ultimate-atpl/study-battle-bot/app/events/score"
	userevents "github.com/ultimate-atpl/study-battle-bot/app/events/user"
	scoreservice "github.com/ultimate-atpl/study-battle-bot/app/modules/score/application"
	"github.com/ultimate-atpl/study-battle-bot/internal/handlerwrapper"
)

// HandleStatsRequested answers /stats with both counters. The lookup
// also refreshes registration so the reply carries a current name.
func (h *ScoreHandlers) HandleStatsRequested(ctx context.Context, payload *userevents.StatsRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	displayName, err := h.users.EnsureRegistered(ctx, payload.Profile)
	if err != nil {
		return nil, err
	}

	result, err := h.service.GetStats(ctx, payload.Profile.UserID)
	if err != nil {
		return nil, err
	}

	stats, ok := result.Success.(*scoreservice.StatsRetrieved)
	if !ok {
		return nil, errors.New("unexpected stats result payload")
	}

	return []handlerwrapper.Result{{
		Topic: scoreevents.StatsRetrievedV1,
		Payload: &scoreevents.StatsRetrievedPayloadV1{
			UserID:      stats.UserID,
			DisplayName: displayName,
			ChatID:      payload.ChatID,
			Daily:       stats.Daily,
			Lifetime:    stats.Lifetime,
		},
	}}, nil
}
