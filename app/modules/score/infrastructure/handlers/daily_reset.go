package scorehandlers

import (
	"context"
	"errors"

	leaderboardevents "github.com/ultimate-atpl/study-battle-bot/app/events/leaderboard"
	scoreevents "github.com/ultimate-atpl/study-battle-bot/app/events/score"
	scoreservice "github.com/ultimate-atpl/study-battle-bot/app/modules/score/application"
	"github.com/ultimate-atpl/study-battle-bot/internal/attr"
	"github.com/ultimate-atpl/study-battle-bot/internal/handlerwrapper"
)

// HandleDailyResetRequested zeroes the daily counters. When the request
// comes from the midnight scheduler it first decides the champion from
// the still-live counters, so the announcement and the reset cannot race.
func (h *ScoreHandlers) HandleDailyResetRequested(ctx context.Context, payload *scoreevents.DailyResetRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	var out []handlerwrapper.Result

	if payload.AnnounceChampion {
		champion, err := h.champions.DailyChampion(ctx)
		if err != nil {
			// The reset must still happen; skip the announcement.
			h.logger.WarnContext(ctx, "Failed to decide daily champion before reset",
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
		} else {
			decided := &leaderboardevents.ChampionDecidedPayloadV1{}
			if champion != nil {
				decided.DisplayName = champion.DisplayName
				decided.Score = champion.Score
			}
			out = append(out, handlerwrapper.Result{
				Topic:   leaderboardevents.ChampionDecidedV1,
				Payload: decided,
			})
		}
	}

	result, err := h.service.ResetDaily(ctx, payload.TriggeredBy)
	if err != nil {
		return nil, err
	}

	done, ok := result.Success.(*scoreservice.DailyResetDone)
	if !ok {
		return nil, errors.New("unexpected daily reset result payload")
	}

	out = append(out, handlerwrapper.Result{
		Topic: scoreevents.DailyResetCompletedV1,
		Payload: &scoreevents.DailyResetCompletedPayloadV1{
			ResetAt:     done.ResetAt,
			TriggeredBy: done.TriggeredBy,
			ChatID:      payload.ChatID,
		},
	})
	return out, nil
}
