package scorehandlers

import (
	"context"
	"errors"

	scoreevents "github.com/ultimate-atpl/study-battle-bot/app/events/score"
	scoreservice "github.com/ultimate-atpl/study-battle-bot/app/modules/score/application"
	"github.com/ultimate-atpl/study-battle-bot/internal/attr"
	"github.com/ultimate-atpl/study-battle-bot/internal/handlerwrapper"
)

// HandleScoreUpdateRequested refreshes the user's registration, applies
// the delta, and publishes the fresh counters.
func (h *ScoreHandlers) HandleScoreUpdateRequested(ctx context.Context, payload *scoreevents.UpdateRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	displayName, err := h.users.EnsureRegistered(ctx, payload.Profile)
	if err != nil {
		return nil, err
	}

	result, err := h.service.ApplyDelta(ctx, payload.Profile.UserID, payload.Delta)
	if err != nil {
		return nil, err
	}

	if failure, ok := result.Failure.(*scoreservice.ScoreUpdateFailed); ok {
		return []handlerwrapper.Result{{
			Topic: scoreevents.UpdateFailedV1,
			Payload: &scoreevents.UpdateFailedPayloadV1{
				UserID: failure.UserID,
				ChatID: payload.ChatID,
				Reason: failure.Reason,
			},
		}}, nil
	}

	applied, ok := result.Success.(*scoreservice.ScoreApplied)
	if !ok {
		return nil, errors.New("unexpected score update result payload")
	}

	h.logger.InfoContext(ctx, "Score delta applied",
		attr.ExtractCorrelationID(ctx),
		attr.Int64("user_id", int64(applied.UserID)),
		attr.Int("delta", applied.Delta),
		attr.Int("daily", applied.Daily),
	)

	return []handlerwrapper.Result{{
		Topic: scoreevents.UpdatedV1,
		Payload: &scoreevents.UpdatedPayloadV1{
			UserID:      applied.UserID,
			DisplayName: displayName,
			ChatID:      payload.ChatID,
			Delta:       applied.Delta,
			Daily:       applied.Daily,
			Lifetime:    applied.Lifetime,
		},
	}}, nil
}
