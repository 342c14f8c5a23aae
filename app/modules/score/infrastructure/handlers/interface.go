package scorehandlers

import (
	"context"

	scoreevents "github.com/ultimate-atpl/study-battle-bot/app/events/score"
	userevents "github.com/ultimate-atpl/study-battle-bot/app/events/user"
	"github.com/ultimate-atpl/study-battle-bot/internal/handlerwrapper"
)

// Handlers defines the score module's event handlers.
type Handlers interface {
	HandleScoreUpdateRequested(ctx context.Context, payload *scoreevents.UpdateRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleStatsRequested(ctx context.Context, payload *userevents.StatsRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleDailyResetRequested(ctx context.Context, payload *scoreevents.DailyResetRequestedPayloadV1) ([]handlerwrapper.Result, error)
}
