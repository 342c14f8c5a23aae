package leaderboardhandlers

import (
	"context"

	leaderboardevents "github.com/ultimate-atpl/study-battle-bot/app/events/leaderboard"
	scoreevents "github.com/ultimate-atpl/study-battle-bot/app/events/score"
	"github.com/ultimate-atpl/study-battle-bot/internal/handlerwrapper"
)

// Handlers defines the leaderboard module's event handlers.
type Handlers interface {
	HandleScoreUpdated(ctx context.Context, payload *scoreevents.UpdatedPayloadV1) ([]handlerwrapper.Result, error)
	HandleDisplayRequested(ctx context.Context, payload *leaderboardevents.DisplayRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleChartRequested(ctx context.Context, payload *leaderboardevents.ChartRequestedPayloadV1) ([]handlerwrapper.Result, error)
}
