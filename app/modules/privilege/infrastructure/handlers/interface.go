package privilegehandlers

import (
	"context"

	leaderboardevents "github.com/ultimate-atpl/study-battle-bot/app/events/leaderboard"
	privilegeevents "github.com/ultimate-atpl/study-battle-bot/app/events/privilege"
	"github.com/ultimate-atpl/study-battle-bot/internal/handlerwrapper"
)

// Handlers defines the privilege module's event handlers.
type Handlers interface {
	HandleOvertakeDetected(ctx context.Context, payload *leaderboardevents.OvertakeDetectedPayloadV1) ([]handlerwrapper.Result, error)
	HandlePlainMessageReceived(ctx context.Context, payload *privilegeevents.PlainMessageReceivedPayloadV1) ([]handlerwrapper.Result, error)
}
