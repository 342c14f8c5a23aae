package scorehandlers

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	scoreservice "github.com/ultimate-atpl/study-battle-bot/app/modules/score/application"
	leaderboardtypes "github.com/ultimate-atpl/study-battle-bot/app/types/leaderboard"
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
)

// userRegistry refreshes registration before a delta lands, so a /solved
// from a brand-new user never bounces.
type userRegistry interface {
	EnsureRegistered(ctx context.Context, profile sharedtypes.UserProfile) (string, error)
}

// championReader reads the current daily leader. The reset handler asks
// before zeroing so the end-of-day champion is decided from live counters.
type championReader interface {
	DailyChampion(ctx context.Context) (*leaderboardtypes.Entry, error)
}

// ScoreHandlers implements the Handlers interface for score events.
type ScoreHandlers struct {
	service   scoreservice.Service
	users     userRegistry
	champions championReader
	logger    *slog.Logger
	tracer    trace.Tracer
}

// NewScoreHandlers creates a new ScoreHandlers instance.
func NewScoreHandlers(
	service scoreservice.Service,
	users userRegistry,
	champions championReader,
	logger *slog.Logger,
	tracer trace.Tracer,
) *ScoreHandlers {
	return &ScoreHandlers{
		service:   service,
		users:     users,
		champions: champions,
		logger:    logger,
		tracer:    tracer,
	}
}
