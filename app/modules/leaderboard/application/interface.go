package leaderboardservice

import (
	"context"

	leaderboardtypes "github.com/ultimate-atpl/study-battle-bot/app/types/leaderboard"
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
	"github.com/ultimate-atpl/study-battle-bot/internal/results"
)

// Service defines the contract for leaderboard operations.
type Service interface {
	// BuildLeaderboard produces the user-facing board for a scope,
	// without user ids.
	BuildLeaderboard(ctx context.Context, scope sharedtypes.Scope, limit int) (results.OperationResult, error)

	// DailyChampion returns the current daily leader, or nil when
	// nobody has scored yet.
	DailyChampion(ctx context.Context) (*leaderboardtypes.Entry, error)

	// CheckForOvertake rebuilds the id-bearing daily board, diffs it
	// against the previous snapshot, and reports an overtake when the
	// actor's rank strictly improved past someone. An empty result is
	// the normal no-event outcome.
	CheckForOvertake(ctx context.Context, actorID sharedtypes.UserID) (results.OperationResult, error)

	// RenderChart draws the daily board as a PNG bar chart.
	RenderChart(ctx context.Context, limit int) (results.OperationResult, error)
}

// BoardRetrieved is the success payload of BuildLeaderboard.
type BoardRetrieved struct {
	Scope   sharedtypes.Scope
	Entries leaderboardtypes.Snapshot
}

// BoardFailed is the business failure payload of BuildLeaderboard.
type BoardFailed struct {
	Scope  sharedtypes.Scope
	Reason string
}

// OvertakeFound is the success payload of CheckForOvertake.
type OvertakeFound struct {
	ActorID       sharedtypes.UserID
	ActorName     string
	DisplacedID   sharedtypes.UserID
	DisplacedName string
	OldRank       sharedtypes.Rank
	NewRank       sharedtypes.Rank
}

// ChartRendered is the success payload of RenderChart.
type ChartRendered struct {
	PNG []byte
}

// ChartFailed is the business failure payload of RenderChart.
type ChartFailed struct {
	Reason string
}
