package leaderboarddb

import (
	"context"

	leaderboardtypes "github.com/ultimate-atpl/study-battle-bot/app/types/leaderboard"
)

// LeaderboardDB builds ranked board snapshots from the score tables.
// Both boards come out of one query pipeline: positive scores only, demo
// accounts excluded, score descending with user id as the stable
// tie-break, truncated to limit.
type LeaderboardDB interface {
	DailyBoard(ctx context.Context, limit int) (leaderboardtypes.Snapshot, error)
	LifetimeBoard(ctx context.Context, limit int) (leaderboardtypes.Snapshot, error)
}
