package scoredb

import (
	"context"

	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
)

// ScoreDB is the repository contract for the daily and lifetime counters.
type ScoreDB interface {
	// ApplyDelta adds delta to both counters atomically for one user,
	// clamping each at zero, and returns the fresh values. Returns
	// ErrUserNotFound when the user has never registered.
	ApplyDelta(ctx context.Context, userID sharedtypes.UserID, delta int) (daily, lifetime int, err error)

	// GetScores returns (0, 0) for a user with no counters yet.
	GetScores(ctx context.Context, userID sharedtypes.UserID) (daily, lifetime int, err error)

	// ResetDaily zeroes every daily counter and appends one reset-log
	// row. Safe to call repeatedly within a cycle.
	ResetDaily(ctx context.Context) error

	// AllLifetimeTotals lists every positive lifetime counter with its
	// display name, descending, for the export job.
	AllLifetimeTotals(ctx context.Context) ([]LifetimeTotal, error)
}
