package scoreservice

import (
	"context"
	"time"

	scoredb "github.com/ultimate-atpl/study-battle-bot/app/modules/score/infrastructure/repositories"
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
	"github.com/ultimate-atpl/study-battle-bot/internal/results"
)

// Service defines the contract for score counter operations.
type Service interface {
	// ApplyDelta adds a signed delta to a user's daily and lifetime
	// counters, clamping both at zero.
	ApplyDelta(ctx context.Context, userID sharedtypes.UserID, delta int) (results.OperationResult, error)

	// GetStats returns the current daily and lifetime counters for a
	// user, zero for users who never solved anything.
	GetStats(ctx context.Context, userID sharedtypes.UserID) (results.OperationResult, error)

	// ResetDaily zeroes every daily counter. Lifetime counters are
	// untouched.
	ResetDaily(ctx context.Context, triggeredBy string) (results.OperationResult, error)

	// LifetimeTotals lists every positive lifetime counter for export.
	LifetimeTotals(ctx context.Context) ([]scoredb.LifetimeTotal, error)
}

// ScoreApplied is the success payload of ApplyDelta.
type ScoreApplied struct {
	UserID   sharedtypes.UserID
	Delta    int
	Daily    int
	Lifetime int
}

// ScoreUpdateFailed is the business failure payload of ApplyDelta.
type ScoreUpdateFailed struct {
	UserID sharedtypes.UserID
	Reason string
}

// StatsRetrieved is the success payload of GetStats.
type StatsRetrieved struct {
	UserID   sharedtypes.UserID
	Daily    int
	Lifetime int
}

// DailyResetDone is the success payload of ResetDaily.
type DailyResetDone struct {
	ResetAt     time.Time
	TriggeredBy string
}

// DailyResetFailed is the business failure payload of ResetDaily.
type DailyResetFailed struct {
	TriggeredBy string
	Reason      string
}
