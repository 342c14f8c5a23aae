package scoreservice

import (
	"context"

	scoredb "github.com/ultimate-atpl/study-battle-bot/app/modules/score/infrastructure/repositories"
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
)

// FakeScoreDB is a programmable stub for the scoredb.ScoreDB interface.
type FakeScoreDB struct {
	trace []string

	ApplyDeltaFunc        func(ctx context.Context, userID sharedtypes.UserID, delta int) (int, int, error)
	GetScoresFunc         func(ctx context.Context, userID sharedtypes.UserID) (int, int, error)
	ResetDailyFunc        func(ctx context.Context) error
	AllLifetimeTotalsFunc func(ctx context.Context) ([]scoredb.LifetimeTotal, error)
}

func NewFakeScoreDB() *FakeScoreDB {
	return &FakeScoreDB{trace: []string{}}
}

func (f *FakeScoreDB) record(step string) {
	f.trace = append(f.trace, step)
}

// Trace returns the sequence of repository methods called.
func (f *FakeScoreDB) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeScoreDB) ApplyDelta(ctx context.Context, userID sharedtypes.UserID, delta int) (int, int, error) {
	f.record("ApplyDelta")
	if f.ApplyDeltaFunc != nil {
		return f.ApplyDeltaFunc(ctx, userID, delta)
	}
	return 0, 0, nil
}

func (f *FakeScoreDB) GetScores(ctx context.Context, userID sharedtypes.UserID) (int, int, error) {
	f.record("GetScores")
	if f.GetScoresFunc != nil {
		return f.GetScoresFunc(ctx, userID)
	}
	return 0, 0, nil
}

func (f *FakeScoreDB) ResetDaily(ctx context.Context) error {
	f.record("ResetDaily")
	if f.ResetDailyFunc != nil {
		return f.ResetDailyFunc(ctx)
	}
	return nil
}

func (f *FakeScoreDB) AllLifetimeTotals(ctx context.Context) ([]scoredb.LifetimeTotal, error) {
	f.record("AllLifetimeTotals")
	if f.AllLifetimeTotalsFunc != nil {
		return f.AllLifetimeTotalsFunc(ctx)
	}
	return nil, nil
}

var _ scoredb.ScoreDB = (*FakeScoreDB)(nil)
