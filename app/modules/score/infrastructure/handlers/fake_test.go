package scorehandlers

import (
	"context"

	scoreservice "github.com/ultimate-atpl/study-battle-bot/app/modules/score/application"
	scoredb "github.com/ultimate-atpl/study-battle-bot/app/modules/score/infrastructure/repositories"
	leaderboardtypes "github.com/ultimate-atpl/study-battle-bot/app/types/leaderboard"
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
	"github.com/ultimate-atpl/study-battle-bot/internal/results"
)

// FakeScoreService is a programmable stub for the scoreservice.Service
// interface.
type FakeScoreService struct {
	trace []string

	ApplyDeltaFunc     func(ctx context.Context, userID sharedtypes.UserID, delta int) (results.OperationResult, error)
	GetStatsFunc       func(ctx context.Context, userID sharedtypes.UserID) (results.OperationResult, error)
	ResetDailyFunc     func(ctx context.Context, triggeredBy string) (results.OperationResult, error)
	LifetimeTotalsFunc func(ctx context.Context) ([]scoredb.LifetimeTotal, error)
}

func NewFakeScoreService() *FakeScoreService {
	return &FakeScoreService{trace: []string{}}
}

func (f *FakeScoreService) record(step string) {
	f.trace = append(f.trace, step)
}

// Trace returns the sequence of service methods called.
func (f *FakeScoreService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeScoreService) ApplyDelta(ctx context.Context, userID sharedtypes.UserID, delta int) (results.OperationResult, error) {
	f.record("ApplyDelta")
	if f.ApplyDeltaFunc != nil {
		return f.ApplyDeltaFunc(ctx, userID, delta)
	}
	return results.OperationResult{}, nil
}

func (f *FakeScoreService) GetStats(ctx context.Context, userID sharedtypes.UserID) (results.OperationResult, error) {
	f.record("GetStats")
	if f.GetStatsFunc != nil {
		return f.GetStatsFunc(ctx, userID)
	}
	return results.OperationResult{}, nil
}

func (f *FakeScoreService) ResetDaily(ctx context.Context, triggeredBy string) (results.OperationResult, error) {
	f.record("ResetDaily")
	if f.ResetDailyFunc != nil {
		return f.ResetDailyFunc(ctx, triggeredBy)
	}
	return results.OperationResult{}, nil
}

func (f *FakeScoreService) LifetimeTotals(ctx context.Context) ([]scoredb.LifetimeTotal, error) {
	f.record("LifetimeTotals")
	if f.LifetimeTotalsFunc != nil {
		return f.LifetimeTotalsFunc(ctx)
	}
	return nil, nil
}

var _ scoreservice.Service = (*FakeScoreService)(nil)

// FakeUserRegistry stubs the registration refresh.
type FakeUserRegistry struct {
	EnsureRegisteredFunc func(ctx context.Context, profile sharedtypes.UserProfile) (string, error)
}

func (f *FakeUserRegistry) EnsureRegistered(ctx context.Context, profile sharedtypes.UserProfile) (string, error) {
	if f.EnsureRegisteredFunc != nil {
		return f.EnsureRegisteredFunc(ctx, profile)
	}
	return profile.DisplayName(), nil
}

var _ userRegistry = (*FakeUserRegistry)(nil)

// FakeChampionReader stubs the daily leader lookup.
type FakeChampionReader struct {
	DailyChampionFunc func(ctx context.Context) (*leaderboardtypes.Entry, error)
}

func (f *FakeChampionReader) DailyChampion(ctx context.Context) (*leaderboardtypes.Entry, error) {
	if f.DailyChampionFunc != nil {
		return f.DailyChampionFunc(ctx)
	}
	return nil, nil
}

var _ championReader = (*FakeChampionReader)(nil)
