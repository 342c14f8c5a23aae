package leaderboardhandlers

import (
	"context"

	leaderboardservice "github.com/ultimate-atpl/study-battle-bot/app/modules/leaderboard/application"
	leaderboardtypes "github.com/ultimate-atpl/study-battle-bot/app/types/leaderboard"
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
	"github.com/ultimate-atpl/study-battle-bot/internal/results"
)

// FakeLeaderboardService is a programmable stub for the
// leaderboardservice.Service interface.
type FakeLeaderboardService struct {
	trace []string

	BuildLeaderboardFunc func(ctx context.Context, scope sharedtypes.Scope, limit int) (results.OperationResult, error)
	DailyChampionFunc    func(ctx context.Context) (*leaderboardtypes.Entry, error)
	CheckForOvertakeFunc func(ctx context.Context, actorID sharedtypes.UserID) (results.OperationResult, error)
	RenderChartFunc      func(ctx context.Context, limit int) (results.OperationResult, error)
}

func NewFakeLeaderboardService() *FakeLeaderboardService {
	return &FakeLeaderboardService{trace: []string{}}
}

func (f *FakeLeaderboardService) record(step string) {
	f.trace = append(f.trace, step)
}

// Trace returns the sequence of service methods called.
func (f *FakeLeaderboardService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeLeaderboardService) BuildLeaderboard(ctx context.Context, scope sharedtypes.Scope, limit int) (results.OperationResult, error) {
	f.record("BuildLeaderboard")
	if f.BuildLeaderboardFunc != nil {
		return f.BuildLeaderboardFunc(ctx, scope, limit)
	}
	return results.Success(&leaderboardservice.BoardRetrieved{Scope: scope, Entries: leaderboardtypes.Snapshot{}}), nil
}

func (f *FakeLeaderboardService) DailyChampion(ctx context.Context) (*leaderboardtypes.Entry, error) {
	f.record("DailyChampion")
	if f.DailyChampionFunc != nil {
		return f.DailyChampionFunc(ctx)
	}
	return nil, nil
}

func (f *FakeLeaderboardService) CheckForOvertake(ctx context.Context, actorID sharedtypes.UserID) (results.OperationResult, error) {
	f.record("CheckForOvertake")
	if f.CheckForOvertakeFunc != nil {
		return f.CheckForOvertakeFunc(ctx, actorID)
	}
	return results.OperationResult{}, nil
}

func (f *FakeLeaderboardService) RenderChart(ctx context.Context, limit int) (results.OperationResult, error) {
	f.record("RenderChart")
	if f.RenderChartFunc != nil {
		return f.RenderChartFunc(ctx, limit)
	}
	return results.OperationResult{}, nil
}

var _ leaderboardservice.Service = (*FakeLeaderboardService)(nil)
