package leaderboardservice

import (
	"context"

	leaderboarddb "github.com/ultimate-atpl/study-battle-bot/app/modules/leaderboard/infrastructure/repositories"
	leaderboardtypes "github.com/ultimate-atpl/study-battle-bot/app/types/leaderboard"
)

// FakeLeaderboardDB is a programmable stub for the
// leaderboarddb.LeaderboardDB interface.
type FakeLeaderboardDB struct {
	trace []string

	DailyBoardFunc    func(ctx context.Context, limit int) (leaderboardtypes.Snapshot, error)
	LifetimeBoardFunc func(ctx context.Context, limit int) (leaderboardtypes.Snapshot, error)
}

func NewFakeLeaderboardDB() *FakeLeaderboardDB {
	return &FakeLeaderboardDB{trace: []string{}}
}

func (f *FakeLeaderboardDB) record(step string) {
	f.trace = append(f.trace, step)
}

// Trace returns the sequence of repository methods called.
func (f *FakeLeaderboardDB) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeLeaderboardDB) DailyBoard(ctx context.Context, limit int) (leaderboardtypes.Snapshot, error) {
	f.record("DailyBoard")
	if f.DailyBoardFunc != nil {
		return f.DailyBoardFunc(ctx, limit)
	}
	return leaderboardtypes.Snapshot{}, nil
}

func (f *FakeLeaderboardDB) LifetimeBoard(ctx context.Context, limit int) (leaderboardtypes.Snapshot, error) {
	f.record("LifetimeBoard")
	if f.LifetimeBoardFunc != nil {
		return f.LifetimeBoardFunc(ctx, limit)
	}
	return leaderboardtypes.Snapshot{}, nil
}

var _ leaderboarddb.LeaderboardDB = (*FakeLeaderboardDB)(nil)
