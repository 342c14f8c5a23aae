package leaderboarddb

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	leaderboardtypes "github.com/ultimate-atpl/study-battle-bot/app/types/leaderboard"
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
)

// LeaderboardDBImpl reads ranked boards off the score tables. It owns no
// tables of its own.
type LeaderboardDBImpl struct {
	DB *bun.DB
	// DemoSentinel is the reserved display name whose accounts never
	// appear on a board, compared case-insensitively.
	DemoSentinel string
}

// boardRow is the scan target shared by both board queries.
type boardRow struct {
	UserID      sharedtypes.UserID `bun:"user_id"`
	DisplayName string             `bun:"display_name"`
	Score       int                `bun:"score"`
}

// DailyBoard ranks today's counters.
func (db *LeaderboardDBImpl) DailyBoard(ctx context.Context, limit int) (leaderboardtypes.Snapshot, error) {
	return db.board(ctx, "daily_stats", "questions_solved", limit)
}

// LifetimeBoard ranks the lifetime counters.
func (db *LeaderboardDBImpl) LifetimeBoard(ctx context.Context, limit int) (leaderboardtypes.Snapshot, error) {
	return db.board(ctx, "lifetime_stats", "total_questions", limit)
}

func (db *LeaderboardDBImpl) board(ctx context.Context, table, column string, limit int) (leaderboardtypes.Snapshot, error) {
	var rows []boardRow
	err := db.DB.NewSelect().
		TableExpr("? AS s", bun.Ident(table)).
		Join("JOIN users AS u ON u.user_id = s.user_id").
		ColumnExpr("s.user_id AS user_id").
		ColumnExpr("COALESCE(u.username, u.first_name, ?) AS display_name", sharedtypes.UnknownUserName).
		ColumnExpr("s.? AS score", bun.Ident(column)).
		Where("s.? > 0", bun.Ident(column)).
		Where("LOWER(COALESCE(u.username, u.first_name, ?)) != LOWER(?)", sharedtypes.UnknownUserName, db.DemoSentinel).
		OrderExpr("s.? DESC, s.user_id ASC", bun.Ident(column)).
		Limit(limit).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s board: %w", table, err)
	}

	snapshot := make(leaderboardtypes.Snapshot, len(rows))
	for i, row := range rows {
		userID := row.UserID
		snapshot[i] = leaderboardtypes.Entry{
			UserID:      &userID,
			DisplayName: row.DisplayName,
			Score:       row.Score,
		}
	}
	return snapshot, nil
}
