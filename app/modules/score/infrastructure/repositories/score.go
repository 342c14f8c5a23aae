package scoredb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
)

var ErrUserNotFound = errors.New("user not registered")

// ScoreDBImpl is the bun-backed score repository.
type ScoreDBImpl struct {
	DB *bun.DB
}

// ApplyDelta updates both counters in one transaction. The clamping
// happens inside the UPDATE expressions so concurrent deltas on the same
// row serialize on the row lock instead of losing updates.
func (db *ScoreDBImpl) ApplyDelta(ctx context.Context, userID sharedtypes.UserID, delta int) (int, int, error) {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	known, err := tx.NewSelect().
		Table("users").
		Where("user_id = ?", userID).
		Exists(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to check user registration: %w", err)
	}
	if !known {
		return 0, 0, ErrUserNotFound
	}

	daily := &DailyStat{UserID: userID, QuestionsSolved: clampZero(delta)}
	if _, err := tx.NewInsert().
		Model(daily).
		On("CONFLICT (user_id) DO UPDATE").
		Set("questions_solved = GREATEST(0, ds.questions_solved + ?)", delta).
		Set("last_updated = now()").
		Returning("questions_solved").
		Exec(ctx); err != nil {
		return 0, 0, fmt.Errorf("failed to update daily stats: %w", err)
	}

	lifetime := &LifetimeStat{UserID: userID, TotalQuestions: clampZero(delta)}
	if _, err := tx.NewInsert().
		Model(lifetime).
		On("CONFLICT (user_id) DO UPDATE").
		Set("total_questions = GREATEST(0, ls.total_questions + ?)", delta).
		Set("last_updated = now()").
		Returning("total_questions").
		Exec(ctx); err != nil {
		return 0, 0, fmt.Errorf("failed to update lifetime stats: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return daily.QuestionsSolved, lifetime.TotalQuestions, nil
}

// GetScores returns the pair of counters, treating missing rows as zero.
func (db *ScoreDBImpl) GetScores(ctx context.Context, userID sharedtypes.UserID) (int, int, error) {
	dailyStat := &DailyStat{}
	err := db.DB.NewSelect().Model(dailyStat).Where("user_id = ?", userID).Scan(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, 0, fmt.Errorf("failed to read daily stats: %w", err)
	}

	lifetimeStat := &LifetimeStat{}
	err = db.DB.NewSelect().Model(lifetimeStat).Where("user_id = ?", userID).Scan(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, 0, fmt.Errorf("failed to read lifetime stats: %w", err)
	}

	return dailyStat.QuestionsSolved, lifetimeStat.TotalQuestions, nil
}

// ResetDaily zeroes every daily counter and logs the reset. Each call
// logs again; counters cannot go negative no matter how often it runs.
func (db *ScoreDBImpl) ResetDaily(ctx context.Context) error {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.NewUpdate().
		Model((*DailyStat)(nil)).
		Set("questions_solved = 0").
		Set("last_updated = now()").
		Where("TRUE").
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to reset daily stats: %w", err)
	}

	logEntry := &DailyResetLog{ResetDate: time.Now().UTC().Truncate(24 * time.Hour)}
	if _, err := tx.NewInsert().Model(logEntry).Exec(ctx); err != nil {
		return fmt.Errorf("failed to append reset log: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// AllLifetimeTotals lists positive lifetime counters for the export job.
func (db *ScoreDBImpl) AllLifetimeTotals(ctx context.Context) ([]LifetimeTotal, error) {
	var totals []LifetimeTotal
	err := db.DB.NewSelect().
		TableExpr("lifetime_stats AS ls").
		Join("JOIN users AS u ON u.user_id = ls.user_id").
		ColumnExpr("ls.user_id AS user_id").
		ColumnExpr("COALESCE(u.username, u.first_name, ?) AS display_name", sharedtypes.UnknownUserName).
		ColumnExpr("ls.total_questions AS total").
		Where("ls.total_questions > 0").
		OrderExpr("ls.total_questions DESC, ls.user_id ASC").
		Scan(ctx, &totals)
	if err != nil {
		return nil, fmt.Errorf("failed to list lifetime totals: %w", err)
	}
	return totals, nil
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
