package scoredb

import (
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
)

// DailyStat is a user's resettable daily solved-questions counter.
// Never negative at rest.
type DailyStat struct {
	bun.BaseModel `bun:"table:daily_stats,alias:ds"`

	UserID          sharedtypes.UserID `bun:"user_id,pk"`
	QuestionsSolved int                `bun:"questions_solved,notnull,default:0"`
	LastUpdated     time.Time          `bun:"last_updated,notnull,default:current_timestamp"`
}

// LifetimeStat is a user's lifetime counter. Floor-clamped at zero,
// never reset.
type LifetimeStat struct {
	bun.BaseModel `bun:"table:lifetime_stats,alias:ls"`

	UserID         sharedtypes.UserID `bun:"user_id,pk"`
	TotalQuestions int                `bun:"total_questions,notnull,default:0"`
	LastUpdated    time.Time          `bun:"last_updated,notnull,default:current_timestamp"`
}

// DailyResetLog records every reset invocation. Duplicate same-cycle
// resets append again; the log is an audit trail, not a dedupe table.
type DailyResetLog struct {
	bun.BaseModel `bun:"table:daily_reset_log,alias:rl"`

	ID        int64     `bun:"id,pk,autoincrement"`
	ResetDate time.Time `bun:"reset_date,type:date,notnull"`
	ResetTime time.Time `bun:"reset_time,notnull,default:current_timestamp"`
}

// LifetimeTotal is one row of the lifetime export.
type LifetimeTotal struct {
	UserID      sharedtypes.UserID `bun:"user_id"`
	DisplayName string             `bun:"display_name"`
	Total       int                `bun:"total"`
}
