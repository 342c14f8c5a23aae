package scoreevents

import (
	"time"

	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
)

const (
	UpdateRequestedV1 = "score.update.requested.v1"
	UpdatedV1         = "score.updated.v1"
	UpdateFailedV1    = "score.update.failed.v1"

	DailyResetRequestedV1 = "score.daily_reset.requested.v1"
	DailyResetCompletedV1 = "score.daily_reset.completed.v1"
	DailyResetFailedV1    = "score.daily_reset.failed.v1"

	StatsRetrievedV1 = "score.stats.retrieved.v1"
)

// UpdateRequestedPayloadV1 carries a validated /solved delta. The profile
// rides along so the handler can refresh registration before applying,
// the way the command surface always has.
type UpdateRequestedPayloadV1 struct {
	Profile sharedtypes.UserProfile `json:"profile"`
	ChatID  sharedtypes.ChatID      `json:"chat_id"`
	Delta   int                     `json:"delta"`
}

type UpdatedPayloadV1 struct {
	UserID      sharedtypes.UserID `json:"user_id"`
	DisplayName string             `json:"display_name"`
	ChatID      sharedtypes.ChatID `json:"chat_id"`
	Delta       int                `json:"delta"`
	Daily       int                `json:"daily"`
	Lifetime    int                `json:"lifetime"`
}

type UpdateFailedPayloadV1 struct {
	UserID sharedtypes.UserID `json:"user_id"`
	ChatID sharedtypes.ChatID `json:"chat_id"`
	Reason string             `json:"reason"`
}

// DailyResetRequestedPayloadV1 triggers the reset flow. TriggeredBy is
// "scheduler" for the periodic job or the admin's user id as a string.
type DailyResetRequestedPayloadV1 struct {
	TriggeredBy string             `json:"triggered_by"`
	ChatID      sharedtypes.ChatID `json:"chat_id,omitempty"`
	// AnnounceChampion is set by the scheduler so the end-of-day champion
	// broadcast precedes the reset; manual admin resets leave it off.
	AnnounceChampion bool `json:"announce_champion"`
}

type DailyResetCompletedPayloadV1 struct {
	ResetAt     time.Time          `json:"reset_at"`
	TriggeredBy string             `json:"triggered_by"`
	ChatID      sharedtypes.ChatID `json:"chat_id,omitempty"`
}

type DailyResetFailedPayloadV1 struct {
	TriggeredBy string             `json:"triggered_by"`
	ChatID      sharedtypes.ChatID `json:"chat_id,omitempty"`
	Reason      string             `json:"reason"`
}

// StatsRetrievedPayloadV1 answers a /stats request.
type StatsRetrievedPayloadV1 struct {
	UserID      sharedtypes.UserID `json:"user_id"`
	DisplayName string             `json:"display_name"`
	ChatID      sharedtypes.ChatID `json:"chat_id"`
	Daily       int                `json:"daily"`
	Lifetime    int                `json:"lifetime"`
}
