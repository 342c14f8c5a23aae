package leaderboardevents

import (
	leaderboardtypes "github.com/ultimate-atpl/study-battle-bot/app/types/leaderboard"
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
)

const (
	DisplayRequestedV1 = "leaderboard.display.requested.v1"
	RetrievedV1        = "leaderboard.retrieved.v1"
	RetrievalFailedV1  = "leaderboard.retrieval.failed.v1"

	OvertakeDetectedV1 = "leaderboard.overtake.detected.v1"

	ChartRequestedV1 = "leaderboard.chart.requested.v1"
	ChartRenderedV1  = "leaderboard.chart.rendered.v1"

	ChampionDecidedV1 = "leaderboard.champion.decided.v1"
)

// DisplayRequestedPayloadV1 asks for a user-facing board (/lb, /top).
type DisplayRequestedPayloadV1 struct {
	Scope  sharedtypes.Scope  `json:"scope"`
	ChatID sharedtypes.ChatID `json:"chat_id"`
	Limit  int                `json:"limit,omitempty"`
	// AutoTriggered marks the refresh that follows a /solved update.
	AutoTriggered bool `json:"auto_triggered"`
}

type RetrievedPayloadV1 struct {
	Scope         sharedtypes.Scope         `json:"scope"`
	ChatID        sharedtypes.ChatID        `json:"chat_id"`
	Entries       leaderboardtypes.Snapshot `json:"entries"`
	AutoTriggered bool                      `json:"auto_triggered"`
}

type RetrievalFailedPayloadV1 struct {
	Scope  sharedtypes.Scope  `json:"scope"`
	ChatID sharedtypes.ChatID `json:"chat_id"`
	Reason string             `json:"reason"`
}

// OvertakeDetectedPayloadV1 is the structured change record from the
// rank-change detector: the acting user improved past the displaced user.
type OvertakeDetectedPayloadV1 struct {
	ActorID       sharedtypes.UserID `json:"actor_id"`
	ActorName     string             `json:"actor_name"`
	DisplacedID   sharedtypes.UserID `json:"displaced_id"`
	DisplacedName string             `json:"displaced_name"`
	OldRank       sharedtypes.Rank   `json:"old_rank"`
	NewRank       sharedtypes.Rank   `json:"new_rank"`
}

type ChartRequestedPayloadV1 struct {
	ChatID sharedtypes.ChatID `json:"chat_id"`
	Limit  int                `json:"limit,omitempty"`
}

// ChartRenderedPayloadV1 carries the PNG for the notifier to upload.
// JSON encodes PNG as base64.
type ChartRenderedPayloadV1 struct {
	ChatID sharedtypes.ChatID `json:"chat_id"`
	PNG    []byte             `json:"png"`
}

// ChampionDecidedPayloadV1 names the daily champion just before a reset.
// DisplayName is empty when nobody scored that day.
type ChampionDecidedPayloadV1 struct {
	DisplayName string `json:"display_name,omitempty"`
	Score       int    `json:"score,omitempty"`
}
