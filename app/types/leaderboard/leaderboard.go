package leaderboardtypes

import (
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
)

// Entry is one ranked row of a leaderboard. UserID is nil in the
// user-facing display variant; the id-bearing variant used for rank
// comparisons always sets it. Both variants come from the same
// query pipeline so displayed and diffed boards never diverge.
type Entry struct {
	UserID      *sharedtypes.UserID `json:"user_id,omitempty"`
	DisplayName string              `json:"display_name"`
	Score       int                 `json:"score"`
}

// Snapshot is an ordered leaderboard view, descending by score.
// Position in the slice is the 1-based rank minus one.
type Snapshot []Entry

// RankOf returns the 1-based rank of userID, or 0 if absent.
func (s Snapshot) RankOf(userID sharedtypes.UserID) sharedtypes.Rank {
	for i, e := range s {
		if e.UserID != nil && *e.UserID == userID {
			return sharedtypes.Rank(i + 1)
		}
	}
	return 0
}

// WithoutIDs strips user ids for user-facing display.
func (s Snapshot) WithoutIDs() Snapshot {
	out := make(Snapshot, len(s))
	for i, e := range s {
		out[i] = Entry{DisplayName: e.DisplayName, Score: e.Score}
	}
	return out
}
