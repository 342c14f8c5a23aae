// Package leaderboarddomain holds the pure ranking logic: no I/O, no
// clocks, only snapshot comparisons.
package leaderboarddomain

import (
	leaderboardtypes "github.com/ultimate-atpl/study-battle-bot/app/types/leaderboard"
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
)

// RankChange describes a detected overtake: the acting user improved
// past the displaced user.
type RankChange struct {
	ActorID     sharedtypes.UserID
	DisplacedID sharedtypes.UserID
	OldRank     sharedtypes.Rank
	NewRank     sharedtypes.Rank
}

// DetectRankChange compares two ranked snapshots and reports whether
// actorID's rank strictly improved, and who got pushed below them.
// Returns nil when nothing noteworthy happened.
//
// A user absent from previous counts as having held rank
// len(previous)+1, so a new entrant to the ranked set still produces an
// event. The displaced competitor is the first entry of previous, in
// rank order, that is not the actor and now sits strictly below the
// actor's new rank. When several users shifted in one update this
// first-match rule can attribute the overtake to a user other than the
// one who actually held the actor's new slot; downstream consumers
// accept that.
func DetectRankChange(
	actorID sharedtypes.UserID,
	previous, current leaderboardtypes.Snapshot,
) *RankChange {
	newRank := current.RankOf(actorID)
	if newRank == 0 {
		return nil
	}

	oldRank := previous.RankOf(actorID)
	if oldRank == 0 {
		oldRank = sharedtypes.Rank(len(previous) + 1)
	}
	if newRank >= oldRank {
		return nil
	}

	for _, entry := range previous {
		if entry.UserID == nil || *entry.UserID == actorID {
			continue
		}
		displacedRank := current.RankOf(*entry.UserID)
		if displacedRank > newRank {
			return &RankChange{
				ActorID:     actorID,
				DisplacedID: *entry.UserID,
				OldRank:     oldRank,
				NewRank:     newRank,
			}
		}
	}

	// Rank improved but nobody identifiable got pushed below; nothing
	// to announce.
	return nil
}
