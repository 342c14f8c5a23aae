// Package session holds the process-local chat state: the remembered
// broadcast channel and the most recent daily leaderboard snapshot used
// for rank comparisons. Both live only for the process lifetime; a
// restart forgets them. That is a documented limitation, not a bug.
package session

import (
	"sync"

	leaderboardtypes "github.com/ultimate-atpl/study-battle-bot/app/types/leaderboard"
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
)

// ChatSession is owned by the dispatch layer and passed explicitly into
// the components that need it. Concurrent score updates may race on the
// snapshot swap; overtake detection is best-effort under concurrency.
type ChatSession struct {
	mu sync.Mutex

	broadcastChat    sharedtypes.ChatID
	hasBroadcastChat bool

	lastDaily    leaderboardtypes.Snapshot
	hasLastDaily bool
}

// New returns an empty session.
func New() *ChatSession {
	return &ChatSession{}
}

// RememberBroadcastChat records the chat used for group broadcasts. The
// most recent group interaction wins.
func (s *ChatSession) RememberBroadcastChat(chatID sharedtypes.ChatID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.broadcastChat = chatID
	s.hasBroadcastChat = true
}

// BroadcastChat returns the remembered broadcast chat, if any.
func (s *ChatSession) BroadcastChat() (sharedtypes.ChatID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.broadcastChat, s.hasBroadcastChat
}

// SwapDailySnapshot stores current as the latest daily snapshot and
// returns the previous one. hadPrevious is false on the first swap after
// startup, in which case no rank comparison is possible.
func (s *ChatSession) SwapDailySnapshot(current leaderboardtypes.Snapshot) (previous leaderboardtypes.Snapshot, hadPrevious bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	previous, hadPrevious = s.lastDaily, s.hasLastDaily
	s.lastDaily = current
	s.hasLastDaily = true
	return previous, hadPrevious
}
