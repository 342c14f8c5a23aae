package ingress

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
)

// userLimiter throttles commands per user with a token bucket each.
// Buckets idle for longer than the prune interval are discarded so the
// map does not grow with every user the bot has ever seen.
type userLimiter struct {
	mu       sync.Mutex
	limiters map[sharedtypes.UserID]*userBucket
	limit    rate.Limit
	burst    int
	lastSeen time.Duration
}

type userBucket struct {
	limiter *rate.Limiter
	seen    time.Time
}

func newUserLimiter(commandsPerMinute int) *userLimiter {
	if commandsPerMinute <= 0 {
		commandsPerMinute = 10
	}
	return &userLimiter{
		limiters: make(map[sharedtypes.UserID]*userBucket),
		limit:    rate.Every(time.Minute / time.Duration(commandsPerMinute)),
		burst:    commandsPerMinute,
		lastSeen: 10 * time.Minute,
	}
}

// Allow reports whether userID may run another command right now.
func (l *userLimiter) Allow(userID sharedtypes.UserID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.limiters[userID]
	if !ok {
		// Prune before inserting so the fresh bucket, which has not
		// been seen yet, cannot be collected by its own creation.
		l.prune(now)
		b = &userBucket{limiter: rate.NewLimiter(l.limit, l.burst), seen: now}
		l.limiters[userID] = b
	}
	b.seen = now
	return b.limiter.Allow()
}

// prune drops idle buckets. Called with the lock held, on the slow path
// where a new bucket was just created.
func (l *userLimiter) prune(now time.Time) {
	for id, b := range l.limiters {
		if now.Sub(b.seen) > l.lastSeen {
			delete(l.limiters, id)
		}
	}
}
