package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

// Local is an in-process lock used when no Redis is configured. It only
// serializes requests served by the same process.
type Local struct {
	mu    sync.Mutex
	held  map[string]localEntry
	seq   uint64
	nowFn func() time.Time
}

type localEntry struct {
	token   uint64
	expires time.Time
}

// NewLocal creates an empty in-process lock.
func NewLocal() *Local {
	return &Local{held: make(map[string]localEntry), nowFn: time.Now}
}

// Acquire takes key for ttl or returns domain.ErrConflict if it is held.
func (l *Local) Acquire(_ context.Context, key string, ttl time.Duration) (Release, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.nowFn()
	if e, ok := l.held[key]; ok && now.Before(e.expires) {
		return nil, fmt.Errorf("lock %s: %w", key, domain.ErrConflict)
	}

	l.seq++
	token := l.seq
	l.held[key] = localEntry{token: token, expires: now.Add(ttl)}

	return func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		// A lock re-acquired after expiry belongs to someone else.
		if e, ok := l.held[key]; ok && e.token == token {
			delete(l.held, key)
		}
		return nil
	}, nil
}
