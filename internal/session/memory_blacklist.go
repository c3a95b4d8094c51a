package session

import (
	"context"
	"sync"
	"time"
)

// MemoryBlacklist holds revoked token ids until the tokens expire on their own.
type MemoryBlacklist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemoryBlacklist() *MemoryBlacklist {
	return &MemoryBlacklist{revoked: make(map[string]time.Time), now: time.Now}
}

func (b *MemoryBlacklist) AddToken(_ context.Context, jti string, expiresAt time.Time) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revoked[jti] = expiresAt
	return nil
}

func (b *MemoryBlacklist) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.revoked[jti]
	return ok, nil
}

// CleanupExpired drops entries whose token is past expiry.
func (b *MemoryBlacklist) CleanupExpired(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := b.now()
	for jti, exp := range b.revoked {
		if exp.Before(now) {
			delete(b.revoked, jti)
		}
	}
	return nil
}

func (b *MemoryBlacklist) size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.revoked)
}
