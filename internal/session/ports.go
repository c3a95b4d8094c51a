package session

import (
	"context"
	"time"
)

type BlacklistRepository interface {
	AddToken(ctx context.Context, jti string, expiresAt time.Time) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
	CleanupExpired(ctx context.Context) error
}
