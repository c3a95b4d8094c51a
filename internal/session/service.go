package session

import (
	"context"
	"errors"
	"log"
	"time"
)

var ErrMissingTokenID = errors.New("token has no id")

type Service struct {
	blacklistRepo BlacklistRepository
}

func NewService(blacklistRepo BlacklistRepository) *Service {
	return &Service{blacklistRepo: blacklistRepo}
}

// Revoke blacklists the token id so it is refused until it expires.
func (s *Service) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	if jti == "" {
		return ErrMissingTokenID
	}
	return s.blacklistRepo.AddToken(ctx, jti, expiresAt)
}

// IsRevoked satisfies httpx.RevocationChecker.
func (s *Service) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return s.blacklistRepo.IsBlacklisted(ctx, jti)
}

// RunCleanup prunes expired blacklist entries every interval until ctx is done.
func (s *Service) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.blacklistRepo.CleanupExpired(ctx); err != nil {
				log.Printf("blacklist cleanup error=%v", err)
			}
		}
	}
}
