package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookshop/internal/platform/crypto"
)

type Service struct {
	repo   Repository
	secret string
	ttl    time.Duration
}

func NewService(repo Repository, secret string, ttl time.Duration) *Service {
	return &Service{repo: repo, secret: secret, ttl: ttl}
}

func (s *Service) Register(ctx context.Context, username, password string) (User, error) {
	hashed, err := crypto.HashPassword(password)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	newUser := &User{
		Username: username,
		Password: hashed,
	}
	if err := s.repo.Create(ctx, newUser); err != nil {
		return User{}, err
	}
	return *newUser, nil
}

// Login checks the credentials and issues a signed token for the user.
func (s *Service) Login(ctx context.Context, username, password string) (Session, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}
	if !crypto.VerifyPassword(u.Password, password) {
		return Session{}, ErrInvalidCredentials
	}

	token, _, err := crypto.GenerateToken(s.secret, u.Username, s.ttl)
	if err != nil {
		return Session{}, fmt.Errorf("generate token: %w", err)
	}
	return Session{Token: token, ExpiresIn: int64(s.ttl.Seconds())}, nil
}

func (s *Service) GetByUsername(ctx context.Context, username string) (User, error) {
	return s.repo.GetByUsername(ctx, username)
}
