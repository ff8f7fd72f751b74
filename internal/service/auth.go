package service

import (
	"bookshop-api/internal/auth"
	"bookshop-api/internal/model"
	"bookshop-api/internal/repository"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrBadCredentials = errors.New("incorrect password")
)

// AuthService orchestrates registration and login. Session validity is
// carried entirely by the issued token; no per-request store lookup
// happens after login.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
}

type authServiceImpl struct {
	userRepo repository.UserRepository
	hasher   auth.PasswordHasher
	tokens   auth.TokenService
}

func NewAuthService(
	userRepo repository.UserRepository,
	hasher auth.PasswordHasher,
	tokens auth.TokenService,
) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func (s *authServiceImpl) Register(ctx context.Context, username, email, password string) error {
	digest, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: digest,
	}

	// duplicate emails are rejected by the store's unique index; the
	// write runs to completion even if the client disconnects
	if err := s.userRepo.Create(context.WithoutCancel(ctx), user); err != nil {
		return fmt.Errorf("store user: %w", err)
	}

	return nil
}

func (s *authServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return "", ErrBadCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue session token: %w", err)
	}

	return token, nil
}
