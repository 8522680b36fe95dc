package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"auction-spot/internal/auctionerrors"
	model "auction-spot/internal/models"
)

// UserFinder looks up users by email
type UserFinder interface {
	GetUserByEmail(email string) (model.User, error)
}

// LoginResult is returned on successful login
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      model.User
}

// Service authenticates users. There are no passwords: a known email is enough.
type Service struct {
	users UserFinder
	jwt   JWT
}

// NewService creates a new auth Service
func NewService(users UserFinder, jwt JWT) *Service {
	return &Service{users: users, jwt: jwt}
}

// Login issues a token for the user registered with email
func (s *Service) Login(email string) (LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return LoginResult{}, fmt.Errorf("auth: %w - empty email", auctionerrors.ErrInvalidInput)
	}

	user, err := s.users.GetUserByEmail(email)
	if errors.Is(err, auctionerrors.ErrUserNotFound) {
		return LoginResult{}, fmt.Errorf("auth: %w - invalid credentials", auctionerrors.ErrUnauthorized)
	}
	if err != nil {
		return LoginResult{}, fmt.Errorf("auth: failed to look up user: %w", err)
	}

	token, expiresAt, err := s.jwt.Sign(Principal{UserID: user.UserID, Role: user.Role})
	if err != nil {
		return LoginResult{}, fmt.Errorf("auth: failed to sign token for user %s: %w", user.UserID, err)
	}

	return LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}
