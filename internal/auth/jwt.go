package auth

import (
	"errors"
	"time"

	model "auction-spot/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "auction-spot"

type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`

	jwt.RegisteredClaims
}

// JWT signs and verifies HS256 session tokens
type JWT struct {
	Secret   []byte
	TokenTTL time.Duration
}

// Sign issues a token for the principal
func (j JWT) Sign(p Principal) (token string, expiresAt time.Time, err error) {
	now := time.Now().UTC()
	expiresAt = now.Add(j.TokenTTL)

	claims := Claims{
		UserID: p.UserID,
		Role:   string(p.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-5 * time.Second)),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(j.Secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return s, expiresAt, nil
}

// Verify parses a token and returns the principal it carries
func (j JWT) Verify(token string) (Principal, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return j.Secret, nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return Principal{}, err
	}
	c, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return Principal{}, errors.New("invalid token")
	}
	return Principal{UserID: c.UserID, Role: model.ParseRole(c.Role)}, nil
}
