// Package auth issues and verifies session tokens for dashboard logins. It
// only authenticates against the staff directory; user records themselves
// live in the user package.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Claims is the decoded session identity handed to the rest of the app.
type Claims struct {
	UserID   uuid.UUID
	Email    string
	Role     user.Role
	BranchID uuid.UUID
}

type Service struct {
	users  user.Service
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(users user.Service, secret string, ttl time.Duration) *Service {
	return &Service{
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Login verifies credentials, stamps the user's last login and returns a
// signed session token plus the user record.
func (s *Service) Login(ctx context.Context, email, password string) (string, *user.User, error) {
	u, err := s.users.CheckPassword(ctx, email, password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("auth: failed to check credentials: %w", err)
	}

	now := s.now()
	if err := s.users.TouchLastLogin(ctx, u.ID, now); err != nil {
		// A stale last-login stamp should not block the login itself.
		log.Warn().Err(err).Stringer("user_id", u.ID).Msg("auth: failed to update last login")
	}

	claims := jwt.MapClaims{
		"sub":       u.ID.String(),
		"email":     u.Email,
		"role":      u.Role.String(),
		"branch_id": u.BranchID.String(),
		"iat":       now.Unix(),
		"exp":       now.Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("auth: failed to sign token: %w", err)
	}

	log.Info().Stringer("user_id", u.ID).Str("role", u.Role.String()).Msg("auth: login succeeded")
	return signed, u, nil
}

// Verify parses and validates a session token.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	m, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, _ := m["sub"].(string)
	userID, err := uuid.FromString(sub)
	if err != nil {
		return nil, ErrInvalidToken
	}
	roleStr, _ := m["role"].(string)
	role, err := user.ParseRole(roleStr)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims := &Claims{
		UserID: userID,
		Role:   role,
	}
	claims.Email, _ = m["email"].(string)
	if b, ok := m["branch_id"].(string); ok {
		if id, err := uuid.FromString(b); err == nil {
			claims.BranchID = id
		}
	}
	return claims, nil
}
