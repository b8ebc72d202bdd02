package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	CreateUser(ctx context.Context, u *User, password string) (*User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	UpdateUser(ctx context.Context, u *User, newPassword string) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
	ListUsers(ctx context.Context, f Filter) ([]User, error)
	SetUsersStatus(ctx context.Context, ids []uuid.UUID, status UserStatus) error
	CheckPassword(ctx context.Context, email, password string) (*User, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

var ErrInvalidCredentials = errors.New("invalid credentials")

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateUser(ctx context.Context, u *User, password string) (*User, error) {
	if password == "" {
		return nil, errors.New("password cannot be empty")
	}
	if _, err := ParseRole(string(u.Role)); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to generate password hash")
		return nil, fmt.Errorf("internal error hashing password: %w", err)
	}
	u.PasswordHash = string(hash)

	if u.ID == uuid.Nil {
		id, err := uuid.NewV4()
		if err != nil {
			return nil, fmt.Errorf("failed to generate user id: %w", err)
		}
		u.ID = id
	}
	if u.Status == "" {
		u.Status = StatusActive
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, ErrEmailExists) {
			return nil, ErrEmailExists
		}
		log.Error().Err(err).Msg("service: failed to create user in repository")
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	log.Info().Stringer("user_id", u.ID).Str("role", u.Role.String()).Msg("service: user created")
	return u, nil
}

func (s *service) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by id '%s': %w", id, err)
	}
	return u, nil
}

func (s *service) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email '%s': %w", email, err)
	}
	return u, nil
}

func (s *service) UpdateUser(ctx context.Context, u *User, newPassword string) error {
	if _, err := ParseRole(string(u.Role)); err != nil {
		return err
	}
	if newPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Error().Err(err).Msg("service: failed to generate password hash")
			return fmt.Errorf("internal error hashing password: %w", err)
		}
		u.PasswordHash = string(hash)
	}
	u.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, u); err != nil {
		if errors.Is(err, ErrEmailExists) || errors.Is(err, ErrNotFound) {
			return err
		}
		log.Error().Err(err).Stringer("user_id", u.ID).Msg("service: failed to update user")
		return fmt.Errorf("failed to update user '%s': %w", u.ID, err)
	}
	return nil
}

func (s *service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete user '%s': %w", id, err)
	}
	return nil
}

func (s *service) ListUsers(ctx context.Context, f Filter) ([]User, error) {
	users, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *service) SetUsersStatus(ctx context.Context, ids []uuid.UUID, status UserStatus) error {
	if status != StatusActive && status != StatusInactive {
		return fmt.Errorf("unknown user status %q", status)
	}
	if err := s.repo.SetStatus(ctx, ids, status); err != nil {
		return fmt.Errorf("failed to set users status: %w", err)
	}
	return nil
}

// CheckPassword verifies credentials against the directory. Unknown emails,
// wrong passwords and inactive accounts all map to ErrInvalidCredentials so
// the login surface does not leak which part failed.
func (s *service) CheckPassword(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	if u.Status != StatusActive {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *service) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	if err := s.repo.TouchLastLogin(ctx, id, at); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update last login for '%s': %w", id, err)
	}
	return nil
}
