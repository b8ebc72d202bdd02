package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/auth"
	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/user"
)

type mockUserService struct {
	user.Service

	checkPasswordFunc  func(ctx context.Context, email, password string) (*user.User, error)
	touchLastLoginFunc func(ctx context.Context, id uuid.UUID, at time.Time) error
}

func (m *mockUserService) CheckPassword(ctx context.Context, email, password string) (*user.User, error) {
	return m.checkPasswordFunc(ctx, email, password)
}

func (m *mockUserService) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	if m.touchLastLoginFunc != nil {
		return m.touchLastLoginFunc(ctx, id, at)
	}
	return nil
}

func testUser() *user.User {
	return &user.User{
		ID:     uuid.Must(uuid.NewV4()),
		Name:   "María González",
		Email:  "maria.gonzalez@mojsa.com",
		Role:   user.RoleAdmin,
		Status: user.StatusActive,
	}
}

func TestService_LoginAndVerify(t *testing.T) {
	u := testUser()
	touched := 0
	users := &mockUserService{
		checkPasswordFunc: func(ctx context.Context, email, password string) (*user.User, error) {
			assert.Equal(t, u.Email, email)
			assert.Equal(t, "admin123", password)
			return u, nil
		},
		touchLastLoginFunc: func(ctx context.Context, id uuid.UUID, at time.Time) error {
			touched++
			assert.Equal(t, u.ID, id)
			return nil
		},
	}
	svc := auth.NewService(users, "test-secret", time.Hour)

	token, loggedIn, err := svc.Login(context.Background(), u.Email, "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, u.ID, loggedIn.ID)
	assert.Equal(t, 1, touched)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, u.Email, claims.Email)
	assert.Equal(t, user.RoleAdmin, claims.Role)
}

func TestService_Login_InvalidCredentials(t *testing.T) {
	users := &mockUserService{
		checkPasswordFunc: func(ctx context.Context, email, password string) (*user.User, error) {
			return nil, user.ErrInvalidCredentials
		},
	}
	svc := auth.NewService(users, "test-secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "nobody@mojsa.com", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestService_Verify_Rejects(t *testing.T) {
	svc := auth.NewService(nil, "test-secret", time.Hour)

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name:  "garbage",
			token: func(t *testing.T) string { return "not.a.token" },
		},
		{
			name: "wrong_secret",
			token: func(t *testing.T) string {
				u := testUser()
				other := auth.NewService(&mockUserService{
					checkPasswordFunc: func(ctx context.Context, email, password string) (*user.User, error) {
						return u, nil
					},
				}, "other-secret", time.Hour)
				tok, _, err := other.Login(context.Background(), u.Email, "x")
				require.NoError(t, err)
				return tok
			},
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				u := testUser()
				expired := auth.NewService(&mockUserService{
					checkPasswordFunc: func(ctx context.Context, email, password string) (*user.User, error) {
						return u, nil
					},
				}, "test-secret", -time.Hour)
				tok, _, err := expired.Login(context.Background(), u.Email, "x")
				require.NoError(t, err)
				return tok
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(tt.token(t))
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}
