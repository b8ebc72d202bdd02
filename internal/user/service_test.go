package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/user"
)

type mockRepository struct {
	createFunc         func(ctx context.Context, u *user.User) error
	getByIDFunc        func(ctx context.Context, id uuid.UUID) (*user.User, error)
	getByEmailFunc     func(ctx context.Context, email string) (*user.User, error)
	updateFunc         func(ctx context.Context, u *user.User) error
	deleteFunc         func(ctx context.Context, id uuid.UUID) error
	listFunc           func(ctx context.Context, f user.Filter) ([]user.User, error)
	setStatusFunc      func(ctx context.Context, ids []uuid.UUID, status user.UserStatus) error
	touchLastLoginFunc func(ctx context.Context, id uuid.UUID, at time.Time) error
	countFunc          func(ctx context.Context) (int, error)
}

func (m *mockRepository) Create(ctx context.Context, u *user.User) error { return m.createFunc(ctx, u) }
func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return m.getByIDFunc(ctx, id)
}
func (m *mockRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return m.getByEmailFunc(ctx, email)
}
func (m *mockRepository) Update(ctx context.Context, u *user.User) error { return m.updateFunc(ctx, u) }
func (m *mockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFunc(ctx, id)
}
func (m *mockRepository) List(ctx context.Context, f user.Filter) ([]user.User, error) {
	return m.listFunc(ctx, f)
}
func (m *mockRepository) SetStatus(ctx context.Context, ids []uuid.UUID, status user.UserStatus) error {
	return m.setStatusFunc(ctx, ids, status)
}
func (m *mockRepository) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return m.touchLastLoginFunc(ctx, id, at)
}
func (m *mockRepository) Count(ctx context.Context) (int, error) { return m.countFunc(ctx) }

func TestService_CreateUser(t *testing.T) {
	tests := []struct {
		name       string
		u          *user.User
		password   string
		createFunc func(ctx context.Context, u *user.User) error
		wantErr    bool
		wantErrIs  error
	}{
		{
			name:       "success",
			u:          &user.User{Name: "Ana Martínez", Email: "ana.martinez@mojsa.com", Role: user.RoleCashier},
			password:   "secret123",
			createFunc: func(ctx context.Context, u *user.User) error { return nil },
		},
		{
			name:       "empty_password",
			u:          &user.User{Name: "Ana Martínez", Email: "ana.martinez@mojsa.com", Role: user.RoleCashier},
			password:   "",
			createFunc: func(ctx context.Context, u *user.User) error { return nil },
			wantErr:    true,
		},
		{
			name:       "unknown_role",
			u:          &user.User{Name: "Ana Martínez", Email: "ana.martinez@mojsa.com", Role: user.Role("owner")},
			password:   "secret123",
			createFunc: func(ctx context.Context, u *user.User) error { return nil },
			wantErr:    true,
		},
		{
			name:       "duplicate_email",
			u:          &user.User{Name: "Ana Martínez", Email: "ana.martinez@mojsa.com", Role: user.RoleCashier},
			password:   "secret123",
			createFunc: func(ctx context.Context, u *user.User) error { return user.ErrEmailExists },
			wantErr:    true,
			wantErrIs:  user.ErrEmailExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := user.NewService(&mockRepository{createFunc: tt.createFunc})

			created, err := svc.CreateUser(context.Background(), tt.u, tt.password)
			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantErrIs != nil {
					assert.ErrorIs(t, err, tt.wantErrIs)
				}
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, created.ID)
			assert.Equal(t, user.StatusActive, created.Status)
			// The stored hash verifies against the plaintext and never echoes it.
			assert.NotEqual(t, tt.password, created.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte(tt.password)))
		})
	}
}

func TestService_CheckPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	active := &user.User{
		ID:           uuid.Must(uuid.NewV4()),
		Email:        "maria.gonzalez@mojsa.com",
		Role:         user.RoleAdmin,
		Status:       user.StatusActive,
		PasswordHash: string(hash),
	}
	inactive := &user.User{
		ID:           uuid.Must(uuid.NewV4()),
		Email:        "isabel.lopez@mojsa.com",
		Role:         user.RoleManager,
		Status:       user.StatusInactive,
		PasswordHash: string(hash),
	}

	repo := &mockRepository{
		getByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			switch email {
			case active.Email:
				return active, nil
			case inactive.Email:
				return inactive, nil
			}
			return nil, user.ErrNotFound
		},
	}
	svc := user.NewService(repo)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "success", email: active.Email, password: "admin123"},
		{name: "wrong_password", email: active.Email, password: "nope", wantErr: user.ErrInvalidCredentials},
		{name: "unknown_email", email: "ghost@mojsa.com", password: "admin123", wantErr: user.ErrInvalidCredentials},
		{name: "inactive_account", email: inactive.Email, password: "admin123", wantErr: user.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := svc.CheckPassword(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, active.ID, u.ID)
		})
	}
}

func TestService_SetUsersStatus(t *testing.T) {
	var gotStatus user.UserStatus
	repo := &mockRepository{
		setStatusFunc: func(ctx context.Context, ids []uuid.UUID, status user.UserStatus) error {
			gotStatus = status
			return nil
		},
	}
	svc := user.NewService(repo)

	ids := []uuid.UUID{uuid.Must(uuid.NewV4())}
	require.NoError(t, svc.SetUsersStatus(context.Background(), ids, user.StatusInactive))
	assert.Equal(t, user.StatusInactive, gotStatus)

	assert.Error(t, svc.SetUsersStatus(context.Background(), ids, user.UserStatus("suspended")))
}

func TestPermissionsForRole(t *testing.T) {
	admin := user.PermissionsForRole(user.RoleAdmin)
	assert.True(t, admin.ManageUsers)
	assert.True(t, admin.ManageMenu)

	manager := user.PermissionsForRole(user.RoleManager)
	assert.False(t, manager.ManageUsers)
	assert.True(t, manager.ViewReports)

	kitchen := user.PermissionsForRole(user.RoleKitchen)
	assert.Equal(t, user.Permissions{ProcessOrders: true}, kitchen)
}
