package user

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid"
)

// Role is a staff role. Roles decide both dashboard permissions and which
// order status transitions a caller may drive.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleCashier Role = "cashier"
	RoleKitchen Role = "kitchen"
)

func (r Role) String() string {
	return string(r)
}

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleCashier, RoleKitchen:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"
)

// Permissions is the dashboard capability set derived from a role.
type Permissions struct {
	ViewReports   bool `json:"view_reports"`
	ManageMenu    bool `json:"manage_menu"`
	ProcessOrders bool `json:"process_orders"`
	ManageUsers   bool `json:"manage_users"`
	ViewAnalytics bool `json:"view_analytics"`
	ExportData    bool `json:"export_data"`
}

func PermissionsForRole(role Role) Permissions {
	switch role {
	case RoleAdmin:
		return Permissions{
			ViewReports:   true,
			ManageMenu:    true,
			ProcessOrders: true,
			ManageUsers:   true,
			ViewAnalytics: true,
			ExportData:    true,
		}
	case RoleManager:
		return Permissions{
			ViewReports:   true,
			ManageMenu:    true,
			ProcessOrders: true,
			ViewAnalytics: true,
			ExportData:    true,
		}
	default:
		// Cashiers and kitchen staff only work the order queue.
		return Permissions{ProcessOrders: true}
	}
}

type User struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	Email        string     `json:"email" db:"email"`
	Phone        string     `json:"phone,omitempty" db:"phone"`
	Role         Role       `json:"role" db:"role"`
	BranchID     uuid.UUID  `json:"branch_id" db:"branch_id"`
	Status       UserStatus `json:"status" db:"status"`
	PasswordHash string     `json:"-" db:"password_hash"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty" db:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// Permissions resolves the capability set for the user's role.
func (u *User) Permissions() Permissions {
	return PermissionsForRole(u.Role)
}
