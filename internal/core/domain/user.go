package domain

import "time"

// UserRole identifies what a user is allowed to act as in approval workflows.
type UserRole string

const (
	RoleEmployee UserRole = "EMPLOYEE"
	RoleManager  UserRole = "MANAGER"
	RoleFinance  UserRole = "FINANCE"
	RoleAdmin    UserRole = "ADMIN"
)

var knownRoles = map[UserRole]struct{}{
	RoleEmployee: {},
	RoleManager:  {},
	RoleFinance:  {},
	RoleAdmin:    {},
}

// IsValid returns true if the role is one of the known roles.
func (r UserRole) IsValid() bool {
	_, ok := knownRoles[r]
	return ok
}

// User represents a user of the application in the domain.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (e.g., UUID)
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	Department   string   `json:"department"`
	PasswordHash string   `json:"-"` // Empty for externally authenticated users
	AuthProvider string   `json:"authProvider,omitempty"`
	AuditFields
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	DeletedAt              *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// GoogleUserInfo holds the subset of the Google ID token payload the
// application cares about.
type GoogleUserInfo struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}
