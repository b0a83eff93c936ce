package monitoring

import (
	"strings"
	"time"

	"github.com/roadwatch/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

// UserRole represents the access level of a dashboard user
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleOperator UserRole = "operator"
	UserRoleViewer   UserRole = "viewer"
)

// User represents a dashboard operator account
type User struct {
	shared.BaseEntity
	Username  string     `json:"username"`
	Password  string     `json:"-"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Role      UserRole   `json:"role"`
	LastLogin *time.Time `json:"last_login"`
}

// NewUser creates a new user with required fields. The password is expected
// to be hashed by the caller before the entity is persisted.
func NewUser(username, password, fullName, email string, role UserRole) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if password == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if fullName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Full name cannot be empty")
	}
	if err := validateUserRole(role); err != nil {
		return nil, err
	}

	return &User{
		BaseEntity: shared.NewBaseEntity(),
		Username:   username,
		Password:   password,
		FullName:   fullName,
		Email:      email,
		Role:       role,
	}, nil
}

// RecordLogin stamps the last-login time
func (u *User) RecordLogin() {
	now := time.Now()
	u.LastLogin = &now
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// VerifyPassword checks a plaintext password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// HashPassword hashes a plaintext password for storage
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", shared.NewDomainError("INVALID_PASSWORD", "Failed to hash password")
	}
	return string(hash), nil
}

func validateUserRole(role UserRole) error {
	switch role {
	case UserRoleAdmin, UserRoleOperator, UserRoleViewer:
		return nil
	default:
		return shared.NewDomainError("INVALID_ROLE", "Role must be one of: admin, operator, viewer")
	}
}
