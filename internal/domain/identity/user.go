package identity

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/assettrack/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// UserStatus represents the status of a login account
type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusInactive UserStatus = "INACTIVE"
)

// IsValid reports whether s is a known status
func (s UserStatus) IsValid() bool {
	return s == UserStatusActive || s == UserStatusInactive
}

// Role is the coarse permission level of a user
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleManager  Role = "Manager"
	RoleEmployee Role = "Employee"
)

// IsValid reports whether r is a known role
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// Password cost for bcrypt
const bcryptCost = 12

const (
	minPasswordLength = 6
	maxPasswordLength = 72
	minNameLength     = 2
	maxNameLength     = 60
)

// User is a login account
// It is the aggregate root for authentication and profile operations
type User struct {
	shared.BaseAggregateRoot
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	Status       UserStatus
	RefreshToken string
	ProfileImage *string
}

// NewUser creates an active user with a hashed password
func NewUser(email, password string, role Role) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if role == "" {
		role = RoleEmployee
	}
	if !role.IsValid() {
		return nil, shared.NewFieldError("role", "Role must be one of Admin, Manager, Employee")
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	user := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		PasswordHash:      passwordHash,
		Role:              role,
		Status:            UserStatusActive,
	}
	user.RecordEvent(NewUserCreatedEvent(user))

	return user, nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// ChangePassword changes the user's password
func (u *User) ChangePassword(currentPassword, newPassword string) error {
	if !u.VerifyPassword(currentPassword) {
		return ErrCurrentPasswordIncorrect
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	passwordHash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	u.PasswordHash = passwordHash
	u.touch()
	u.RecordEvent(NewUserPasswordChangedEvent(u))

	return nil
}

// SetEmail sets a new, already uniqueness-checked email
func (u *User) SetEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return err
	}
	u.Email = email
	u.touch()
	return nil
}

// SetName sets the display name
func (u *User) SetName(name string) error {
	name = strings.TrimSpace(name)
	n := utf8.RuneCountInString(name)
	if n < minNameLength {
		return shared.NewFieldError("name", "Name is required")
	}
	if n > maxNameLength {
		return shared.NewFieldError("name", "Name is too long")
	}
	u.Name = name
	u.touch()
	return nil
}

// SetStatus changes the account status, usually cascaded from the employee record
func (u *User) SetStatus(status UserStatus) error {
	if !status.IsValid() {
		return shared.NewFieldError("status", "Status must be ACTIVE or INACTIVE")
	}
	if u.Status == status {
		return nil
	}
	old := u.Status
	u.Status = status
	if status == UserStatusInactive {
		u.RefreshToken = ""
	}
	u.touch()
	u.RecordEvent(NewUserStatusChangedEvent(u, old))
	return nil
}

// SetRefreshToken records the latest issued refresh token
func (u *User) SetRefreshToken(token string) {
	u.RefreshToken = token
	u.touch()
}

// ClearRefreshToken forgets the refresh token on logout
func (u *User) ClearRefreshToken() {
	u.RefreshToken = ""
	u.touch()
}

// HasRefreshToken reports whether token is the one currently on record
func (u *User) HasRefreshToken(token string) bool {
	return u.RefreshToken != "" && u.RefreshToken == token
}

// SetProfileImage sets or clears the profile image object key
func (u *User) SetProfileImage(key *string) {
	u.ProfileImage = key
	u.touch()
}

// IsActive returns true if user is active
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// HasAnyRole reports whether the user holds one of roles
func (u *User) HasAnyRole(roles ...Role) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

func (u *User) touch() {
	u.Touch(time.Now())
}

// Validation functions

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validatePassword(password string) error {
	if password == "" {
		return shared.NewFieldError("password", "Password cannot be empty")
	}
	if len(password) < minPasswordLength {
		return shared.NewFieldError("password", "Password must be at least 6 characters")
	}
	if len(password) > maxPasswordLength {
		return shared.NewFieldError("password", "Password cannot exceed 72 characters")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewFieldError("email", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewFieldError("email", "Invalid email address")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
