package identity

import "github.com/assettrack/backend/internal/domain/shared"

const AggregateTypeUser = "User"

const (
	EventTypeUserCreated         = "user.created"
	EventTypeUserPasswordChanged = "user.password_changed"
	EventTypeUserStatusChanged   = "user.status_changed"
)

func userEvent(eventType string, u *User) shared.BaseDomainEvent {
	return shared.NewBaseDomainEvent(eventType, AggregateTypeUser, u.ID)
}

// UserCreatedEvent announces a new login account. The password hash never leaves the aggregate.
type UserCreatedEvent struct {
	shared.BaseDomainEvent
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  Role   `json:"role"`
}

func NewUserCreatedEvent(u *User) *UserCreatedEvent {
	return &UserCreatedEvent{BaseDomainEvent: userEvent(EventTypeUserCreated, u), Email: u.Email, Name: u.Name, Role: u.Role}
}

// UserPasswordChangedEvent marks the point after which older refresh tokens are void
type UserPasswordChangedEvent struct {
	shared.BaseDomainEvent
	Email string `json:"email"`
}

func NewUserPasswordChangedEvent(u *User) *UserPasswordChangedEvent {
	return &UserPasswordChangedEvent{BaseDomainEvent: userEvent(EventTypeUserPasswordChanged, u), Email: u.Email}
}

// UserStatusChangedEvent follows an employee exit or rehire onto the login account
type UserStatusChangedEvent struct {
	shared.BaseDomainEvent
	From UserStatus `json:"from"`
	To   UserStatus `json:"to"`
}

func NewUserStatusChangedEvent(u *User, from UserStatus) *UserStatusChangedEvent {
	return &UserStatusChangedEvent{BaseDomainEvent: userEvent(EventTypeUserStatusChanged, u), From: from, To: u.Status}
}
