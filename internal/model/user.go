package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role is a user's access level.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, user User) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// User represents a stored user with authentication material.
type User struct {
	ID             uuid.UUID
	Name           string
	Email          string
	PasswordHash   []byte
	Role           Role
	ProfilePicture string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PublicUser is the projection of User that may leave the service layer.
type PublicUser struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	ProfilePicture string    `json:"profilePicture"`
}

// Public returns the redacted projection of u.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		ProfilePicture: u.ProfilePicture,
	}
}

// SignupParams contains parameters to register a user.
type SignupParams struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

// AuthResult is returned by signup and login.
type AuthResult struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// ProfileUpdate carries optional profile changes. A nil Picture keeps the current one.
type ProfileUpdate struct {
	Name    string
	Picture *Picture
}

// Picture is an uploaded image.
type Picture struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}
