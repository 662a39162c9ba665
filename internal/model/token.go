package model

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the verified content of a session token.
type Claims struct {
	UserID    uuid.UUID
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenManager generates and validates session tokens.
type TokenManager interface {
	Generate(userID uuid.UUID, role Role) (string, error)
	Parse(token string) (Claims, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) ([]byte, error)
	Compare(hash []byte, password string) error
}
