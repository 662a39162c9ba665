// Package password hashes and verifies user passwords with bcrypt.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/homestock-server/internal/model"
)

// Bcrypt implements model.PasswordHasher. Every hash carries its own random salt.
type Bcrypt struct {
	cost int
}

var _ model.PasswordHasher = (*Bcrypt)(nil)

// NewBcrypt creates a hasher with the given work factor.
func NewBcrypt(cost int) *Bcrypt {
	return &Bcrypt{cost: cost}
}

// Hash returns the bcrypt hash of password. Passwords longer than 72 bytes
// yield model.ErrInvalidArgument.
func (b *Bcrypt) Hash(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: password must be at most 72 bytes", model.ErrInvalidArgument)
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

// Compare returns model.ErrInvalidCredentials when password does not match hash.
func (b *Bcrypt) Compare(hash []byte, password string) error {
	err := bcrypt.CompareHashAndPassword(hash, []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return model.ErrInvalidCredentials
	}
	return fmt.Errorf("%w: %v", model.ErrInvalidCredentials, err)
}
