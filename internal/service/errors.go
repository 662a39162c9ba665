package service

import (
	"errors"

	"github.com/dtroode/homestock-server/internal/model"
)

var domainErrors = []error{
	model.ErrNotFound,
	model.ErrInvalidArgument,
	model.ErrInvalidCredentials,
	model.ErrUnauthorized,
	model.ErrTokenExpired,
	model.ErrForbidden,
	model.ErrEmailTaken,
	model.ErrCategoryExists,
	model.ErrDuplicateItem,
	model.ErrVersionConflict,
	model.ErrUpstream,
}

// isDomainError reports whether err is part of the client-facing taxonomy
// and can be returned without wrapping.
func isDomainError(err error) bool {
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
