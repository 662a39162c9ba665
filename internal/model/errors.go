package model

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument marks malformed or missing input. Callers wrap it with details.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("not authorized")
	ErrTokenExpired       = errors.New("token expired")
	ErrForbidden          = errors.New("forbidden")

	ErrEmailTaken      = errors.New("email is already registered")
	ErrCategoryExists  = errors.New("category already exists")
	ErrDuplicateItem   = errors.New("item already exists in shopping list")
	ErrVersionConflict = errors.New("shopping list was modified concurrently")

	// ErrUpstream is returned when an external service (generative AI) fails.
	ErrUpstream = errors.New("upstream service failure")
)
