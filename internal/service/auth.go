package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/homestock-server/internal/logger"
	"github.com/dtroode/homestock-server/internal/model"
)

// Auth issues and verifies session tokens and gates access by role.
type Auth struct {
	userStore model.UserStore
	hasher    model.PasswordHasher
	tokens    model.TokenManager
	logger    *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokens model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore: userStore,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
	}
}

func (a *Auth) Signup(ctx context.Context, params model.SignupParams) (model.AuthResult, error) {
	params.Name = strings.TrimSpace(params.Name)
	params.Email = strings.TrimSpace(params.Email)
	if params.Role == "" {
		params.Role = model.RoleUser
	}

	if err := validateSignup(params); err != nil {
		return model.AuthResult{}, err
	}

	a.logger.Debug("Auth service: starting user signup",
		"email", params.Email)

	_, err := a.userStore.GetByEmail(ctx, params.Email)
	if err == nil {
		a.logger.Info("Auth service: user already exists",
			"email", params.Email)
		return model.AuthResult{}, model.ErrEmailTaken
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", params.Email,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", params.Email,
			"error", err.Error())
		return model.AuthResult{}, err
	}

	now := time.Now()
	user, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: hash,
		Role:         params.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			return model.AuthResult{}, err
		}
		a.logger.Error("Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := a.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user signed up",
		"user_id", user.ID,
		"role", user.Role)

	return model.AuthResult{Token: token, User: user.Public()}, nil
}

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

func validateSignup(params model.SignupParams) error {
	switch {
	case params.Name == "":
		return fmt.Errorf("%w: name is required", model.ErrInvalidArgument)
	case params.Email == "":
		return fmt.Errorf("%w: email is required", model.ErrInvalidArgument)
	case params.Password == "":
		return fmt.Errorf("%w: password is required", model.ErrInvalidArgument)
	case len(params.Password) > maxPasswordBytes:
		return fmt.Errorf("%w: password must be at most %d bytes", model.ErrInvalidArgument, maxPasswordBytes)
	case !params.Role.Valid():
		return fmt.Errorf("%w: unknown role %q", model.ErrInvalidArgument, params.Role)
	}
	return nil
}

// Login checks the credentials. Unknown email and wrong password both yield
// model.ErrInvalidCredentials.
func (a *Auth) Login(ctx context.Context, email, password string) (model.AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return model.AuthResult{}, fmt.Errorf("%w: email and password are required", model.ErrInvalidArgument)
	}

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: login for unknown email",
			"email", email)
		return model.AuthResult{}, model.ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := a.hasher.Compare(user.PasswordHash, password); err != nil {
		a.logger.Info("Auth service: password mismatch",
			"user_id", user.ID)
		return model.AuthResult{}, model.ErrInvalidCredentials
	}

	token, err := a.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID)

	return model.AuthResult{Token: token, User: user.Public()}, nil
}

// VerifyToken returns the claims of a valid token. It fails with
// model.ErrUnauthorized or model.ErrTokenExpired.
func (a *Auth) VerifyToken(token string) (model.Claims, error) {
	claims, err := a.tokens.Parse(token)
	if err != nil {
		if errors.Is(err, model.ErrTokenExpired) {
			return model.Claims{}, model.ErrTokenExpired
		}
		return model.Claims{}, model.ErrUnauthorized
	}
	return claims, nil
}

// Authorize fails with model.ErrForbidden unless claims carry one of allowed.
func (a *Auth) Authorize(claims model.Claims, allowed ...model.Role) error {
	if slices.Contains(allowed, claims.Role) {
		return nil
	}
	return model.ErrForbidden
}
