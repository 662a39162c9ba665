package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/homestock-server/internal/logger"
	"github.com/dtroode/homestock-server/internal/model"
)

// MaxPictureSize bounds uploaded profile pictures.
const MaxPictureSize = 5 << 20

const pictureKeyPrefix = "profile-pictures"

// User serves profile reads and updates plus admin user management.
type User struct {
	userStore model.UserStore
	storage   model.Storage
	logger    *logger.Logger
}

func NewUser(userStore model.UserStore, storage model.Storage, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		storage:   storage,
		logger:    logger,
	}
}

func (s *User) GetProfile(ctx context.Context, id uuid.UUID) (model.PublicUser, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return model.PublicUser{}, s.storeError("get user", id, err)
	}
	return user.Public(), nil
}

// UpdateProfile renames the user and, when a picture is given, stores it and
// replaces the previous one.
func (s *User) UpdateProfile(ctx context.Context, id uuid.UUID, update model.ProfileUpdate) (model.PublicUser, error) {
	if update.Picture != nil {
		if err := validatePicture(*update.Picture); err != nil {
			return model.PublicUser{}, err
		}
	}

	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return model.PublicUser{}, s.storeError("get user", id, err)
	}

	if name := strings.TrimSpace(update.Name); name != "" {
		user.Name = name
	}

	previous := user.ProfilePicture
	if update.Picture != nil {
		key := pictureKey(id, update.Picture.Filename)
		p := update.Picture
		if err := s.storage.Upload(ctx, key, bytes.NewReader(p.Data), int64(len(p.Data)), p.ContentType); err != nil {
			s.logger.Error("User service: failed to upload profile picture",
				"user_id", id,
				"error", err.Error())
			return model.PublicUser{}, fmt.Errorf("failed to upload profile picture: %w", err)
		}
		user.ProfilePicture = key
	}

	saved, err := s.userStore.Update(ctx, user)
	if err != nil {
		if update.Picture != nil {
			s.deletePicture(ctx, id, user.ProfilePicture)
		}
		return model.PublicUser{}, s.storeError("update user", id, err)
	}

	if previous != "" && previous != saved.ProfilePicture {
		s.deletePicture(ctx, id, previous)
	}

	s.logger.Info("User service: profile updated",
		"user_id", id)

	return saved.Public(), nil
}

// GetProfilePicture opens the stored picture of the user.
func (s *User) GetProfilePicture(ctx context.Context, id uuid.UUID) (io.ReadCloser, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, s.storeError("get user", id, err)
	}
	if user.ProfilePicture == "" {
		return nil, model.ErrNotFound
	}

	// Download opens the object lazily, so a missing key would only fail on read.
	ok, err := s.storage.Exists(ctx, user.ProfilePicture)
	if err != nil {
		return nil, s.storeError("check profile picture", id, err)
	}
	if !ok {
		s.logger.Warn("User service: profile picture object missing",
			"user_id", id, "key", user.ProfilePicture)
		return nil, model.ErrNotFound
	}

	rc, err := s.storage.Download(ctx, user.ProfilePicture)
	if err != nil {
		return nil, s.storeError("download profile picture", id, err)
	}
	return rc, nil
}

func (s *User) ListUsers(ctx context.Context) ([]model.PublicUser, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		s.logger.Error("User service: failed to list users", "error", err.Error())
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	out := make([]model.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}

func (s *User) ChangeRole(ctx context.Context, id uuid.UUID, role model.Role) (model.PublicUser, error) {
	if !role.Valid() {
		return model.PublicUser{}, fmt.Errorf("%w: unknown role %q", model.ErrInvalidArgument, role)
	}

	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return model.PublicUser{}, s.storeError("get user", id, err)
	}

	user.Role = role
	saved, err := s.userStore.Update(ctx, user)
	if err != nil {
		return model.PublicUser{}, s.storeError("update user", id, err)
	}

	s.logger.Info("User service: role changed",
		"user_id", id,
		"role", role)

	return saved.Public(), nil
}

// DeleteUser removes the credential record. A second call fails with model.ErrNotFound.
func (s *User) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return s.storeError("get user", id, err)
	}

	if err := s.userStore.Delete(ctx, id); err != nil {
		return s.storeError("delete user", id, err)
	}

	if user.ProfilePicture != "" {
		s.deletePicture(ctx, id, user.ProfilePicture)
	}

	s.logger.Info("User service: user deleted",
		"user_id", id)

	return nil
}

// deletePicture removes an orphaned picture. Failures are only logged.
func (s *User) deletePicture(ctx context.Context, id uuid.UUID, key string) {
	if err := s.storage.Delete(ctx, key); err != nil {
		s.logger.Warn("User service: failed to delete profile picture",
			"user_id", id,
			"key", key,
			"error", err.Error())
	}
}

func (s *User) storeError(op string, id uuid.UUID, err error) error {
	if isDomainError(err) {
		return err
	}
	s.logger.Error("User service: failed to "+op,
		"user_id", id,
		"error", err.Error())
	return fmt.Errorf("failed to %s: %w", op, err)
}

func validatePicture(p model.Picture) error {
	if len(p.Data) == 0 {
		return fmt.Errorf("%w: profile picture is empty", model.ErrInvalidArgument)
	}
	if len(p.Data) > MaxPictureSize {
		return fmt.Errorf("%w: profile picture exceeds %d bytes", model.ErrInvalidArgument, MaxPictureSize)
	}
	if !strings.HasPrefix(p.ContentType, "image/") {
		return fmt.Errorf("%w: profile picture must be an image, got %q", model.ErrInvalidArgument, p.ContentType)
	}
	return nil
}

func pictureKey(userID uuid.UUID, filename string) string {
	return path.Join(pictureKeyPrefix, userID.String(), uuid.NewString()+strings.ToLower(path.Ext(filename)))
}
