package service

import (
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/homestock-server/internal/mocks"
	"github.com/dtroode/homestock-server/internal/model"
	"github.com/dtroode/homestock-server/internal/testutil"
)

func newTestUser(t *testing.T) (*User, *mocks.UserStore, *mocks.Storage) {
	users := mocks.NewUserStore(t)
	storage := mocks.NewStorage(t)
	return NewUser(users, storage, testutil.MakeNoopLogger()), users, storage
}

func TestUser_GetProfile(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestUser(t)
	u := model.User{ID: uuid.New(), Name: "Ann", PasswordHash: []byte("secret")}
	users.On("GetByID", mock.Anything, u.ID).Return(u, nil)

	got, err := svc.GetProfile(t.Context(), u.ID)

	require.NoError(t, err)
	assert.Equal(t, u.Public(), got)
}

func TestUser_GetProfile_NotFound(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestUser(t)
	id := uuid.New()
	users.On("GetByID", mock.Anything, id).Return(model.User{}, model.ErrNotFound)

	_, err := svc.GetProfile(t.Context(), id)

	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUser_UpdateProfile(t *testing.T) {
	t.Parallel()

	t.Run("rename only", func(t *testing.T) {
		t.Parallel()
		svc, users, _ := newTestUser(t)
		u := model.User{ID: uuid.New(), Name: "Ann", ProfilePicture: "old.png"}

		users.On("GetByID", mock.Anything, u.ID).Return(u, nil)
		users.On("Update", mock.Anything, mock.MatchedBy(func(n model.User) bool {
			return n.Name == "Anna" && n.ProfilePicture == "old.png"
		})).Return(model.User{ID: u.ID, Name: "Anna", ProfilePicture: "old.png"}, nil)

		got, err := svc.UpdateProfile(t.Context(), u.ID, model.ProfileUpdate{Name: " Anna "})

		require.NoError(t, err)
		assert.Equal(t, "Anna", got.Name)
	})

	t.Run("new picture replaces old one", func(t *testing.T) {
		t.Parallel()
		svc, users, storage := newTestUser(t)
		u := model.User{ID: uuid.New(), Name: "Ann", ProfilePicture: "profile-pictures/old.png"}
		pic := &model.Picture{Filename: "me.PNG", ContentType: "image/png", Data: []byte("png")}
		prefix := "profile-pictures/" + u.ID.String() + "/"

		users.On("GetByID", mock.Anything, u.ID).Return(u, nil)
		storage.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, prefix) && strings.HasSuffix(key, ".png")
		}), mock.Anything, int64(3), "image/png").Return(nil)
		users.On("Update", mock.Anything, mock.MatchedBy(func(n model.User) bool {
			return strings.HasPrefix(n.ProfilePicture, prefix)
		})).Return(model.User{ID: u.ID, Name: "Ann", ProfilePicture: prefix + "new.png"}, nil)
		storage.On("Delete", mock.Anything, "profile-pictures/old.png").Return(assert.AnError)

		got, err := svc.UpdateProfile(t.Context(), u.ID, model.ProfileUpdate{Picture: pic})

		require.NoError(t, err)
		assert.Equal(t, prefix+"new.png", got.ProfilePicture)
	})

	t.Run("upload failure keeps profile untouched", func(t *testing.T) {
		t.Parallel()
		svc, users, storage := newTestUser(t)
		u := model.User{ID: uuid.New()}

		users.On("GetByID", mock.Anything, u.ID).Return(u, nil)
		storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

		_, err := svc.UpdateProfile(t.Context(), u.ID, model.ProfileUpdate{
			Picture: &model.Picture{Filename: "a.jpg", ContentType: "image/jpeg", Data: []byte("x")},
		})

		assert.ErrorIs(t, err, assert.AnError)
		users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("update failure removes uploaded picture", func(t *testing.T) {
		t.Parallel()
		svc, users, storage := newTestUser(t)
		u := model.User{ID: uuid.New(), ProfilePicture: "old.png"}
		var uploaded string

		users.On("GetByID", mock.Anything, u.ID).Return(u, nil)
		storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, "image/jpeg").
			Run(func(args mock.Arguments) { uploaded = args.String(1) }).
			Return(nil)
		users.On("Update", mock.Anything, mock.Anything).Return(model.User{}, assert.AnError)
		storage.On("Delete", mock.Anything, mock.MatchedBy(func(key string) bool { return key == uploaded })).Return(nil).Once()

		_, err := svc.UpdateProfile(t.Context(), u.ID, model.ProfileUpdate{
			Picture: &model.Picture{Filename: "a.jpg", ContentType: "image/jpeg", Data: []byte("x")},
		})

		assert.ErrorIs(t, err, assert.AnError)
		storage.AssertNotCalled(t, "Delete", mock.Anything, "old.png")
	})

	invalid := []struct {
		name string
		pic  model.Picture
	}{
		{name: "empty", pic: model.Picture{Filename: "a.png", ContentType: "image/png"}},
		{name: "too large", pic: model.Picture{Filename: "a.png", ContentType: "image/png", Data: make([]byte, MaxPictureSize+1)}},
		{name: "not an image", pic: model.Picture{Filename: "a.txt", ContentType: "text/plain", Data: []byte("x")}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, _, _ := newTestUser(t)

			_, err := svc.UpdateProfile(t.Context(), uuid.New(), model.ProfileUpdate{Picture: &tt.pic})

			assert.ErrorIs(t, err, model.ErrInvalidArgument)
		})
	}
}

func TestUser_GetProfilePicture(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		svc, users, storage := newTestUser(t)
		u := model.User{ID: uuid.New(), ProfilePicture: "k.png"}

		users.On("GetByID", mock.Anything, u.ID).Return(u, nil)
		storage.On("Exists", mock.Anything, "k.png").Return(true, nil)
		storage.On("Download", mock.Anything, "k.png").Return(io.NopCloser(strings.NewReader("img")), nil)

		rc, err := svc.GetProfilePicture(t.Context(), u.ID)
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "img", string(data))
	})

	t.Run("no picture", func(t *testing.T) {
		t.Parallel()
		svc, users, _ := newTestUser(t)
		u := model.User{ID: uuid.New()}

		users.On("GetByID", mock.Anything, u.ID).Return(u, nil)

		_, err := svc.GetProfilePicture(t.Context(), u.ID)

		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("object missing", func(t *testing.T) {
		t.Parallel()
		svc, users, storage := newTestUser(t)
		u := model.User{ID: uuid.New(), ProfilePicture: "gone.png"}

		users.On("GetByID", mock.Anything, u.ID).Return(u, nil)
		storage.On("Exists", mock.Anything, "gone.png").Return(false, nil)

		_, err := svc.GetProfilePicture(t.Context(), u.ID)

		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		t.Parallel()
		svc, users, storage := newTestUser(t)
		u := model.User{ID: uuid.New(), ProfilePicture: "k.png"}

		users.On("GetByID", mock.Anything, u.ID).Return(u, nil)
		storage.On("Exists", mock.Anything, "k.png").Return(false, assert.AnError)

		_, err := svc.GetProfilePicture(t.Context(), u.ID)

		assert.ErrorIs(t, err, assert.AnError)
		assert.NotErrorIs(t, err, model.ErrNotFound)
	})
}

func TestUser_ListUsers(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestUser(t)
	a := model.User{ID: uuid.New(), Name: "A", PasswordHash: []byte("h")}
	b := model.User{ID: uuid.New(), Name: "B", PasswordHash: []byte("h")}
	users.On("List", mock.Anything).Return([]model.User{a, b}, nil)

	got, err := svc.ListUsers(t.Context())

	require.NoError(t, err)
	assert.Equal(t, []model.PublicUser{a.Public(), b.Public()}, got)
}

func TestUser_ChangeRole(t *testing.T) {
	t.Parallel()

	t.Run("promote", func(t *testing.T) {
		t.Parallel()
		svc, users, _ := newTestUser(t)
		u := model.User{ID: uuid.New(), Role: model.RoleUser}

		users.On("GetByID", mock.Anything, u.ID).Return(u, nil)
		users.On("Update", mock.Anything, mock.MatchedBy(func(n model.User) bool { return n.Role == model.RoleAdmin })).
			Return(model.User{ID: u.ID, Role: model.RoleAdmin}, nil)

		got, err := svc.ChangeRole(t.Context(), u.ID, model.RoleAdmin)

		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, got.Role)
	})

	t.Run("unknown role", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestUser(t)

		_, err := svc.ChangeRole(t.Context(), uuid.New(), "superuser")

		assert.ErrorIs(t, err, model.ErrInvalidArgument)
	})
}

func TestUser_DeleteUser(t *testing.T) {
	t.Parallel()

	t.Run("removes user and picture", func(t *testing.T) {
		t.Parallel()
		svc, users, storage := newTestUser(t)
		u := model.User{ID: uuid.New(), ProfilePicture: "k.png"}

		users.On("GetByID", mock.Anything, u.ID).Return(u, nil).Once()
		users.On("Delete", mock.Anything, u.ID).Return(nil).Once()
		storage.On("Delete", mock.Anything, "k.png").Return(nil)

		require.NoError(t, svc.DeleteUser(t.Context(), u.ID))

		users.On("GetByID", mock.Anything, u.ID).Return(model.User{}, model.ErrNotFound).Once()
		assert.ErrorIs(t, svc.DeleteUser(t.Context(), u.ID), model.ErrNotFound)
	})
}
