package service

import (
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

type authDeps struct {
	users  *mocks.UserStore
	hasher *mocks.PasswordHasher
	tokens *mocks.TokenManager
}

func newTestAuth(t *testing.T) (*Auth, authDeps) {
	d := authDeps{
		users:  mocks.NewUserStore(t),
		hasher: mocks.NewPasswordHasher(t),
		tokens: mocks.NewTokenManager(t),
	}
	return NewAuth(d.users, d.hasher, d.tokens, testutil.MakeNoopLogger()), d
}

func TestAuth_Signup(t *testing.T) {
	t.Parallel()

	t.Run("creates user with default role", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestAuth(t)
		created := model.User{ID: uuid.New(), Name: "Ann", Email: "ann@example.com", Role: model.RoleUser, PasswordHash: []byte("hash")}

		d.users.On("GetByEmail", mock.Anything, "ann@example.com").Return(model.User{}, model.ErrNotFound)
		d.hasher.On("Hash", "pw").Return([]byte("hash"), nil)
		d.users.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
			return u.Name == "Ann" && u.Email == "ann@example.com" &&
				string(u.PasswordHash) == "hash" && u.Role == model.RoleUser && u.ID != uuid.Nil
		})).Return(created, nil)
		d.tokens.On("Generate", created.ID, model.RoleUser).Return("tok", nil)

		res, err := svc.Signup(t.Context(), model.SignupParams{Name: " Ann ", Email: " ann@example.com ", Password: "pw"})

		require.NoError(t, err)
		assert.Equal(t, "tok", res.Token)
		assert.Equal(t, "Ann", res.User.Name)
		assert.Equal(t, model.RoleUser, res.User.Role)
	})

	t.Run("admin role is kept", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestAuth(t)
		id := uuid.New()

		d.users.On("GetByEmail", mock.Anything, "root@example.com").Return(model.User{}, model.ErrNotFound)
		d.hasher.On("Hash", "pw").Return([]byte("hash"), nil)
		d.users.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool { return u.Role == model.RoleAdmin })).
			Return(model.User{ID: id, Role: model.RoleAdmin}, nil)
		d.tokens.On("Generate", id, model.RoleAdmin).Return("tok", nil)

		res, err := svc.Signup(t.Context(), model.SignupParams{Name: "Root", Email: "root@example.com", Password: "pw", Role: model.RoleAdmin})

		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, res.User.Role)
	})

	t.Run("email taken", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestAuth(t)

		d.users.On("GetByEmail", mock.Anything, "ann@example.com").Return(model.User{ID: uuid.New()}, nil)

		_, err := svc.Signup(t.Context(), model.SignupParams{Name: "Ann", Email: "ann@example.com", Password: "pw"})

		assert.ErrorIs(t, err, model.ErrEmailTaken)
	})

	t.Run("concurrent signup loses unique race", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestAuth(t)

		d.users.On("GetByEmail", mock.Anything, "ann@example.com").Return(model.User{}, model.ErrNotFound)
		d.hasher.On("Hash", "pw").Return([]byte("hash"), nil)
		d.users.On("Create", mock.Anything, mock.Anything).Return(model.User{}, model.ErrEmailTaken)

		_, err := svc.Signup(t.Context(), model.SignupParams{Name: "Ann", Email: "ann@example.com", Password: "pw"})

		assert.ErrorIs(t, err, model.ErrEmailTaken)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestAuth(t)

		d.users.On("GetByEmail", mock.Anything, "ann@example.com").Return(model.User{}, assert.AnError)

		_, err := svc.Signup(t.Context(), model.SignupParams{Name: "Ann", Email: "ann@example.com", Password: "pw"})

		assert.ErrorIs(t, err, assert.AnError)
		assert.False(t, isDomainError(err))
	})

	invalid := []struct {
		name   string
		params model.SignupParams
	}{
		{name: "missing name", params: model.SignupParams{Name: "  ", Email: "a@b.c", Password: "pw"}},
		{name: "missing email", params: model.SignupParams{Name: "A", Email: "", Password: "pw"}},
		{name: "missing password", params: model.SignupParams{Name: "A", Email: "a@b.c"}},
		{name: "password too long", params: model.SignupParams{Name: "A", Email: "a@b.c", Password: strings.Repeat("a", 73)}},
		{name: "unknown role", params: model.SignupParams{Name: "A", Email: "a@b.c", Password: "pw", Role: "owner"}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, d := newTestAuth(t)

			_, err := svc.Signup(t.Context(), tt.params)

			assert.ErrorIs(t, err, model.ErrInvalidArgument)
			d.users.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
			d.hasher.AssertNotCalled(t, "Hash", mock.Anything)
		})
	}

	t.Run("password of exactly 72 bytes is accepted", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestAuth(t)
		pw := strings.Repeat("a", 72)
		id := uuid.New()

		d.users.On("GetByEmail", mock.Anything, "a@b.c").Return(model.User{}, model.ErrNotFound)
		d.hasher.On("Hash", pw).Return([]byte("hash"), nil)
		d.users.On("Create", mock.Anything, mock.Anything).Return(model.User{ID: id, Role: model.RoleUser}, nil)
		d.tokens.On("Generate", id, model.RoleUser).Return("tok", nil)

		_, err := svc.Signup(t.Context(), model.SignupParams{Name: "A", Email: "a@b.c", Password: pw})

		require.NoError(t, err)
	})
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	user := model.User{ID: uuid.New(), Name: "Ann", Email: "ann@example.com", PasswordHash: []byte("hash"), Role: model.RoleUser}

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestAuth(t)

		d.users.On("GetByEmail", mock.Anything, "ann@example.com").Return(user, nil)
		d.hasher.On("Compare", []byte("hash"), "pw").Return(nil)
		d.tokens.On("Generate", user.ID, model.RoleUser).Return("tok", nil)

		res, err := svc.Login(t.Context(), "ann@example.com", "pw")

		require.NoError(t, err)
		assert.Equal(t, "tok", res.Token)
		assert.Equal(t, user.Public(), res.User)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestAuth(t)

		d.users.On("GetByEmail", mock.Anything, "ann@example.com").Return(user, nil)
		d.hasher.On("Compare", []byte("hash"), "bad").Return(model.ErrInvalidCredentials)

		_, err := svc.Login(t.Context(), "ann@example.com", "bad")

		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("unknown email looks like wrong password", func(t *testing.T) {
		t.Parallel()
		svc, d := newTestAuth(t)

		d.users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(model.User{}, model.ErrNotFound)

		_, err := svc.Login(t.Context(), "nobody@example.com", "pw")

		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestAuth(t)

		_, err := svc.Login(t.Context(), "", "pw")
		assert.ErrorIs(t, err, model.ErrInvalidArgument)

		_, err = svc.Login(t.Context(), "ann@example.com", "")
		assert.ErrorIs(t, err, model.ErrInvalidArgument)
	})
}

func TestAuth_VerifyToken(t *testing.T) {
	t.Parallel()

	claims := model.Claims{UserID: uuid.New(), Role: model.RoleAdmin}

	tests := []struct {
		name     string
		parseErr error
		wantErr  error
	}{
		{name: "valid", parseErr: nil, wantErr: nil},
		{name: "expired", parseErr: model.ErrTokenExpired, wantErr: model.ErrTokenExpired},
		{name: "unauthorized", parseErr: model.ErrUnauthorized, wantErr: model.ErrUnauthorized},
		{name: "any other failure", parseErr: assert.AnError, wantErr: model.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, d := newTestAuth(t)

			if tt.parseErr != nil {
				d.tokens.On("Parse", "tok").Return(model.Claims{}, tt.parseErr)
			} else {
				d.tokens.On("Parse", "tok").Return(claims, nil)
			}

			got, err := svc.VerifyToken("tok")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, model.Claims{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, claims, got)
		})
	}
}

func TestAuth_Authorize(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuth(t)
	user := model.Claims{UserID: uuid.New(), Role: model.RoleUser}
	admin := model.Claims{UserID: uuid.New(), Role: model.RoleAdmin}

	assert.NoError(t, svc.Authorize(admin, model.RoleAdmin))
	assert.NoError(t, svc.Authorize(user, model.RoleUser, model.RoleAdmin))
	assert.ErrorIs(t, svc.Authorize(user, model.RoleAdmin), model.ErrForbidden)
	assert.ErrorIs(t, svc.Authorize(user), model.ErrForbidden)
}
