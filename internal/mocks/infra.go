package mocks

import (
	"context"
	"io"
	"net"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/homestock-server/internal/model"
)

type Storage struct{ mock.Mock }

func NewStorage(t testingT) *Storage {
	m := &Storage{}
	register(&m.Mock, t)
	return m
}

func (m *Storage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	return m.Called(ctx, key, reader, size, contentType).Error(0)
}

func (m *Storage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	return typed[io.ReadCloser](args, 0), args.Error(1)
}

func (m *Storage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *Storage) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

type TokenManager struct{ mock.Mock }

func NewTokenManager(t testingT) *TokenManager {
	m := &TokenManager{}
	register(&m.Mock, t)
	return m
}

func (m *TokenManager) Generate(userID uuid.UUID, role model.Role) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) Parse(token string) (model.Claims, error) {
	args := m.Called(token)
	return typed[model.Claims](args, 0), args.Error(1)
}

type PasswordHasher struct{ mock.Mock }

func NewPasswordHasher(t testingT) *PasswordHasher {
	m := &PasswordHasher{}
	register(&m.Mock, t)
	return m
}

func (m *PasswordHasher) Hash(password string) ([]byte, error) {
	args := m.Called(password)
	return typed[[]byte](args, 0), args.Error(1)
}

func (m *PasswordHasher) Compare(hash []byte, password string) error {
	return m.Called(hash, password).Error(0)
}

type Generator struct{ mock.Mock }

func NewGenerator(t testingT) *Generator {
	m := &Generator{}
	register(&m.Mock, t)
	return m
}

func (m *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type SecurityLayer struct{ mock.Mock }

func NewSecurityLayer(t testingT) *SecurityLayer {
	m := &SecurityLayer{}
	register(&m.Mock, t)
	return m
}

func (m *SecurityLayer) Listen(protocol, addr string) (net.Listener, error) {
	args := m.Called(protocol, addr)
	return typed[net.Listener](args, 0), args.Error(1)
}

type Pinger struct{ mock.Mock }

func NewPinger(t testingT) *Pinger {
	m := &Pinger{}
	register(&m.Mock, t)
	return m
}

func (m *Pinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
