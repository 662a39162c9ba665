package mocks

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/homestock-server/internal/model"
)

type AuthService struct{ mock.Mock }

func NewAuthService(t testingT) *AuthService {
	m := &AuthService{}
	register(&m.Mock, t)
	return m
}

func (m *AuthService) Signup(ctx context.Context, params model.SignupParams) (model.AuthResult, error) {
	args := m.Called(ctx, params)
	return typed[model.AuthResult](args, 0), args.Error(1)
}

func (m *AuthService) Login(ctx context.Context, email, password string) (model.AuthResult, error) {
	args := m.Called(ctx, email, password)
	return typed[model.AuthResult](args, 0), args.Error(1)
}

type Authenticator struct{ mock.Mock }

func NewAuthenticator(t testingT) *Authenticator {
	m := &Authenticator{}
	register(&m.Mock, t)
	return m
}

func (m *Authenticator) VerifyToken(token string) (model.Claims, error) {
	args := m.Called(token)
	return typed[model.Claims](args, 0), args.Error(1)
}

func (m *Authenticator) Authorize(claims model.Claims, allowed ...model.Role) error {
	return m.Called(claims, allowed).Error(0)
}

type UserService struct{ mock.Mock }

func NewUserService(t testingT) *UserService {
	m := &UserService{}
	register(&m.Mock, t)
	return m
}

func (m *UserService) GetProfile(ctx context.Context, id uuid.UUID) (model.PublicUser, error) {
	args := m.Called(ctx, id)
	return typed[model.PublicUser](args, 0), args.Error(1)
}

func (m *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, update model.ProfileUpdate) (model.PublicUser, error) {
	args := m.Called(ctx, id, update)
	return typed[model.PublicUser](args, 0), args.Error(1)
}

func (m *UserService) GetProfilePicture(ctx context.Context, id uuid.UUID) (io.ReadCloser, error) {
	args := m.Called(ctx, id)
	return typed[io.ReadCloser](args, 0), args.Error(1)
}

func (m *UserService) ListUsers(ctx context.Context) ([]model.PublicUser, error) {
	args := m.Called(ctx)
	return typed[[]model.PublicUser](args, 0), args.Error(1)
}

func (m *UserService) ChangeRole(ctx context.Context, id uuid.UUID, role model.Role) (model.PublicUser, error) {
	args := m.Called(ctx, id, role)
	return typed[model.PublicUser](args, 0), args.Error(1)
}

func (m *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type CategoryService struct{ mock.Mock }

func NewCategoryService(t testingT) *CategoryService {
	m := &CategoryService{}
	register(&m.Mock, t)
	return m
}

func (m *CategoryService) Create(ctx context.Context, name, description string) (model.Category, error) {
	args := m.Called(ctx, name, description)
	return typed[model.Category](args, 0), args.Error(1)
}

func (m *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	return typed[[]model.Category](args, 0), args.Error(1)
}

func (m *CategoryService) Get(ctx context.Context, id uuid.UUID) (model.Category, error) {
	args := m.Called(ctx, id)
	return typed[model.Category](args, 0), args.Error(1)
}

func (m *CategoryService) Update(ctx context.Context, id uuid.UUID, name, description string) (model.Category, error) {
	args := m.Called(ctx, id, name, description)
	return typed[model.Category](args, 0), args.Error(1)
}

func (m *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type InventoryService struct{ mock.Mock }

func NewInventoryService(t testingT) *InventoryService {
	m := &InventoryService{}
	register(&m.Mock, t)
	return m
}

func (m *InventoryService) Create(ctx context.Context, item model.InventoryItem) (model.InventoryItem, error) {
	args := m.Called(ctx, item)
	return typed[model.InventoryItem](args, 0), args.Error(1)
}

func (m *InventoryService) List(ctx context.Context, filter model.InventoryFilter) ([]model.InventoryItem, error) {
	args := m.Called(ctx, filter)
	return typed[[]model.InventoryItem](args, 0), args.Error(1)
}

func (m *InventoryService) Get(ctx context.Context, id uuid.UUID) (model.InventoryItem, error) {
	args := m.Called(ctx, id)
	return typed[model.InventoryItem](args, 0), args.Error(1)
}

func (m *InventoryService) Update(ctx context.Context, id uuid.UUID, item model.InventoryItem) (model.InventoryItem, error) {
	args := m.Called(ctx, id, item)
	return typed[model.InventoryItem](args, 0), args.Error(1)
}

func (m *InventoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *InventoryService) Expiring(ctx context.Context, within time.Duration) ([]model.InventoryItem, error) {
	args := m.Called(ctx, within)
	return typed[[]model.InventoryItem](args, 0), args.Error(1)
}

func (m *InventoryService) Expired(ctx context.Context) ([]model.InventoryItem, error) {
	args := m.Called(ctx)
	return typed[[]model.InventoryItem](args, 0), args.Error(1)
}

func (m *InventoryService) LowStock(ctx context.Context, threshold float64) ([]model.InventoryItem, error) {
	args := m.Called(ctx, threshold)
	return typed[[]model.InventoryItem](args, 0), args.Error(1)
}

type ShoppingListService struct{ mock.Mock }

func NewShoppingListService(t testingT) *ShoppingListService {
	m := &ShoppingListService{}
	register(&m.Mock, t)
	return m
}

func (m *ShoppingListService) GetList(ctx context.Context, userID uuid.UUID) (model.ShoppingList, error) {
	args := m.Called(ctx, userID)
	return typed[model.ShoppingList](args, 0), args.Error(1)
}

func (m *ShoppingListService) AddManualItem(ctx context.Context, userID uuid.UUID, name string, quantity float64) (model.ShoppingList, error) {
	args := m.Called(ctx, userID, name, quantity)
	return typed[model.ShoppingList](args, 0), args.Error(1)
}

func (m *ShoppingListService) RemoveItem(ctx context.Context, userID uuid.UUID, name string) (model.ShoppingList, error) {
	args := m.Called(ctx, userID, name)
	return typed[model.ShoppingList](args, 0), args.Error(1)
}

func (m *ShoppingListService) AutoReconcile(ctx context.Context, userID uuid.UUID, threshold float64) (model.ShoppingList, error) {
	args := m.Called(ctx, userID, threshold)
	return typed[model.ShoppingList](args, 0), args.Error(1)
}

type ChatbotService struct{ mock.Mock }

func NewChatbotService(t testingT) *ChatbotService {
	m := &ChatbotService{}
	register(&m.Mock, t)
	return m
}

func (m *ChatbotService) Reply(ctx context.Context, message string) (string, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Error(1)
}
