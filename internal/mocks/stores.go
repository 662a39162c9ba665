package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/homestock-server/internal/model"
)

type UserStore struct{ mock.Mock }

func NewUserStore(t testingT) *UserStore {
	m := &UserStore{}
	register(&m.Mock, t)
	return m
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return typed[model.User](args, 0), args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return typed[model.User](args, 0), args.Error(1)
}

func (m *UserStore) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return typed[[]model.User](args, 0), args.Error(1)
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return typed[model.User](args, 0), args.Error(1)
}

func (m *UserStore) Update(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return typed[model.User](args, 0), args.Error(1)
}

func (m *UserStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type CategoryStore struct{ mock.Mock }

func NewCategoryStore(t testingT) *CategoryStore {
	m := &CategoryStore{}
	register(&m.Mock, t)
	return m
}

func (m *CategoryStore) Create(ctx context.Context, c model.Category) (model.Category, error) {
	args := m.Called(ctx, c)
	return typed[model.Category](args, 0), args.Error(1)
}

func (m *CategoryStore) GetByID(ctx context.Context, id uuid.UUID) (model.Category, error) {
	args := m.Called(ctx, id)
	return typed[model.Category](args, 0), args.Error(1)
}

func (m *CategoryStore) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	return typed[[]model.Category](args, 0), args.Error(1)
}

func (m *CategoryStore) Update(ctx context.Context, c model.Category) (model.Category, error) {
	args := m.Called(ctx, c)
	return typed[model.Category](args, 0), args.Error(1)
}

func (m *CategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type InventoryStore struct{ mock.Mock }

func NewInventoryStore(t testingT) *InventoryStore {
	m := &InventoryStore{}
	register(&m.Mock, t)
	return m
}

func (m *InventoryStore) Create(ctx context.Context, item model.InventoryItem) (model.InventoryItem, error) {
	args := m.Called(ctx, item)
	return typed[model.InventoryItem](args, 0), args.Error(1)
}

func (m *InventoryStore) GetByID(ctx context.Context, id uuid.UUID) (model.InventoryItem, error) {
	args := m.Called(ctx, id)
	return typed[model.InventoryItem](args, 0), args.Error(1)
}

func (m *InventoryStore) List(ctx context.Context, filter model.InventoryFilter) ([]model.InventoryItem, error) {
	args := m.Called(ctx, filter)
	return typed[[]model.InventoryItem](args, 0), args.Error(1)
}

func (m *InventoryStore) Update(ctx context.Context, item model.InventoryItem) (model.InventoryItem, error) {
	args := m.Called(ctx, item)
	return typed[model.InventoryItem](args, 0), args.Error(1)
}

func (m *InventoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *InventoryStore) FindBelowQuantity(ctx context.Context, threshold float64) ([]model.InventoryItem, error) {
	args := m.Called(ctx, threshold)
	return typed[[]model.InventoryItem](args, 0), args.Error(1)
}

func (m *InventoryStore) FindExpiringBetween(ctx context.Context, from, to time.Time) ([]model.InventoryItem, error) {
	args := m.Called(ctx, from, to)
	return typed[[]model.InventoryItem](args, 0), args.Error(1)
}

func (m *InventoryStore) FindExpiredBefore(ctx context.Context, t time.Time) ([]model.InventoryItem, error) {
	args := m.Called(ctx, t)
	return typed[[]model.InventoryItem](args, 0), args.Error(1)
}

func (m *InventoryStore) FindByName(ctx context.Context, name string) ([]model.InventoryItem, error) {
	args := m.Called(ctx, name)
	return typed[[]model.InventoryItem](args, 0), args.Error(1)
}

type ShoppingListStore struct{ mock.Mock }

func NewShoppingListStore(t testingT) *ShoppingListStore {
	m := &ShoppingListStore{}
	register(&m.Mock, t)
	return m
}

func (m *ShoppingListStore) GetByUserID(ctx context.Context, userID uuid.UUID) (model.ShoppingList, error) {
	args := m.Called(ctx, userID)
	return typed[model.ShoppingList](args, 0), args.Error(1)
}

func (m *ShoppingListStore) Create(ctx context.Context, list model.ShoppingList) (model.ShoppingList, error) {
	args := m.Called(ctx, list)
	return typed[model.ShoppingList](args, 0), args.Error(1)
}

func (m *ShoppingListStore) Save(ctx context.Context, list model.ShoppingList) (model.ShoppingList, error) {
	args := m.Called(ctx, list)
	return typed[model.ShoppingList](args, 0), args.Error(1)
}
