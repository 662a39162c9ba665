package handler

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/homestock-server/internal/model"
)

// AuthService registers and logs users in.
type AuthService interface {
	Signup(ctx context.Context, params model.SignupParams) (model.AuthResult, error)
	Login(ctx context.Context, email, password string) (model.AuthResult, error)
}

// UserService manages profiles and, for admins, user accounts.
type UserService interface {
	GetProfile(ctx context.Context, id uuid.UUID) (model.PublicUser, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, update model.ProfileUpdate) (model.PublicUser, error)
	GetProfilePicture(ctx context.Context, id uuid.UUID) (io.ReadCloser, error)
	ListUsers(ctx context.Context) ([]model.PublicUser, error)
	ChangeRole(ctx context.Context, id uuid.UUID, role model.Role) (model.PublicUser, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type CategoryService interface {
	Create(ctx context.Context, name, description string) (model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Get(ctx context.Context, id uuid.UUID) (model.Category, error)
	Update(ctx context.Context, id uuid.UUID, name, description string) (model.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type InventoryService interface {
	Create(ctx context.Context, item model.InventoryItem) (model.InventoryItem, error)
	List(ctx context.Context, filter model.InventoryFilter) ([]model.InventoryItem, error)
	Get(ctx context.Context, id uuid.UUID) (model.InventoryItem, error)
	Update(ctx context.Context, id uuid.UUID, item model.InventoryItem) (model.InventoryItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Expiring(ctx context.Context, within time.Duration) ([]model.InventoryItem, error)
	Expired(ctx context.Context) ([]model.InventoryItem, error)
	LowStock(ctx context.Context, threshold float64) ([]model.InventoryItem, error)
}

type ShoppingListService interface {
	GetList(ctx context.Context, userID uuid.UUID) (model.ShoppingList, error)
	AddManualItem(ctx context.Context, userID uuid.UUID, name string, quantity float64) (model.ShoppingList, error)
	RemoveItem(ctx context.Context, userID uuid.UUID, name string) (model.ShoppingList, error)
	AutoReconcile(ctx context.Context, userID uuid.UUID, threshold float64) (model.ShoppingList, error)
}

type ChatbotService interface {
	Reply(ctx context.Context, message string) (string, error)
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
