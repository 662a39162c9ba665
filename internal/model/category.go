package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CategoryStore defines persistence operations for categories.
type CategoryStore interface {
	Create(ctx context.Context, category Category) (Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (Category, error)
	List(ctx context.Context) ([]Category, error)
	Update(ctx context.Context, category Category) (Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Category groups inventory items.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
