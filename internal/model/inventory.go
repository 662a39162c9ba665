package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// InventoryStore defines persistence operations for inventory items.
type InventoryStore interface {
	Create(ctx context.Context, item InventoryItem) (InventoryItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (InventoryItem, error)
	List(ctx context.Context, filter InventoryFilter) ([]InventoryItem, error)
	Update(ctx context.Context, item InventoryItem) (InventoryItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// FindBelowQuantity returns items with quantity strictly below threshold.
	FindBelowQuantity(ctx context.Context, threshold float64) ([]InventoryItem, error)
	// FindExpiringBetween returns items whose expiry date lies in [from, to].
	FindExpiringBetween(ctx context.Context, from, to time.Time) ([]InventoryItem, error)
	// FindExpiredBefore returns items whose expiry date is before t.
	FindExpiredBefore(ctx context.Context, t time.Time) ([]InventoryItem, error)
	FindByName(ctx context.Context, name string) ([]InventoryItem, error)
}

// Unit enumerates measurement units of inventory quantities.
type Unit string

const (
	UnitKg     Unit = "kg"
	UnitGram   Unit = "g"
	UnitLiters Unit = "liters"
	UnitMl     Unit = "ml"
	UnitPieces Unit = "pieces"
	UnitPacks  Unit = "packs"
)

// Valid reports whether u is a known unit.
func (u Unit) Valid() bool {
	switch u {
	case UnitKg, UnitGram, UnitLiters, UnitMl, UnitPieces, UnitPacks:
		return true
	}
	return false
}

// InventoryItem represents a stocked household item.
type InventoryItem struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Quantity   float64    `json:"quantity"`
	Unit       Unit       `json:"unit"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty"`
	CategoryID *uuid.UUID `json:"category,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// InventoryFilter narrows List results. Zero value lists everything.
type InventoryFilter struct {
	CategoryID *uuid.UUID
}
