package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/homestock-server/internal/logger"
	"github.com/dtroode/homestock-server/internal/model"
)

// Inventory manages stocked items and answers expiry and low-stock queries.
type Inventory struct {
	items      model.InventoryStore
	categories model.CategoryStore
	logger     *logger.Logger
	now        func() time.Time
}

func NewInventory(items model.InventoryStore, categories model.CategoryStore, logger *logger.Logger) *Inventory {
	return &Inventory{
		items:      items,
		categories: categories,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *Inventory) Create(ctx context.Context, item model.InventoryItem) (model.InventoryItem, error) {
	item, err := s.prepare(ctx, item)
	if err != nil {
		return model.InventoryItem{}, err
	}

	now := s.now()
	item.ID = uuid.New()
	item.CreatedAt = now
	item.UpdatedAt = now

	saved, err := s.items.Create(ctx, item)
	if err != nil {
		return model.InventoryItem{}, s.storeError("create inventory item", err)
	}

	s.logger.Info("Inventory service: item created",
		"item_id", saved.ID,
		"name", saved.Name)
	return saved, nil
}

func (s *Inventory) List(ctx context.Context, filter model.InventoryFilter) ([]model.InventoryItem, error) {
	items, err := s.items.List(ctx, filter)
	if err != nil {
		return nil, s.storeError("list inventory items", err)
	}
	return items, nil
}

func (s *Inventory) Get(ctx context.Context, id uuid.UUID) (model.InventoryItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return model.InventoryItem{}, s.storeError("get inventory item", err)
	}
	return item, nil
}

func (s *Inventory) Update(ctx context.Context, id uuid.UUID, item model.InventoryItem) (model.InventoryItem, error) {
	item, err := s.prepare(ctx, item)
	if err != nil {
		return model.InventoryItem{}, err
	}
	item.ID = id

	saved, err := s.items.Update(ctx, item)
	if err != nil {
		return model.InventoryItem{}, s.storeError("update inventory item", err)
	}
	return saved, nil
}

func (s *Inventory) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return s.storeError("delete inventory item", err)
	}
	s.logger.Info("Inventory service: item deleted", "item_id", id)
	return nil
}

// Expiring returns items expiring between now and now+within.
func (s *Inventory) Expiring(ctx context.Context, within time.Duration) ([]model.InventoryItem, error) {
	if within <= 0 {
		return nil, fmt.Errorf("%w: window must be positive", model.ErrInvalidArgument)
	}
	now := s.now()
	items, err := s.items.FindExpiringBetween(ctx, now, now.Add(within))
	if err != nil {
		return nil, s.storeError("find expiring items", err)
	}
	return items, nil
}

// Expired returns items whose expiry date has passed.
func (s *Inventory) Expired(ctx context.Context) ([]model.InventoryItem, error) {
	items, err := s.items.FindExpiredBefore(ctx, s.now())
	if err != nil {
		return nil, s.storeError("find expired items", err)
	}
	return items, nil
}

// LowStock returns items with quantity strictly below threshold.
func (s *Inventory) LowStock(ctx context.Context, threshold float64) ([]model.InventoryItem, error) {
	if !(threshold > 0) || math.IsInf(threshold, 0) {
		return nil, fmt.Errorf("%w: threshold must be positive", model.ErrInvalidArgument)
	}
	items, err := s.items.FindBelowQuantity(ctx, threshold)
	if err != nil {
		return nil, s.storeError("find low-stock items", err)
	}
	return items, nil
}

func (s *Inventory) prepare(ctx context.Context, item model.InventoryItem) (model.InventoryItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Unit == "" {
		item.Unit = model.UnitPieces
	}

	switch {
	case item.Name == "":
		return item, fmt.Errorf("%w: item name is required", model.ErrInvalidArgument)
	case item.Quantity < 0 || math.IsNaN(item.Quantity) || math.IsInf(item.Quantity, 0):
		return item, fmt.Errorf("%w: quantity must not be negative", model.ErrInvalidArgument)
	case !item.Unit.Valid():
		return item, fmt.Errorf("%w: unknown unit %q", model.ErrInvalidArgument, item.Unit)
	}

	if item.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *item.CategoryID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return item, fmt.Errorf("%w: unknown category", model.ErrInvalidArgument)
			}
			return item, s.storeError("get category", err)
		}
	}

	return item, nil
}

func (s *Inventory) storeError(op string, err error) error {
	if isDomainError(err) {
		return err
	}
	s.logger.Error("Inventory service: failed to "+op, "error", err.Error())
	return fmt.Errorf("failed to %s: %w", op, err)
}
