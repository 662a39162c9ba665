package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/homestock-server/internal/logger"
	"github.com/dtroode/homestock-server/internal/model"
)

// autoAddQuantity is the quantity of every entry added by AutoReconcile,
// independent of the inventory item's stock.
const autoAddQuantity = 1

// ShoppingList keeps a user's shopping list in sync with manual additions
// and low-stock inventory. Names are unique within a list (exact match).
type ShoppingList struct {
	lists     model.ShoppingListStore
	inventory model.InventoryStore
	logger    *logger.Logger
}

func NewShoppingList(lists model.ShoppingListStore, inventory model.InventoryStore, logger *logger.Logger) *ShoppingList {
	return &ShoppingList{
		lists:     lists,
		inventory: inventory,
		logger:    logger,
	}
}

func (s *ShoppingList) GetList(ctx context.Context, userID uuid.UUID) (model.ShoppingList, error) {
	list, err := s.lists.GetByUserID(ctx, userID)
	if err != nil {
		return model.ShoppingList{}, s.storeError("get shopping list", userID, err)
	}
	return list, nil
}

// AddManualItem appends a user-entered item, creating the list on first use.
// Surrounding whitespace is trimmed; the rest of the name matches exactly.
func (s *ShoppingList) AddManualItem(ctx context.Context, userID uuid.UUID, name string, quantity float64) (model.ShoppingList, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.ShoppingList{}, fmt.Errorf("%w: item name is required", model.ErrInvalidArgument)
	}
	if !(quantity > 0) || math.IsInf(quantity, 0) {
		return model.ShoppingList{}, fmt.Errorf("%w: quantity must be positive", model.ErrInvalidArgument)
	}

	item := model.ShoppingListItem{Name: name, Quantity: quantity, AddedAutomatically: false}

	list, err := s.lists.GetByUserID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		created, err := s.lists.Create(ctx, model.ShoppingList{
			UserID: userID,
			Items:  []model.ShoppingListItem{item},
		})
		if err != nil {
			return model.ShoppingList{}, s.storeError("create shopping list", userID, err)
		}
		s.logger.Info("Shopping list service: list created",
			"user_id", userID,
			"item", name)
		return created, nil
	}
	if err != nil {
		return model.ShoppingList{}, s.storeError("get shopping list", userID, err)
	}

	if list.Contains(name) {
		return model.ShoppingList{}, model.ErrDuplicateItem
	}

	list.Items = append(list.Items, item)
	saved, err := s.lists.Save(ctx, list)
	if err != nil {
		return model.ShoppingList{}, s.storeError("save shopping list", userID, err)
	}

	s.logger.Info("Shopping list service: item added",
		"user_id", userID,
		"item", name)

	return saved, nil
}

// RemoveItem deletes the first entry named name.
func (s *ShoppingList) RemoveItem(ctx context.Context, userID uuid.UUID, name string) (model.ShoppingList, error) {
	name = strings.TrimSpace(name)

	list, err := s.lists.GetByUserID(ctx, userID)
	if err != nil {
		return model.ShoppingList{}, s.storeError("get shopping list", userID, err)
	}

	if !list.Remove(name) {
		return model.ShoppingList{}, model.ErrNotFound
	}

	saved, err := s.lists.Save(ctx, list)
	if err != nil {
		return model.ShoppingList{}, s.storeError("save shopping list", userID, err)
	}

	s.logger.Info("Shopping list service: item removed",
		"user_id", userID,
		"item", name)

	return saved, nil
}

// AutoReconcile adds every inventory item with quantity below threshold
// whose name is not on the list yet. It never creates a list and never
// touches existing entries.
func (s *ShoppingList) AutoReconcile(ctx context.Context, userID uuid.UUID, threshold float64) (model.ShoppingList, error) {
	if !(threshold > 0) || math.IsInf(threshold, 0) {
		return model.ShoppingList{}, fmt.Errorf("%w: threshold must be positive", model.ErrInvalidArgument)
	}

	list, err := s.lists.GetByUserID(ctx, userID)
	if err != nil {
		return model.ShoppingList{}, s.storeError("get shopping list", userID, err)
	}

	lowStock, err := s.inventory.FindBelowQuantity(ctx, threshold)
	if err != nil {
		return model.ShoppingList{}, s.storeError("find low-stock items", userID, err)
	}

	added := 0
	for _, item := range lowStock {
		if list.Contains(item.Name) {
			continue
		}
		list.Items = append(list.Items, model.ShoppingListItem{
			Name:               item.Name,
			Quantity:           autoAddQuantity,
			AddedAutomatically: true,
		})
		added++
	}

	if added == 0 {
		return list, nil
	}

	saved, err := s.lists.Save(ctx, list)
	if err != nil {
		return model.ShoppingList{}, s.storeError("save shopping list", userID, err)
	}

	s.logger.Info("Shopping list service: low-stock items added",
		"user_id", userID,
		"added", added,
		"threshold", threshold)

	return saved, nil
}

func (s *ShoppingList) storeError(op string, userID uuid.UUID, err error) error {
	if isDomainError(err) {
		return err
	}
	s.logger.Error("Shopping list service: failed to "+op,
		"user_id", userID,
		"error", err.Error())
	return fmt.Errorf("failed to %s: %w", op, err)
}
