package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ShoppingListStore persists one shopping list per user.
type ShoppingListStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (ShoppingList, error)
	// Create inserts a new list with version 1.
	Create(ctx context.Context, list ShoppingList) (ShoppingList, error)
	// Save writes list if the stored version still equals list.Version and
	// returns the list with the incremented version. ErrVersionConflict otherwise.
	Save(ctx context.Context, list ShoppingList) (ShoppingList, error)
}

// ShoppingList is a user's ordered list of things to buy.
type ShoppingList struct {
	UserID    uuid.UUID          `json:"userId"`
	Items     []ShoppingListItem `json:"items"`
	Version   int64              `json:"version"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// ShoppingListItem is one entry of a ShoppingList.
type ShoppingListItem struct {
	Name               string  `json:"name"`
	Quantity           float64 `json:"quantity"`
	AddedAutomatically bool    `json:"addedAutomatically"`
}

// Contains reports whether an entry with exactly the given name exists.
func (l ShoppingList) Contains(name string) bool {
	return l.indexOf(name) >= 0
}

// Remove deletes the first entry with the given name and reports whether one was found.
func (l *ShoppingList) Remove(name string) bool {
	i := l.indexOf(name)
	if i < 0 {
		return false
	}
	l.Items = append(l.Items[:i], l.Items[i+1:]...)
	return true
}

func (l ShoppingList) indexOf(name string) int {
	for i, item := range l.Items {
		if item.Name == name {
			return i
		}
	}
	return -1
}
