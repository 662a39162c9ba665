package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/homestock-server/internal/model"
)

var _ model.ShoppingListStore = (*ShoppingListRepository)(nil)

type ShoppingListRepository struct {
	db *Connection
}

func NewShoppingListRepository(db *Connection) *ShoppingListRepository {
	return &ShoppingListRepository{db: db}
}

func scanShoppingList(row pgx.Row) (model.ShoppingList, error) {
	var (
		list  model.ShoppingList
		items []byte
	)
	if err := row.Scan(&list.UserID, &items, &list.Version, &list.CreatedAt, &list.UpdatedAt); err != nil {
		return model.ShoppingList{}, err
	}
	if err := json.Unmarshal(items, &list.Items); err != nil {
		return model.ShoppingList{}, fmt.Errorf("failed to decode shopping list items: %w", err)
	}
	if list.Items == nil {
		list.Items = []model.ShoppingListItem{}
	}
	return list, nil
}

func encodeItems(items []model.ShoppingListItem) ([]byte, error) {
	if items == nil {
		items = []model.ShoppingListItem{}
	}
	return json.Marshal(items)
}

func (r *ShoppingListRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (model.ShoppingList, error) {
	const query = `SELECT user_id, items, version, created_at, updated_at FROM shopping_lists WHERE user_id = $1`

	list, err := scanShoppingList(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ShoppingList{}, model.ErrNotFound
		}
		return model.ShoppingList{}, fmt.Errorf("failed to get shopping list: %w", err)
	}
	return list, nil
}

func (r *ShoppingListRepository) Create(ctx context.Context, list model.ShoppingList) (model.ShoppingList, error) {
	const query = `
		INSERT INTO shopping_lists (user_id, items, version, created_at, updated_at)
		VALUES ($1, $2, 1, NOW(), NOW())
		RETURNING user_id, items, version, created_at, updated_at`

	items, err := encodeItems(list.Items)
	if err != nil {
		return model.ShoppingList{}, fmt.Errorf("failed to encode shopping list items: %w", err)
	}

	saved, err := scanShoppingList(r.db.QueryRow(ctx, query, list.UserID, items))
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return model.ShoppingList{}, model.ErrVersionConflict
		}
		if isPgError(err, pgForeignKeyViolation) {
			return model.ShoppingList{}, model.ErrNotFound
		}
		return model.ShoppingList{}, fmt.Errorf("failed to create shopping list: %w", err)
	}
	return saved, nil
}

func (r *ShoppingListRepository) Save(ctx context.Context, list model.ShoppingList) (model.ShoppingList, error) {
	const query = `
		UPDATE shopping_lists
		SET items = $2, version = version + 1, updated_at = NOW()
		WHERE user_id = $1 AND version = $3
		RETURNING user_id, items, version, created_at, updated_at`

	items, err := encodeItems(list.Items)
	if err != nil {
		return model.ShoppingList{}, fmt.Errorf("failed to encode shopping list items: %w", err)
	}

	saved, err := scanShoppingList(r.db.QueryRow(ctx, query, list.UserID, items, list.Version))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ShoppingList{}, model.ErrVersionConflict
		}
		return model.ShoppingList{}, fmt.Errorf("failed to save shopping list: %w", err)
	}
	return saved, nil
}
