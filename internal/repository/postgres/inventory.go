package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/homestock-server/internal/model"
)

var _ model.InventoryStore = (*InventoryRepository)(nil)

const inventoryColumns = `id, name, quantity, unit, expiry_date, category_id, created_at, updated_at`

type InventoryRepository struct {
	db *Connection
}

func NewInventoryRepository(db *Connection) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func scanInventoryItem(row pgx.Row) (model.InventoryItem, error) {
	var item model.InventoryItem
	err := row.Scan(
		&item.ID, &item.Name, &item.Quantity, &item.Unit, &item.ExpiryDate,
		&item.CategoryID, &item.CreatedAt, &item.UpdatedAt,
	)
	return item, err
}

func (r *InventoryRepository) collect(ctx context.Context, query string, args ...any) ([]model.InventoryItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.InventoryItem, 0)
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *InventoryRepository) Create(ctx context.Context, item model.InventoryItem) (model.InventoryItem, error) {
	query := `
		INSERT INTO inventory_items (id, name, quantity, unit, expiry_date, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + inventoryColumns

	saved, err := scanInventoryItem(r.db.QueryRow(ctx, query,
		item.ID, item.Name, item.Quantity, item.Unit, item.ExpiryDate,
		item.CategoryID, item.CreatedAt, item.UpdatedAt,
	))
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return model.InventoryItem{}, fmt.Errorf("%w: unknown category", model.ErrInvalidArgument)
		}
		return model.InventoryItem{}, fmt.Errorf("failed to create inventory item: %w", err)
	}
	return saved, nil
}

func (r *InventoryRepository) GetByID(ctx context.Context, id uuid.UUID) (model.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id = $1`

	item, err := scanInventoryItem(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.InventoryItem{}, model.ErrNotFound
		}
		return model.InventoryItem{}, fmt.Errorf("failed to get inventory item: %w", err)
	}
	return item, nil
}

func (r *InventoryRepository) List(ctx context.Context, filter model.InventoryFilter) ([]model.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items
		WHERE ($1::uuid IS NULL OR category_id = $1)
		ORDER BY name`

	items, err := r.collect(ctx, query, filter.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	return items, nil
}

func (r *InventoryRepository) Update(ctx context.Context, item model.InventoryItem) (model.InventoryItem, error) {
	query := `
		UPDATE inventory_items
		SET name = $2, quantity = $3, unit = $4, expiry_date = $5, category_id = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + inventoryColumns

	saved, err := scanInventoryItem(r.db.QueryRow(ctx, query,
		item.ID, item.Name, item.Quantity, item.Unit, item.ExpiryDate, item.CategoryID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.InventoryItem{}, model.ErrNotFound
		}
		if isPgError(err, pgForeignKeyViolation) {
			return model.InventoryItem{}, fmt.Errorf("%w: unknown category", model.ErrInvalidArgument)
		}
		return model.InventoryItem{}, fmt.Errorf("failed to update inventory item: %w", err)
	}
	return saved, nil
}

func (r *InventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *InventoryRepository) FindBelowQuantity(ctx context.Context, threshold float64) ([]model.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE quantity < $1 ORDER BY created_at`

	items, err := r.collect(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to find low-stock items: %w", err)
	}
	return items, nil
}

func (r *InventoryRepository) FindExpiringBetween(ctx context.Context, from, to time.Time) ([]model.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items
		WHERE expiry_date IS NOT NULL AND expiry_date >= $1 AND expiry_date <= $2
		ORDER BY expiry_date`

	items, err := r.collect(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to find expiring items: %w", err)
	}
	return items, nil
}

func (r *InventoryRepository) FindExpiredBefore(ctx context.Context, t time.Time) ([]model.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items
		WHERE expiry_date IS NOT NULL AND expiry_date < $1
		ORDER BY expiry_date`

	items, err := r.collect(ctx, query, t)
	if err != nil {
		return nil, fmt.Errorf("failed to find expired items: %w", err)
	}
	return items, nil
}

func (r *InventoryRepository) FindByName(ctx context.Context, name string) ([]model.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE lower(name) = lower($1) ORDER BY name`

	items, err := r.collect(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("failed to find items by name: %w", err)
	}
	return items, nil
}
