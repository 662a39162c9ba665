package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/homestock-server/internal/model"
)

var _ model.CategoryStore = (*CategoryRepository)(nil)

type CategoryRepository struct {
	db *Connection
}

func NewCategoryRepository(db *Connection) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func scanCategory(row pgx.Row) (model.Category, error) {
	var c model.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *CategoryRepository) Create(ctx context.Context, category model.Category) (model.Category, error) {
	const query = `
		INSERT INTO categories (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, description, created_at, updated_at`

	saved, err := scanCategory(r.db.QueryRow(ctx, query,
		category.ID, category.Name, category.Description, category.CreatedAt, category.UpdatedAt))
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return model.Category{}, model.ErrCategoryExists
		}
		return model.Category{}, fmt.Errorf("failed to create category: %w", err)
	}
	return saved, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Category, error) {
	const query = `SELECT id, name, description, created_at, updated_at FROM categories WHERE id = $1`

	c, err := scanCategory(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Category{}, model.ErrNotFound
		}
		return model.Category{}, fmt.Errorf("failed to get category: %w", err)
	}
	return c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	const query = `SELECT id, name, description, created_at, updated_at FROM categories ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]model.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) Update(ctx context.Context, category model.Category) (model.Category, error) {
	const query = `
		UPDATE categories SET name = $2, description = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, description, created_at, updated_at`

	saved, err := scanCategory(r.db.QueryRow(ctx, query, category.ID, category.Name, category.Description))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Category{}, model.ErrNotFound
		}
		if isPgError(err, pgUniqueViolation) {
			return model.Category{}, model.ErrCategoryExists
		}
		return model.Category{}, fmt.Errorf("failed to update category: %w", err)
	}
	return saved, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
