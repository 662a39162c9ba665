package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/homestock-server/internal/logger"
	"github.com/dtroode/homestock-server/internal/model"
)

type Category struct {
	store  model.CategoryStore
	logger *logger.Logger
}

func NewCategory(store model.CategoryStore, logger *logger.Logger) *Category {
	return &Category{store: store, logger: logger}
}

func (s *Category) Create(ctx context.Context, name, description string) (model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Category{}, fmt.Errorf("%w: category name is required", model.ErrInvalidArgument)
	}

	now := time.Now()
	c, err := s.store.Create(ctx, model.Category{
		ID:          uuid.New(),
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return model.Category{}, s.storeError("create category", err)
	}

	s.logger.Info("Category service: category created", "category_id", c.ID, "name", c.Name)
	return c, nil
}

func (s *Category) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.store.List(ctx)
	if err != nil {
		return nil, s.storeError("list categories", err)
	}
	return categories, nil
}

func (s *Category) Get(ctx context.Context, id uuid.UUID) (model.Category, error) {
	c, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.Category{}, s.storeError("get category", err)
	}
	return c, nil
}

func (s *Category) Update(ctx context.Context, id uuid.UUID, name, description string) (model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Category{}, fmt.Errorf("%w: category name is required", model.ErrInvalidArgument)
	}

	c, err := s.store.Update(ctx, model.Category{ID: id, Name: name, Description: strings.TrimSpace(description)})
	if err != nil {
		return model.Category{}, s.storeError("update category", err)
	}
	return c, nil
}

// Delete removes the category. Its items stay, uncategorized.
func (s *Category) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return s.storeError("delete category", err)
	}
	s.logger.Info("Category service: category deleted", "category_id", id)
	return nil
}

func (s *Category) storeError(op string, err error) error {
	if isDomainError(err) {
		return err
	}
	s.logger.Error("Category service: failed to "+op, "error", err.Error())
	return fmt.Errorf("failed to %s: %w", op, err)
}
