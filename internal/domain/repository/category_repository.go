package repository

import (
	"context"
	"errors"

	"stockroom/internal/domain/entity"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the standard operations for category persistence.
type CategoryRepository interface {
	// FindAll retrieves every category.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// Delete removes a category by its identifier.
	Delete(ctx context.Context, id string) error
}
