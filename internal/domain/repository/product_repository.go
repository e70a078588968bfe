package repository

import (
	"context"
	"errors"

	"stockroom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductUpdate carries the mutable fields of a product. Nil fields are
// left untouched.
type ProductUpdate struct {
	Name       *string
	CategoryID *string
	Price      *decimal.Decimal
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindAll retrieves every product ordered by category identifier ascending.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update applies the given field changes to a single product.
	Update(ctx context.Context, id uuid.UUID, update *ProductUpdate) error

	// Delete removes a product by its identifier.
	Delete(ctx context.Context, id uuid.UUID) error

	// RepointCategory moves every product referencing oldCategoryID to
	// newCategoryID and reports how many rows changed.
	RepointCategory(ctx context.Context, oldCategoryID, newCategoryID string) (int64, error)

	// DeleteByCategory removes every product referencing the category.
	DeleteByCategory(ctx context.Context, categoryID string) (int64, error)
}
