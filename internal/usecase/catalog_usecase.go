// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"stockroom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---
// Mutation bodies keep the legacy client contract: the record key travels
// as "_id" and replacement values as "update".

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	ID string `json:"_id" validate:"required"`
}

// UpdateCategoryInput renames a category: every product referencing ID is
// re-pointed to Update, then the category itself is re-keyed.
type UpdateCategoryInput struct {
	ID     string `json:"_id" validate:"required"`
	Update string `json:"update" validate:"required"`
}

// DeleteCategoryInput identifies the category to remove along with its products.
type DeleteCategoryInput struct {
	ID string `json:"_id" validate:"required"`
}

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	Name       string          `json:"name"`
	CategoryID string          `json:"categoryId"`
	Price      decimal.Decimal `json:"price"`
}

// ProductChanges carries the product fields to overwrite. Nil fields are untouched.
type ProductChanges struct {
	Name       *string          `json:"name"`
	CategoryID *string          `json:"categoryId"`
	Price      *decimal.Decimal `json:"price"`
}

// UpdateProductInput applies ProductChanges to a single product.
type UpdateProductInput struct {
	ID     uuid.UUID      `json:"_id" validate:"required"`
	Update ProductChanges `json:"update"`
}

// DeleteProductInput identifies the product to remove.
type DeleteProductInput struct {
	ID uuid.UUID `json:"_id" validate:"required"`
}

// CatalogUsecase defines the interface for category and product operations.
type CatalogUsecase interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	CreateCategory(ctx context.Context, input *CreateCategoryInput) error
	UpdateCategory(ctx context.Context, input *UpdateCategoryInput) error
	DeleteCategory(ctx context.Context, input *DeleteCategoryInput) error

	ListProducts(ctx context.Context) ([]*entity.Product, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) error
	UpdateProduct(ctx context.Context, input *UpdateProductInput) error
	DeleteProduct(ctx context.Context, input *DeleteProductInput) error
}
