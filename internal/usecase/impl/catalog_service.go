package impl

import (
	"context"
	"log/slog"

	deliverycontext "stockroom/internal/delivery/context"
	"stockroom/internal/domain/entity"
	"stockroom/internal/domain/repository"
	"stockroom/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		productRepo:  params.ProductRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCategories retrieves every category.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return srv.categoryRepo.FindAll(ctx)
}

// CreateCategory inserts the category verbatim from the request body.
func (srv *catalogService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) error {
	if err := srv.categoryRepo.Create(ctx, &entity.Category{ID: input.ID}); err != nil {
		srv.log(ctx).Error("Failed to create category", slog.String("categoryID", input.ID), slog.Any("error", err))

		return err
	}

	return nil
}

// UpdateCategory renames a category. Re-pointing the products and re-keying
// the category happen in one transaction, products first, category second.
func (srv *catalogService) UpdateCategory(ctx context.Context, input *usecase.UpdateCategoryInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()
		categoryRepo := repoFactory.CategoryRepo()

		moved, err := productRepo.RepointCategory(ctx, input.ID, input.Update)
		if err != nil {
			return err
		}
		srv.log(ctx).Debug("Repointed products",
			slog.String("from", input.ID),
			slog.String("to", input.Update),
			slog.Int64("count", moved),
		)

		if err := categoryRepo.Delete(ctx, input.ID); err != nil {
			return err
		}

		return categoryRepo.Create(ctx, &entity.Category{ID: input.Update})
	})
	if err != nil {
		srv.log(ctx).Error("Failed to rename category", slog.String("categoryID", input.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute category rename transaction")
	}

	return nil
}

// DeleteCategory removes a category and every product referencing it in one transaction.
func (srv *catalogService) DeleteCategory(ctx context.Context, input *usecase.DeleteCategoryInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		removed, err := repoFactory.ProductRepo().DeleteByCategory(ctx, input.ID)
		if err != nil {
			return err
		}
		srv.log(ctx).Debug("Deleted category products",
			slog.String("categoryID", input.ID),
			slog.Int64("count", removed),
		)

		return repoFactory.CategoryRepo().Delete(ctx, input.ID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete category", slog.String("categoryID", input.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute category delete transaction")
	}

	return nil
}

// ListProducts retrieves every product ordered by category identifier ascending.
func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	return srv.productRepo.FindAll(ctx)
}

// CreateProduct inserts the product verbatim from the request body.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) error {
	product := &entity.Product{
		Name:       input.Name,
		CategoryID: input.CategoryID,
		Price:      input.Price,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.String("name", input.Name), slog.Any("error", err))

		return err
	}

	return nil
}

// UpdateProduct applies the submitted field changes to a single product.
func (srv *catalogService) UpdateProduct(ctx context.Context, input *usecase.UpdateProductInput) error {
	update := &repository.ProductUpdate{
		Name:       input.Update.Name,
		CategoryID: input.Update.CategoryID,
		Price:      input.Update.Price,
	}

	if err := srv.productRepo.Update(ctx, input.ID, update); err != nil {
		srv.log(ctx).Error("Failed to update product", slog.Any("productID", input.ID), slog.Any("error", err))

		return err
	}

	return nil
}

// DeleteProduct removes a single product by id.
func (srv *catalogService) DeleteProduct(ctx context.Context, input *usecase.DeleteProductInput) error {
	if err := srv.productRepo.Delete(ctx, input.ID); err != nil {
		srv.log(ctx).Error("Failed to delete product", slog.Any("productID", input.ID), slog.Any("error", err))

		return err
	}

	return nil
}
