// Package usecase provides hand-rolled testify mocks for the application
// usecase interfaces.
package usecase

import (
	"context"

	"stockroom/internal/domain/entity"
	appusecase "stockroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a mock implementation of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Register(ctx context.Context, input *appusecase.RegisterInput) (*appusecase.TokenOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*appusecase.TokenOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input *appusecase.LoginInput) (*appusecase.TokenOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*appusecase.TokenOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) VerifySession(ctx context.Context, subjectID uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, subjectID)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) UpdateProfile(ctx context.Context, subjectID uuid.UUID, input *appusecase.UpdateProfileInput) error {
	args := m.Called(ctx, subjectID, input)

	return args.Error(0)
}

func (m *MockAuthUsecase) ForgotPassword(ctx context.Context, input *appusecase.ForgotPasswordInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

// MockCatalogUsecase is a mock implementation of usecase.CatalogUsecase.
type MockCatalogUsecase struct {
	mock.Mock
}

func (m *MockCatalogUsecase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if categories, ok := args.Get(0).([]*entity.Category); ok {
		return categories, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCatalogUsecase) CreateCategory(ctx context.Context, input *appusecase.CreateCategoryInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

func (m *MockCatalogUsecase) UpdateCategory(ctx context.Context, input *appusecase.UpdateCategoryInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

func (m *MockCatalogUsecase) DeleteCategory(ctx context.Context, input *appusecase.DeleteCategoryInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

func (m *MockCatalogUsecase) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCatalogUsecase) CreateProduct(ctx context.Context, input *appusecase.CreateProductInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

func (m *MockCatalogUsecase) UpdateProduct(ctx context.Context, input *appusecase.UpdateProductInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

func (m *MockCatalogUsecase) DeleteProduct(ctx context.Context, input *appusecase.DeleteProductInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}
