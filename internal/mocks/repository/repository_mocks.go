// Package repository provides hand-rolled testify mocks for the
// persistence interfaces.
package repository

import (
	"context"

	"stockroom/internal/domain/entity"
	domainrepo "stockroom/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if categories, ok := args.Get(0).([]*entity.Category); ok {
		return categories, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)

	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockProductRepository is a mock implementation of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, id uuid.UUID, update *domainrepo.ProductUpdate) error {
	args := m.Called(ctx, id, update)

	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockProductRepository) RepointCategory(ctx context.Context, oldCategoryID, newCategoryID string) (int64, error) {
	args := m.Called(ctx, oldCategoryID, newCategoryID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) DeleteByCategory(ctx context.Context, categoryID string) (int64, error) {
	args := m.Called(ctx, categoryID)

	return args.Get(0).(int64), args.Error(1)
}

// MockTransactionManager is a mock implementation of repository.TransactionManager.
// Execute runs the given function against the injected factory so tests can
// observe the operations performed inside the transaction.
type MockTransactionManager struct {
	mock.Mock

	Factory domainrepo.RepositoryFactory
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory domainrepo.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}

	return fn(m.Factory)
}

// MockRepositoryFactory is a mock implementation of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	Users      *MockUserRepository
	Categories *MockCategoryRepository
	Products   *MockProductRepository
}

func (f *MockRepositoryFactory) UserRepo() domainrepo.UserRepository {
	return f.Users
}

func (f *MockRepositoryFactory) CategoryRepo() domainrepo.CategoryRepository {
	return f.Categories
}

func (f *MockRepositoryFactory) ProductRepo() domainrepo.ProductRepository {
	return f.Products
}
