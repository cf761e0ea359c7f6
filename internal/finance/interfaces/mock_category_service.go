package interfaces

import (
	"context"

	"github.com/iremkabaoglu/FinManager/internal/finance/domain"
	financeErrors "github.com/iremkabaoglu/FinManager/internal/finance/errors"
)

type MockCategoryService struct {
	Categories []domain.Category
	Err        error
}

func (m *MockCategoryService) ListCategories(_ context.Context, _ string) ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Categories, nil
}

func (m *MockCategoryService) GetCategory(_ context.Context, _, id string) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, category := range m.Categories {
		if category.ID == id {
			found := category
			return &found, nil
		}
	}
	return nil, financeErrors.ErrNotFound
}

func (m *MockCategoryService) CreateCategory(_ context.Context, callerID string, category *domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	category.ID = "generated-id"
	category.OwnerID = callerID
	m.Categories = append(m.Categories, *category)
	return nil
}

func (m *MockCategoryService) UpdateCategory(_ context.Context, _, id string, input domain.Category) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	input.ID = id
	return &input, nil
}

func (m *MockCategoryService) DeleteCategory(_ context.Context, _, _ string) error {
	return m.Err
}
