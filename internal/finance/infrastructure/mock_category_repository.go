package infrastructure

import (
	"context"
	"sort"

	"github.com/iremkabaoglu/FinManager/internal/finance/domain"
	financeErrors "github.com/iremkabaoglu/FinManager/internal/finance/errors"
)

type MockCategoryRepository struct {
	Categories []domain.Category
	Err        error
}

func (m *MockCategoryRepository) FindByOwner(_ context.Context, ownerID string) ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var categories []domain.Category
	for _, category := range m.Categories {
		if category.OwnerID == ownerID {
			categories = append(categories, category)
		}
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

func (m *MockCategoryRepository) FindByID(_ context.Context, id string) (*domain.Category, error) {
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

func (m *MockCategoryRepository) Save(_ context.Context, category domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	m.Categories = append(m.Categories, category)
	return nil
}

func (m *MockCategoryRepository) Update(_ context.Context, category domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Categories {
		if m.Categories[i].ID == category.ID {
			m.Categories[i].Name = category.Name
			m.Categories[i].Type = category.Type
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *MockCategoryRepository) Delete(_ context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Categories {
		if m.Categories[i].ID == id {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MockCategoryRepository) Exists(_ context.Context, id, ownerID string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, category := range m.Categories {
		if category.ID == id && category.OwnerID == ownerID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockCategoryRepository) HasAny(_ context.Context, ownerID string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, category := range m.Categories {
		if category.OwnerID == ownerID {
			return true, nil
		}
	}
	return false, nil
}
