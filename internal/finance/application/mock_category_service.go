package application

import "context"

type MockCategoryService struct {
	Categories map[string]string
	Err        error
}

func (m *MockCategoryService) CategoryExists(_ context.Context, id, ownerID string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	return m.Categories[id] == ownerID, nil
}

func (m *MockCategoryService) HasCategories(_ context.Context, ownerID string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, owner := range m.Categories {
		if owner == ownerID {
			return true, nil
		}
	}
	return false, nil
}
