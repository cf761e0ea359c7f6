package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/iremkabaoglu/FinManager/internal/finance/domain"
	financeErrors "github.com/iremkabaoglu/FinManager/internal/finance/errors"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) ListCategories(ctx context.Context, callerID string) ([]domain.Category, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}
	categories, err := s.repo.FindByOwner(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, callerID, id string) (*domain.Category, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(callerID, category.OwnerID); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, callerID string, category *domain.Category) error {
	if err := requireCaller(callerID); err != nil {
		return err
	}
	category.ID = uuid.NewString()
	category.OwnerID = callerID
	if err := category.Validate(); err != nil {
		return err
	}
	return s.repo.Save(ctx, *category)
}

// UpdateCategory rewrites name and type. Changing the type reclassifies
// every historical transaction that references this category in all future
// aggregations; that is intended behavior, not a defect.
func (s *CategoryService) UpdateCategory(ctx context.Context, callerID, id string, input domain.Category) (*domain.Category, error) {
	existing, err := s.GetCategory(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Type = input.Type
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, *existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteCategory succeeds as a no-op when the category is absent or owned
// by somebody else. Referencing transactions keep their category_id and
// resolve a nil association afterwards; the dashboard treats them as
// unclassifiable.
func (s *CategoryService) DeleteCategory(ctx context.Context, callerID, id string) error {
	category, err := s.GetCategory(ctx, callerID, id)
	if err != nil {
		if financeErrors.IsNotFound(err) {
			return nil
		}
		return err
	}
	return s.repo.Delete(ctx, category.ID)
}

func (s *CategoryService) CategoryExists(ctx context.Context, id, ownerID string) (bool, error) {
	return s.repo.Exists(ctx, id, ownerID)
}

func (s *CategoryService) HasCategories(ctx context.Context, ownerID string) (bool, error) {
	return s.repo.HasAny(ctx, ownerID)
}
