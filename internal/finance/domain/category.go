package domain

import (
	"context"

	financeErrors "github.com/iremkabaoglu/FinManager/internal/finance/errors"
)

const (
	CategoryTypeIncome  = "income"
	CategoryTypeExpense = "expense"
)

func IsValidCategoryType(categoryType string) bool {
	return categoryType == CategoryTypeIncome || categoryType == CategoryTypeExpense
}

// Category labels transactions as income or expense. The type is editable:
// changing it reclassifies every historical transaction referencing the
// category in all future aggregations. Categories are mutable labels, not
// immutable facts.
type Category struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	OwnerID string `json:"-"`
}

func (c *Category) Validate() error {
	if c.Name == "" {
		return financeErrors.NewFieldValidationError("name", "is required")
	}
	if len(c.Name) > 100 {
		return financeErrors.NewFieldValidationError("name", "must be at most 100 characters")
	}
	if !IsValidCategoryType(c.Type) {
		return financeErrors.NewFieldValidationError("type", "must be 'income' or 'expense'")
	}
	return nil
}

type CategoryRepository interface {
	// FindByOwner returns the owner's categories ordered by name ascending.
	FindByOwner(ctx context.Context, ownerID string) ([]Category, error)
	FindByID(ctx context.Context, id string) (*Category, error)
	Save(ctx context.Context, category Category) error
	Update(ctx context.Context, category Category) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id, ownerID string) (bool, error)
	HasAny(ctx context.Context, ownerID string) (bool, error)
}
