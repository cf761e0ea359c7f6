package domain

import (
	"context"

	"github.com/shopspring/decimal"

	financeErrors "github.com/iremkabaoglu/FinManager/internal/finance/errors"
)

// Account is a financial account owned by a single user. Balance is an
// independent, manually edited seed value: it is never reconciled against
// the account's transactions.
type Account struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Balance     decimal.Decimal `json:"balance"`
	OwnerID     string          `json:"-"`
}

func (a *Account) Validate() error {
	if a.Name == "" {
		return financeErrors.NewFieldValidationError("name", "is required")
	}
	if len(a.Name) > 100 {
		return financeErrors.NewFieldValidationError("name", "must be at most 100 characters")
	}
	if len(a.Description) > 250 {
		return financeErrors.NewFieldValidationError("description", "must be at most 250 characters")
	}
	return nil
}

// AccountRepository is the persistence surface for accounts. It carries no
// ownership logic of its own; owner filters are always supplied explicitly
// by the caller.
type AccountRepository interface {
	// FindByOwner returns the owner's accounts ordered by name ascending.
	FindByOwner(ctx context.Context, ownerID string) ([]Account, error)
	// FindByID returns errors.ErrNotFound when no row exists.
	FindByID(ctx context.Context, id string) (*Account, error)
	Save(ctx context.Context, account Account) error
	// Update rewrites the mutable columns and returns errors.ErrNotFound
	// when the row vanished between lookup and write.
	Update(ctx context.Context, account Account) error
	// Delete is a no-op when the row is already gone.
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id, ownerID string) (bool, error)
	HasAny(ctx context.Context, ownerID string) (bool, error)
}
