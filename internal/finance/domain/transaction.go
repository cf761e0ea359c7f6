package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	financeErrors "github.com/iremkabaoglu/FinManager/internal/finance/errors"
)

// Transaction is a single ledger entry. Amount is an unsigned magnitude;
// whether it nets positive or negative is decided by the referenced
// category's type at aggregation time.
//
// Account and Category are resolved eagerly on reads. Deleting a referenced
// account or category is allowed, so either association can be nil for a
// persisted transaction (dangling reference); consumers must render a
// placeholder instead of failing.
type Transaction struct {
	ID         string          `json:"id"`
	AccountID  string          `json:"account_id"`
	CategoryID string          `json:"category_id"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	Note       string          `json:"note,omitempty"`
	OwnerID    string          `json:"-"`

	Account  *Account  `json:"account,omitempty"`
	Category *Category `json:"category,omitempty"`
}

func (t *Transaction) Validate() error {
	if t.AccountID == "" {
		return financeErrors.NewFieldValidationError("account_id", "is required")
	}
	if t.CategoryID == "" {
		return financeErrors.NewFieldValidationError("category_id", "is required")
	}
	if !t.Amount.IsPositive() {
		return financeErrors.NewFieldValidationError("amount", "must be greater than zero")
	}
	if len(t.Note) > 250 {
		return financeErrors.NewFieldValidationError("note", "must be at most 250 characters")
	}
	return nil
}

type TransactionRepository interface {
	// FindByOwner returns the owner's transactions ordered by date
	// descending, with account and category associations resolved.
	FindByOwner(ctx context.Context, ownerID string) ([]Transaction, error)
	FindByID(ctx context.Context, id string) (*Transaction, error)
	// FindByOwnerInDateRange returns transactions with
	// start <= date < end, category association resolved, ordered by
	// date ascending. Used by the dashboard.
	FindByOwnerInDateRange(ctx context.Context, ownerID string, start, end time.Time) ([]Transaction, error)
	Save(ctx context.Context, transaction Transaction) error
	Update(ctx context.Context, transaction Transaction) error
	Delete(ctx context.Context, id string) error
}
