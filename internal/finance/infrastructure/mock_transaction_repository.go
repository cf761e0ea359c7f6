package infrastructure

import (
	"context"
	"sort"
	"time"

	"github.com/iremkabaoglu/FinManager/internal/finance/domain"
	financeErrors "github.com/iremkabaoglu/FinManager/internal/finance/errors"
)

// MockTransactionRepository keeps transactions exactly as the test seeded
// them; associations are whatever Account/Category pointers the test set,
// mirroring the LEFT JOIN resolution of the real repository.
type MockTransactionRepository struct {
	Transactions []domain.Transaction
	Err          error
}

func (m *MockTransactionRepository) FindByOwner(_ context.Context, ownerID string) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var transactions []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.OwnerID == ownerID {
			transactions = append(transactions, transaction)
		}
	}
	sort.Slice(transactions, func(i, j int) bool { return transactions[i].Date.After(transactions[j].Date) })
	return transactions, nil
}

func (m *MockTransactionRepository) FindByID(_ context.Context, id string) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, transaction := range m.Transactions {
		if transaction.ID == id {
			found := transaction
			return &found, nil
		}
	}
	return nil, financeErrors.ErrNotFound
}

func (m *MockTransactionRepository) FindByOwnerInDateRange(_ context.Context, ownerID string, start, end time.Time) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var transactions []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.OwnerID != ownerID {
			continue
		}
		if transaction.Date.Before(start) || !transaction.Date.Before(end) {
			continue
		}
		transactions = append(transactions, transaction)
	}
	sort.Slice(transactions, func(i, j int) bool { return transactions[i].Date.Before(transactions[j].Date) })
	return transactions, nil
}

func (m *MockTransactionRepository) Save(_ context.Context, transaction domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	m.Transactions = append(m.Transactions, transaction)
	return nil
}

func (m *MockTransactionRepository) Update(_ context.Context, transaction domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Transactions {
		if m.Transactions[i].ID == transaction.ID {
			m.Transactions[i].AccountID = transaction.AccountID
			m.Transactions[i].CategoryID = transaction.CategoryID
			m.Transactions[i].Amount = transaction.Amount
			m.Transactions[i].Date = transaction.Date
			m.Transactions[i].Note = transaction.Note
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *MockTransactionRepository) Delete(_ context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Transactions {
		if m.Transactions[i].ID == id {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return nil
}
