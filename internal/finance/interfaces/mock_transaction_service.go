package interfaces

import (
	"context"

	"github.com/iremkabaoglu/FinManager/internal/finance/domain"
	financeErrors "github.com/iremkabaoglu/FinManager/internal/finance/errors"
)

type MockTransactionService struct {
	Transactions []domain.Transaction
	Err          error
}

func (m *MockTransactionService) ListTransactions(_ context.Context, _ string) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Transactions, nil
}

func (m *MockTransactionService) GetTransaction(_ context.Context, _, id string) (*domain.Transaction, error) {
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

func (m *MockTransactionService) CreateTransaction(_ context.Context, callerID string, transaction *domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	transaction.ID = "generated-id"
	transaction.OwnerID = callerID
	m.Transactions = append(m.Transactions, *transaction)
	return nil
}

func (m *MockTransactionService) UpdateTransaction(_ context.Context, _, id string, input domain.Transaction) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	input.ID = id
	return &input, nil
}

func (m *MockTransactionService) DeleteTransaction(_ context.Context, _, _ string) error {
	return m.Err
}
