package interfaces

import (
	"context"

	"github.com/iremkabaoglu/FinManager/internal/finance/domain"
	financeErrors "github.com/iremkabaoglu/FinManager/internal/finance/errors"
)

// MockAccountService returns the configured accounts, or Err when set.
type MockAccountService struct {
	Accounts []domain.Account
	Err      error
}

func (m *MockAccountService) ListAccounts(_ context.Context, _ string) ([]domain.Account, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Accounts, nil
}

func (m *MockAccountService) GetAccount(_ context.Context, _, id string) (*domain.Account, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, account := range m.Accounts {
		if account.ID == id {
			found := account
			return &found, nil
		}
	}
	return nil, financeErrors.ErrNotFound
}

func (m *MockAccountService) CreateAccount(_ context.Context, callerID string, account *domain.Account) error {
	if m.Err != nil {
		return m.Err
	}
	account.ID = "generated-id"
	account.OwnerID = callerID
	m.Accounts = append(m.Accounts, *account)
	return nil
}

func (m *MockAccountService) UpdateAccount(_ context.Context, _, id string, input domain.Account) (*domain.Account, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	input.ID = id
	return &input, nil
}

func (m *MockAccountService) DeleteAccount(_ context.Context, _, _ string) error {
	return m.Err
}
