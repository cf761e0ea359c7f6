package infrastructure

import (
	"context"
	"sort"

	"github.com/iremkabaoglu/FinManager/internal/finance/domain"
	financeErrors "github.com/iremkabaoglu/FinManager/internal/finance/errors"
)

// MockAccountRepository is a slice-backed AccountRepository for tests.
// Setting Err makes every call fail with it.
type MockAccountRepository struct {
	Accounts []domain.Account
	Err      error
}

func (m *MockAccountRepository) FindByOwner(_ context.Context, ownerID string) ([]domain.Account, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var accounts []domain.Account
	for _, account := range m.Accounts {
		if account.OwnerID == ownerID {
			accounts = append(accounts, account)
		}
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Name < accounts[j].Name })
	return accounts, nil
}

func (m *MockAccountRepository) FindByID(_ context.Context, id string) (*domain.Account, error) {
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

func (m *MockAccountRepository) Save(_ context.Context, account domain.Account) error {
	if m.Err != nil {
		return m.Err
	}
	m.Accounts = append(m.Accounts, account)
	return nil
}

func (m *MockAccountRepository) Update(_ context.Context, account domain.Account) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Accounts {
		if m.Accounts[i].ID == account.ID {
			m.Accounts[i].Name = account.Name
			m.Accounts[i].Description = account.Description
			m.Accounts[i].Balance = account.Balance
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *MockAccountRepository) Delete(_ context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Accounts {
		if m.Accounts[i].ID == id {
			m.Accounts = append(m.Accounts[:i], m.Accounts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MockAccountRepository) Exists(_ context.Context, id, ownerID string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, account := range m.Accounts {
		if account.ID == id && account.OwnerID == ownerID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockAccountRepository) HasAny(_ context.Context, ownerID string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, account := range m.Accounts {
		if account.OwnerID == ownerID {
			return true, nil
		}
	}
	return false, nil
}
