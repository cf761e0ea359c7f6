package application

import "context"

// MockAccountService implements AccountServiceInterface over a plain
// id -> owner map.
type MockAccountService struct {
	Accounts map[string]string
	Err      error
}

func (m *MockAccountService) AccountExists(_ context.Context, id, ownerID string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	return m.Accounts[id] == ownerID, nil
}

func (m *MockAccountService) HasAccounts(_ context.Context, ownerID string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, owner := range m.Accounts {
		if owner == ownerID {
			return true, nil
		}
	}
	return false, nil
}
