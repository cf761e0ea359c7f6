package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/iremkabaoglu/FinManager/internal/finance/domain"
	financeErrors "github.com/iremkabaoglu/FinManager/internal/finance/errors"
)

type AccountService struct {
	repo domain.AccountRepository
}

func NewAccountService(repo domain.AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

func (s *AccountService) ListAccounts(ctx context.Context, callerID string) ([]domain.Account, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}
	accounts, err := s.repo.FindByOwner(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *AccountService) GetAccount(ctx context.Context, callerID, id string) (*domain.Account, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(callerID, account.OwnerID); err != nil {
		return nil, err
	}
	return account, nil
}

// CreateAccount sets the identifier and owner server-side. Any owner value
// present in the input is overwritten, so a caller cannot create entities
// on behalf of another user.
func (s *AccountService) CreateAccount(ctx context.Context, callerID string, account *domain.Account) error {
	if err := requireCaller(callerID); err != nil {
		return err
	}
	account.ID = uuid.NewString()
	account.OwnerID = callerID
	if err := account.Validate(); err != nil {
		return err
	}
	return s.repo.Save(ctx, *account)
}

// UpdateAccount rewrites name, description, and balance. Identifier and
// owner are immutable. A row removed between the ownership check and the
// write surfaces as ErrNotFound.
func (s *AccountService) UpdateAccount(ctx context.Context, callerID, id string, input domain.Account) (*domain.Account, error) {
	existing, err := s.GetAccount(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.Balance = input.Balance
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, *existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteAccount removes the account when it exists and belongs to the
// caller, and succeeds as a no-op otherwise. Transactions referencing the
// account are left in place; their account association resolves to nil
// from then on.
func (s *AccountService) DeleteAccount(ctx context.Context, callerID, id string) error {
	account, err := s.GetAccount(ctx, callerID, id)
	if err != nil {
		if financeErrors.IsNotFound(err) {
			return nil
		}
		return err
	}
	return s.repo.Delete(ctx, account.ID)
}

func (s *AccountService) AccountExists(ctx context.Context, id, ownerID string) (bool, error) {
	return s.repo.Exists(ctx, id, ownerID)
}

func (s *AccountService) HasAccounts(ctx context.Context, ownerID string) (bool, error) {
	return s.repo.HasAny(ctx, ownerID)
}
