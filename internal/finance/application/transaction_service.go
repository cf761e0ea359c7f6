package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/iremkabaoglu/FinManager/internal/finance/domain"
	financeErrors "github.com/iremkabaoglu/FinManager/internal/finance/errors"
)

type AccountServiceInterface interface {
	AccountExists(ctx context.Context, id, ownerID string) (bool, error)
	HasAccounts(ctx context.Context, ownerID string) (bool, error)
}

type CategoryServiceInterface interface {
	CategoryExists(ctx context.Context, id, ownerID string) (bool, error)
	HasCategories(ctx context.Context, ownerID string) (bool, error)
}

type TransactionService struct {
	repo            domain.TransactionRepository
	accountService  AccountServiceInterface
	categoryService CategoryServiceInterface
	now             func() time.Time
}

func NewTransactionService(repo domain.TransactionRepository, accountService AccountServiceInterface, categoryService CategoryServiceInterface) *TransactionService {
	return &TransactionService{
		repo:            repo,
		accountService:  accountService,
		categoryService: categoryService,
		now:             time.Now,
	}
}

func (s *TransactionService) ListTransactions(ctx context.Context, callerID string) ([]domain.Transaction, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}
	transactions, err := s.repo.FindByOwner(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

func (s *TransactionService) GetTransaction(ctx context.Context, callerID, id string) (*domain.Transaction, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}
	transaction, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(callerID, transaction.OwnerID); err != nil {
		return nil, err
	}
	return transaction, nil
}

// CreateTransaction validates that the referenced account and category both
// exist and belong to the caller before writing. The check and the insert
// are not one atomic unit; a reference deleted in between leaves a dangling
// reference, which reads tolerate.
//
// Date defaults to the current moment when the input leaves it unset.
func (s *TransactionService) CreateTransaction(ctx context.Context, callerID string, transaction *domain.Transaction) error {
	if err := requireCaller(callerID); err != nil {
		return err
	}
	transaction.ID = uuid.NewString()
	transaction.OwnerID = callerID
	if transaction.Date.IsZero() {
		transaction.Date = s.now()
	}
	if err := transaction.Validate(); err != nil {
		return err
	}

	hasAccounts, err := s.accountService.HasAccounts(ctx, callerID)
	if err != nil {
		return err
	}
	if !hasAccounts {
		return financeErrors.ErrNoAccounts
	}
	hasCategories, err := s.categoryService.HasCategories(ctx, callerID)
	if err != nil {
		return err
	}
	if !hasCategories {
		return financeErrors.ErrNoCategories
	}

	if err := s.checkReferences(ctx, callerID, transaction); err != nil {
		return err
	}
	return s.repo.Save(ctx, *transaction)
}

// UpdateTransaction rewrites account, category, amount, date, and note.
// Referenced entities are re-checked against the caller on every edit.
func (s *TransactionService) UpdateTransaction(ctx context.Context, callerID, id string, input domain.Transaction) (*domain.Transaction, error) {
	existing, err := s.GetTransaction(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	existing.AccountID = input.AccountID
	existing.CategoryID = input.CategoryID
	existing.Amount = input.Amount
	existing.Date = input.Date
	existing.Note = input.Note
	if existing.Date.IsZero() {
		return nil, financeErrors.NewFieldValidationError("date", "is required")
	}
	if err := existing.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, callerID, existing); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, *existing); err != nil {
		return nil, err
	}
	// Re-read so the response carries the freshly resolved associations.
	return s.GetTransaction(ctx, callerID, id)
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, callerID, id string) error {
	transaction, err := s.GetTransaction(ctx, callerID, id)
	if err != nil {
		if financeErrors.IsNotFound(err) {
			return nil
		}
		return err
	}
	return s.repo.Delete(ctx, transaction.ID)
}

func (s *TransactionService) checkReferences(ctx context.Context, callerID string, transaction *domain.Transaction) error {
	accountOk, err := s.accountService.AccountExists(ctx, transaction.AccountID, callerID)
	if err != nil {
		return err
	}
	categoryOk, err := s.categoryService.CategoryExists(ctx, transaction.CategoryID, callerID)
	if err != nil {
		return err
	}
	if !accountOk || !categoryOk {
		return financeErrors.ErrInvalidAccountOrCategory
	}
	return nil
}
