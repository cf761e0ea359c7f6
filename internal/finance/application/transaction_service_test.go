package application

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/iremkabaoglu/FinManager/internal/finance/domain"
	financeErrors "github.com/iremkabaoglu/FinManager/internal/finance/errors"
	"github.com/iremkabaoglu/FinManager/internal/finance/infrastructure"
)

func newTransactionServiceForTest(repo *infrastructure.MockTransactionRepository) *TransactionService {
	return NewTransactionService(
		repo,
		&MockAccountService{Accounts: map[string]string{"a1": "u1", "a2": "u2"}},
		&MockCategoryService{Categories: map[string]string{"c1": "u1", "c2": "u2"}},
	)
}

func TestCreateTransaction_DefaultsDateToNow(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTransactionServiceForTest(repo)
	fixed := time.Date(2024, time.May, 10, 12, 30, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	transaction := &domain.Transaction{
		AccountID:  "a1",
		CategoryID: "c1",
		Amount:     decimal.NewFromInt(50),
	}
	err := service.CreateTransaction(context.Background(), "u1", transaction)
	assert.NoError(t, err)
	assert.Equal(t, fixed, transaction.Date)
	assert.Equal(t, "u1", transaction.OwnerID)
	assert.Len(t, repo.Transactions, 1)
}

func TestCreateTransaction_KeepsExplicitDate(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTransactionServiceForTest(repo)

	explicit := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	transaction := &domain.Transaction{
		AccountID:  "a1",
		CategoryID: "c1",
		Amount:     decimal.NewFromInt(50),
		Date:       explicit,
	}
	err := service.CreateTransaction(context.Background(), "u1", transaction)
	assert.NoError(t, err)
	assert.Equal(t, explicit, transaction.Date)
}

func TestCreateTransaction_ForeignAccountRejected(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTransactionServiceForTest(repo)

	err := service.CreateTransaction(context.Background(), "u1", &domain.Transaction{
		AccountID:  "a2", // owned by u2
		CategoryID: "c1",
		Amount:     decimal.NewFromInt(50),
	})
	assert.True(t, financeErrors.IsValidationError(err))
	assert.Empty(t, repo.Transactions, "no write must happen on a rejected reference")
}

func TestCreateTransaction_ForeignCategoryRejected(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTransactionServiceForTest(repo)

	err := service.CreateTransaction(context.Background(), "u1", &domain.Transaction{
		AccountID:  "a1",
		CategoryID: "c2", // owned by u2
		Amount:     decimal.NewFromInt(50),
	})
	assert.True(t, financeErrors.IsValidationError(err))
	assert.Empty(t, repo.Transactions)
}

func TestCreateTransaction_NoAccountsYet(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := NewTransactionService(
		repo,
		&MockAccountService{Accounts: map[string]string{}},
		&MockCategoryService{Categories: map[string]string{"c1": "u1"}},
	)

	err := service.CreateTransaction(context.Background(), "u1", &domain.Transaction{
		AccountID:  "a1",
		CategoryID: "c1",
		Amount:     decimal.NewFromInt(50),
	})
	assert.True(t, financeErrors.IsValidationError(err))
	assert.Empty(t, repo.Transactions)
}

func TestCreateTransaction_ValidatesAmountAndNote(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newTransactionServiceForTest(repo)

	err := service.CreateTransaction(context.Background(), "u1", &domain.Transaction{
		AccountID:  "a1",
		CategoryID: "c1",
		Amount:     decimal.Zero,
	})
	assert.True(t, financeErrors.IsValidationError(err))

	long := make([]byte, 251)
	for i := range long {
		long[i] = 'n'
	}
	err = service.CreateTransaction(context.Background(), "u1", &domain.Transaction{
		AccountID:  "a1",
		CategoryID: "c1",
		Amount:     decimal.NewFromInt(50),
		Note:       string(long),
	})
	assert.True(t, financeErrors.IsValidationError(err))

	assert.Empty(t, repo.Transactions)
}

func TestGetTransaction_OtherOwnerLooksAbsent(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{{ID: "t1", AccountID: "a1", CategoryID: "c1", Amount: decimal.NewFromInt(10), Date: time.Now(), OwnerID: "u1"}},
	}
	service := newTransactionServiceForTest(repo)

	transaction, err := service.GetTransaction(context.Background(), "u2", "t1")
	assert.Nil(t, transaction)
	assert.ErrorIs(t, err, financeErrors.ErrNotFound)
}

func TestUpdateTransaction_RechecksReferences(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{{ID: "t1", AccountID: "a1", CategoryID: "c1", Amount: decimal.NewFromInt(10), Date: time.Now(), OwnerID: "u1"}},
	}
	service := newTransactionServiceForTest(repo)

	_, err := service.UpdateTransaction(context.Background(), "u1", "t1", domain.Transaction{
		AccountID:  "a2", // owned by u2
		CategoryID: "c1",
		Amount:     decimal.NewFromInt(20),
		Date:       time.Now(),
	})
	assert.True(t, financeErrors.IsValidationError(err))
	assert.Equal(t, "a1", repo.Transactions[0].AccountID, "rejected update must not write")
}

func TestUpdateTransaction_RequiresDate(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{{ID: "t1", AccountID: "a1", CategoryID: "c1", Amount: decimal.NewFromInt(10), Date: time.Now(), OwnerID: "u1"}},
	}
	service := newTransactionServiceForTest(repo)

	_, err := service.UpdateTransaction(context.Background(), "u1", "t1", domain.Transaction{
		AccountID:  "a1",
		CategoryID: "c1",
		Amount:     decimal.NewFromInt(20),
	})
	assert.True(t, financeErrors.IsValidationError(err))
}

func TestUpdateTransaction_AppliesMutableFields(t *testing.T) {
	created := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{{ID: "t1", AccountID: "a1", CategoryID: "c1", Amount: decimal.NewFromInt(10), Date: created, OwnerID: "u1"}},
	}
	service := newTransactionServiceForTest(repo)

	moved := created.AddDate(0, 0, 3)
	updated, err := service.UpdateTransaction(context.Background(), "u1", "t1", domain.Transaction{
		AccountID:  "a1",
		CategoryID: "c1",
		Amount:     decimal.NewFromInt(25),
		Date:       moved,
		Note:       "corrected",
	})
	assert.NoError(t, err)
	assert.Equal(t, "t1", updated.ID)
	assert.Equal(t, "u1", updated.OwnerID)
	assert.True(t, updated.Amount.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, moved, updated.Date)
	assert.Equal(t, "corrected", updated.Note)
}

func TestDeleteTransaction_IdempotentNoop(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{{ID: "t1", AccountID: "a1", CategoryID: "c1", Amount: decimal.NewFromInt(10), Date: time.Now(), OwnerID: "u1"}},
	}
	service := newTransactionServiceForTest(repo)

	assert.NoError(t, service.DeleteTransaction(context.Background(), "u1", "t1"))
	assert.NoError(t, service.DeleteTransaction(context.Background(), "u1", "t1"))
	assert.Empty(t, repo.Transactions)
}

func TestListTransactions_NewestFirst(t *testing.T) {
	older := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	newer := older.AddDate(0, 0, 10)
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: "t1", AccountID: "a1", CategoryID: "c1", Amount: decimal.NewFromInt(10), Date: older, OwnerID: "u1"},
			{ID: "t2", AccountID: "a1", CategoryID: "c1", Amount: decimal.NewFromInt(20), Date: newer, OwnerID: "u1"},
			{ID: "t3", AccountID: "a2", CategoryID: "c2", Amount: decimal.NewFromInt(30), Date: newer, OwnerID: "u2"},
		},
	}
	service := newTransactionServiceForTest(repo)

	transactions, err := service.ListTransactions(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Len(t, transactions, 2)
	assert.Equal(t, "t2", transactions[0].ID)
	assert.Equal(t, "t1", transactions[1].ID)
}
