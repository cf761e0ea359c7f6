package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iremkabaoglu/FinManager/internal/finance/domain"
	financeErrors "github.com/iremkabaoglu/FinManager/internal/finance/errors"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// No FK constraints back the account/category references, so both joins
// are LEFT JOINs: a deleted reference scans as NULL and surfaces as a nil
// association instead of a failed read.
const transactionSelect = `
	SELECT t.id, t.account_id, t.category_id, t.amount, t.date, t.note, t.owner_id,
	       a.id, a.name, a.description, a.balance, a.owner_id,
	       c.id, c.name, c.type, c.owner_id
	FROM transactions t
	LEFT JOIN accounts a ON a.id = t.account_id
	LEFT JOIN categories c ON c.id = t.category_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var transaction domain.Transaction
	var (
		accountID, accountName, accountDescription, accountOwner sql.NullString
		accountBalance                                           decimal.NullDecimal
		categoryID, categoryName, categoryType, categoryOwner    sql.NullString
	)
	err := row.Scan(
		&transaction.ID, &transaction.AccountID, &transaction.CategoryID,
		&transaction.Amount, &transaction.Date, &transaction.Note, &transaction.OwnerID,
		&accountID, &accountName, &accountDescription, &accountBalance, &accountOwner,
		&categoryID, &categoryName, &categoryType, &categoryOwner,
	)
	if err != nil {
		return nil, err
	}

	if accountID.Valid {
		transaction.Account = &domain.Account{
			ID:          accountID.String,
			Name:        accountName.String,
			Description: accountDescription.String,
			Balance:     accountBalance.Decimal,
			OwnerID:     accountOwner.String,
		}
	}
	if categoryID.Valid {
		transaction.Category = &domain.Category{
			ID:      categoryID.String,
			Name:    categoryName.String,
			Type:    categoryType.String,
			OwnerID: categoryOwner.String,
		}
	}
	return &transaction, nil
}

func (r *TransactionRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		transactionSelect+` WHERE t.owner_id = $1 ORDER BY t.date DESC`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *transaction)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) FindByID(ctx context.Context, id string) (*domain.Transaction, error) {
	transaction, err := scanTransaction(r.db.QueryRowContext(ctx,
		transactionSelect+` WHERE t.id = $1`,
		id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

func (r *TransactionRepository) FindByOwnerInDateRange(ctx context.Context, ownerID string, start, end time.Time) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		transactionSelect+` WHERE t.owner_id = $1 AND t.date >= $2 AND t.date < $3 ORDER BY t.date ASC`,
		ownerID, start, end,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *transaction)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) Save(ctx context.Context, transaction domain.Transaction) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (id, account_id, category_id, amount, date, note, owner_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		transaction.ID, transaction.AccountID, transaction.CategoryID,
		transaction.Amount, transaction.Date, transaction.Note, transaction.OwnerID,
	)
	return err
}

func (r *TransactionRepository) Update(ctx context.Context, transaction domain.Transaction) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE transactions SET account_id = $1, category_id = $2, amount = $3, date = $4, note = $5 WHERE id = $6`,
		transaction.AccountID, transaction.CategoryID, transaction.Amount,
		transaction.Date, transaction.Note, transaction.ID,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrNotFound
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	return err
}
