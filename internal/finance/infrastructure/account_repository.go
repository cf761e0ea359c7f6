package infrastructure

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iremkabaoglu/FinManager/internal/finance/domain"
	financeErrors "github.com/iremkabaoglu/FinManager/internal/finance/errors"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, balance, owner_id FROM accounts WHERE owner_id = $1 ORDER BY name ASC`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(&account.ID, &account.Name, &account.Description, &account.Balance, &account.OwnerID); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	var account domain.Account
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, balance, owner_id FROM accounts WHERE id = $1`,
		id,
	).Scan(&account.ID, &account.Name, &account.Description, &account.Balance, &account.OwnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) Save(ctx context.Context, account domain.Account) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (id, name, description, balance, owner_id) VALUES ($1, $2, $3, $4, $5)`,
		account.ID, account.Name, account.Description, account.Balance, account.OwnerID,
	)
	return err
}

func (r *AccountRepository) Update(ctx context.Context, account domain.Account) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET name = $1, description = $2, balance = $3 WHERE id = $4`,
		account.Name, account.Description, account.Balance, account.ID,
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

func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	return err
}

func (r *AccountRepository) Exists(ctx context.Context, id, ownerID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM accounts WHERE id = $1 AND owner_id = $2)`,
		id, ownerID,
	).Scan(&exists)
	return exists, err
}

func (r *AccountRepository) HasAny(ctx context.Context, ownerID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM accounts WHERE owner_id = $1)`,
		ownerID,
	).Scan(&exists)
	return exists, err
}
