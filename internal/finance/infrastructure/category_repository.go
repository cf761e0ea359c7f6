package infrastructure

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iremkabaoglu/FinManager/internal/finance/domain"
	financeErrors "github.com/iremkabaoglu/FinManager/internal/finance/errors"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, type, owner_id FROM categories WHERE owner_id = $1 ORDER BY name ASC`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Type, &category.OwnerID); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	var category domain.Category
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, type, owner_id FROM categories WHERE id = $1`,
		id,
	).Scan(&category.ID, &category.Name, &category.Type, &category.OwnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Save(ctx context.Context, category domain.Category) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, type, owner_id) VALUES ($1, $2, $3, $4)`,
		category.ID, category.Name, category.Type, category.OwnerID,
	)
	return err
}

func (r *CategoryRepository) Update(ctx context.Context, category domain.Category) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE categories SET name = $1, type = $2 WHERE id = $3`,
		category.Name, category.Type, category.ID,
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

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	return err
}

func (r *CategoryRepository) Exists(ctx context.Context, id, ownerID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1 AND owner_id = $2)`,
		id, ownerID,
	).Scan(&exists)
	return exists, err
}

func (r *CategoryRepository) HasAny(ctx context.Context, ownerID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM categories WHERE owner_id = $1)`,
		ownerID,
	).Scan(&exists)
	return exists, err
}
