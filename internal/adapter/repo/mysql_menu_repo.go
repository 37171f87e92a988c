package repo

import (
	"context"
	"database/sql"
	"errors"

	domain "github.com/pallabiBWM/lakesideindianrestaurant-new/internal/entity"
	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/usecase"
)

// MySQLMenuRepo reads the local replica of the external menu catalog. This
// core never writes menu content; UpdatePrice exists only for the sync
// consumer applying the menu system's price-change events.
type MySQLMenuRepo struct{ db *sql.DB }

func NewMySQLMenuRepo(db *sql.DB) *MySQLMenuRepo { return &MySQLMenuRepo{db: db} }

func (r *MySQLMenuRepo) Item(ctx context.Context, itemID string) (domain.MenuItem, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id,name,description,price_cents,category,image,featured,created_at
FROM menu_items WHERE id=?`, itemID)

	var it domain.MenuItem
	err := row.Scan(&it.ID, &it.Name, &it.Description, &it.PriceCents, &it.Category, &it.Image, &it.Featured, &it.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.MenuItem{}, domain.ErrItemNotFound
	}
	if err != nil {
		return domain.MenuItem{}, err
	}
	return it, nil
}

func (r *MySQLMenuRepo) List(ctx context.Context, category string, featured *bool) ([]domain.MenuItem, error) {
	q := `
SELECT id,name,description,price_cents,category,image,featured,created_at
FROM menu_items WHERE 1=1`
	args := []any{}
	if category != "" {
		q += ` AND category=?`
		args = append(args, category)
	}
	if featured != nil {
		q += ` AND featured=?`
		args = append(args, *featured)
	}
	q += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.MenuItem
	for rows.Next() {
		var it domain.MenuItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.PriceCents, &it.Category, &it.Image, &it.Featured, &it.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *MySQLMenuRepo) UpdatePrice(ctx context.Context, itemID string, priceCents int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE menu_items SET price_cents=? WHERE id=?`, priceCents, itemID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

var _ usecase.Catalog = (*MySQLMenuRepo)(nil)
