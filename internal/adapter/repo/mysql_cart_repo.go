package repo

import (
	"context"
	"database/sql"
	"time"

	domain "github.com/pallabiBWM/lakesideindianrestaurant-new/internal/entity"
	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/usecase"
)

// MySQLCartRepo stores one row per (user_id, item_id). Increments happen in
// a single statement so concurrent adds cannot lose updates; there is no
// read-modify-write of a cart snapshot in application code.
type MySQLCartRepo struct{ db *sql.DB }

func NewMySQLCartRepo(db *sql.DB) *MySQLCartRepo { return &MySQLCartRepo{db: db} }

func (r *MySQLCartRepo) Get(ctx context.Context, userID string) (domain.Cart, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT item_id, quantity, updated_at
FROM cart_lines WHERE user_id=? ORDER BY item_id`, userID)
	if err != nil {
		return domain.Cart{}, err
	}
	defer rows.Close()

	cart := domain.Cart{UserID: userID}
	for rows.Next() {
		var line domain.CartLine
		var updatedAt time.Time
		if err := rows.Scan(&line.ItemID, &line.Quantity, &updatedAt); err != nil {
			return domain.Cart{}, err
		}
		cart.Lines = append(cart.Lines, line)
		if updatedAt.After(cart.UpdatedAt) {
			cart.UpdatedAt = updatedAt
		}
	}
	return cart, rows.Err()
}

func (r *MySQLCartRepo) AddLine(ctx context.Context, userID, itemID string, qty int) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO cart_lines (user_id, item_id, quantity, updated_at)
VALUES (?,?,?,NOW())
ON DUPLICATE KEY UPDATE quantity = quantity + VALUES(quantity), updated_at = NOW()`,
		userID, itemID, qty)
	return err
}

func (r *MySQLCartRepo) SetLine(ctx context.Context, userID, itemID string, qty int) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO cart_lines (user_id, item_id, quantity, updated_at)
VALUES (?,?,?,NOW())
ON DUPLICATE KEY UPDATE quantity = VALUES(quantity), updated_at = NOW()`,
		userID, itemID, qty)
	return err
}

func (r *MySQLCartRepo) RemoveLine(ctx context.Context, userID, itemID string) error {
	// zero rows affected is fine: removal is idempotent
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_lines WHERE user_id=? AND item_id=?`, userID, itemID)
	return err
}

func (r *MySQLCartRepo) Clear(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_lines WHERE user_id=?`, userID)
	return err
}

var _ usecase.CartRepo = (*MySQLCartRepo)(nil)
