package repo

import (
	"context"
	"database/sql"
	"time"

	domain "github.com/pallabiBWM/lakesideindianrestaurant-new/internal/entity"
	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/usecase"
)

type MySQLWishlistRepo struct{ db *sql.DB }

func NewMySQLWishlistRepo(db *sql.DB) *MySQLWishlistRepo { return &MySQLWishlistRepo{db: db} }

func (r *MySQLWishlistRepo) Get(ctx context.Context, userID string) (domain.Wishlist, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT item_id, created_at
FROM wishlist_items WHERE user_id=? ORDER BY created_at`, userID)
	if err != nil {
		return domain.Wishlist{}, err
	}
	defer rows.Close()

	wl := domain.Wishlist{UserID: userID}
	for rows.Next() {
		var itemID string
		var createdAt time.Time
		if err := rows.Scan(&itemID, &createdAt); err != nil {
			return domain.Wishlist{}, err
		}
		wl.ItemIDs = append(wl.ItemIDs, itemID)
		if createdAt.After(wl.UpdatedAt) {
			wl.UpdatedAt = createdAt
		}
	}
	return wl, rows.Err()
}

func (r *MySQLWishlistRepo) Add(ctx context.Context, userID, itemID string) error {
	// INSERT IGNORE keeps add idempotent under the (user_id, item_id) key
	_, err := r.db.ExecContext(ctx, `
INSERT IGNORE INTO wishlist_items (user_id, item_id, created_at)
VALUES (?,?,NOW())`, userID, itemID)
	return err
}

func (r *MySQLWishlistRepo) Remove(ctx context.Context, userID, itemID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM wishlist_items WHERE user_id=? AND item_id=?`, userID, itemID)
	return err
}

func (r *MySQLWishlistRepo) Contains(ctx context.Context, userID, itemID string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM wishlist_items WHERE user_id=? AND item_id=?`, userID, itemID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

var _ usecase.WishlistRepo = (*MySQLWishlistRepo)(nil)
