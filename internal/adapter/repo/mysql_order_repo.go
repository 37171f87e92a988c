package repo

import (
	"context"
	"database/sql"
	"errors"

	domain "github.com/pallabiBWM/lakesideindianrestaurant-new/internal/entity"
	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/usecase"
)

type MySQLOrderRepo struct{ db *sql.DB }

func NewMySQLOrderRepo(db *sql.DB) *MySQLOrderRepo { return &MySQLOrderRepo{db: db} }

// Create persists the order and its line snapshots in one transaction.
func (r *MySQLOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
INSERT INTO orders (id,user_id,customer_name,customer_email,customer_phone,delivery_address,
  subtotal_cents,tax_cents,delivery_fee_cents,total_cents,currency,payment_method,status,created_at,updated_at)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		o.ID, o.UserID, o.CustomerName, o.CustomerEmail, o.CustomerPhone, o.DeliveryAddress,
		o.SubtotalCents, o.TaxCents, o.DeliveryFeeCents, o.TotalCents, o.Currency, o.PaymentMethod,
		string(o.Status), o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return err
	}

	for _, l := range o.Lines {
		_, err = tx.ExecContext(ctx, `
INSERT INTO order_lines (order_id,item_id,name,unit_price_cents,quantity)
VALUES (?,?,?,?,?)`,
			o.ID, l.ItemID, l.Name, l.UnitPriceCents, l.Quantity)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *MySQLOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id,user_id,customer_name,customer_email,customer_phone,delivery_address,
  subtotal_cents,tax_cents,delivery_fee_cents,total_cents,currency,payment_method,status,created_at,updated_at
FROM orders WHERE id=?`, id)

	o, err := scanOrder(row)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT item_id,name,unit_price_cents,quantity
FROM order_lines WHERE order_id=?`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var l domain.OrderLine
		if err := rows.Scan(&l.ItemID, &l.Name, &l.UnitPriceCents, &l.Quantity); err != nil {
			return nil, err
		}
		o.Lines = append(o.Lines, l)
	}
	return o, rows.Err()
}

// List returns order summaries newest-first, without lines; GetByID loads
// the full record.
func (r *MySQLOrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id,user_id,customer_name,customer_email,customer_phone,delivery_address,
  subtotal_cents,tax_cents,delivery_fee_cents,total_cents,currency,payment_method,status,created_at,updated_at
FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

// UpdateStatusIf applies the transition only when the stored status still
// matches fromStatus. rows == 0 means either not found or a lost race; the
// caller read the order just before, so it reports a conflict.
func (r *MySQLOrderRepo) UpdateStatusIf(ctx context.Context, id string, fromStatus, toStatus domain.Status) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
UPDATE orders
SET status = ?, updated_at = NOW()
WHERE id = ? AND status = ?`,
		string(toStatus), id, string(fromStatus))
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var o domain.Order
	var status string
	err := row.Scan(&o.ID, &o.UserID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone, &o.DeliveryAddress,
		&o.SubtotalCents, &o.TaxCents, &o.DeliveryFeeCents, &o.TotalCents, &o.Currency, &o.PaymentMethod,
		&status, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	o.Status = domain.Status(status)
	return &o, nil
}

var _ usecase.OrderRepo = (*MySQLOrderRepo)(nil)
