package order

import (
	"context"
	"database/sql"
	"strings"

	"github.com/ItaloOlivier/shopcrypto/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	CreateOrderTx(ctx context.Context, o *Order) error
	GetByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	ListAll(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// IsOrderNumberConflict reports whether err is the store rejecting a
// duplicate order number, which the service answers with a regenerate-and-retry.
func IsOrderNumberConflict(err error) bool {
	return err != nil && strings.Contains(err.Error(), "orders_order_number_key")
}

const orderColumns = `
	id, order_number, user_id, status, subtotal, total,
	shipping_address, shipping_city, shipping_province, shipping_postal_code,
	payment_method, notes, created_at, updated_at`

// CreateOrderTx persists the order row and its item snapshots in a single
// transaction so a failure can never leave a partial order behind.
func (r *repository) CreateOrderTx(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// 1. Insert order
	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (
			id, order_number, user_id, status, subtotal, total,
			shipping_address, shipping_city, shipping_province, shipping_postal_code,
			payment_method, notes
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		o.ID,
		o.OrderNumber,
		o.UserID,
		o.Status,
		o.Subtotal,
		o.Total,
		o.ShippingAddress,
		o.ShippingCity,
		o.ShippingProvince,
		o.ShippingPostalCode,
		o.PaymentMethod,
		o.Notes,
	)
	if err != nil {
		return err
	}

	// 2. Insert item snapshots
	for _, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, product_id, name, price, quantity)
			VALUES ($1,$2,$3,$4,$5,$6)
		`,
			item.ID,
			o.ID,
			item.ProductID,
			item.Name,
			item.Price,
			item.Quantity,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *repository) GetByOrderNumber(ctx context.Context, orderNumber string) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_number = $1`,
		orderNumber,
	).Scan(
		&o.ID, &o.OrderNumber, &o.UserID, &o.Status, &o.Subtotal, &o.Total,
		&o.ShippingAddress, &o.ShippingCity, &o.ShippingProvince, &o.ShippingPostalCode,
		&o.PaymentMethod, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := r.itemsForOrder(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return &o, nil
}

func (r *repository) itemsForOrder(ctx context.Context, orderID string) ([]OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, name, price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var item OrderItem
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID,
			&item.Name, &item.Price, &item.Quantity,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	return r.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
}

func (r *repository) ListAll(ctx context.Context) ([]Order, error) {
	return r.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`,
	)
}

func (r *repository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.UserID, &o.Status, &o.Subtotal, &o.Total,
			&o.ShippingAddress, &o.ShippingCity, &o.ShippingProvince, &o.ShippingPostalCode,
			&o.PaymentMethod, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

func (r *repository) UpdateStatus(ctx context.Context, orderID string, status Status) error {
	log := logger.FromCtx(ctx)

	result, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, orderID,
	)
	if err != nil {
		log.Error("db: failed to update order status",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}
