package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"foodcourt/internal/domain"
	apperrors "foodcourt/internal/errors"
)

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) Create(ctx context.Context, o *domain.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("encoding order lines: %w", err)
	}

	query := `
		INSERT INTO orders (order_id, user_id, restaurant_id, items, total_price, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		o.OrderID, o.UserID, o.RestaurantID, items, o.TotalPrice, string(o.Status), o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}

	return nil
}

func (r *MySQLRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `
		SELECT order_id, user_id, restaurant_id, items, total_price, status, created_at, updated_at
		FROM orders
		WHERE order_id = ?
	`

	o, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order not found with identifier : %s", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return o, nil
}

func (r *MySQLRepository) FindByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	query := `
		SELECT order_id, user_id, restaurant_id, items, total_price, status, created_at, updated_at
		FROM orders
		WHERE user_id = ?
		ORDER BY created_at DESC
	`
	return r.queryOrders(ctx, query, userID)
}

func (r *MySQLRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT order_id, user_id, restaurant_id, items, total_price, status, created_at, updated_at
		FROM orders
		ORDER BY created_at DESC
	`
	return r.queryOrders(ctx, query)
}

func (r *MySQLRepository) FindStalled(ctx context.Context, status domain.OrderStatus, cutoff time.Time) ([]domain.Order, error) {
	query := `
		SELECT order_id, user_id, restaurant_id, items, total_price, status, created_at, updated_at
		FROM orders
		WHERE status = ? AND created_at <= ?
		ORDER BY created_at ASC
	`
	return r.queryOrders(ctx, query, string(status), cutoff)
}

func (r *MySQLRepository) Update(ctx context.Context, o *domain.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("encoding order lines: %w", err)
	}

	query := `
		UPDATE orders
		SET items = ?, total_price = ?, status = ?, updated_at = ?
		WHERE order_id = ?
	`

	result, err := r.db.ExecContext(ctx, query, items, o.TotalPrice, string(o.Status), o.UpdatedAt, o.OrderID)
	if err != nil {
		return fmt.Errorf("updating order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("order not found with identifier : %s", o.OrderID))
	}

	return nil
}

func (r *MySQLRepository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		orders = append(orders, *o)
	}

	return orders, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		o      domain.Order
		items  []byte
		status string
	)

	err := row.Scan(&o.OrderID, &o.UserID, &o.RestaurantID, &items, &o.TotalPrice, &status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("decoding order lines: %w", err)
	}
	o.Status = domain.OrderStatus(status)

	return &o, nil
}
