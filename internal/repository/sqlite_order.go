package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/RoyalhillsFarm/trayflow-app/internal/db"
	"github.com/RoyalhillsFarm/trayflow-app/internal/domain"
)

const orderColumns = `id, customer_id, variety_id, quantity, delivery_date, status, created_at, updated_at`

// SQLiteOrderRepo implements OrderRepo over a SQLite handle.
type SQLiteOrderRepo struct {
	db db.DBTX
}

// NewSQLiteOrderRepo creates a new SQLiteOrderRepo.
func NewSQLiteOrderRepo(conn db.DBTX) *SQLiteOrderRepo {
	return &SQLiteOrderRepo{db: conn}
}

func (r *SQLiteOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	query := `INSERT INTO orders (` + orderColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		o.ID,
		o.CustomerID,
		o.VarietyID,
		o.Quantity,
		o.DeliveryDate.String(),
		string(o.Status),
		o.CreatedAt.Format(time.RFC3339),
		o.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}
	return nil
}

func (r *SQLiteOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	o, err := scanOrder(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("order: %w", ErrNotFound)
		}
		return nil, err
	}
	return o, nil
}

func (r *SQLiteOrderRepo) List(ctx context.Context) ([]*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY delivery_date, created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating orders: %w", err)
	}
	return orders, nil
}

func (r *SQLiteOrderRepo) ListActive(ctx context.Context) ([]ActiveOrder, error) {
	query := `SELECT o.id, o.customer_id, o.variety_id, o.quantity, o.delivery_date, o.status,
			o.created_at, o.updated_at,
			c.name AS customer_name,
			v.name AS variety_name, v.harvest_days, v.blackout_days, v.soak_hours
		FROM orders o
		JOIN customers c ON o.customer_id = c.id
		JOIN varieties v ON o.variety_id = v.id
		WHERE o.status != 'delivered'
		ORDER BY o.delivery_date, o.created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing active orders: %w", err)
	}
	defer rows.Close()

	var active []ActiveOrder
	for rows.Next() {
		var a ActiveOrder
		var statusStr, deliveryDateStr, createdAtStr, updatedAtStr string
		err := rows.Scan(
			&a.Order.ID, &a.Order.CustomerID, &a.Order.VarietyID, &a.Order.Quantity,
			&deliveryDateStr, &statusStr, &createdAtStr, &updatedAtStr,
			&a.CustomerName,
			&a.VarietyName, &a.HarvestDays, &a.BlackoutDays, &a.SoakHours,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning active order: %w", err)
		}

		a.Order.Status = domain.OrderStatus(statusStr)
		if a.Order.DeliveryDate, err = parseDayColumn(deliveryDateStr, "delivery_date"); err != nil {
			return nil, err
		}
		if a.Order.CreatedAt, err = parseTimestamp(createdAtStr, "created_at"); err != nil {
			return nil, err
		}
		if a.Order.UpdatedAt, err = parseTimestamp(updatedAtStr, "updated_at"); err != nil {
			return nil, err
		}
		active = append(active, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating active orders: %w", err)
	}
	return active, nil
}

func (r *SQLiteOrderRepo) Update(ctx context.Context, o *domain.Order) error {
	query := `UPDATE orders SET customer_id = ?, variety_id = ?, quantity = ?, delivery_date = ?,
		status = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		o.CustomerID,
		o.VarietyID,
		o.Quantity,
		o.DeliveryDate.String(),
		string(o.Status),
		o.UpdatedAt.Format(time.RFC3339),
		o.ID,
	)
	if err != nil {
		return fmt.Errorf("updating order: %w", err)
	}
	return nil
}

func (r *SQLiteOrderRepo) Delete(ctx context.Context, id string) error {
	// Tasks referencing the order go with it via ON DELETE CASCADE.
	query := `DELETE FROM orders WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}
	return nil
}

func scanOrder(scan func(dest ...any) error) (*domain.Order, error) {
	var o domain.Order
	var statusStr, deliveryDateStr, createdAtStr, updatedAtStr string
	err := scan(&o.ID, &o.CustomerID, &o.VarietyID, &o.Quantity,
		&deliveryDateStr, &statusStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning order: %w", err)
	}

	o.Status = domain.OrderStatus(statusStr)
	if o.DeliveryDate, err = parseDayColumn(deliveryDateStr, "delivery_date"); err != nil {
		return nil, err
	}
	if o.CreatedAt, err = parseTimestamp(createdAtStr, "created_at"); err != nil {
		return nil, err
	}
	if o.UpdatedAt, err = parseTimestamp(updatedAtStr, "updated_at"); err != nil {
		return nil, err
	}
	return &o, nil
}
