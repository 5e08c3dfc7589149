package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/RoyalhillsFarm/trayflow-app/internal/db"
	"github.com/RoyalhillsFarm/trayflow-app/internal/domain"
)

const customerColumns = `id, name, contact, notes, created_at, updated_at`

// SQLiteCustomerRepo implements CustomerRepo over a SQLite handle.
type SQLiteCustomerRepo struct {
	db db.DBTX
}

// NewSQLiteCustomerRepo creates a new SQLiteCustomerRepo.
func NewSQLiteCustomerRepo(conn db.DBTX) *SQLiteCustomerRepo {
	return &SQLiteCustomerRepo{db: conn}
}

func (r *SQLiteCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (` + customerColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Contact,
		c.Notes,
		c.CreatedAt.Format(time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting customer: %w", err)
	}
	return nil
}

func (r *SQLiteCustomerRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var c domain.Customer
	var createdAtStr, updatedAtStr string
	err := row.Scan(&c.ID, &c.Name, &c.Contact, &c.Notes, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("customer: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning customer: %w", err)
	}
	if c.CreatedAt, err = parseTimestamp(createdAtStr, "created_at"); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = parseTimestamp(updatedAtStr, "updated_at"); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *SQLiteCustomerRepo) List(ctx context.Context) ([]*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	defer rows.Close()

	var customers []*domain.Customer
	for rows.Next() {
		var c domain.Customer
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&c.ID, &c.Name, &c.Contact, &c.Notes, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning customer row: %w", err)
		}
		if c.CreatedAt, err = parseTimestamp(createdAtStr, "created_at"); err != nil {
			return nil, err
		}
		if c.UpdatedAt, err = parseTimestamp(updatedAtStr, "updated_at"); err != nil {
			return nil, err
		}
		customers = append(customers, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating customers: %w", err)
	}
	return customers, nil
}

func (r *SQLiteCustomerRepo) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET name = ?, contact = ?, notes = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		c.Name,
		c.Contact,
		c.Notes,
		c.UpdatedAt.Format(time.RFC3339),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating customer: %w", err)
	}
	return nil
}

func (r *SQLiteCustomerRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM customers WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting customer: %w", err)
	}
	return nil
}
