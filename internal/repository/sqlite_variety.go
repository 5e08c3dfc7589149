package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/RoyalhillsFarm/trayflow-app/internal/db"
	"github.com/RoyalhillsFarm/trayflow-app/internal/domain"
)

const varietyColumns = `id, name, harvest_days, blackout_days, soak_hours, created_at, updated_at`

// SQLiteVarietyRepo implements VarietyRepo over a SQLite handle.
type SQLiteVarietyRepo struct {
	db db.DBTX
}

// NewSQLiteVarietyRepo creates a new SQLiteVarietyRepo.
func NewSQLiteVarietyRepo(conn db.DBTX) *SQLiteVarietyRepo {
	return &SQLiteVarietyRepo{db: conn}
}

func (r *SQLiteVarietyRepo) Create(ctx context.Context, v *domain.Variety) error {
	query := `INSERT INTO varieties (` + varietyColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		v.ID,
		v.Name,
		v.HarvestDays,
		v.BlackoutDays,
		v.SoakHours,
		v.CreatedAt.Format(time.RFC3339),
		v.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting variety: %w", err)
	}
	return nil
}

func (r *SQLiteVarietyRepo) GetByID(ctx context.Context, id string) (*domain.Variety, error) {
	query := `SELECT ` + varietyColumns + ` FROM varieties WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	v, err := scanVariety(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("variety: %w", ErrNotFound)
		}
		return nil, err
	}
	return v, nil
}

func (r *SQLiteVarietyRepo) List(ctx context.Context) ([]*domain.Variety, error) {
	query := `SELECT ` + varietyColumns + ` FROM varieties ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing varieties: %w", err)
	}
	defer rows.Close()

	var varieties []*domain.Variety
	for rows.Next() {
		v, err := scanVariety(rows.Scan)
		if err != nil {
			return nil, err
		}
		varieties = append(varieties, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating varieties: %w", err)
	}
	return varieties, nil
}

func (r *SQLiteVarietyRepo) Update(ctx context.Context, v *domain.Variety) error {
	query := `UPDATE varieties SET name = ?, harvest_days = ?, blackout_days = ?, soak_hours = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		v.Name,
		v.HarvestDays,
		v.BlackoutDays,
		v.SoakHours,
		v.UpdatedAt.Format(time.RFC3339),
		v.ID,
	)
	if err != nil {
		return fmt.Errorf("updating variety: %w", err)
	}
	return nil
}

func (r *SQLiteVarietyRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM varieties WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting variety: %w", err)
	}
	return nil
}

func scanVariety(scan func(dest ...any) error) (*domain.Variety, error) {
	var v domain.Variety
	var createdAtStr, updatedAtStr string
	err := scan(&v.ID, &v.Name, &v.HarvestDays, &v.BlackoutDays, &v.SoakHours, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning variety: %w", err)
	}
	if v.CreatedAt, err = parseTimestamp(createdAtStr, "created_at"); err != nil {
		return nil, err
	}
	if v.UpdatedAt, err = parseTimestamp(updatedAtStr, "updated_at"); err != nil {
		return nil, err
	}
	return &v, nil
}
