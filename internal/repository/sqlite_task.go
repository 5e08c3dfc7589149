package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/RoyalhillsFarm/trayflow-app/internal/db"
	"github.com/RoyalhillsFarm/trayflow-app/internal/domain"
)

const taskColumns = `id, title, due_date, status, task_type, source, phase, kind,
		generator_key, order_id, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo over a SQLite handle.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Title,
		t.DueDate.String(),
		string(t.Status),
		string(t.Type),
		string(t.Source),
		string(t.Phase),
		string(t.Kind),
		nullableStr(t.GeneratorKey),
		nullableStr(t.OrderID),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	t, err := scanTask(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTaskRepo) ListByDueRange(ctx context.Context, from, to domain.Day) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE due_date >= ? AND due_date <= ?
		ORDER BY due_date, title`
	rows, err := r.db.QueryContext(ctx, query, from.String(), to.String())
	if err != nil {
		return nil, fmt.Errorf("listing tasks by due range: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) DeleteGeneratedInRange(ctx context.Context, from, to domain.Day) (int, error) {
	query := `DELETE FROM tasks
		WHERE source = ? AND due_date >= ? AND due_date <= ?`
	res, err := r.db.ExecContext(ctx, query, string(domain.SourceGenerated), from.String(), to.String())
	if err != nil {
		return 0, fmt.Errorf("deleting generated tasks in range: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted tasks: %w", err)
	}
	return int(n), nil
}

func (r *SQLiteTaskRepo) UpsertGenerated(ctx context.Context, tasks []*domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source, generator_key) WHERE generator_key IS NOT NULL
		DO UPDATE SET
			title = excluded.title,
			due_date = excluded.due_date,
			status = excluded.status,
			task_type = excluded.task_type,
			phase = excluded.phase,
			kind = excluded.kind,
			updated_at = excluded.updated_at`

	for _, t := range tasks {
		if t.Source != domain.SourceGenerated || t.GeneratorKey == "" {
			return fmt.Errorf("upserting task %q: not a generated task", t.ID)
		}
		_, err := r.db.ExecContext(ctx, query,
			t.ID,
			t.Title,
			t.DueDate.String(),
			string(t.Status),
			string(t.Type),
			string(t.Source),
			string(t.Phase),
			string(t.Kind),
			t.GeneratorKey,
			nullableStr(t.OrderID),
			t.CreatedAt.Format(time.RFC3339),
			t.UpdatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("upserting task %s: %w", t.GeneratorKey, err)
		}
	}
	return nil
}

func (r *SQLiteTaskRepo) SetStatus(ctx context.Context, id string, status domain.TaskStatus) error {
	query := `UPDATE tasks SET status = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, string(status), time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("updating task status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking task status update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tasks WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

func scanTask(scan func(dest ...any) error) (*domain.Task, error) {
	var t domain.Task
	var statusStr, typeStr, sourceStr, phaseStr, kindStr string
	var dueDateStr, createdAtStr, updatedAtStr string
	var generatorKey, orderID sql.NullString

	err := scan(&t.ID, &t.Title, &dueDateStr, &statusStr, &typeStr, &sourceStr,
		&phaseStr, &kindStr, &generatorKey, &orderID, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.Status = domain.TaskStatus(statusStr)
	t.Type = domain.TaskType(typeStr)
	t.Source = domain.TaskSource(sourceStr)
	t.Phase = domain.Phase(phaseStr)
	t.Kind = domain.TaskKind(kindStr)
	t.GeneratorKey = generatorKey.String
	t.OrderID = orderID.String

	if t.DueDate, err = parseDayColumn(dueDateStr, "due_date"); err != nil {
		return nil, err
	}
	if t.CreatedAt, err = parseTimestamp(createdAtStr, "created_at"); err != nil {
		return nil, err
	}
	if t.UpdatedAt, err = parseTimestamp(updatedAtStr, "updated_at"); err != nil {
		return nil, err
	}
	return &t, nil
}
