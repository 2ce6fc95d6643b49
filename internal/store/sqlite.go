package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/raphi011/worklog/internal/model"
)

// SQLiteBackend stores tasks in a SQLite database.
type SQLiteBackend struct {
	path string
}

// Path implements Backend.
func (b *SQLiteBackend) Path() string {
	return b.path
}

func (b *SQLiteBackend) open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", b.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", b.path, err)
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Load implements Backend.
func (b *SQLiteBackend) Load(ctx context.Context) (*Store, error) {
	// sql.Open would create a missing database file.
	if _, err := os.Stat(b.path); err != nil {
		return nil, fmt.Errorf("read task store: %w", err)
	}

	db, err := b.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT id, title, status, priority, tags, due, created_at, updated_at FROM tasks ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var (
			t                model.Task
			status, tags     string
			due              sql.NullString
			created, updated string
		)
		if err := rows.Scan(&t.ID, &t.Title, &status, &t.Priority, &tags, &due, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		t.Status = model.Status(status)
		if tags != "" {
			t.Tags = strings.Split(tags, ",")
		}
		if due.Valid && due.String != "" {
			d, err := model.ParseDate(due.String)
			if err != nil {
				return nil, fmt.Errorf("task %s: %w", t.ID, err)
			}
			t.Due = &d
		}
		if t.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("task %s: created_at: %w", t.ID, err)
		}
		if t.UpdatedAt, err = time.Parse(time.RFC3339Nano, updated); err != nil {
			return nil, fmt.Errorf("task %s: updated_at: %w", t.ID, err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}

	s, err := fromRecords(tasks)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", b.path, err)
	}
	return s, nil
}

// Save implements Backend. The table is rewritten in one transaction.
func (b *SQLiteBackend) Save(ctx context.Context, s *Store) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	db, err := b.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}

	for i, t := range s.All() {
		var due any
		if t.Due != nil {
			due = t.Due.String()
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (id, position, title, status, priority, tags, due, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, i, t.Title, string(t.Status), t.Priority, strings.Join(t.Tags, ","), due,
			t.CreatedAt.Format(time.RFC3339Nano), t.UpdatedAt.Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("insert task %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tasks: %w", err)
	}
	return nil
}
