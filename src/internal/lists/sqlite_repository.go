package lists

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/holectl/holectl/src/internal/errors"
)

// SQLiteRepository stores all lists in one SQLite table.
type SQLiteRepository struct {
	db *sql.DB
}

// OpenSQLiteRepository opens (and creates, if needed) the database at path.
func OpenSQLiteRepository(path string) (*SQLiteRepository, error) {
	if path == "" {
		return nil, errors.NewConfigError("sqlite path is empty", nil)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.NewStorageError("failed to create database directory", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.NewStorageError("failed to open sqlite database", err)
	}
	db.SetMaxOpenConns(1)

	r := &SQLiteRepository{db: db}
	if err := r.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return r, nil
}

func (r *SQLiteRepository) Close() error { return r.db.Close() }

func (r *SQLiteRepository) migrate(ctx context.Context) error {
	stmts := []string{
		`PRAGMA journal_mode=WAL;`,
		`CREATE TABLE IF NOT EXISTS domainlist (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			list TEXT NOT NULL,
			domain TEXT NOT NULL,
			date_added INTEGER NOT NULL,
			UNIQUE(list, domain)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_domainlist_list ON domainlist(list);`,
	}

	for _, stmt := range stmts {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return errors.NewStorageError("sqlite migrate", err)
		}
	}
	return nil
}

func (r *SQLiteRepository) Contains(ctx context.Context, list List, domain string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM domainlist WHERE list = ? AND domain = ?`,
		list.String(), domain,
	).Scan(&n)
	if err != nil {
		return false, errors.NewStorageError("failed to query "+list.String(), err)
	}
	return n > 0, nil
}

func (r *SQLiteRepository) Add(ctx context.Context, list List, domain string) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO domainlist (list, domain, date_added) VALUES (?, ?, ?)`,
		list.String(), domain, time.Now().Unix(),
	)
	if err != nil {
		return errors.NewStorageError("failed to insert into "+list.String(), err)
	}
	return affected(res, errors.NewAlreadyExistsError(list.String(), domain))
}

func (r *SQLiteRepository) Remove(ctx context.Context, list List, domain string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM domainlist WHERE list = ? AND domain = ?`,
		list.String(), domain,
	)
	if err != nil {
		return errors.NewStorageError("failed to delete from "+list.String(), err)
	}
	return affected(res, errors.NewNotFoundError(list.String(), domain))
}

func (r *SQLiteRepository) Get(ctx context.Context, list List) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT domain FROM domainlist WHERE list = ? ORDER BY id`,
		list.String(),
	)
	if err != nil {
		return nil, errors.NewStorageError("failed to query "+list.String(), err)
	}
	defer rows.Close()

	domains := []string{}
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, errors.NewStorageError("failed to scan "+list.String(), err)
		}
		domains = append(domains, d)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewStorageError(fmt.Sprintf("failed to read %s", list), err)
	}
	return domains, nil
}

// affected returns noop when the statement changed no rows.
func affected(res sql.Result, noop error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.NewStorageError("failed to read affected rows", err)
	}
	if n == 0 {
		return noop
	}
	return nil
}
