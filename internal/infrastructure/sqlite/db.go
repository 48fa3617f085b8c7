// Package sqlite implementa los repositorios sobre un archivo SQLite (modernc.org/sqlite, sin cgo).
// Montos y cantidades se guardan como TEXT decimal; las fechas como 'YYYY-MM-DD'.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/mluiza/controle-materiais/internal/domain/repository"
)

const (
	dateLayout  = "2006-01-02"
	stampLayout = time.RFC3339Nano
)

// Open crea el directorio si hace falta, aplica migraciones y devuelve los repositorios.
func Open(ctx context.Context, dbPath string) (*repository.Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// Un único escritor: evita SQLITE_BUSY entre conexiones del pool.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &repository.Store{
		Products: &ProductRepo{db: db},
		Entries:  &EntryRepo{db: db},
		Exits:    &ExitRepo{db: db},
		Expenses: &ExpenseRepo{db: db},
		Users:    &UserRepo{db: db},
		Close:    func() { _ = db.Close() },
	}, nil
}

func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

func formatDate(t time.Time) string { return t.Format(dateLayout) }

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q: %w", s, err)
	}
	return t, nil
}

func parseStamp(s string) time.Time {
	t, err := time.Parse(stampLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// isUniqueViolation detecta SQLITE_CONSTRAINT_UNIQUE (2067).
func isUniqueViolation(err error) bool {
	var se *msqlite.Error
	if errors.As(err, &se) {
		return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE || se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func deleteByID(ctx context.Context, db *sql.DB, table string, id int64) error {
	query, args, err := builder().Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s: %w", table, err)
	}
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete %s: %w", table, err)
	}
	return nil
}

// insert ejecuta el INSERT y devuelve el rowid asignado.
func insert(ctx context.Context, db *sql.DB, q squirrel.InsertBuilder) (int64, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert: %w", err)
	}
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
