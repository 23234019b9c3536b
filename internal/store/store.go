// Package store persists the property ledgers in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidReference is returned when a record points at a rent-roll
	// unit or property that does not exist.
	ErrInvalidReference = errors.New("invalid reference")
)

// Store wraps the SQLite database and the directory holding uploaded
// document content.
type Store struct {
	db        *sql.DB
	dbPath    string
	uploadDir string
	now       func() time.Time
}

// Open opens the database at dbPath, enabling WAL mode and foreign keys,
// and creates the schema if needed.
func Open(dbPath, uploadDir string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	connStr := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{
		db:        db,
		dbPath:    dbPath,
		uploadDir: uploadDir,
		now:       time.Now,
	}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

// SetClock replaces the time source used to stamp new records.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Now returns the current time according to the store's clock.
func (s *Store) Now() time.Time {
	return s.now()
}

// transaction executes fn within a transaction. If fn returns an error the
// transaction is rolled back, otherwise it is committed.
func (s *Store) transaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type scanner interface {
	Scan(dest ...any) error
}

// translate maps driver constraint failures onto the package sentinels.
func translate(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey {
		return fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}
	return err
}

// requireRentRoll checks that the rent-roll unit exists and belongs to the
// property.
func requireRentRoll(ctx context.Context, q queryer, propertyID, rentRollID int64) error {
	var owner int64
	err := q.QueryRowContext(ctx, `SELECT property_id FROM rent_rolls WHERE id = ?`, rentRollID).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: rent roll %d does not exist", ErrInvalidReference, rentRollID)
	}
	if err != nil {
		return fmt.Errorf("failed to look up rent roll: %w", err)
	}
	if owner != propertyID {
		return fmt.Errorf("%w: rent roll %d belongs to another property", ErrInvalidReference, rentRollID)
	}
	return nil
}

// mustAffect turns a zero-row update or delete into ErrNotFound.
func mustAffect(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) today(sep string) string {
	t := s.now()
	return fmt.Sprintf("%04d%s%02d%s%02d", t.Year(), sep, int(t.Month()), sep, t.Day())
}
