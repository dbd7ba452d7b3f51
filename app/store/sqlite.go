package store

import (
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"github.com/tfrwatch/tfrwatch/app/advisory"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore keeps both collections in an embedded SQLite database.
// The persistence contract is still whole-collection: saves replace
// the table contents in one transaction, loads read everything back in
// stored order. Each advisory is stored as one JSON-encoded row so the
// on-disk format stays schema-light while membership and ordering live
// in real columns.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Whole-collection writes are serialized by the pipeline anyway, a
	// single connection avoids SQLITE_BUSY on concurrent API reads.
	db.SetMaxOpenConns(1)

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create sqlite driver: %w", err)
	}

	source, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (s *SQLiteStore) LoadSnapshot() []advisory.Raw {
	var items []advisory.Raw
	if !s.loadCollection("raw_snapshot", func(data []byte) error {
		var item advisory.Raw
		if err := json.Unmarshal(data, &item); err != nil {
			return err
		}
		items = append(items, item)
		return nil
	}) {
		return nil
	}
	return items
}

func (s *SQLiteStore) SaveSnapshot(items []advisory.Raw) error {
	rows := make([]collectionRow, 0, len(items))
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to encode advisory %s: %w", item.NOTAMID, err)
		}
		rows = append(rows, collectionRow{id: item.NOTAMID, data: data})
	}
	return s.replaceCollection("raw_snapshot", rows)
}

func (s *SQLiteStore) LoadHistory() []advisory.Parsed {
	var items []advisory.Parsed
	if !s.loadCollection("matched_history", func(data []byte) error {
		var item advisory.Parsed
		if err := json.Unmarshal(data, &item); err != nil {
			return err
		}
		items = append(items, item)
		return nil
	}) {
		return nil
	}
	return items
}

func (s *SQLiteStore) SaveHistory(items []advisory.Parsed) error {
	rows := make([]collectionRow, 0, len(items))
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to encode advisory %s: %w", item.NOTAMID, err)
		}
		rows = append(rows, collectionRow{id: item.NOTAMID, data: data})
	}
	return s.replaceCollection("matched_history", rows)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type collectionRow struct {
	id   string
	data []byte
}

// loadCollection streams every row of table, in stored order, through
// decode. Any failure is logged and degrades the read to an empty
// collection rather than failing the cycle.
func (s *SQLiteStore) loadCollection(table string, decode func([]byte) error) bool {
	rows, err := s.db.Query(fmt.Sprintf("SELECT data FROM %s ORDER BY position", table))
	if err != nil {
		slog.Error("Failed to read cache collection, treating as empty", "table", table, "error", err)
		return false
	}
	defer rows.Close()

	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			slog.Error("Failed to scan cache row, treating collection as empty", "table", table, "error", err)
			return false
		}
		if err := decode(data); err != nil {
			slog.Error("Failed to decode cache row, treating collection as empty", "table", table, "error", err)
			return false
		}
	}

	if err := rows.Err(); err != nil {
		slog.Error("Failed to iterate cache rows, treating collection as empty", "table", table, "error", err)
		return false
	}

	return true
}

func (s *SQLiteStore) replaceCollection(table string, rows []collectionRow) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}

	stmt, err := tx.Prepare(fmt.Sprintf(
		"INSERT INTO %s (position, notam_id, data) VALUES (?, ?, ?)", table))
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range rows {
		if _, err := stmt.Exec(i, row.id, row.data); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s replace: %w", table, err)
	}

	return nil
}
