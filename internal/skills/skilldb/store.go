// Package skilldb keeps a skill table in SQLite so it can be edited without
// touching site files.
package skilldb

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/Zachkp/portfolio-widgets/internal/skills"
)

const createSkillsTable = `
CREATE TABLE IF NOT EXISTS skills (
	label   TEXT PRIMARY KEY,
	percent INTEGER NOT NULL CHECK (percent BETWEEN 0 AND 100)
)`

type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open opens (creating if needed) the database at path.
func Open(ctx context.Context, path string, logger *zap.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open skills db: %w", err)
	}
	if _, err := db.ExecContext(ctx, createSkillsTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create skills table: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Upsert writes entries in one transaction.
func (s *Store) Upsert(ctx context.Context, entries []skills.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO skills (label, percent) VALUES (?, ?)
		ON CONFLICT(label) DO UPDATE SET percent = excluded.percent`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.Label, e.Percent); err != nil {
			return fmt.Errorf("upsert skill %q: %w", e.Label, err)
		}
	}
	return tx.Commit()
}

// SeedIfEmpty fills an empty database from table.
func (s *Store) SeedIfEmpty(ctx context.Context, table *skills.Table) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM skills`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	s.logger.Info("Seeding skills table", zap.Int("skills", table.Len()))
	return s.Upsert(ctx, table.Entries())
}

// Table loads every row into a lookup table.
func (s *Store) Table(ctx context.Context, defaultPercent int) (*skills.Table, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT label, percent FROM skills`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make(map[string]int)
	for rows.Next() {
		var label string
		var pct int
		if err := rows.Scan(&label, &pct); err != nil {
			return nil, err
		}
		entries[label] = pct
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return skills.NewTable(entries, defaultPercent)
}
