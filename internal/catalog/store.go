// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists extracted VehicleSpecs in SQLite so downstream
// tools can query records by field or by source text, and export them.
package catalog

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/pdiddy/specfields/pkg/types"
)

const (
	dbFile            = "specs.db"
	defaultMaxResults = 20
)

// ErrNotFound is returned by Get when no record has the requested ID.
var ErrNotFound = errors.New("record not found")

// Store manages the catalog SQLite database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int
	fts        bool
	log        *zap.Logger
}

// Open opens or creates the catalog database at cfg.Dir/specs.db and
// creates the schema if it does not exist. A nil logger discards logs.
func Open(cfg types.CatalogConfig, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Dir == "" {
		return nil, fmt.Errorf("catalog directory not configured")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{
		db:         db,
		dir:        cfg.Dir,
		maxResults: maxResults,
		log:        logger,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	logger.Debug("catalog opened", zap.String("path", dbPath), zap.Bool("fts5", s.fts))
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS specs (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			source TEXT NOT NULL,
			fuel_type TEXT,
			horsepower REAL,
			displacement REAL,
			cylinder TEXT,
			injection TEXT,
			induction TEXT,
			transmission TEXT,
			speeds INTEGER,
			color TEXT,
			finish TEXT,
			saved_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_specs_fuel_type ON specs(fuel_type COLLATE NOCASE)`,
		`CREATE INDEX IF NOT EXISTS idx_specs_color ON specs(color COLLATE NOCASE)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='specs_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}
	if ftsExists > 0 {
		s.fts = true
		return nil
	}

	// Builds of go-sqlite3 without the sqlite_fts5 tag lack the module;
	// text search then falls back to LIKE.
	if _, err := s.db.Exec(
		`CREATE VIRTUAL TABLE specs_fts USING fts5(source, content=specs, content_rowid=rowid)`,
	); err != nil {
		if strings.Contains(err.Error(), "no such module") {
			s.log.Warn("fts5 unavailable, text search uses LIKE", zap.Error(err))
			return nil
		}
		return fmt.Errorf("creating FTS table: %w", err)
	}

	triggers := []string{
		`CREATE TRIGGER specs_ai AFTER INSERT ON specs BEGIN
			INSERT INTO specs_fts(rowid, source) VALUES (new.rowid, new.source);
		END`,
		`CREATE TRIGGER specs_ad AFTER DELETE ON specs BEGIN
			INSERT INTO specs_fts(specs_fts, rowid, source) VALUES('delete', old.rowid, old.source);
		END`,
		`CREATE TRIGGER specs_au AFTER UPDATE ON specs BEGIN
			INSERT INTO specs_fts(specs_fts, rowid, source) VALUES('delete', old.rowid, old.source);
			INSERT INTO specs_fts(rowid, source) VALUES (new.rowid, new.source);
		END`,
	}
	for _, stmt := range triggers {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("creating FTS triggers: %w", err)
		}
	}
	s.fts = true
	return nil
}

// RecordID returns the stable catalog ID for a source text: the first 16
// hex digits of its SHA-256.
func RecordID(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])[:16]
}

// SaveSummary holds counts from one Save call.
type SaveSummary struct {
	Inserted int
	Updated  int
}

// Total returns the number of records written.
func (s SaveSummary) Total() int {
	return s.Inserted + s.Updated
}

// Save upserts specs keyed by RecordID(spec.Source). Re-saving a source
// replaces its fields, so records follow changed defaults.
func (s *Store) Save(ctx context.Context, specs []types.VehicleSpec) (SaveSummary, error) {
	var summary SaveSummary

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return summary, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO specs (id, source, fuel_type, horsepower, displacement, cylinder,
			injection, induction, transmission, speeds, color, finish, saved_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			fuel_type=excluded.fuel_type, horsepower=excluded.horsepower,
			displacement=excluded.displacement, cylinder=excluded.cylinder,
			injection=excluded.injection, induction=excluded.induction,
			transmission=excluded.transmission, speeds=excluded.speeds,
			color=excluded.color, finish=excluded.finish, saved_at=excluded.saved_at`)
	if err != nil {
		return summary, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, spec := range specs {
		id := RecordID(spec.Source)

		var exists int
		if err := tx.QueryRowContext(ctx,
			`SELECT count(*) FROM specs WHERE id = ?`, id,
		).Scan(&exists); err != nil {
			return summary, fmt.Errorf("checking record %s: %w", id, err)
		}

		_, err := stmt.ExecContext(ctx,
			id, spec.Source, spec.FuelType,
			nullFloat(spec.Horsepower), nullFloat(spec.Displacement),
			spec.Cylinder, spec.Injection, spec.Induction, spec.Transmission,
			nullInt(spec.Speeds), spec.Color, spec.Finish, now,
		)
		if err != nil {
			return summary, fmt.Errorf("saving record %s: %w", id, err)
		}

		if exists > 0 {
			summary.Updated++
		} else {
			summary.Inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("committing: %w", err)
	}

	s.log.Info("catalog saved",
		zap.Int("inserted", summary.Inserted),
		zap.Int("updated", summary.Updated))
	return summary, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
