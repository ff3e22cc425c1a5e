// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/specfields/pkg/types"
)

// QueryOptions holds parameters for catalog queries. String filters
// compare case-insensitively against the stored field value.
type QueryOptions struct {
	// Query is matched against the source text; every whitespace-separated
	// term must appear.
	Query string

	FuelType     string
	Cylinder     string
	Transmission string
	Color        string

	// MinHorsepower excludes records below it, and records without
	// horsepower, when greater than zero.
	MinHorsepower float64

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.FuelType == "" && q.Cylinder == "" &&
		q.Transmission == "" && q.Color == "" && q.MinHorsepower <= 0
}

// Entry is a stored VehicleSpec with its catalog ID and save time.
type Entry struct {
	ID string `json:"id" yaml:"id"`

	types.VehicleSpec `yaml:",inline"`

	SavedAt time.Time `json:"saved_at" yaml:"saved_at"`
}

const selectColumns = `s.id, s.source, s.fuel_type, s.horsepower, s.displacement,
	s.cylinder, s.injection, s.induction, s.transmission, s.speeds,
	s.color, s.finish, s.saved_at`

// Retrieve queries the catalog with optional text search and field
// filters. Text queries are ranked by relevance when FTS5 is available;
// otherwise results follow save order.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]Entry, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		terms  = strings.Fields(opts.Query)
		useFTS = s.fts && len(terms) > 0
	)

	if useFTS {
		qb.WriteString(`SELECT ` + selectColumns + `
			FROM specs_fts
			JOIN specs s ON s.rowid = specs_fts.rowid
			WHERE specs_fts MATCH ?`)
		args = append(args, ftsQuery(terms))
	} else {
		qb.WriteString(`SELECT ` + selectColumns + ` FROM specs s WHERE 1=1`)
		for _, term := range terms {
			qb.WriteString(` AND s.source LIKE ? ESCAPE '\'`)
			args = append(args, "%"+escapeLike(term)+"%")
		}
	}

	filters := []struct {
		column, value string
	}{
		{"fuel_type", opts.FuelType},
		{"cylinder", opts.Cylinder},
		{"transmission", opts.Transmission},
		{"color", opts.Color},
	}
	for _, f := range filters {
		if f.value == "" {
			continue
		}
		qb.WriteString(` AND s.` + f.column + ` = ? COLLATE NOCASE`)
		args = append(args, f.value)
	}

	if opts.MinHorsepower > 0 {
		qb.WriteString(` AND s.horsepower >= ?`)
		args = append(args, opts.MinHorsepower)
	}

	if useFTS {
		qb.WriteString(` ORDER BY specs_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY s.rowid`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	s.log.Debug("catalog query", zap.String("sql", qb.String()), zap.Int("args", len(args)))

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var results []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, e)
	}

	return results, rows.Err()
}

// Get returns the record stored under id.
func (s *Store) Get(ctx context.Context, id string) (Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM specs s WHERE s.id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return e, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (Entry, error) {
	var (
		e            Entry
		fuelType     sql.NullString
		horsepower   sql.NullFloat64
		displacement sql.NullFloat64
		cylinder     sql.NullString
		injection    sql.NullString
		induction    sql.NullString
		transmission sql.NullString
		speeds       sql.NullInt64
		color        sql.NullString
		finish       sql.NullString
		savedAt      sql.NullString
	)

	if err := sc.Scan(
		&e.ID, &e.Source, &fuelType, &horsepower, &displacement,
		&cylinder, &injection, &induction, &transmission, &speeds,
		&color, &finish, &savedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return e, err
		}
		return e, fmt.Errorf("scanning row: %w", err)
	}

	e.FuelType = fuelType.String
	e.Cylinder = cylinder.String
	e.Injection = injection.String
	e.Induction = induction.String
	e.Transmission = transmission.String
	e.Color = color.String
	e.Finish = finish.String

	if horsepower.Valid {
		v := horsepower.Float64
		e.Horsepower = &v
	}
	if displacement.Valid {
		v := displacement.Float64
		e.Displacement = &v
	}
	if speeds.Valid {
		v := int(speeds.Int64)
		e.Speeds = &v
	}
	if savedAt.Valid {
		if t, err := time.Parse(time.RFC3339Nano, savedAt.String); err == nil {
			e.SavedAt = t
		}
	}

	return e, nil
}

// ftsQuery quotes each term as an FTS5 phrase so punctuation such as the
// "." in "2.0L" is tokenized rather than parsed as query syntax.
func ftsQuery(terms []string) string {
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = `"` + strings.ReplaceAll(t, `"`, `""`) + `"`
	}
	return strings.Join(quoted, " ")
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
