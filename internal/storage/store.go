package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"truthguard/internal/domain"
)

const (
	maxReportTextLen   = 2000
	defaultRecentLimit = 100
	defaultSQLitePath  = "truthguard.db"
)

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS reports (
	id BIGSERIAL PRIMARY KEY,
	text TEXT NOT NULL,
	label TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
)`

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS reports (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	text TEXT NOT NULL,
	label TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
)`

// Store persists verdict reports and serves count aggregates.
type Store struct {
	db *sql.DB
}

// Open connects to the database named by databaseURL and ensures the
// reports schema exists. A postgres:// or postgresql:// URL selects the
// pgx driver; anything else (including empty) opens an embedded SQLite
// file.
func Open(ctx context.Context, databaseURL string) (*Store, error) {
	driver, dsn, schema := resolveDSN(databaseURL)

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

func resolveDSN(databaseURL string) (driver, dsn, schema string) {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return "pgx", databaseURL, schemaPostgres
	}
	path := databaseURL
	if path == "" {
		path = defaultSQLitePath
	}
	return "sqlite", path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", schemaSQLite
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts one verdict row, truncating text to 2000 characters and
// stamping the creation time. Rows are never updated afterwards.
func (s *Store) Save(ctx context.Context, text string, label domain.Label) error {
	if runes := []rune(text); len(runes) > maxReportTextLen {
		text = string(runes[:maxReportTextLen])
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO reports (text, label, created_at) VALUES ($1, $2, $3)`,
		text, string(label), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("inserting report: %w", err)
	}
	return nil
}

// ListRecent returns up to limit reports, newest first. A non-positive
// limit selects the default of 100.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]domain.Report, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, text, label, created_at FROM reports ORDER BY created_at DESC, id DESC LIMIT $1`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("querying reports: %w", err)
	}
	defer rows.Close()

	reports := []domain.Report{}
	for rows.Next() {
		var (
			r     domain.Report
			label string
		)
		if err := rows.Scan(&r.ID, &r.Text, &label, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning report: %w", err)
		}
		r.Label = domain.Label(label)
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

// CountByLabel returns the total report count and the counts for the
// three terminal labels. Rows labeled uncertain contribute to the total
// only.
func (s *Store) CountByLabel(ctx context.Context) (domain.LabelCounts, error) {
	var counts domain.LabelCounts
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE label = 'real'),
		        COUNT(*) FILTER (WHERE label = 'suspicious'),
		        COUNT(*) FILTER (WHERE label = 'fake')
		 FROM reports`,
	).Scan(&counts.TotalReports, &counts.RealCount, &counts.SuspiciousCount, &counts.FakeCount)
	if err != nil {
		return domain.LabelCounts{}, fmt.Errorf("counting reports: %w", err)
	}
	return counts, nil
}

// GroupCounts returns the report count for every distinct label actually
// present, largest group first.
func (s *Store) GroupCounts(ctx context.Context) ([]domain.LabelGroup, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT label, COUNT(*) FROM reports GROUP BY label ORDER BY COUNT(*) DESC, label`)
	if err != nil {
		return nil, fmt.Errorf("grouping reports: %w", err)
	}
	defer rows.Close()

	groups := []domain.LabelGroup{}
	for rows.Next() {
		var (
			label string
			g     domain.LabelGroup
		)
		if err := rows.Scan(&label, &g.Count); err != nil {
			return nil, fmt.Errorf("scanning group: %w", err)
		}
		g.Label = domain.Label(label)
		groups = append(groups, g)
	}
	return groups, rows.Err()
}
