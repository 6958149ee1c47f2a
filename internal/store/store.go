package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"gazette/internal/config"
	"gazette/internal/identity"
)

// Store manages people persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the people database and applies the schema.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	return OpenPath(cfg.DatabasePath())
}

// OpenPath connects to the database at an explicit location.
func OpenPath(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Ping verifies store connectivity. Verification runs treat a failure here as
// fatal rather than silently reporting zero matches.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return errors.New("store is not open")
	}
	return s.db.PingContext(ctx)
}

const personColumns = `id, first_name, last_name, surname_key, city, state, country,
    person_type, patent_number, enrichment_json, enrichment_status, created_at, updated_at`

// InsertPerson adds a person to the authoritative store. The surname key is
// computed here so candidate reads stay consistent with the matcher's
// normalization.
func (s *Store) InsertPerson(ctx context.Context, person identity.Person) (*PersonRecord, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO people (
            first_name, last_name, surname_key, city, state, country,
            person_type, patent_number, enrichment_status, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		nullableString(person.FirstName),
		nullableString(person.LastName),
		nullableString(identity.NormalizeLast(person.LastName)),
		nullableString(person.City),
		nullableString(person.State),
		nullableString(person.Country),
		nullableString(string(person.PersonType)),
		nullableString(person.PatentNumber),
		StatusPending,
		now,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert person: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

// GetByID fetches a person row by identifier. Returns nil when absent.
func (s *Store) GetByID(ctx context.Context, id int64) (*PersonRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+personColumns+` FROM people WHERE id = ?`, id)
	rec, err := scanPerson(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get person: %w", err)
	}
	return rec, nil
}

// FetchAll returns every person row ordered by id. Matching runs over batch
// reads like this one; the engine never issues per-person queries.
func (s *Store) FetchAll(ctx context.Context) ([]*PersonRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+personColumns+` FROM people ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query people: %w", err)
	}
	defer rows.Close()
	return collectPeople(rows)
}

// FetchBySurnameKeys returns rows whose normalized surname is in keys,
// ordered by id. Empty keys are ignored.
func (s *Store) FetchBySurnameKeys(ctx context.Context, keys []string) ([]*PersonRecord, error) {
	filtered := make([]any, 0, len(keys))
	for _, key := range keys {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			filtered = append(filtered, trimmed)
		}
	}
	if len(filtered) == 0 {
		return nil, nil
	}

	query := `SELECT ` + personColumns + ` FROM people WHERE surname_key IN (` +
		makePlaceholders(len(filtered)) + `) ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query, filtered...)
	if err != nil {
		return nil, fmt.Errorf("query by surname keys: %w", err)
	}
	defer rows.Close()
	return collectPeople(rows)
}

// CountBySurname returns how many rows share a surname after normalization.
func (s *Store) CountBySurname(ctx context.Context, lastName string) (int, error) {
	key := identity.NormalizeLast(lastName)
	if key == "" {
		return 0, nil
	}
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM people WHERE surname_key = ?`, key).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count by surname: %w", err)
	}
	return count, nil
}

// ListEnriched returns rows that have an envelope on record, ordered by id.
// These are the backfill candidates.
func (s *Store) ListEnriched(ctx context.Context) ([]*PersonRecord, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+personColumns+` FROM people
         WHERE enrichment_json IS NOT NULL AND TRIM(enrichment_json) != '' ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query enriched: %w", err)
	}
	defer rows.Close()
	return collectPeople(rows)
}

// GetEnvelope reads the stored enrichment envelope JSON for one row.
func (s *Store) GetEnvelope(ctx context.Context, id int64) (string, error) {
	var envelope sql.NullString
	err := s.db.QueryRowContext(ctx, `SELECT enrichment_json FROM people WHERE id = ?`, id).Scan(&envelope)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("person %d: %w", id, sql.ErrNoRows)
	}
	if err != nil {
		return "", fmt.Errorf("get envelope: %w", err)
	}
	return envelope.String, nil
}

// UpdateEnvelope persists a reconciled envelope as a single update keyed by
// row id, moving the row into the enriched state.
func (s *Store) UpdateEnvelope(ctx context.Context, id int64, envelopeJSON string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := s.db.ExecContext(
		ctx,
		`UPDATE people SET enrichment_json = ?, enrichment_status = ?, updated_at = ? WHERE id = ?`,
		envelopeJSON,
		StatusEnriched,
		now,
		id,
	)
	if err != nil {
		return fmt.Errorf("update envelope: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update envelope: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("person %d: %w", id, sql.ErrNoRows)
	}
	return nil
}

// SetStatus moves a row to a new enrichment state without touching its envelope.
func (s *Store) SetStatus(ctx context.Context, id int64, status EnrichmentStatus) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(
		ctx,
		`UPDATE people SET enrichment_status = ?, updated_at = ? WHERE id = ?`,
		status,
		now,
		id,
	)
	if err != nil {
		return fmt.Errorf("set status: %w", err)
	}
	return nil
}

// Health summarizes people counts per lifecycle state.
func (s *Store) Health(ctx context.Context) (HealthSummary, error) {
	var summary HealthSummary
	rows, err := s.db.QueryContext(ctx, `SELECT enrichment_status, COUNT(1) FROM people GROUP BY enrichment_status`)
	if err != nil {
		return summary, fmt.Errorf("health query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return summary, fmt.Errorf("scan health row: %w", err)
		}
		summary.Total += count
		switch EnrichmentStatus(status) {
		case StatusPending:
			summary.Pending = count
		case StatusEnriched:
			summary.Enriched = count
		case StatusFailed:
			summary.Failed = count
		}
	}
	return summary, rows.Err()
}
