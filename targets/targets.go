// Package targets persists watch lists: the target URLs a named monitor
// runs against when none are given on the command line.
package targets

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Custom errors for target operations
var (
	ErrTargetNotFound = errors.New("target not found")
	ErrDuplicateURL   = errors.New("target with this URL already exists")
	ErrInvalidKind    = errors.New("kind must be web, social, or auto")
)

// Target is one saved watch-list entry.
type Target struct {
	ID        uuid.UUID `json:"id"`
	Source    string    `json:"source"` // the monitor name this target belongs to
	URL       string    `json:"url"`
	Kind      string    `json:"kind"` // "web", "social", or "auto"
	Selector  string    `json:"selector,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Store manages saved targets using SQLite.
type Store struct {
	db *sql.DB
}

// NewStore creates a target store with the given database path.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

// initSchema creates the targets table if it doesn't exist.
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS targets (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		url TEXT NOT NULL UNIQUE,
		kind TEXT NOT NULL,
		selector TEXT,
		created_at TEXT NOT NULL
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add saves a new target. The ID and creation time are assigned here.
func (s *Store) Add(source, url, kind, selector string) (*Target, error) {
	if kind != "web" && kind != "social" && kind != "auto" {
		return nil, ErrInvalidKind
	}

	target := &Target{
		ID:        uuid.New(),
		Source:    source,
		URL:       url,
		Kind:      kind,
		Selector:  selector,
		CreatedAt: time.Now(),
	}

	query := `
		INSERT INTO targets (id, source, url, kind, selector, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		target.ID.String(),
		target.Source,
		target.URL,
		target.Kind,
		target.Selector,
		target.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") ||
			strings.Contains(err.Error(), "unique constraint") {
			return nil, ErrDuplicateURL
		}
		return nil, fmt.Errorf("failed to insert target: %w", err)
	}
	return target, nil
}

// List returns saved targets, optionally filtered by source name, in
// creation order.
func (s *Store) List(source string) ([]Target, error) {
	query := `
		SELECT id, source, url, kind, selector, created_at
		FROM targets
	`
	args := []any{}
	if source != "" {
		query += " WHERE source = ?"
		args = append(args, source)
	}
	query += " ORDER BY created_at, id"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query targets: %w", err)
	}
	defer rows.Close()

	var targets []Target
	for rows.Next() {
		target, err := scanTarget(rows)
		if err != nil {
			return nil, err
		}
		targets = append(targets, *target)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate targets: %w", err)
	}
	return targets, nil
}

// Get retrieves a target by ID.
func (s *Store) Get(id uuid.UUID) (*Target, error) {
	query := `
		SELECT id, source, url, kind, selector, created_at
		FROM targets
		WHERE id = ?
	`

	row := s.db.QueryRow(query, id.String())
	target, err := scanTarget(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTargetNotFound
	}
	if err != nil {
		return nil, err
	}
	return target, nil
}

// Delete removes a target by ID.
func (s *Store) Delete(id uuid.UUID) error {
	result, err := s.db.Exec("DELETE FROM targets WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("failed to delete target: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrTargetNotFound
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTarget(row scanner) (*Target, error) {
	var idStr, source, url, kind, createdAtStr string
	var selector sql.NullString

	if err := row.Scan(&idStr, &source, &url, &kind, &selector, &createdAtStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan target: %w", err)
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid target ID %q: %w", idStr, err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at %q: %w", createdAtStr, err)
	}

	return &Target{
		ID:        id,
		Source:    source,
		URL:       url,
		Kind:      kind,
		Selector:  selector.String,
		CreatedAt: createdAt,
	}, nil
}
