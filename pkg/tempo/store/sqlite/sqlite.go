// Package sqlite persists the document archive in a single-file SQLite
// database, suitable for corpora collected across many ingest runs.
package sqlite

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/benhorvath/tempo-tfidf/pkg/tempo/store"
)

type sqliteStore struct {
	db *sql.DB

	// MonotonicEntropy is not safe for concurrent use.
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// Open opens (or creates) a SQLite archive at path with WAL mode enabled.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL keeps readers unblocked while an ingest run writes.
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{
		db:      db,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS documents (
	id TEXT PRIMARY KEY,
	text TEXT NOT NULL,
	date TEXT NOT NULL,
	source TEXT,
	added_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_documents_date ON documents(date);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

func (s *sqliteStore) newID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

// Put inserts or replaces a document.
func (s *sqliteStore) Put(ctx context.Context, d store.Doc) (string, error) {
	if d.ID == "" {
		d.ID = s.newID()
	}
	if d.AddedAt.IsZero() {
		d.AddedAt = time.Now().UTC()
	}

	const stmt = `
INSERT INTO documents (id, text, date, source, added_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	text=excluded.text,
	date=excluded.date,
	source=excluded.source,
	added_at=excluded.added_at;
`
	_, err := s.db.ExecContext(
		ctx,
		stmt,
		d.ID,
		d.Text,
		d.Date,
		d.Source,
		d.AddedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("put document %s: %w", d.ID, err)
	}
	return d.ID, nil
}

// Get returns a document by ID.
func (s *sqliteStore) Get(ctx context.Context, id string) (store.Doc, bool, error) {
	const stmt = `SELECT id, text, date, source, added_at FROM documents WHERE id=?`

	doc, err := scanDoc(s.db.QueryRowContext(ctx, stmt, id))
	if err == sql.ErrNoRows {
		return store.Doc{}, false, nil
	}
	if err != nil {
		return store.Doc{}, false, err
	}
	return doc, true, nil
}

// List returns all documents ordered by ID.
func (s *sqliteStore) List(ctx context.Context) ([]store.Doc, error) {
	const stmt = `SELECT id, text, date, source, added_at FROM documents ORDER BY id`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Doc
	for rows.Next() {
		doc, err := scanDoc(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// Count reports the number of archived documents.
func (s *sqliteStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDoc(row rowScanner) (store.Doc, error) {
	var doc store.Doc
	var source sql.NullString
	var addedAt string

	if err := row.Scan(&doc.ID, &doc.Text, &doc.Date, &source, &addedAt); err != nil {
		return store.Doc{}, err
	}
	doc.Source = source.String

	t, err := time.Parse(time.RFC3339, addedAt)
	if err != nil {
		return store.Doc{}, fmt.Errorf("document %s: bad added_at %q: %w", doc.ID, addedAt, err)
	}
	doc.AddedAt = t
	return doc, nil
}
