// Package store archives raw dated documents so a corpus can be collected
// over multiple ingest runs and re-scored at any granularity. Scores are
// never persisted: scoring stays an in-memory pass over whatever the archive
// returns.
package store

import (
	"context"
	"time"
)

// Doc is one archived document. Date stays the string the source provided;
// it is parsed at scoring time so the same archive can be re-bucketed with a
// different layout or granularity.
type Doc struct {
	ID      string // ULID, assigned by Put when empty
	Text    string
	Date    string
	Source  string // origin of the document (file path, feed URL)
	AddedAt time.Time
}

// Store is the archive interface.
type Store interface {
	Close() error

	// Put archives a document and returns its ID. A document carrying an
	// existing ID is replaced; an empty ID gets a fresh ULID.
	Put(ctx context.Context, d Doc) (string, error)

	// Get returns a document by ID.
	Get(ctx context.Context, id string) (Doc, bool, error)

	// List returns every archived document ordered by ID. ULIDs sort by
	// creation time, so this is insertion order.
	List(ctx context.Context) ([]Doc, error)

	// Count reports the number of archived documents.
	Count(ctx context.Context) (int64, error)
}
