// Package archive persists completed analyses for later retrieval.
//
// The archive is the durable counterpart of the cache: cache entries expire
// and are keyed by content, archive records have stable identifiers and are
// meant to be shared (the API returns the record ID to the client).
//
// Two stores are provided:
//
//   - MemoryStore: in-process store for tests and single-node CLI usage
//   - MongoStore: MongoDB-backed store for server deployments
package archive

import (
	"context"
	"time"

	"github.com/matzehuels/stableset/pkg/errors"
	"github.com/matzehuels/stableset/pkg/pipeline"
)

// Record is one archived analysis.
type Record struct {
	// ID is the unique record identifier (UUID).
	ID string `json:"id" bson:"_id"`

	// CreatedAt is the archive timestamp in UTC.
	CreatedAt time.Time `json:"created_at" bson:"created_at"`

	// Analysis is the stored analysis output.
	Analysis pipeline.Analysis `json:"analysis" bson:"analysis"`
}

// Store persists analysis records.
type Store interface {
	// Put stores a record. An existing record with the same ID is replaced.
	Put(ctx context.Context, rec Record) error

	// Get retrieves a record by ID. Returns an ANALYSIS_NOT_FOUND error
	// when no record exists.
	Get(ctx context.Context, id string) (Record, error)

	// List returns the most recent records, newest first, up to limit.
	List(ctx context.Context, limit int) ([]Record, error)

	// Close releases any resources held by the store.
	Close(ctx context.Context) error
}

// notFound builds the standard missing-record error.
func notFound(id string) error {
	return errors.New(errors.ErrCodeAnalysisNotFound, "analysis %q not found", id)
}
