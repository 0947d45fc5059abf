// Package store archives labeling run outcomes for later review.
// The archive is an opaque sink off the labeling hot path: passes
// record a summary after they finish, and review tooling reads it back.
package store

import (
	"context"
	"time"
)

// Run summarizes one labeling pass over a record stream.
type Run struct {
	ID        string // ULID, minted by the pipeline
	Tool      string // prelabel, review, ...
	StartedAt time.Time
	Records   int
	Labeled   int            // records carrying a non-none label afterwards
	Totals    map[string]int // per-label record counts
}

// Store persists run summaries.
type Store interface {
	Close() error

	RecordRun(ctx context.Context, r Run) error
	ListRuns(ctx context.Context, limit int) ([]Run, error)
	LabelTotals(ctx context.Context, runID string) (map[string]int, error)
}
