// Package store persists scoring results so past analyses can be listed and
// replayed. The SQLite implementation is the only one; the interface exists
// so the server and CLI can run with persistence disabled.
package store

import (
	"context"
	"time"

	"resumatch/internal/types"
)

// Record is one persisted analysis.
type Record struct {
	ID          int64                `json:"id"`
	Timestamp   time.Time            `json:"timestamp"`
	UserSession string               `json:"userSession,omitempty"`
	Result      types.AnalysisResult `json:"result"`
}

// Summary is the listing form of a record, without the full documents.
type Summary struct {
	ID           int64     `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	UserSession  string    `json:"userSession,omitempty"`
	JobTitle     string    `json:"jobTitle,omitempty"`
	OverallScore float64   `json:"overallScore"`
}

// Stats aggregates over all stored results.
type Stats struct {
	TotalResults int64   `json:"totalResults"`
	AverageScore float64 `json:"averageScore"`
	BestScore    float64 `json:"bestScore"`
}

// Store saves and retrieves analysis results.
type Store interface {
	// Save persists a result and returns its assigned id.
	Save(ctx context.Context, result types.AnalysisResult, userSession string) (int64, error)

	// Get returns the record with the given id.
	Get(ctx context.Context, id int64) (*Record, error)

	// History lists summaries newest first, optionally filtered by session.
	// A non-positive limit applies a default.
	History(ctx context.Context, userSession string, limit int) ([]Summary, error)

	// Stats aggregates over all stored results.
	Stats(ctx context.Context) (Stats, error)

	Close() error
}
