// Package store defines the persistence ports the match engine depends on
// and in-memory implementations of them. The staleness policy is a pure
// predicate over timestamps, so the same engine logic works whether a port
// is backed by this package's maps, a database or a KV store.
package store

import (
	"context"
	"errors"

	"github.com/ravi/jobmatch/internal/types"
)

// ErrNotFound is returned when no record exists for the requested key.
var ErrNotFound = errors.New("record not found")

// ResumeStore persists at most one ParsedResume per candidate; saving again
// replaces the previous parse.
type ResumeStore interface {
	Save(ctx context.Context, candidateID string, resume *types.ParsedResume) error
	Get(ctx context.Context, candidateID string) (*types.ParsedResume, error)
}

// MatchStore persists at most one live MatchResult per (candidate, job)
// pair with upsert semantics.
type MatchStore interface {
	Upsert(ctx context.Context, result *types.MatchResult) error
	Get(ctx context.Context, candidateID, jobID string) (*types.MatchResult, error)
}
