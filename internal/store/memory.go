package store

import (
	"context"
	"sync"

	"github.com/ravi/jobmatch/internal/types"
)

// MemoryResumeStore is a thread-safe in-memory ResumeStore.
type MemoryResumeStore struct {
	mu      sync.RWMutex
	resumes map[string]*types.ParsedResume
}

// NewMemoryResumeStore returns an empty in-memory resume store.
func NewMemoryResumeStore() *MemoryResumeStore {
	return &MemoryResumeStore{resumes: make(map[string]*types.ParsedResume)}
}

// Save stores the resume for candidateID, replacing any previous parse.
func (s *MemoryResumeStore) Save(_ context.Context, candidateID string, resume *types.ParsedResume) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resumes[candidateID] = resume
	return nil
}

// Get returns the stored resume for candidateID or ErrNotFound.
func (s *MemoryResumeStore) Get(_ context.Context, candidateID string) (*types.ParsedResume, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	resume, ok := s.resumes[candidateID]
	if !ok {
		return nil, ErrNotFound
	}
	return resume, nil
}

type matchKey struct {
	candidateID string
	jobID       string
}

// MemoryMatchStore is a thread-safe in-memory MatchStore.
type MemoryMatchStore struct {
	mu      sync.RWMutex
	results map[matchKey]*types.MatchResult
}

// NewMemoryMatchStore returns an empty in-memory match store.
func NewMemoryMatchStore() *MemoryMatchStore {
	return &MemoryMatchStore{results: make(map[matchKey]*types.MatchResult)}
}

// Upsert stores result keyed by its candidate and job IDs, replacing any
// previous result for that pair.
func (s *MemoryMatchStore) Upsert(_ context.Context, result *types.MatchResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[matchKey{candidateID: result.CandidateID, jobID: result.JobID}] = result
	return nil
}

// Get returns the stored result for the pair or ErrNotFound.
func (s *MemoryMatchStore) Get(_ context.Context, candidateID, jobID string) (*types.MatchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.results[matchKey{candidateID: candidateID, jobID: jobID}]
	if !ok {
		return nil, ErrNotFound
	}
	return result, nil
}
