// Package service coordinates parsing, scoring and storage. It owns the
// read-through cache policy: a stored match result is reused until it ages
// past the staleness window, then recomputed and upserted.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ravi/jobmatch/internal/parser"
	"github.com/ravi/jobmatch/internal/scoring"
	"github.com/ravi/jobmatch/internal/store"
	"github.com/ravi/jobmatch/internal/types"
)

const rescoreConcurrency = 4

// MatchService ties the parser and scorer to the persistence ports.
type MatchService struct {
	parser  *parser.Parser
	resumes store.ResumeStore
	matches store.MatchStore
	log     *zap.Logger
	now     func() time.Time
}

// Option configures a MatchService.
type Option func(*MatchService)

// WithClock overrides the service clock. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *MatchService) {
		s.now = now
	}
}

// New builds a MatchService. A nil logger disables logging.
func New(p *parser.Parser, resumes store.ResumeStore, matches store.MatchStore, log *zap.Logger, opts ...Option) *MatchService {
	if log == nil {
		log = zap.NewNop()
	}
	s := &MatchService{
		parser:  p,
		resumes: resumes,
		matches: matches,
		log:     log,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ParseAndStore parses a resume document and saves the result under
// candidateID, replacing any previous parse for that candidate.
func (s *MatchService) ParseAndStore(ctx context.Context, candidateID string, data []byte, mimeType string) (*types.ParsedResume, error) {
	resume, err := s.parser.Parse(ctx, data, mimeType)
	if err != nil {
		return nil, err
	}
	if err := s.resumes.Save(ctx, candidateID, resume); err != nil {
		return nil, fmt.Errorf("saving resume for %s: %w", candidateID, err)
	}
	s.log.Info("resume parsed",
		zap.String("candidate_id", candidateID),
		zap.Float64("confidence", resume.Confidence),
		zap.Int("skills", len(resume.Skills)))
	return resume, nil
}

// Match returns the match result for the candidate against the job. A
// stored result is returned as-is while it is fresh; a stale or missing
// result is recomputed from the stored resume and upserted.
func (s *MatchService) Match(ctx context.Context, candidateID string, job *types.JobPosting) (*types.MatchResult, error) {
	now := s.now()

	cached, err := s.matches.Get(ctx, candidateID, job.ID)
	switch {
	case err == nil:
		if !scoring.IsStale(cached.ComputedAt, now) {
			return cached, nil
		}
		s.log.Debug("cached match is stale",
			zap.String("candidate_id", candidateID),
			zap.String("job_id", job.ID),
			zap.Time("computed_at", cached.ComputedAt))
	case errors.Is(err, store.ErrNotFound):
	default:
		return nil, fmt.Errorf("loading match for %s/%s: %w", candidateID, job.ID, err)
	}

	return s.rescore(ctx, candidateID, job, now)
}

// RescoreJob recomputes the match for every listed candidate against the
// job, ignoring any cached results. Candidates without a stored resume are
// skipped. Results are returned in the input candidate order.
func (s *MatchService) RescoreJob(ctx context.Context, candidateIDs []string, job *types.JobPosting) ([]*types.MatchResult, error) {
	now := s.now()
	results := make([]*types.MatchResult, len(candidateIDs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(rescoreConcurrency)
	for i, candidateID := range candidateIDs {
		i, candidateID := i, candidateID
		g.Go(func() error {
			result, err := s.rescore(ctx, candidateID, job, now)
			if errors.Is(err, store.ErrNotFound) {
				s.log.Warn("no resume on file, skipping",
					zap.String("candidate_id", candidateID),
					zap.String("job_id", job.ID))
				return nil
			}
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	scored := results[:0]
	for _, r := range results {
		if r != nil {
			scored = append(scored, r)
		}
	}
	return scored, nil
}

func (s *MatchService) rescore(ctx context.Context, candidateID string, job *types.JobPosting, now time.Time) (*types.MatchResult, error) {
	resume, err := s.resumes.Get(ctx, candidateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("candidate %s: %w", candidateID, store.ErrNotFound)
		}
		return nil, fmt.Errorf("loading resume for %s: %w", candidateID, err)
	}

	result := scoring.Compute(resume, job, now)
	result.CandidateID = candidateID
	if err := s.matches.Upsert(ctx, result); err != nil {
		return nil, fmt.Errorf("saving match for %s/%s: %w", candidateID, job.ID, err)
	}
	s.log.Info("match computed",
		zap.String("candidate_id", candidateID),
		zap.String("job_id", job.ID),
		zap.Int("overall_score", result.OverallScore))
	return result, nil
}
