// Package parser orchestrates the resume parsing pipeline: document text
// extraction, section segmentation, field extraction and best-effort
// embedding generation.
package parser

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ravi/jobmatch/internal/embedding"
	"github.com/ravi/jobmatch/internal/extraction"
	"github.com/ravi/jobmatch/internal/fields"
	"github.com/ravi/jobmatch/internal/sections"
	"github.com/ravi/jobmatch/internal/types"
)

// DefaultEmbedTimeout bounds the embedding step of a parse. An embedding
// timeout degrades to an empty vector instead of failing the parse.
const DefaultEmbedTimeout = 30 * time.Second

// Parser turns raw resume documents into ParsedResume records.
type Parser struct {
	embedder     embedding.Generator
	log          *zap.Logger
	embedTimeout time.Duration
}

// Option configures a Parser.
type Option func(*Parser)

// WithEmbedTimeout overrides the embedding step deadline.
func WithEmbedTimeout(d time.Duration) Option {
	return func(p *Parser) {
		if d > 0 {
			p.embedTimeout = d
		}
	}
}

// New builds a Parser. embedder may be nil, in which case parses carry no
// embedding vector.
func New(embedder embedding.Generator, log *zap.Logger, opts ...Option) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Parser{
		embedder:     embedder,
		log:          log,
		embedTimeout: DefaultEmbedTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse extracts structured data from a resume document. The context
// deadline bounds document decoding; decoding failures and unsupported MIME
// types propagate to the caller, while embedding failures degrade to an
// empty vector.
func (p *Parser) Parse(ctx context.Context, data []byte, mimeType string) (*types.ParsedResume, error) {
	raw, err := extraction.Text(ctx, data, mimeType)
	if err != nil {
		return nil, err
	}

	cleaned := Clean(raw)
	segments := sections.Split(cleaned)

	resume := &types.ParsedResume{
		ID:      uuid.NewString(),
		RawText: cleaned,
	}

	// The extractors share nothing but their read-only inputs, so they
	// run concurrently once segmentation is done.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(runExtractor(gctx, "contact", func() {
		resume.Contact = fields.ExtractContact(cleaned)
	}))
	g.Go(runExtractor(gctx, "skills", func() {
		resume.Skills = fields.ExtractSkills(cleaned)
	}))
	g.Go(runExtractor(gctx, "experience", func() {
		resume.Experience = fields.ExtractExperience(segments[sections.Experience])
	}))
	g.Go(runExtractor(gctx, "education", func() {
		resume.Education = fields.ExtractEducation(segments[sections.Education])
	}))
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resume.Embedding = p.embed(ctx, cleaned)
	resume.Confidence = confidence(resume)
	resume.ParsedAt = time.Now().UTC()

	p.log.Debug("parsed resume",
		zap.String("id", resume.ID),
		zap.Int("skills", len(resume.Skills)),
		zap.Int("experience_entries", len(resume.Experience)),
		zap.Int("education_entries", len(resume.Education)),
		zap.Float64("confidence", resume.Confidence),
	)
	return resume, nil
}

// runExtractor wraps an extractor so an unexpected panic surfaces as a
// ParseError naming the extractor instead of killing the process.
func runExtractor(ctx context.Context, name string, fn func()) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = &ParseError{Extractor: name, Cause: fmt.Errorf("%v", r)}
			}
		}()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		fn()
		return nil
	}
}

// embed runs the optional embedding step under its own deadline. Any
// failure is logged and swallowed; the resume proceeds with no vector.
func (p *Parser) embed(ctx context.Context, text string) []float32 {
	if p.embedder == nil {
		return nil
	}

	embedCtx, cancel := context.WithTimeout(ctx, p.embedTimeout)
	defer cancel()

	vector, err := p.embedder.Embed(embedCtx, text)
	if err != nil {
		p.log.Warn("embedding unavailable, continuing without vector", zap.Error(err))
		return nil
	}
	return vector
}

// confidence scores how complete the extraction looks. Each populated
// section contributes a fixed amount, with small bonuses for volume, capped
// at 1.0.
func confidence(resume *types.ParsedResume) float64 {
	score := 0.0
	if len(resume.Skills) > 0 {
		score += 0.4
	}
	if len(resume.Experience) > 0 {
		score += 0.3
	}
	if len(resume.Education) > 0 {
		score += 0.2
	}
	if len(resume.Skills) > 5 {
		score += 0.1
	}
	if len(resume.Experience) > 1 {
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
