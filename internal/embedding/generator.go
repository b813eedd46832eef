// Package embedding turns resume text into a fixed-length vector for
// semantic similarity. Embeddings are an enhancement layer: callers must
// tolerate an empty vector when the backing model is unavailable.
package embedding

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is the Gemini embedding model used unless configured
// otherwise.
const DefaultModel = "text-embedding-004"

// Generator produces a document-level embedding vector for text.
type Generator interface {
	// Embed returns the elementwise mean of the per-sentence embeddings
	// of text, or an error when the model is unavailable.
	Embed(ctx context.Context, text string) ([]float32, error)
	// Close releases any resources held by the generator.
	Close() error
}

// GeminiGenerator embeds text with the Gemini embedding API. The underlying
// client is created lazily on first use; concurrent first callers are
// serialized through a single in-flight initialization that never runs twice.
type GeminiGenerator struct {
	apiKey string
	model  string

	initOnce sync.Once
	client   *genai.Client
	initErr  error
}

// NewGemini returns a generator for the given API key and model name. An
// empty model selects DefaultModel. No network activity happens until the
// first Embed call.
func NewGemini(apiKey, model string) *GeminiGenerator {
	if model == "" {
		model = DefaultModel
	}
	return &GeminiGenerator{apiKey: apiKey, model: model}
}

func (g *GeminiGenerator) init(ctx context.Context) error {
	g.initOnce.Do(func() {
		if g.apiKey == "" {
			g.initErr = fmt.Errorf("embedding API key is not set")
			return
		}
		client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
		if err != nil {
			g.initErr = fmt.Errorf("failed to create embedding client: %w", err)
			return
		}
		g.client = client
	})
	return g.initErr
}

// Embed splits the text into sentences, embeds each and mean-pools the
// vectors into one document vector.
func (g *GeminiGenerator) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := g.init(ctx); err != nil {
		return nil, err
	}

	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return nil, nil
	}

	model := g.client.EmbeddingModel(g.model)
	batch := model.NewBatch()
	for _, sentence := range sentences {
		batch.AddContent(genai.Text(sentence))
	}

	resp, err := model.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("failed to embed %d sentences: %w", len(sentences), err)
	}

	vectors := make([][]float32, 0, len(resp.Embeddings))
	for _, emb := range resp.Embeddings {
		if emb != nil && len(emb.Values) > 0 {
			vectors = append(vectors, emb.Values)
		}
	}
	return MeanPool(vectors), nil
}

// Close releases the underlying client if it was ever created.
func (g *GeminiGenerator) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// SplitSentences splits text on sentence-ending punctuation, discarding
// empty fragments.
func SplitSentences(text string) []string {
	fragments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	sentences := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		if trimmed := strings.TrimSpace(fragment); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// MeanPool averages the vectors elementwise. Vectors shorter than the first
// one contribute only to the dimensions they have; an empty input yields nil.
func MeanPool(vectors [][]float32) []float32 {
	if len(vectors) == 0 {
		return nil
	}

	dim := len(vectors[0])
	for _, v := range vectors {
		if len(v) > dim {
			dim = len(v)
		}
	}

	mean := make([]float32, dim)
	for _, v := range vectors {
		for i, val := range v {
			mean[i] += val
		}
	}
	n := float32(len(vectors))
	for i := range mean {
		mean[i] /= n
	}
	return mean
}
