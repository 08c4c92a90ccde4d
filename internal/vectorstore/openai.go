package vectorstore

import (
	"context"
	"fmt"
	"os"

	"canonqa/internal/cache"
	"canonqa/internal/model"
	"canonqa/internal/worker"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIEmbedder produces embeddings via the OpenAI embeddings API.
// Vectors are cached by input text and API calls are rate limited, so a
// rebuild over an unchanged corpus costs almost nothing.
type OpenAIEmbedder struct {
	client    *openai.Client
	model     openai.EmbeddingModel
	cache     *cache.VectorCache
	limiter   *worker.Limiter
	dimension int
}

// NewOpenAIEmbedder creates an embedder from index configuration, reading
// the API key from the environment.
func NewOpenAIEmbedder(cfg model.IndexConfig) (*OpenAIEmbedder, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	embedModel := cfg.EmbedModel
	if embedModel == "" {
		embedModel = string(openai.SmallEmbedding3)
	}

	return &OpenAIEmbedder{
		client:  openai.NewClient(apiKey),
		model:   openai.EmbeddingModel(embedModel),
		cache:   cache.NewVectorCache(cfg.CacheTTL, cfg.CacheSweep),
		limiter: worker.NewLimiter(cfg.EmbedRate, 5),
	}, nil
}

// Name returns the embedder identifier.
func (e *OpenAIEmbedder) Name() string { return "openai" }

// Prepare is a no-op; remote embeddings need no corpus fitting.
func (e *OpenAIEmbedder) Prepare(corpus []string) error { return nil }

// Dimension returns the vector size, known after the first embed.
func (e *OpenAIEmbedder) Dimension() int { return e.dimension }

// Embed returns the embedding for one text, consulting the cache first.
func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	if vec, ok := e.cache.Get(text); ok {
		return vec, nil
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: e.model,
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("no embedding in response")
	}

	raw := resp.Data[0].Embedding
	vec := make([]float64, len(raw))
	for i, v := range raw {
		vec[i] = float64(v)
	}
	if e.dimension == 0 {
		e.dimension = len(vec)
	}

	e.cache.Set(text, vec)
	return vec, nil
}
