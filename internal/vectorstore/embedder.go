package vectorstore

import (
	"context"
	"fmt"

	"canonqa/internal/model"
)

// Embedder converts text into a vector representation. Implementations may
// require a preparation pass over the corpus before embedding.
type Embedder interface {
	// Name identifies the implementation for index compatibility checks.
	Name() string

	// Prepare runs any corpus-wide fitting the embedder needs.
	Prepare(corpus []string) error

	// Dimension returns the vector dimensionality, 0 before it is known.
	Dimension() int

	// Embed computes the vector for one text.
	Embed(ctx context.Context, text string) ([]float64, error)
}

// NewEmbedder creates the embedder named in the index configuration.
func NewEmbedder(cfg model.IndexConfig) (Embedder, error) {
	switch cfg.Embedder {
	case "", "tfidf":
		return NewTFIDFEmbedder(), nil
	case "openai":
		return NewOpenAIEmbedder(cfg)
	default:
		return nil, fmt.Errorf("unknown embedder: %s (supported: tfidf, openai)", cfg.Embedder)
	}
}
