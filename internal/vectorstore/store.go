package vectorstore

import (
	"context"
	"encoding/gob"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	"canonqa/internal/model"
	"canonqa/internal/worker"
)

// Store is a brute-force in-memory vector index over the passage corpus.
// Built or loaded once, read-only at query time. Distances are cosine
// distances (1 - cosine similarity), ascending.
type Store struct {
	embedder Embedder
	passages []model.Passage
	vectors  [][]float64
}

// New creates an empty store over the given embedder.
func New(embedder Embedder) *Store {
	return &Store{embedder: embedder}
}

// Build fits the embedder on the passage texts and embeds every passage,
// spreading the work across the pool.
func (s *Store) Build(ctx context.Context, passages []model.Passage, workers int) error {
	texts := make([]string, len(passages))
	for i, p := range passages {
		texts[i] = p.Text
	}
	if err := s.embedder.Prepare(texts); err != nil {
		return fmt.Errorf("prepare embedder: %w", err)
	}

	vectors := make([][]float64, len(passages))
	tasks := make([]worker.Task, len(passages))
	for i := range passages {
		i := i
		tasks[i] = func(ctx context.Context) error {
			vec, err := s.embedder.Embed(ctx, texts[i])
			if err != nil {
				return fmt.Errorf("embed passage %d: %w", i, err)
			}
			vectors[i] = vec
			return nil
		}
	}
	if err := worker.NewPool(workers).Run(ctx, tasks); err != nil {
		return err
	}

	s.passages = passages
	s.vectors = vectors
	return nil
}

// Search embeds the query and returns the topK nearest passages by cosine
// distance. An empty index returns empty results, never an error.
func (s *Store) Search(ctx context.Context, query string, topK int) ([]model.ScoredPassage, error) {
	if len(s.passages) == 0 {
		return nil, nil
	}
	if topK <= 0 {
		topK = 5
	}

	qv, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	scored := make([]model.ScoredPassage, 0, len(s.passages))
	for i, p := range s.passages {
		scored = append(scored, model.ScoredPassage{
			Passage:  p,
			Distance: 1 - cosine(qv, s.vectors[i]),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Distance < scored[j].Distance
	})
	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored, nil
}

// Len returns the number of indexed passages.
func (s *Store) Len() int { return len(s.passages) }

// Passages exposes the indexed corpus for the linear-scan retrievers.
func (s *Store) Passages() []model.Passage { return s.passages }

// All implements retrieve.PassageSource.
func (s *Store) All() []model.Passage { return s.passages }

// indexFile is the persisted index layout.
type indexFile struct {
	Embedder string
	Passages []model.Passage
	Vectors  [][]float64
	TFIDF    *TFIDFState // Fitted vocabulary, tfidf embedder only
}

// Save writes the index to path, creating parent directories.
func (s *Store) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create index dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create index file: %w", err)
	}
	defer func() { _ = f.Close() }()

	file := indexFile{
		Embedder: s.embedder.Name(),
		Passages: s.passages,
		Vectors:  s.vectors,
	}
	if tfidf, ok := s.embedder.(*TFIDFEmbedder); ok {
		file.TFIDF = tfidf.State()
	}

	if err := gob.NewEncoder(f).Encode(file); err != nil {
		return fmt.Errorf("encode index: %w", err)
	}
	return nil
}

// Load reads a persisted index from path. The index must have been built
// with the same embedder kind.
func (s *Store) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open index: %w", err)
	}
	defer func() { _ = f.Close() }()

	var file indexFile
	if err := gob.NewDecoder(f).Decode(&file); err != nil {
		return fmt.Errorf("decode index: %w", err)
	}
	if file.Embedder != s.embedder.Name() {
		return fmt.Errorf("index built with embedder %q, configured embedder is %q", file.Embedder, s.embedder.Name())
	}
	if tfidf, ok := s.embedder.(*TFIDFEmbedder); ok {
		if err := tfidf.Restore(file.TFIDF); err != nil {
			return fmt.Errorf("restore tfidf state: %w", err)
		}
	}

	s.passages = file.Passages
	s.vectors = file.Vectors
	return nil
}

func cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
