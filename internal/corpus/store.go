package corpus

import (
	"fmt"
	"os"

	"canonqa/internal/model"
)

// Store holds the loaded passage corpus. It is populated once and read-only
// afterwards, so concurrent queries may scan it without locking.
type Store struct {
	passages []model.Passage
}

// NewStore wraps an already-built passage list.
func NewStore(passages []model.Passage) *Store {
	return &Store{passages: passages}
}

// LoadFile parses and chunks a corpus text file into a store.
func LoadFile(path string, cfg model.IndexConfig, language string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	parser := NewParser(language)
	verses, err := parser.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}
	chunker := NewChunker(cfg.ChunkSize, cfg.ChunkOverlap, language)
	return NewStore(chunker.Chunk(verses)), nil
}

// All returns the full passage list for linear scans.
func (s *Store) All() []model.Passage {
	return s.passages
}

// Len returns the passage count.
func (s *Store) Len() int { return len(s.passages) }
