package model

import (
	"fmt"
	"strings"
)

// Passage is a stored unit of the corpus: one or more consecutive verses
// chunked together, with the citation references they carry. Passages are
// loaded once at startup and never mutated.
type Passage struct {
	Book       string   `json:"book"`                 // Dominant book of the chunk
	Chapter    int      `json:"chapter"`              // Dominant chapter of the chunk
	Text       string   `json:"text"`                 // Chunk text body
	References []string `json:"references,omitempty"` // "Book Chapter:Verse" locators
	Language   string   `json:"language,omitempty"`   // Corpus language code
}

// ScoredPassage is a passage returned by similarity search, ordered by
// ascending distance.
type ScoredPassage struct {
	Passage
	Distance float64 `json:"distance"`
}

// ReferenceMatch is an explicit citation detected in a question.
// Verse == 0 means a chapter-only reference ("Exodus 3" as opposed to
// "Exodus 3:2").
type ReferenceMatch struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse,omitempty"`
}

// ExactVerse reports whether the match pins a specific verse rather than a
// whole chapter.
func (m ReferenceMatch) ExactVerse() bool { return m.Verse > 0 }

// Citation renders the canonical "Book Chapter:Verse" locator, or
// "Book Chapter" for chapter-only matches.
func (m ReferenceMatch) Citation() string {
	if m.ExactVerse() {
		return fmt.Sprintf("%s %d:%d", m.Book, m.Chapter, m.Verse)
	}
	return fmt.Sprintf("%s %d", m.Book, m.Chapter)
}

// RetrievalMode tags how a result set was selected.
type RetrievalMode string

const (
	ModePinned   RetrievalMode = "pinned"   // Exact citation lookup
	ModeThematic RetrievalMode = "thematic" // Curated anchor chapters
	ModeSemantic RetrievalMode = "semantic" // Similarity search fallback
)

// ResultSet is the ordered list of passages selected for one query.
// Non-empty unless the query was terminally refused or found no evidence.
type ResultSet struct {
	Passages []Passage     `json:"passages"`
	Mode     RetrievalMode `json:"mode"`
}

// Sources returns the de-duplicated citation references of all passages,
// preserving first-seen order.
func (rs ResultSet) Sources() []string {
	seen := make(map[string]bool)
	var sources []string
	for _, p := range rs.Passages {
		for _, ref := range p.References {
			key := strings.ToLower(strings.TrimSpace(ref))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			sources = append(sources, ref)
		}
	}
	return sources
}
