package retrieve

import (
	"fmt"
	"strings"

	"canonqa/internal/model"
)

// PinnedRetriever performs exact citation lookups against the corpus.
// Verse-level matching is deliberately strict: the normalized reference must
// match exactly, never approximately, so a request for 3:2 can never come
// back as 33:2.
type PinnedRetriever struct {
	store PassageSource
	cap   int
}

// PassageSource exposes the corpus for linear scans.
type PassageSource interface {
	All() []model.Passage
}

// NewPinnedRetriever creates a retriever capped at cap passages.
func NewPinnedRetriever(store PassageSource, cap int) *PinnedRetriever {
	if cap <= 0 {
		cap = 5
	}
	return &PinnedRetriever{store: store, cap: cap}
}

// Retrieve scans the corpus for passages matching the citation. Chapter-only
// matches compare book and chapter; exact-verse matches additionally require
// the normalized "Book Chapter:Verse" reference on the passage.
func (r *PinnedRetriever) Retrieve(ref model.ReferenceMatch) []model.Passage {
	var results []model.Passage
	refBook := strings.ToLower(ref.Book)

	for _, p := range r.store.All() {
		pBook := strings.ToLower(p.Book)
		if !strings.Contains(pBook, refBook) && !strings.Contains(refBook, pBook) {
			continue
		}
		if p.Chapter != ref.Chapter {
			continue
		}
		if !ref.ExactVerse() {
			results = append(results, p)
		} else if hasExactReference(p, ref) {
			results = append(results, p)
		}
		if len(results) >= r.cap {
			break
		}
	}
	return results
}

// hasExactReference checks the passage's reference list for the requested
// verse. A reference matches when, lowercased, it either equals the
// canonical citation or ends with " chapter:verse" for the already-verified
// book and chapter. Suffix matching keeps abbreviation variants ("Gen 1:26")
// working while the leading space blocks digit-drift (" 3:2" never matches
// "33:2").
func hasExactReference(p model.Passage, ref model.ReferenceMatch) bool {
	canonical := strings.ToLower(ref.Citation())
	suffix := fmt.Sprintf(" %d:%d", ref.Chapter, ref.Verse)

	for _, stored := range p.References {
		lower := strings.ToLower(strings.TrimSpace(stored))
		if lower == canonical || strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}
