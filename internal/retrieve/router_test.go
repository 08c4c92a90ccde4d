package retrieve

import (
	"context"
	"strings"
	"testing"

	"canonqa/internal/model"
)

// recordingSearcher records every query it receives so tests can prove
// whether the semantic tier was consulted.
type recordingSearcher struct {
	queries []string
	results []model.ScoredPassage
	err     error
}

func (s *recordingSearcher) Search(ctx context.Context, query string, topK int) ([]model.ScoredPassage, error) {
	s.queries = append(s.queries, query)
	if s.err != nil {
		return nil, s.err
	}
	if len(s.results) > topK {
		return s.results[:topK], nil
	}
	return s.results, nil
}

func newTestRouter(searcher Searcher) *Router {
	store := &fakeStore{passages: testPassages()}
	return NewRouter(store, searcher, model.RetrievalConfig{TopK: 5, PinnedCap: 5, ThematicCap: 10})
}

func TestRouter_ExactVerseHit(t *testing.T) {
	searcher := &recordingSearcher{}
	router := newTestRouter(searcher)

	out, err := router.Route(context.Background(), "What does Genesis 1:26 say?", 5)
	if err != nil {
		t.Fatalf("Route returned error: %v", err)
	}
	if out.Refusal != nil {
		t.Fatal("Unexpected refusal for a verse present in the corpus")
	}
	if out.Results.Mode != model.ModePinned {
		t.Errorf("Expected pinned mode, got %s", out.Results.Mode)
	}
	if out.RouteNote != "Direct verse lookup: Genesis 1:26" {
		t.Errorf("Wrong route note: %q", out.RouteNote)
	}
	if len(searcher.queries) != 0 {
		t.Errorf("Semantic search consulted on a pinned hit: %v", searcher.queries)
	}
}

func TestRouter_ExactVerseMissRefuses(t *testing.T) {
	searcher := &recordingSearcher{results: []model.ScoredPassage{
		{Passage: model.Passage{Book: "Genesis", Chapter: 1, Text: "decoy"}, Distance: 0.1},
	}}
	router := newTestRouter(searcher)

	out, err := router.Route(context.Background(), "What does Genesis 1:99 say?", 5)
	if err != nil {
		t.Fatalf("Route returned error: %v", err)
	}
	if out.Refusal == nil {
		t.Fatal("Expected a refusal for a missing exact verse")
	}
	if !strings.Contains(out.Refusal.Message, "Genesis 1:99") {
		t.Errorf("Refusal must name the citation, got %q", out.Refusal.Message)
	}
	if len(out.Results.Passages) != 0 {
		t.Errorf("Refusal outcome carried %d passages", len(out.Results.Passages))
	}
	// The refusal is terminal. Similarity search must never run, even
	// though the fake has results to offer.
	if len(searcher.queries) != 0 {
		t.Errorf("Semantic search consulted after an exact-verse miss: %v", searcher.queries)
	}
}

func TestRouter_ChapterOnlyMissFallsThrough(t *testing.T) {
	searcher := &recordingSearcher{results: []model.ScoredPassage{
		{Passage: model.Passage{Book: "Genesis", Chapter: 1, Text: "in the beginning"}, Distance: 0.2},
	}}
	router := newTestRouter(searcher)

	// Genesis 50 is not in the test corpus; chapter-only intent is looser
	// so the router keeps going.
	out, err := router.Route(context.Background(), "Summarize Genesis 50", 5)
	if err != nil {
		t.Fatalf("Route returned error: %v", err)
	}
	if out.Refusal != nil {
		t.Fatal("Chapter-only miss must not refuse")
	}
	if len(searcher.queries) != 1 {
		t.Fatalf("Expected the semantic tier to run once, ran %d times", len(searcher.queries))
	}
	if out.Results.Mode != model.ModeSemantic {
		t.Errorf("Expected semantic mode, got %s", out.Results.Mode)
	}
}

func TestRouter_ThematicHit(t *testing.T) {
	store := &fakeStore{passages: []model.Passage{
		{Book: "Genesis", Chapter: 12, Text: "I will make of thee a great nation"},
		{Book: "Genesis", Chapter: 15, Text: "so shall thy seed be"},
	}}
	searcher := &recordingSearcher{}
	router := NewRouter(store, searcher, model.RetrievalConfig{TopK: 5, PinnedCap: 5, ThematicCap: 10})

	out, err := router.Route(context.Background(), "What did God promise Abraham in Genesis?", 5)
	if err != nil {
		t.Fatalf("Route returned error: %v", err)
	}
	if out.Results.Mode != model.ModeThematic {
		t.Fatalf("Expected thematic mode, got %s", out.Results.Mode)
	}
	if !strings.HasPrefix(out.RouteNote, "Thematic retrieval: ") {
		t.Errorf("Wrong route note: %q", out.RouteNote)
	}
	if len(searcher.queries) != 0 {
		t.Errorf("Semantic search consulted on a thematic hit: %v", searcher.queries)
	}
}

func TestRouter_SemanticFallbackWithExpansion(t *testing.T) {
	store := &fakeStore{} // empty corpus: pinned and thematic tiers miss
	searcher := &recordingSearcher{results: []model.ScoredPassage{
		{Passage: model.Passage{Book: "Genesis", Chapter: 6, Text: "make thee an ark of gopher wood"}, Distance: 0.3},
	}}
	router := NewRouter(store, searcher, model.RetrievalConfig{TopK: 5, PinnedCap: 5, ThematicCap: 10})

	out, err := router.Route(context.Background(), "Describe the ark in detail", 5)
	if err != nil {
		t.Fatalf("Route returned error: %v", err)
	}
	if len(searcher.queries) != 1 {
		t.Fatalf("Expected one semantic query, got %d", len(searcher.queries))
	}
	// The expanded query goes to search; the outcome records it for audit.
	if searcher.queries[0] != out.SearchQuery {
		t.Errorf("SearchQuery %q does not match the query sent (%q)", out.SearchQuery, searcher.queries[0])
	}
	if !strings.HasPrefix(out.SearchQuery, "Describe the ark in detail ") {
		t.Errorf("Expected an expanded query, got %q", out.SearchQuery)
	}
	if out.Disambiguation == "" {
		t.Error("Expected a disambiguation note")
	}
}

func TestRouter_NoEvidence(t *testing.T) {
	router := NewRouter(&fakeStore{}, &recordingSearcher{}, model.RetrievalConfig{TopK: 5})

	out, err := router.Route(context.Background(), "What is quantum chromodynamics?", 5)
	if err != nil {
		t.Fatalf("Route returned error: %v", err)
	}
	if !out.NoEvidence() {
		t.Error("Expected a no-evidence outcome for an empty corpus")
	}
}

func TestRouter_CoherenceWarningOnMixedBooks(t *testing.T) {
	searcher := &recordingSearcher{results: []model.ScoredPassage{
		{Passage: model.Passage{Book: "Genesis", Chapter: 3, Text: "dust thou art"}, Distance: 0.1},
		{Passage: model.Passage{Book: "Exodus", Chapter: 3, Text: "the bush burned"}, Distance: 0.2},
	}}
	router := NewRouter(&fakeStore{}, searcher, model.RetrievalConfig{TopK: 5})

	out, err := router.Route(context.Background(), "Why did the serpent speak?", 5)
	if err != nil {
		t.Fatalf("Route returned error: %v", err)
	}
	if !strings.Contains(out.Warning, "Genesis and Exodus") {
		t.Errorf("Expected a coherence warning for a small mixed-book set, got %q", out.Warning)
	}
}
