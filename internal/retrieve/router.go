package retrieve

import (
	"context"
	"fmt"

	"canonqa/internal/model"
)

// Searcher is the semantic nearest-neighbor collaborator. Results come back
// ordered by ascending distance, at most topK of them; an empty corpus
// returns empty, never an error.
type Searcher interface {
	Search(ctx context.Context, query string, topK int) ([]model.ScoredPassage, error)
}

// Outcome is the router's verdict for one question. Exactly one of three
// shapes holds: a refusal (exact verse requested and absent), an empty
// result set (no evidence anywhere), or a non-empty result set with its
// retrieval mode and advisory notes.
type Outcome struct {
	Results model.ResultSet
	Context string // Formatted context block, empty when terminal

	RouteNote      string // "Direct verse lookup: ...", "Thematic retrieval: ..."
	Disambiguation string // Ambiguity resolver note, if the query was expanded
	Warning        string // Coherence warning, if any

	// Refusal is set when an exact verse was requested but not found.
	// Similarity search is never consulted for these: an approximate
	// answer to a citation request is worse than no answer.
	Refusal *Refusal

	SearchQuery string // Query actually sent to semantic search, for audit
}

// Refusal is the terminal verse_not_found condition.
type Refusal struct {
	Ref     model.ReferenceMatch
	Message string
}

// NoEvidence reports whether every retrieval tier came up empty.
func (o Outcome) NoEvidence() bool {
	return o.Refusal == nil && len(o.Results.Passages) == 0
}

// Router runs the three retrieval tiers in strict priority order: exact
// citations are authoritative over curated anchors, anchors over open-ended
// similarity search. Only one tier is attempted to completion per query;
// modes are never blended.
type Router struct {
	detector *Detector
	pinned   *PinnedRetriever
	themes   *ThemeMatcher
	resolver *Resolver
	searcher Searcher
	topK     int
}

// NewRouter wires the detection and retrieval stages over a corpus store
// and a search collaborator.
func NewRouter(store PassageSource, searcher Searcher, cfg model.RetrievalConfig) *Router {
	return &Router{
		detector: NewDetector(model.DefaultBookNames()),
		pinned:   NewPinnedRetriever(store, cfg.PinnedCap),
		themes:   NewThemeMatcher(model.DefaultThemeAnchors(), store, cfg.ThematicCap),
		resolver: NewResolver(model.DefaultAmbiguousTerms()),
		searcher: searcher,
		topK:     cfg.TopK,
	}
}

// Route resolves one question into an outcome.
func (r *Router) Route(ctx context.Context, question string, topK int) (*Outcome, error) {
	if topK <= 0 {
		topK = r.topK
	}
	out := &Outcome{SearchQuery: question}

	// Tier 1: pinned citation lookup.
	if ref := r.detector.Detect(question); ref != nil {
		if passages := r.pinned.Retrieve(*ref); len(passages) > 0 {
			out.Results = model.ResultSet{Passages: passages, Mode: model.ModePinned}
			if ref.ExactVerse() {
				out.RouteNote = fmt.Sprintf("Direct verse lookup: %s", ref.Citation())
			} else {
				out.RouteNote = fmt.Sprintf("Direct chapter lookup: %s chapter %d", ref.Book, ref.Chapter)
			}
			r.finish(out)
			return out, nil
		}
		if ref.ExactVerse() {
			out.Refusal = &Refusal{
				Ref: *ref,
				Message: fmt.Sprintf("Citation safety: I could not find the exact verse %s in my corpus. "+
					"I will not use similarity search as it may return incorrect verses. "+
					"Please check the reference or try a different question.", ref.Citation()),
			}
			return out, nil
		}
		// Chapter-only misses fall through: the intent is looser.
	}

	// Tier 2: curated thematic anchors.
	if anchor := r.themes.Match(question); anchor != nil {
		if passages := r.themes.Retrieve(*anchor); len(passages) > 0 {
			out.Results = model.ResultSet{Passages: passages, Mode: model.ModeThematic}
			out.RouteNote = fmt.Sprintf("Thematic retrieval: %s", anchor.Description)
			r.finish(out)
			return out, nil
		}
		// An anchor with no corpus coverage is treated as a miss.
	}

	// Tier 3: semantic fallback with disambiguation.
	expanded, note := r.resolver.Expand(question)
	out.SearchQuery = expanded
	out.Disambiguation = note

	scored, err := r.searcher.Search(ctx, expanded, topK)
	if err != nil {
		return nil, fmt.Errorf("semantic search: %w", err)
	}
	if len(scored) == 0 {
		return out, nil // No evidence anywhere; caller renders the terminal response.
	}

	passages := make([]model.Passage, len(scored))
	for i, s := range scored {
		passages[i] = s.Passage
	}
	out.Results = model.ResultSet{Passages: passages, Mode: model.ModeSemantic}
	r.finish(out)
	return out, nil
}

func (r *Router) finish(out *Outcome) {
	out.Warning = CheckCoherence(out.Results.Passages)
	out.Context = FormatContext(out.Results.Passages)
}
