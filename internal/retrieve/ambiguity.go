package retrieve

import (
	"fmt"
	"sort"
	"strings"

	"canonqa/internal/model"
)

// Resolver detects polysemous terms and expands the search query with
// disambiguating context when the user supplied none. Only the expanded copy
// goes to similarity search; the original question is always what reaches
// the generation backend.
type Resolver struct {
	terms []model.AmbiguousTerm
}

// NewResolver creates a resolver over the given term table.
func NewResolver(terms []model.AmbiguousTerm) *Resolver {
	return &Resolver{terms: terms}
}

// Expand returns the query to use for semantic retrieval and a note for the
// caller when an expansion happened. The note is empty when the question
// already carried disambiguating context.
func (r *Resolver) Expand(question string) (string, string) {
	lower := strings.ToLower(question)

	for _, term := range r.terms {
		if !strings.Contains(lower, term.Term) {
			continue
		}
		if hasContextClue(lower, term.ContextClues) {
			continue
		}

		// The ark is the high-traffic case with a known dominant sense:
		// "who built the ark" overwhelmingly means Noah's.
		if term.Term == "ark" {
			if containsAny(lower, []string{"built", "build", "made", "who"}) {
				return question + " noah flood boat",
					"Note: Interpreting 'ark' as Noah's Ark (the flood boat). For Ark of the Covenant, try asking about 'ark of the covenant'."
			}
			return question + " noah genesis flood",
				"Note: Multiple 'arks' in the corpus - searching for Noah's Ark context."
		}

		clue := firstClueGroup(term.ContextClues)
		if clue == "" {
			continue
		}
		return question + " " + clue,
			fmt.Sprintf("Note: '%s' has multiple senses (%s) - searching for the most common one.",
				term.Term, strings.Join(term.Options, "; "))
	}

	return question, ""
}

func hasContextClue(lower string, clues map[string][]string) bool {
	for _, words := range clues {
		for _, w := range words {
			if strings.Contains(lower, w) {
				return true
			}
		}
	}
	return false
}

// firstClueGroup returns the clue words of the alphabetically first sense,
// keeping expansion deterministic across runs.
func firstClueGroup(clues map[string][]string) string {
	keys := make([]string, 0, len(clues))
	for k := range clues {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) == 0 {
		return ""
	}
	return strings.Join(clues[keys[0]], " ")
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
