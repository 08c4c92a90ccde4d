package retrieve

import "canonqa/internal/model"

// CheckCoherence flags a small result set whose passages mix books known to
// cover unrelated narratives. Advisory only: the warning rides along with
// the results and never blocks retrieval.
func CheckCoherence(passages []model.Passage) string {
	if len(passages) == 0 {
		return ""
	}

	books := make(map[string]bool)
	for _, p := range passages {
		books[p.Book] = true
	}

	if books["Genesis"] && books["Exodus"] && len(passages) <= 3 {
		return "Warning: Retrieved passages span Genesis and Exodus. Results may cover different topics."
	}
	return ""
}
