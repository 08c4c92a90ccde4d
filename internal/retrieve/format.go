package retrieve

import (
	"fmt"
	"strings"

	"canonqa/internal/model"
)

// FormatContext renders a result set into the citation-tagged block the
// generation backend receives. Pure and deterministic: the same passages
// always produce the same context string.
func FormatContext(passages []model.Passage) string {
	var parts []string
	for i, p := range passages {
		refs := strings.Join(p.References, ", ")
		if refs == "" {
			refs = fmt.Sprintf("%s %d", p.Book, p.Chapter)
		}
		parts = append(parts, fmt.Sprintf("[%d] Reference: %s\nText: %s\n", i+1, refs, p.Text))
	}
	return strings.Join(parts, "\n")
}
