package retrieve

import (
	"regexp"
	"strconv"
	"strings"

	"canonqa/internal/model"
)

// Detector pattern-matches explicit citations in a question. It recognizes
// "Book 3:2" (exact verse) and "Book 3" (chapter only, not followed by a
// colon), tolerating partial and abbreviated book tokens.
type Detector struct {
	books          []string
	versePattern   *regexp.Regexp
	chapterPattern *regexp.Regexp
}

// NewDetector creates a detector over the given lowercase book name list.
func NewDetector(books []string) *Detector {
	return &Detector{
		books:          books,
		versePattern:   regexp.MustCompile(`(\d?\s*[a-zA-Z]+)\s+(\d+):(\d+)`),
		chapterPattern: regexp.MustCompile(`(\d?\s*[a-zA-Z]+)\s+(\d+)`),
	}
}

// Detect returns the first citation found in the question, or nil.
func (d *Detector) Detect(question string) *model.ReferenceMatch {
	lower := strings.ToLower(question)

	if m := d.versePattern.FindStringSubmatch(lower); m != nil {
		if book := d.matchBook(strings.TrimSpace(m[1])); book != "" {
			chapter, _ := strconv.Atoi(m[2])
			verse, _ := strconv.Atoi(m[3])
			return &model.ReferenceMatch{Book: book, Chapter: chapter, Verse: verse}
		}
	}

	// Chapter-only: same shape without a trailing colon. RE2 has no
	// lookahead, so candidates followed by ":" are skipped by hand.
	for _, idx := range d.chapterPattern.FindAllStringSubmatchIndex(lower, -1) {
		rest := lower[idx[1]:]
		trimmed := strings.TrimLeft(rest, " \t")
		if strings.HasPrefix(trimmed, ":") {
			continue
		}
		token := strings.TrimSpace(lower[idx[2]:idx[3]])
		if book := d.matchBook(token); book != "" {
			chapter, _ := strconv.Atoi(lower[idx[4]:idx[5]])
			return &model.ReferenceMatch{Book: book, Chapter: chapter}
		}
	}

	return nil
}

// matchBook resolves a token against the book list using bidirectional
// substring containment, so "gen" matches "genesis" and "psalms" matches
// "psalm". Returns the canonical title-cased name, or "".
func (d *Detector) matchBook(token string) string {
	if token == "" {
		return ""
	}
	for _, book := range d.books {
		if strings.Contains(book, token) || strings.Contains(token, book) {
			return strings.ToUpper(book[:1]) + book[1:]
		}
	}
	return ""
}
