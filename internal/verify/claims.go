package verify

import (
	"regexp"
	"strings"

	"canonqa/internal/model"
)

// reservedMarkers open the annotation lines the pipeline prepends or appends
// to answers (route notes, disambiguation notes, verification banners).
// Sentences starting with one of these are never treated as claims.
var reservedMarkers = []string{
	"Note:",
	"Warning:",
	"Direct verse lookup",
	"Direct chapter lookup",
	"Thematic retrieval",
	"Citation safety",
	"Partially grounded",
	"Verification failed",
}

// citationPattern matches "Book Chapter:Verse" citations embedded in answer
// sentences, including numbered books ("1 Kings 3:2") and verse ranges.
var citationPattern = regexp.MustCompile(`([1-3]?\s*[A-Za-z]+)\s+(\d+):(\d+)(?:-(\d+))?`)

// ExtractClaims splits an answer into sentence-level claims. Sentences
// shorter than minLength characters and reserved annotation lines are
// dropped; everything else becomes one claim carrying any citations the
// sentence embeds.
func ExtractClaims(answer string, minLength int) []model.Claim {
	var claims []model.Claim

	for _, sentence := range splitSentences(answer) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) < minLength {
			continue
		}
		if startsWithMarker(sentence) {
			continue
		}
		claims = append(claims, model.Claim{
			Text:      sentence,
			Citations: extractCitations(sentence),
		})
	}
	return claims
}

func startsWithMarker(sentence string) bool {
	for _, marker := range reservedMarkers {
		if strings.HasPrefix(sentence, marker) {
			return true
		}
	}
	return false
}

func extractCitations(sentence string) []string {
	var citations []string
	for _, m := range citationPattern.FindAllStringSubmatch(sentence, -1) {
		book := strings.TrimSpace(m[1])
		citations = append(citations, book+" "+m[2]+":"+m[3])
	}
	return citations
}

// splitSentences breaks text on terminal punctuation followed by
// whitespace. The trailing fragment counts as a sentence even without
// punctuation, so unterminated answers still get verified.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if i+1 >= len(runes) || runes[i+1] == ' ' || runes[i+1] == '\n' || runes[i+1] == '\t' {
				if s := strings.TrimSpace(current.String()); s != "" {
					sentences = append(sentences, s)
				}
				current.Reset()
			}
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}
