package corpus

import (
	"strings"

	"canonqa/internal/model"
)

// Chunker groups consecutive verses into passages for embedding. Chunks
// never cross a book or chapter boundary and aim for chunkSize characters,
// carrying the last overlap words into the next chunk for continuity.
type Chunker struct {
	chunkSize int
	overlap   int
	language  string
}

// NewChunker creates a chunker with the given size targets.
func NewChunker(chunkSize, overlap int, language string) *Chunker {
	if chunkSize <= 0 {
		chunkSize = 500
	}
	if overlap < 0 {
		overlap = 0
	}
	return &Chunker{chunkSize: chunkSize, overlap: overlap, language: language}
}

// Chunk converts verses into passages.
func (c *Chunker) Chunk(verses []Verse) []model.Passage {
	var passages []model.Passage

	var (
		curBook    string
		curChapter int
		curText    []string
		curRefs    []string
	)

	flush := func() {
		if len(curText) == 0 {
			return
		}
		passages = append(passages, model.Passage{
			Book:       curBook,
			Chapter:    curChapter,
			Text:       strings.Join(curText, " "),
			References: dedupe(curRefs),
			Language:   c.language,
		})
	}

	for _, v := range verses {
		boundary := (curBook != "" && curBook != v.Book) ||
			(curChapter != 0 && curChapter != v.Chapter)
		oversized := len(strings.Join(curText, " ")) > c.chunkSize

		if boundary || oversized {
			flush()
			if !boundary && c.overlap > 0 && len(curText) > 0 {
				// Keep a word tail from the previous chunk inside the
				// same chapter so sentence context is not cut mid-thought.
				tail := strings.Fields(strings.Join(curText, " "))
				if len(tail) > c.overlap {
					tail = tail[len(tail)-c.overlap:]
				}
				curText = []string{strings.Join(tail, " ")}
				if len(curRefs) > 0 {
					curRefs = []string{curRefs[len(curRefs)-1]}
				}
			} else {
				curText = nil
				curRefs = nil
			}
		}

		curBook = v.Book
		curChapter = v.Chapter
		curText = append(curText, v.Text)
		curRefs = append(curRefs, v.Reference)
	}
	flush()

	return passages
}

func dedupe(refs []string) []string {
	seen := make(map[string]bool, len(refs))
	var out []string
	for _, r := range refs {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}
