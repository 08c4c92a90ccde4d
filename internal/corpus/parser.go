package corpus

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Verse is a single parsed verse before chunking.
type Verse struct {
	Book      string
	Chapter   int
	Verse     int
	Text      string
	Reference string // "Book Chapter:Verse"
}

// Parser turns raw corpus text into verses. It understands the eBible line
// format ("Book Chapter:Verse text") and the heading format where a book
// name appears on its own line followed by "Chapter:Verse text" lines.
type Parser struct {
	language string

	ebiblePattern *regexp.Regexp
	versePattern  *regexp.Regexp
	bookPattern   *regexp.Regexp
	knownBooks    []string
}

// NewParser creates a parser for the given language code.
func NewParser(language string) *Parser {
	return &Parser{
		language:      language,
		ebiblePattern: regexp.MustCompile(`^([1-3]?\s?[A-Z][A-Za-z\s]+?)\s+(\d+):(\d+)\s+(.+)$`),
		versePattern:  regexp.MustCompile(`^(\d+):(\d+)\s+(.+)$`),
		bookPattern:   regexp.MustCompile(`^(THE\s+)?([A-Z\s]{3,})$`),
		knownBooks:    canonicalBooks,
	}
}

var canonicalBooks = []string{
	"Genesis", "Exodus", "Leviticus", "Numbers", "Deuteronomy",
	"Joshua", "Judges", "Ruth", "Samuel", "Kings", "Chronicles",
	"Ezra", "Nehemiah", "Esther", "Job", "Psalms", "Proverbs",
	"Ecclesiastes", "Song", "Isaiah", "Jeremiah", "Lamentations",
	"Ezekiel", "Daniel", "Hosea", "Joel", "Amos", "Obadiah",
	"Jonah", "Micah", "Nahum", "Habakkuk", "Zephaniah", "Haggai",
	"Zechariah", "Malachi", "Matthew", "Mark", "Luke", "John",
	"Acts", "Romans", "Corinthians", "Galatians", "Ephesians",
	"Philippians", "Colossians", "Thessalonians", "Timothy",
	"Titus", "Philemon", "Hebrews", "James", "Peter", "Jude", "Revelation",
}

// Parse parses the full corpus text into verses. Lines that match no known
// format extend the preceding verse when they look like continuation text.
func (p *Parser) Parse(text string) ([]Verse, error) {
	var verses []Verse
	var currentBook string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := p.ebiblePattern.FindStringSubmatch(line); m != nil {
			book := titleCase(strings.TrimSpace(m[1]))
			chapter, _ := strconv.Atoi(m[2])
			verse, _ := strconv.Atoi(m[3])
			currentBook = book
			verses = append(verses, Verse{
				Book:      book,
				Chapter:   chapter,
				Verse:     verse,
				Text:      strings.TrimSpace(m[4]),
				Reference: fmt.Sprintf("%s %d:%d", book, chapter, verse),
			})
			continue
		}

		if p.isBookHeading(line) {
			currentBook = titleCase(line)
			continue
		}

		if m := p.versePattern.FindStringSubmatch(line); m != nil && currentBook != "" {
			chapter, _ := strconv.Atoi(m[1])
			verse, _ := strconv.Atoi(m[2])
			verses = append(verses, Verse{
				Book:      currentBook,
				Chapter:   chapter,
				Verse:     verse,
				Text:      strings.TrimSpace(m[3]),
				Reference: fmt.Sprintf("%s %d:%d", currentBook, chapter, verse),
			})
			continue
		}

		// Continuation of the previous verse.
		if len(verses) > 0 && currentBook != "" && len(line) > 10 && !isDigit(line[0]) {
			verses[len(verses)-1].Text += " " + line
		}
	}

	// Drop fragments too short to carry content.
	kept := verses[:0]
	for _, v := range verses {
		if len(strings.TrimSpace(v.Text)) > 5 {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("no verses parsed from corpus text")
	}
	return kept, nil
}

func (p *Parser) isBookHeading(line string) bool {
	if !p.bookPattern.MatchString(line) || len(line) >= 30 {
		return false
	}
	words := len(strings.Fields(line))
	if words < 1 || words > 5 {
		return false
	}
	titled := titleCase(line)
	for _, book := range p.knownBooks {
		if strings.Contains(titled, book) {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		if (w == "the" || w == "of") && i > 0 {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
