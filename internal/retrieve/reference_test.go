package retrieve

import (
	"testing"

	"canonqa/internal/model"
)

func TestDetector_ExactVerse(t *testing.T) {
	detector := NewDetector(model.DefaultBookNames())

	tests := []struct {
		question string
		book     string
		chapter  int
		verse    int
	}{
		{"What does Genesis 1:26 say?", "Genesis", 1, 26},
		{"genesis 1:26", "Genesis", 1, 26},
		{"Explain Psalm 110:1 please", "Psalm", 110, 1},
		{"Exodus 3:2", "Exodus", 3, 2},
	}

	for _, tt := range tests {
		ref := detector.Detect(tt.question)
		if ref == nil {
			t.Errorf("Detect(%q) = nil, expected a match", tt.question)
			continue
		}
		if ref.Book != tt.book || ref.Chapter != tt.chapter || ref.Verse != tt.verse {
			t.Errorf("Detect(%q) = %+v, expected %s %d:%d", tt.question, ref, tt.book, tt.chapter, tt.verse)
		}
		if !ref.ExactVerse() {
			t.Errorf("Detect(%q): expected exact-verse match", tt.question)
		}
	}
}

func TestDetector_ChapterOnly(t *testing.T) {
	detector := NewDetector(model.DefaultBookNames())

	ref := detector.Detect("What happens in Exodus 3?")
	if ref == nil {
		t.Fatal("Expected a chapter-only match")
	}
	if ref.Book != "Exodus" || ref.Chapter != 3 {
		t.Errorf("Expected Exodus 3, got %+v", ref)
	}
	if ref.ExactVerse() {
		t.Error("Chapter-only reference must not report an exact verse")
	}
}

func TestDetector_AbbreviatedBook(t *testing.T) {
	detector := NewDetector(model.DefaultBookNames())

	// "gen" is a substring of "genesis"; containment works both ways.
	ref := detector.Detect("gen 1:1")
	if ref == nil || ref.Book != "Genesis" {
		t.Errorf("Expected abbreviation to resolve to Genesis, got %+v", ref)
	}
}

func TestDetector_NoMatch(t *testing.T) {
	detector := NewDetector(model.DefaultBookNames())

	questions := []string{
		"Who built the ark?",
		"Tell me about the flood",
		"",
	}
	for _, q := range questions {
		if ref := detector.Detect(q); ref != nil {
			t.Errorf("Detect(%q) = %+v, expected nil", q, ref)
		}
	}
}

func TestReferenceMatch_Citation(t *testing.T) {
	verse := model.ReferenceMatch{Book: "Exodus", Chapter: 3, Verse: 2}
	if got := verse.Citation(); got != "Exodus 3:2" {
		t.Errorf("Citation() = %q, expected %q", got, "Exodus 3:2")
	}

	chapter := model.ReferenceMatch{Book: "Exodus", Chapter: 3}
	if got := chapter.Citation(); got != "Exodus 3" {
		t.Errorf("Citation() = %q, expected %q", got, "Exodus 3")
	}
}
