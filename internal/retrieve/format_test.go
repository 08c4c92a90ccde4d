package retrieve

import (
	"strings"
	"testing"

	"canonqa/internal/model"
)

func TestFormatContext(t *testing.T) {
	passages := []model.Passage{
		{
			Book:       "Genesis",
			Chapter:    1,
			Text:       "In the beginning God created the heaven and the earth.",
			References: []string{"Genesis 1:1", "Genesis 1:2"},
		},
		{
			Book:    "Exodus",
			Chapter: 20,
			Text:    "And God spake all these words.",
		},
	}

	got := FormatContext(passages)

	if !strings.Contains(got, "[1] Reference: Genesis 1:1, Genesis 1:2") {
		t.Errorf("Missing numbered reference line:\n%s", got)
	}
	// Passages without stored references fall back to book and chapter.
	if !strings.Contains(got, "[2] Reference: Exodus 20") {
		t.Errorf("Missing book/chapter fallback:\n%s", got)
	}
	if !strings.Contains(got, "Text: And God spake all these words.") {
		t.Errorf("Missing text line:\n%s", got)
	}

	if again := FormatContext(passages); again != got {
		t.Error("FormatContext is not deterministic")
	}
}

func TestFormatContext_Empty(t *testing.T) {
	if got := FormatContext(nil); got != "" {
		t.Errorf("Expected empty context for no passages, got %q", got)
	}
}

func TestCheckCoherence(t *testing.T) {
	genesis := model.Passage{Book: "Genesis", Chapter: 3, Text: "a"}
	exodus := model.Passage{Book: "Exodus", Chapter: 3, Text: "b"}

	tests := []struct {
		name     string
		passages []model.Passage
		warn     bool
	}{
		{"empty", nil, false},
		{"single book", []model.Passage{genesis, genesis}, false},
		{"small mixed set", []model.Passage{genesis, exodus}, true},
		{"large mixed set", []model.Passage{genesis, exodus, genesis, exodus}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warning := CheckCoherence(tt.passages)
			if tt.warn && warning == "" {
				t.Error("Expected a coherence warning")
			}
			if !tt.warn && warning != "" {
				t.Errorf("Unexpected warning: %q", warning)
			}
		})
	}
}
