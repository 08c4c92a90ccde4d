package corpus

import (
	"strings"
	"testing"
)

func TestParser_EBibleFormat(t *testing.T) {
	text := strings.Join([]string{
		"Genesis 1:1 In the beginning God created the heaven and the earth.",
		"Genesis 1:2 And the earth was without form, and void.",
		"Exodus 3:2 And the angel of the LORD appeared unto him in a flame of fire.",
	}, "\n")

	verses, err := NewParser("en").Parse(text)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(verses) != 3 {
		t.Fatalf("Expected 3 verses, got %d", len(verses))
	}

	first := verses[0]
	if first.Book != "Genesis" || first.Chapter != 1 || first.Verse != 1 {
		t.Errorf("Wrong first verse: %+v", first)
	}
	if first.Reference != "Genesis 1:1" {
		t.Errorf("Wrong reference: %q", first.Reference)
	}
	if verses[2].Book != "Exodus" {
		t.Errorf("Book did not switch: %+v", verses[2])
	}
}

func TestParser_HeadingFormat(t *testing.T) {
	text := strings.Join([]string{
		"THE GENESIS",
		"1:1 In the beginning God created the heaven and the earth.",
		"1:2 And the earth was without form, and void.",
		"",
		"EXODUS",
		"1:1 Now these are the names of the children of Israel.",
	}, "\n")

	verses, err := NewParser("en").Parse(text)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(verses) != 3 {
		t.Fatalf("Expected 3 verses, got %d", len(verses))
	}
	if verses[0].Book != "The Genesis" && verses[0].Book != "Genesis" {
		t.Errorf("Heading not picked up as book: %q", verses[0].Book)
	}
	if verses[2].Book != "Exodus" {
		t.Errorf("Second heading not picked up: %q", verses[2].Book)
	}
	if verses[2].Reference != "Exodus 1:1" {
		t.Errorf("Wrong reference: %q", verses[2].Reference)
	}
}

func TestParser_ContinuationLines(t *testing.T) {
	text := strings.Join([]string{
		"Genesis 1:1 In the beginning God created",
		"the heaven and the earth entirely.",
	}, "\n")

	verses, err := NewParser("en").Parse(text)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(verses) != 1 {
		t.Fatalf("Expected 1 verse, got %d", len(verses))
	}
	if !strings.HasSuffix(verses[0].Text, "the heaven and the earth entirely.") {
		t.Errorf("Continuation line not appended: %q", verses[0].Text)
	}
}

func TestParser_DropsShortFragments(t *testing.T) {
	text := strings.Join([]string{
		"Genesis 1:1 In the beginning God created the heaven and the earth.",
		"Genesis 1:2 ab",
	}, "\n")

	verses, err := NewParser("en").Parse(text)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(verses) != 1 {
		t.Errorf("Expected the short fragment to be dropped, got %d verses", len(verses))
	}
}

func TestParser_EmptyInput(t *testing.T) {
	if _, err := NewParser("en").Parse("not scripture at all"); err == nil {
		t.Error("Expected an error for text with no parseable verses")
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"GENESIS", "Genesis"},
		{"THE GOSPEL", "The Gospel"},
		{"song of solomon", "Song of Solomon"},
	}
	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}
