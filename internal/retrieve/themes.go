package retrieve

import (
	"sort"
	"strings"

	"canonqa/internal/model"
)

// ThemeMatcher matches questions against the curated anchor table and pulls
// the anchor chapters from the corpus.
type ThemeMatcher struct {
	anchors []model.ThemeAnchor
	store   PassageSource
	cap     int
}

// NewThemeMatcher creates a matcher capped at cap passages per retrieval.
func NewThemeMatcher(anchors []model.ThemeAnchor, store PassageSource, cap int) *ThemeMatcher {
	if cap <= 0 {
		cap = 10
	}
	return &ThemeMatcher{anchors: anchors, store: store, cap: cap}
}

// Match returns the anchor the question maps to, or nil. An anchor matches
// when a trigger term appears and either it has no book filter or the filter
// term also appears in the question. A question naming both "abraham" and
// "genesis" is hard-routed to the abraham_promise anchor; that carve-out
// captures a known high-value query shape and is kept as an explicit rule.
func (m *ThemeMatcher) Match(question string) *model.ThemeAnchor {
	lower := strings.ToLower(question)

	for i := range m.anchors {
		anchor := &m.anchors[i]

		if anchor.Name == "abraham_promise" &&
			strings.Contains(lower, "abraham") && strings.Contains(lower, "genesis") {
			return anchor
		}

		triggered := false
		for _, trigger := range anchor.Triggers {
			if strings.Contains(lower, trigger) {
				triggered = true
				break
			}
		}
		if !triggered {
			continue
		}
		if anchor.BookFilter == "" || strings.Contains(lower, anchor.BookFilter) {
			return anchor
		}
	}
	return nil
}

// Retrieve scans the corpus for passages inside the anchor's book and
// chapter set, sorted by chapter ascending. An anchor with no chapters
// yields nothing; the router then falls through to semantic search.
func (m *ThemeMatcher) Retrieve(anchor model.ThemeAnchor) []model.Passage {
	if len(anchor.Chapters) == 0 {
		return nil
	}

	chapters := make(map[int]bool, len(anchor.Chapters))
	for _, c := range anchor.Chapters {
		chapters[c] = true
	}

	var results []model.Passage
	for _, p := range m.store.All() {
		if anchor.BookFilter != "" && !strings.Contains(strings.ToLower(p.Book), anchor.BookFilter) {
			continue
		}
		if chapters[p.Chapter] {
			results = append(results, p)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Chapter < results[j].Chapter
	})
	if len(results) > m.cap {
		results = results[:m.cap]
	}
	return results
}
