package vectorstore

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
)

// TFIDFEmbedder is an offline TF-IDF vectorizer. It needs no API access,
// which makes it the default: the corpus is fixed, so a fitted vocabulary
// is a perfectly serviceable embedding space for similarity search.
type TFIDFEmbedder struct {
	vocabulary   map[string]int
	idf          []float64
	dimension    int
	prepared     bool
	tokenPattern *regexp.Regexp
}

// NewTFIDFEmbedder creates an unprepared TF-IDF embedder.
func NewTFIDFEmbedder() *TFIDFEmbedder {
	return &TFIDFEmbedder{
		vocabulary:   make(map[string]int),
		tokenPattern: regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`),
	}
}

// Name returns the embedder identifier.
func (e *TFIDFEmbedder) Name() string { return "tfidf" }

// Dimension returns the vocabulary size once prepared.
func (e *TFIDFEmbedder) Dimension() int { return e.dimension }

// Prepare builds the vocabulary and smoothed IDF values from the corpus.
func (e *TFIDFEmbedder) Prepare(corpus []string) error {
	if len(corpus) == 0 {
		return fmt.Errorf("empty corpus for TF-IDF prepare")
	}

	df := make(map[string]int)
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, tok := range e.tokenize(text) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	if len(terms) == 0 {
		return fmt.Errorf("no tokens found in corpus")
	}

	e.vocabulary = make(map[string]int, len(terms))
	e.idf = make([]float64, len(terms))
	n := float64(len(corpus))
	for i, term := range terms {
		e.vocabulary[term] = i
		e.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	e.dimension = len(terms)
	e.prepared = true
	return nil
}

// Embed computes the L2-normalized TF-IDF vector for the text.
func (e *TFIDFEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	if !e.prepared {
		return nil, fmt.Errorf("tfidf embedder not prepared")
	}

	vec := make([]float64, e.dimension)
	tf := make(map[int]int)
	total := 0
	for _, tok := range e.tokenize(text) {
		if idx, ok := e.vocabulary[tok]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec, nil
	}

	for idx, count := range tf {
		vec[idx] = float64(count) / float64(total) * e.idf[idx]
	}

	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec, nil
}

func (e *TFIDFEmbedder) tokenize(text string) []string {
	return e.tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// State captures the fitted vocabulary for index persistence.
type TFIDFState struct {
	Terms []string
	IDF   []float64
}

// State exports the fitted vocabulary, or nil when unprepared.
func (e *TFIDFEmbedder) State() *TFIDFState {
	if !e.prepared {
		return nil
	}
	terms := make([]string, e.dimension)
	for term, idx := range e.vocabulary {
		terms[idx] = term
	}
	return &TFIDFState{Terms: terms, IDF: e.idf}
}

// Restore rehydrates a fitted vocabulary from a persisted index.
func (e *TFIDFEmbedder) Restore(state *TFIDFState) error {
	if state == nil || len(state.Terms) == 0 || len(state.Terms) != len(state.IDF) {
		return fmt.Errorf("invalid tfidf state")
	}
	e.vocabulary = make(map[string]int, len(state.Terms))
	for i, term := range state.Terms {
		e.vocabulary[term] = i
	}
	e.idf = state.IDF
	e.dimension = len(state.Terms)
	e.prepared = true
	return nil
}
