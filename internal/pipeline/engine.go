package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"

	"canonqa/internal/llm"
	"canonqa/internal/model"
	"canonqa/internal/retrieve"
	"canonqa/internal/verify"
)

// Engine is the verified query facade: router, generation collaborator and
// verifier composed into one call. Each request runs the stages
// synchronously and to completion; the only shared state is the read-only
// corpus and the metrics counters.
type Engine struct {
	router   *retrieve.Router
	provider llm.Provider // nil when generation is disabled
	verifier *verify.Verifier
	cfg      *model.Config
	metrics  *Metrics
}

// New composes an engine over a corpus store and search collaborator.
// provider may be nil; queries then return the deterministic passage dump.
func New(store retrieve.PassageSource, searcher retrieve.Searcher, provider llm.Provider, cfg *model.Config) *Engine {
	return &Engine{
		router:   retrieve.NewRouter(store, searcher, cfg.Retrieval),
		provider: provider,
		verifier: verify.NewVerifier(cfg.Verify),
		cfg:      cfg,
		metrics:  NewMetrics(),
	}
}

// Query answers one question: route, generate, verify.
func (e *Engine) Query(ctx context.Context, question string, topK int) (*model.QueryResponse, error) {
	out, err := e.router.Route(ctx, question, topK)
	if err != nil {
		return nil, fmt.Errorf("route query: %w", err)
	}

	if out.Refusal != nil {
		return &model.QueryResponse{
			Answer:   out.Refusal.Message,
			Sources:  []string{},
			ErrorTag: model.ErrTagVerseNotFound,
		}, nil
	}
	if out.NoEvidence() {
		return &model.QueryResponse{
			Answer:   noEvidenceText(e.cfg.Language),
			Sources:  []string{},
			ErrorTag: model.ErrTagNoEvidence,
		}, nil
	}

	answer := e.generate(ctx, question, out.Context)
	answer = decorate(answer, out)

	resp := &model.QueryResponse{
		Answer:  answer,
		Sources: out.Results.Sources(),
		Context: out.Context,
	}
	if resp.Sources == nil {
		resp.Sources = []string{}
	}

	if !e.cfg.Verify.Enabled {
		return resp, nil
	}

	vr := e.verifier.Verify(answer, out.Context)
	resp.Answer = vr.VerifiedAnswer
	resp.Verification = &model.VerificationSummary{
		Status:             vr.Status,
		HallucinationScore: vr.HallucinationScore,
		GroundingRate:      vr.GroundingRate(),
		Rejected:           vr.Rejected,
		Warnings:           vr.Warnings,
	}
	e.metrics.Record(vr)

	return resp, nil
}

// generate calls the generation backend with the original question (never
// the expanded search query). Backend failures fall back to the
// deterministic passage dump; generation being down is not a query error.
func (e *Engine) generate(ctx context.Context, question, context_ string) string {
	if e.provider == nil {
		return fallbackText(e.cfg.Language, context_)
	}

	resp, err := e.provider.Generate(ctx, llm.GenerateRequest{
		SystemPrompt: llm.BuildSystemPrompt(e.cfg.Language),
		UserPrompt:   llm.BuildUserPrompt(e.cfg.Language, context_, question),
		Model:        e.cfg.LLM.Model,
		Temperature:  e.cfg.LLM.Temperature,
		MaxTokens:    e.cfg.LLM.MaxTokens,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: generation failed: %v\n", err)
		return fallbackText(e.cfg.Language, context_)
	}
	return resp.Text
}

// decorate prepends the route note and appends the disambiguation note and
// coherence warning. The verifier skips these lines by their markers.
func decorate(answer string, out *retrieve.Outcome) string {
	var parts []string
	if out.RouteNote != "" {
		parts = append(parts, out.RouteNote)
	}
	parts = append(parts, answer)
	if out.Disambiguation != "" {
		parts = append(parts, out.Disambiguation)
	}
	if out.Warning != "" {
		parts = append(parts, out.Warning)
	}
	return strings.Join(parts, "\n\n")
}

// Metrics returns the engine's aggregate verification metrics.
func (e *Engine) Metrics() MetricsSnapshot {
	return e.metrics.Snapshot()
}
