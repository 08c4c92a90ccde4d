package verify

import (
	"fmt"
	"regexp"
	"strings"

	"canonqa/internal/model"
)

// Verifier checks a generated answer against its retrieved context: every
// sentence becomes a claim, every claim gets a grounding confidence, and the
// aggregate decides whether the answer passes, gets flagged, or is replaced
// by a refusal. Scoring is deterministic and makes no external calls, so
// verifying the same (answer, context) pair twice yields identical results.
type Verifier struct {
	cfg model.VerifyConfig
}

// NewVerifier creates a verifier with the given grounding policy.
func NewVerifier(cfg model.VerifyConfig) *Verifier {
	return &Verifier{cfg: cfg}
}

// hedgingPhrases signal speculation the retrieved text cannot back.
var hedgingPhrases = []string{
	"according to tradition",
	"it is believed that",
	"some scholars argue",
	"the bible implies",
	"this might mean",
	"could be interpreted as",
	"historically speaking",
	"in my understanding",
	"generally speaking",
	"it's commonly thought",
}

// evidentiaryPhrases signal the answer is pointing at the text itself.
var evidentiaryPhrases = []string{
	"according to",
	"the passage states",
	"in the text",
	"as written in",
	"the verse says",
	"this passage describes",
}

var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "is": true, "are": true, "was": true,
	"were": true, "be": true, "been": true, "being": true, "have": true,
	"has": true, "had": true, "do": true, "does": true, "did": true,
	"will": true, "would": true, "could": true, "should": true, "may": true,
	"might": true, "must": true, "shall": true, "can": true, "this": true,
	"that": true, "these": true, "those": true, "i": true, "you": true,
	"he": true, "she": true, "it": true, "we": true, "they": true,
	"what": true, "which": true, "who": true, "whom": true, "and": true,
	"or": true, "but": true, "if": true, "then": true, "than": true,
	"so": true, "as": true, "of": true, "in": true, "on": true, "at": true,
	"by": true, "for": true, "with": true, "to": true, "from": true,
}

var wordPattern = regexp.MustCompile(`\b[a-z]+\b`)

// Verify runs the full verification pipeline for one answer.
func (v *Verifier) Verify(answer, context string) model.VerificationResult {
	claims := ExtractClaims(answer, v.cfg.MinClaimLength)

	if len(claims) == 0 {
		return model.VerificationResult{
			Status:         model.StatusFullyGrounded,
			OriginalAnswer: answer,
			VerifiedAnswer: answer,
			Warnings:       []string{"No verifiable claims found in answer"},
		}
	}

	var warnings []string
	grounded := 0
	for i := range claims {
		claims[i] = v.scoreClaim(claims[i], context)
		if claims[i].Grounded {
			grounded++
		} else {
			warnings = append(warnings, fmt.Sprintf("Ungrounded claim: %q", truncate(claims[i].Text, 50)))
		}
	}

	total := len(claims)
	hallucination := 1.0 - float64(grounded)/float64(total)

	status := model.StatusPartiallyGrounded
	switch grounded {
	case total:
		status = model.StatusFullyGrounded
	case 0:
		status = model.StatusNotGrounded
	}

	rejected := hallucination > v.cfg.RejectionThreshold
	verified := answer
	if rejected {
		verified = RejectionTemplate(hallucination)
	} else if hallucination > v.cfg.FlagThreshold {
		verified = fmt.Sprintf("Partially grounded (%.0f%% grounded)\n\n%s", (1-hallucination)*100, answer)
	}

	return model.VerificationResult{
		Status:             status,
		OriginalAnswer:     answer,
		VerifiedAnswer:     verified,
		Claims:             claims,
		GroundedClaims:     grounded,
		TotalClaims:        total,
		HallucinationScore: hallucination,
		Warnings:           warnings,
		Rejected:           rejected,
	}
}

// scoreClaim computes the grounding confidence for one claim:
// word-overlap ratio, plus a bonus for citations present in the context,
// plus a bonus for evidentiary phrasing, minus a penalty for hedging.
func (v *Verifier) scoreClaim(claim model.Claim, context string) model.Claim {
	claimLower := strings.ToLower(claim.Text)
	contextLower := strings.ToLower(context)

	var content []string
	for _, w := range wordPattern.FindAllString(claimLower, -1) {
		if !stopWords[w] && len(w) > 3 {
			content = append(content, w)
		}
	}

	if len(content) == 0 {
		// Nothing to check against the text; vacuously grounded.
		claim.Grounded = true
		claim.Confidence = 1.0
		return claim
	}

	found := 0
	for _, w := range content {
		if strings.Contains(contextLower, w) {
			found++
		}
	}
	confidence := float64(found) / float64(len(content))

	for _, c := range claim.Citations {
		if strings.Contains(contextLower, strings.ToLower(c)) {
			confidence += v.cfg.CitationBonus
			break
		}
	}
	for _, p := range hedgingPhrases {
		if strings.Contains(claimLower, p) {
			confidence -= v.cfg.HedgingPenalty
			break
		}
	}
	for _, p := range evidentiaryPhrases {
		if strings.Contains(claimLower, p) {
			confidence += v.cfg.GroundingBonus
			break
		}
	}

	if confidence > 1.0 {
		confidence = 1.0
	}
	if confidence < 0.0 {
		confidence = 0.0
	}

	claim.Confidence = confidence
	claim.Grounded = confidence >= v.cfg.GroundingThreshold

	if claim.Grounded {
		claim.Evidence = evidenceWindow(context, contextLower, content)
	}
	return claim
}

// evidenceWindow returns the context around the first matched content word
// as a human-readable grounding snippet.
func evidenceWindow(context, contextLower string, content []string) string {
	for _, w := range content {
		idx := strings.Index(contextLower, w)
		if idx < 0 {
			continue
		}
		start := idx - 50
		if start < 0 {
			start = 0
		}
		end := idx + 100
		if end > len(context) {
			end = len(context)
		}
		return strings.TrimSpace(context[start:end])
	}
	return ""
}

// RejectionTemplate is the fixed replacement for answers that fail
// verification. No partial credit: the caller sees the refusal and the raw
// sources, never fragments of the rejected text.
func RejectionTemplate(hallucination float64) string {
	return fmt.Sprintf("Verification failed: the generated answer contains claims that could not "+
		"be verified against the retrieved passages. Hallucination risk: %.0f%%.\n\n"+
		"Please review the source passages directly for accurate information.", hallucination*100)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
