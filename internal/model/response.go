package model

// Error tags for terminal query conditions. These are response values, not
// Go errors: a query that refuses or finds nothing still returns normally.
const (
	ErrTagVerseNotFound = "verse_not_found"
	ErrTagNoEvidence    = "no_evidence"
)

// QueryResponse is the final product of one verified query.
type QueryResponse struct {
	Answer   string   `json:"answer"`
	Sources  []string `json:"sources"`
	Context  string   `json:"context,omitempty"`
	ErrorTag string   `json:"error,omitempty"` // verse_not_found or no_evidence when terminal

	// Verification is nil when verification is disabled or the query
	// terminated before generation.
	Verification *VerificationSummary `json:"verification,omitempty"`
}

// VerificationSummary is the caller-facing slice of a VerificationResult.
type VerificationSummary struct {
	Status             VerificationStatus `json:"status"`
	HallucinationScore float64            `json:"hallucination_score"`
	GroundingRate      float64            `json:"grounding_rate"`
	Rejected           bool               `json:"rejected"`
	Warnings           []string           `json:"warnings,omitempty"`
}
