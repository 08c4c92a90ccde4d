package model

// Claim represents one sentence-level assertion extracted from a generated
// answer for grounding evaluation. Claims live only for the duration of a
// single verification pass.
type Claim struct {
	Text       string   `json:"text"`                // The claim sentence
	Citations  []string `json:"citations,omitempty"` // "Book Chapter:Verse" strings found in the sentence
	Grounded   bool     `json:"grounded"`            // Whether the claim passed the grounding threshold
	Confidence float64  `json:"confidence"`          // Grounding confidence in [0,1]
	Evidence   string   `json:"evidence,omitempty"`  // Context snippet supporting the claim, if any
}

// VerificationStatus summarizes how much of an answer was grounded.
type VerificationStatus string

const (
	StatusFullyGrounded     VerificationStatus = "fully_grounded"
	StatusPartiallyGrounded VerificationStatus = "partially_grounded"
	StatusNotGrounded       VerificationStatus = "not_grounded"
)

// VerificationResult is the complete outcome of verifying one answer against
// its retrieved context.
type VerificationResult struct {
	Status             VerificationStatus `json:"status"`
	OriginalAnswer     string             `json:"original_answer"` // Kept for audit, never the primary text once rejected
	VerifiedAnswer     string             `json:"verified_answer"`
	Claims             []Claim            `json:"claims"`
	GroundedClaims     int                `json:"grounded_claims"`
	TotalClaims        int                `json:"total_claims"`
	HallucinationScore float64            `json:"hallucination_score"` // 1 - grounded/total, 0 for no claims
	Warnings           []string           `json:"warnings,omitempty"`
	Rejected           bool               `json:"rejected"`
}

// GroundingRate returns the fraction of claims judged grounded. An answer
// with no extractable claims is vacuously fully grounded.
func (r VerificationResult) GroundingRate() float64 {
	if r.TotalClaims == 0 {
		return 1.0
	}
	return float64(r.GroundedClaims) / float64(r.TotalClaims)
}
