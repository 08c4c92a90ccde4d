package verify

import (
	"math"
	"strings"
	"testing"

	"canonqa/internal/model"
)

const genesisContext = "[1] Reference: Genesis 1:26, Genesis 1:27\n" +
	"Text: And God said, Let us make man in our image, after our likeness. " +
	"So God created man in his own image.\n"

func TestVerifier_GroundedAnswer(t *testing.T) {
	v := NewVerifier(model.DefaultVerifyConfig())

	answer := "According to Genesis 1:26, God said 'Let us make man in our image'."
	result := v.Verify(answer, genesisContext)

	if result.Status != model.StatusFullyGrounded {
		t.Errorf("Expected fully_grounded, got %s", result.Status)
	}
	if result.HallucinationScore != 0.0 {
		t.Errorf("Expected hallucination score 0.0, got %f", result.HallucinationScore)
	}
	if result.Rejected {
		t.Error("Grounded answer must not be rejected")
	}
	if result.VerifiedAnswer != answer {
		t.Errorf("Grounded answer must pass through unchanged, got %q", result.VerifiedAnswer)
	}
	if len(result.Claims) != 1 || !result.Claims[0].Grounded {
		t.Fatalf("Expected one grounded claim, got %+v", result.Claims)
	}
	if result.Claims[0].Evidence == "" {
		t.Error("Grounded claim is missing its evidence window")
	}
}

func TestVerifier_HedgedUngroundedAnswerRejected(t *testing.T) {
	v := NewVerifier(model.DefaultVerifyConfig())

	context := "[1] Reference: Genesis 1:1\n" +
		"Text: In the beginning God created the heaven and the earth.\n"
	answer := "Some scholars argue Moses wrote the Pentateuch around 1400 BC."

	result := v.Verify(answer, context)

	if result.Status != model.StatusNotGrounded {
		t.Errorf("Expected not_grounded, got %s", result.Status)
	}
	if !result.Rejected {
		t.Fatal("Expected the answer to be rejected")
	}
	if result.HallucinationScore != 1.0 {
		t.Errorf("Expected hallucination score 1.0, got %f", result.HallucinationScore)
	}
	if !strings.HasPrefix(result.VerifiedAnswer, "Verification failed:") {
		t.Errorf("Expected the rejection template, got %q", result.VerifiedAnswer)
	}
	if strings.Contains(result.VerifiedAnswer, "Moses") {
		t.Error("Rejected answer text leaked into the verified answer")
	}
	if result.OriginalAnswer != answer {
		t.Error("Original answer must be preserved on the result")
	}
}

func TestVerifier_PartiallyGroundedBanner(t *testing.T) {
	v := NewVerifier(model.DefaultVerifyConfig())

	// First two claims ground in the context; the third is invented.
	answer := "God created man in his own image. " +
		"The passage states God made man after his likeness. " +
		"Archaeologists confirmed Babylonian parallels within cuneiform tablets."

	result := v.Verify(answer, genesisContext)

	if result.Status != model.StatusPartiallyGrounded {
		t.Fatalf("Expected partially_grounded, got %s (claims %+v)", result.Status, result.Claims)
	}
	if result.Rejected {
		t.Fatal("One ungrounded claim out of three must not reject")
	}
	if !strings.HasPrefix(result.VerifiedAnswer, "Partially grounded (67% grounded)") {
		t.Errorf("Expected the partial banner, got %q", result.VerifiedAnswer)
	}
	if !strings.Contains(result.VerifiedAnswer, answer) {
		t.Error("Banner must be prepended to the full original answer")
	}
	if len(result.Warnings) != 1 || !strings.HasPrefix(result.Warnings[0], "Ungrounded claim:") {
		t.Errorf("Expected one ungrounded-claim warning, got %v", result.Warnings)
	}
}

func TestVerifier_NoClaims(t *testing.T) {
	v := NewVerifier(model.DefaultVerifyConfig())

	result := v.Verify("Amen.", genesisContext)

	if result.Status != model.StatusFullyGrounded {
		t.Errorf("Expected fully_grounded for no claims, got %s", result.Status)
	}
	if result.HallucinationScore != 0.0 || result.Rejected {
		t.Errorf("No-claims result must not penalize: score %f rejected %v", result.HallucinationScore, result.Rejected)
	}
	if len(result.Warnings) != 1 || result.Warnings[0] != "No verifiable claims found in answer" {
		t.Errorf("Expected the no-claims warning, got %v", result.Warnings)
	}
}

func TestVerifier_Idempotent(t *testing.T) {
	v := NewVerifier(model.DefaultVerifyConfig())

	answer := "God created man in his own image. Quantum tunneling explains nothing here."
	first := v.Verify(answer, genesisContext)
	second := v.Verify(answer, genesisContext)

	if first.HallucinationScore != second.HallucinationScore ||
		first.Status != second.Status ||
		first.VerifiedAnswer != second.VerifiedAnswer {
		t.Error("Verification of the same inputs diverged between runs")
	}
}

func TestVerifier_ScoreAccounting(t *testing.T) {
	v := NewVerifier(model.DefaultVerifyConfig())

	answer := "God created man in his own image. " +
		"Cuneiform archaeology vindicates Babylonian chronology. " +
		"The passage states man was made after God's likeness."
	result := v.Verify(answer, genesisContext)

	// grounding rate and hallucination score partition the claim set
	sum := result.GroundingRate() + result.HallucinationScore
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("GroundingRate + HallucinationScore = %f, expected 1.0", sum)
	}
	if result.GroundedClaims+len(result.Warnings) != result.TotalClaims {
		t.Errorf("Every claim must be grounded or warned about: %d + %d != %d",
			result.GroundedClaims, len(result.Warnings), result.TotalClaims)
	}
}

func TestVerifier_CitationBonus(t *testing.T) {
	v := NewVerifier(model.DefaultVerifyConfig())

	// Same sparse wording with and without a citation the context carries.
	without := v.Verify("Mankind bears the divine resemblance somehow.", genesisContext)
	with := v.Verify("Mankind bears the divine resemblance per Genesis 1:26.", genesisContext)

	if len(without.Claims) != 1 || len(with.Claims) != 1 {
		t.Fatal("Expected exactly one claim per answer")
	}
	if with.Claims[0].Confidence <= without.Claims[0].Confidence {
		t.Errorf("Citation present in context must raise confidence: %f <= %f",
			with.Claims[0].Confidence, without.Claims[0].Confidence)
	}
}

func TestRejectionTemplate(t *testing.T) {
	msg := RejectionTemplate(0.75)
	if !strings.Contains(msg, "75%") {
		t.Errorf("Template must report the risk percentage, got %q", msg)
	}
	if !strings.HasPrefix(msg, "Verification failed:") {
		t.Errorf("Template must open with the failure marker, got %q", msg)
	}
}
