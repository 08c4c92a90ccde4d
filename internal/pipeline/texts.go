package pipeline

import "fmt"

// Localized user-facing templates. Verification templates stay in the
// verify package; only retrieval-level responses are translated.

func noEvidenceText(language string) string {
	if language == "ta" {
		return "மன்னிக்கவும், உங்கள் கேள்விக்கு பொருத்தமான வேதாகம பத்திகளைக் கண்டுபிடிக்க முடியவில்லை. தயவுசெய்து உங்கள் கேள்வியை மீண்டும் உருவாக்கவும்."
	}
	return "Sorry, I couldn't find relevant passages for your question. Please try rephrasing it."
}

// fallbackText is the deterministic response used when no generation
// backend is configured or the backend call fails: the raw passages, so the
// caller always gets the evidence even without prose.
func fallbackText(language, context string) string {
	if language == "ta" {
		return fmt.Sprintf("வழங்கப்பட்ட வேதாகம பத்திகள்:\n\n%s\n\nதயவுசெய்து மேலே உள்ள பத்திகளிலிருந்து பதிலைப் படிக்கவும்.", context)
	}
	return fmt.Sprintf("Retrieved passages:\n\n%s\n\nPlease read the answer from the passages above.", context)
}
