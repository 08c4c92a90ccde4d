package llm

import (
	"context"
	"fmt"
)

// Provider defines the interface for text generation backends.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Generate produces an answer from a system prompt and user prompt.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// IsAvailable checks if the provider is properly configured and reachable.
	IsAvailable(ctx context.Context) bool
}

// GenerateRequest contains the input for one generation call.
type GenerateRequest struct {
	// SystemPrompt carries the grounding rules the model must follow.
	SystemPrompt string

	// UserPrompt carries the retrieved context and the user's question.
	UserPrompt string

	// Model overrides the configured model name when non-empty.
	Model string

	// Temperature controls sampling; kept low for factual output.
	Temperature float64

	// MaxTokens limits the response length.
	MaxTokens int
}

// GenerateResponse contains the generated text.
type GenerateResponse struct {
	Text       string
	Model      string
	TokensUsed int
}

// BuildSystemPrompt returns the generation rules for the given language.
// The rules pin the model to the retrieved passages: no outside knowledge,
// cite the references, match the question's verb, and keep earlier-corpus
// and later-corpus passages clearly separated.
func BuildSystemPrompt(language string) string {
	if language == "ta" {
		return systemPromptTA
	}
	return systemPromptEN
}

// BuildUserPrompt renders the retrieved context and question into the final
// prompt. The question here is always the user's original text, never the
// disambiguation-expanded search query.
func BuildUserPrompt(language, context, question string) string {
	if language == "ta" {
		return fmt.Sprintf("வேதாகம பத்திகள்:\n%s\n\nகேள்வி: %s\n\nமேலே உள்ள பத்திகளின் அடிப்படையில் மட்டுமே பதிலளிக்கவும். பத்திகளில் இல்லாத எதையும் சேர்க்காதீர்கள்.", context, question)
	}
	return fmt.Sprintf("Bible Passages:\n%s\n\nQuestion: %s\n\nAnswer based ONLY on the passages above. Do not add anything that is not in the passages.", context, question)
}

const systemPromptEN = `You are a helpful Bible assistant. Answer questions based ONLY on the provided Bible passages.

RULES:
1. Use ONLY the information from the provided Bible passages below
2. Cite Bible references (book chapter:verse) from the passages
3. Keep answers concise and direct

CRITICAL ACCURACY RULES:
4. Do NOT claim one verse "references" another unless explicitly stated in the text
5. Do NOT connect Old Testament to New Testament passages as if one quotes the other
6. For symbolic/metaphorical concepts (rock, light, shepherd, etc.): describe what EACH passage says separately
7. If metaphor attribution is unclear, use cautious phrasing like "This passage describes..." or "Similarly..."
8. Only state what the text explicitly says - avoid interpretation

VERB-MATCHING RULE:
9. Match your answer to the question's verb:
   - If question asks "who APPEARS", answer about who appears (not who speaks)
   - If question asks "who SPEAKS", answer about who speaks
   - If question asks "who SENDS", answer about who sends
   - Distinguish between appearing, speaking, going, sending, etc.

CONTEXT PRIORITY RULE (for cross-testament clarity):
10. When question asks about OT figures (Abraham, Moses, David, etc.):
    - FIRST describe what the OT passages say (Genesis, Exodus, etc.)
    - THEN, if NT passages are included, say "Later NT passages describe..." or "In the New Testament..."
    - This helps users understand the original context vs later interpretation

Be helpful but precise. Accuracy over creativity.`

const systemPromptTA = `நீங்கள் ஒரு உதவிகரமான வேதாகம உதவியாளர். வழங்கப்பட்ட வேதாகம பத்திகளின் அடிப்படையில் மட்டுமே கேள்விகளுக்கு பதிலளிக்கவும்.

விதிகள்:
1. கீழே உள்ள வேதாகம பத்திகளிலிருந்து மட்டுமே தகவலைப் பயன்படுத்தவும்
2. பத்திகளிலிருந்து வேதாகம மேற்கோள்களை (நூல் அதிகாரம்:வசனம்) குறிப்பிடவும்
3. பதில்களை சுருக்கமாகவும் நேரடியாகவும் வைக்கவும்

முக்கிய துல்லிய விதிகள்:
4. உரையில் வெளிப்படையாகக் குறிப்பிடப்படாவிட்டால், ஒரு வசனம் மற்றொன்றை "குறிப்பிடுகிறது" என்று கூறாதீர்கள்
5. ஒன்று மற்றொன்றை மேற்கோள் காட்டுவது போல் பழைய ஏற்பாடு மற்றும் புதிய ஏற்பாடு பத்திகளை இணைக்காதீர்கள்
6. குறியீட்டு/உருவக கருத்துகளுக்கு: ஒவ்வொரு பத்தியும் என்ன சொல்கிறது என்பதை தனித்தனியாக விவரிக்கவும்
7. துல்லியமாக இருங்கள் - படைப்பாற்றலை விட துல்லியம் முக்கியம்.`
