package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lunehq/lune/internal/interfaces"
)

// Fixed responses for the guarded paths. These are user-facing sentences and
// must not change casually.
const (
	unsafeResponseText = "This question goes beyond what astrology can safely explore. It may help to speak with a qualified professional."
	unavailableText    = "Astrology chat is not available at the moment. Please try again later."
	emptyResponseText  = "I could not generate a response. Please try rephrasing your question."
	errorResponseText  = "Astrology chat is temporarily unavailable. Please try again later."
)

const chatTemperature = 0.4

func maxTokensFor(length string) int32 {
	if length == "medium" {
		return 220
	}
	return 120
}

func buildSystemPrompt(allowedSections []string) string {
	return fmt.Sprintf(`You are a traditional astrologer. Your role is to explain chart symbolism in clear, grounded language.

STRICT RULES - NEVER VIOLATE:
- Do NOT make predictions about the future.
- Do NOT diagnose, label, or use psychology or medical terms.
- Do NOT express certainty ("you will", "you should", "definitely").
- Use simple English. Calm, grounded tone. Symbolic language only.
- Limit your discussion to these context sections: %s.
- Explain what the chart suggests. Do not advise or prescribe.`, strings.Join(allowedSections, ", "))
}

func buildUserPrompt(opening string, astroContext Context, closing string) (string, error) {
	contextJSON, err := json.Marshal(astroContext)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`%s

Astrology context (use only relevant sections):
%s

Instructions: Explain what the chart indicates in relation to the user's question. Use symbolic, traditional language. Do not advise. Do not predict. End with a brief grounded note.

%s`, opening, strings.TrimSpace(string(contextJSON)), closing), nil
}

// GenerateResponse produces the chat reply. Unsafe intents never reach the
// client; every failure path maps to a fixed sentence so the endpoint always
// answers 200 with text.
func GenerateResponse(ctx context.Context, client interfaces.GenerativeClient, astroContext Context, intent Intent, frame Frame) string {
	if !intent.Safe {
		return unsafeResponseText
	}

	if client == nil {
		return unavailableText
	}

	userPrompt, err := buildUserPrompt(frame.OpeningStyle, astroContext, frame.ClosingStyle)
	if err != nil {
		return errorResponseText
	}

	content, err := client.Generate(ctx, interfaces.GenerateRequest{
		System:      buildSystemPrompt(frame.AllowedSections),
		Prompt:      userPrompt,
		Temperature: chatTemperature,
		MaxTokens:   maxTokensFor(frame.Length),
	})
	if err != nil {
		return errorResponseText
	}

	text := strings.TrimSpace(content)
	if text == "" {
		return emptyResponseText
	}
	return text
}
