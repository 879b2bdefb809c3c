package interpretation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lunehq/lune/internal/common"
	"github.com/lunehq/lune/internal/interfaces"
)

const systemPrompt = `You are an astrology text rewriter. You receive structured astrology data and produce a short, grounded narrative.

STRICT RULES - NEVER VIOLATE:
- Do NOT use: diagnosis, disorders, trauma, therapy, mental health labels, personality tests.
- Do NOT make predictions, give advice, or claim future outcomes.
- Do NOT use medical or psychological terminology.
- Do NOT use authoritative certainty ("you will", "you should", "definitely", "certainly").
- Use simple English. Traditional astrology wording. Grounded, reflective tone. No emotional manipulation. No modern or AI-sounding phrases.
- Output valid JSON only.`

const (
	generateTemperature = 0.4
	generateMaxTokens   = 400
)

func buildUserPrompt(input Input) string {
	lines := make([]string, 0, len(input.Traits))
	for _, t := range input.Traits {
		lines = append(lines, fmt.Sprintf("[%s] %s", t.Domain, t.Text))
	}
	return fmt.Sprintf(`Astrology summary: %s

Traits (domain + text):
%s

Produce a JSON object with exactly these keys:
- "narrative": A 2-3 sentence overview. Simple English, traditional astrology tone.
- "sections": An object with keys "identity", "emotional_nature", "life_focus", "integration". Each value is 1-2 sentences. Use the trait data. For "integration", write how these areas connect in the chart. No advice, no predictions.`,
		input.Summary, strings.Join(lines, "\n"))
}

func parseResponse(content string) (Output, bool) {
	var raw struct {
		Narrative string `json:"narrative"`
		Sections  *struct {
			Identity        string `json:"identity"`
			EmotionalNature string `json:"emotional_nature"`
			LifeFocus       string `json:"life_focus"`
			Integration     string `json:"integration"`
		} `json:"sections"`
	}
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return Output{}, false
	}
	if raw.Sections == nil {
		return Output{}, false
	}
	return Output{
		Narrative: SanitizeOutput(raw.Narrative),
		Sections: Sections{
			Identity:        SanitizeOutput(raw.Sections.Identity),
			EmotionalNature: SanitizeOutput(raw.Sections.EmotionalNature),
			LifeFocus:       SanitizeOutput(raw.Sections.LifeFocus),
			Integration:     SanitizeOutput(raw.Sections.Integration),
		},
	}, true
}

// Generate produces the narrative reading. The generated text is sanitized
// through the guardrails; any client failure or malformed response falls back
// to the deterministic reading. client may be nil.
func Generate(ctx context.Context, client interfaces.GenerativeClient, logger *common.Logger, input Input) Output {
	if client == nil {
		return BuildFallback(input)
	}

	content, err := client.Generate(ctx, interfaces.GenerateRequest{
		System:      systemPrompt,
		Prompt:      buildUserPrompt(input),
		Temperature: generateTemperature,
		MaxTokens:   generateMaxTokens,
		JSONOutput:  true,
	})
	if err != nil {
		if logger != nil {
			logger.Warn().Err(err).Msg("Interpretation generation failed, using fallback")
		}
		return BuildFallback(input)
	}
	if strings.TrimSpace(content) == "" {
		return BuildFallback(input)
	}

	if parsed, ok := parseResponse(content); ok {
		return parsed
	}
	return BuildFallback(input)
}
