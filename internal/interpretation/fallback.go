package interpretation

import "github.com/lunehq/lune/internal/models"

func traitByDomain(traits []models.AstrologyInsight, domain string) string {
	for _, t := range traits {
		if t.Domain == domain {
			return t.Text
		}
	}
	return ""
}

// BuildFallback assembles a reading from the trait data alone. Used whenever
// generation is unavailable or returns something unusable; the caller can
// rely on every section being non-empty.
func BuildFallback(input Input) Output {
	identity := traitByDomain(input.Traits, "identity")
	emotional := traitByDomain(input.Traits, "emotional_nature")
	lifeFocus := traitByDomain(input.Traits, "life_theme")

	if identity == "" {
		identity = "The first house and ascendant describe the approach to the world."
	}
	if emotional == "" {
		emotional = "The Moon placement reflects inner rhythms and responsiveness."
	}
	if lifeFocus == "" {
		lifeFocus = "The Sun house indicates where life emphasis tends to fall."
	}

	return Output{
		Narrative: input.Summary + " The chart brings together identity, inner rhythm, and life emphasis.",
		Sections: Sections{
			Identity:        identity,
			EmotionalNature: emotional,
			LifeFocus:       lifeFocus,
			Integration:     "These factors work together in the chart. Each area touches the others.",
		},
	}
}
