package chat

// Frame controls tone, voice, and scope of a generated response. Built
// deterministically from intent before any generation happens.
type Frame struct {
	Tone            string   `json:"tone"`
	Voice           string   `json:"voice"`
	Length          string   `json:"length"`
	AllowedSections []string `json:"allowed_sections"`
	OpeningStyle    string   `json:"opening_style"`
	ClosingStyle    string   `json:"closing_style"`
}

func frameTone(depth string) string {
	switch depth {
	case DepthSurface:
		return "grounded"
	case DepthReflective:
		return "gentle"
	case DepthExistential:
		return "reflective"
	default:
		return "grounded"
	}
}

func frameVoice(domain string) string {
	if domain == DomainBeliefAndMeaning {
		return "guru_like"
	}
	return "neutral_astrologer"
}

func frameLength(depth string) string {
	if depth == DepthReflective || depth == DepthExistential {
		return "medium"
	}
	return "short"
}

var allowedSectionsByDomain = map[string][]string{
	DomainRelationships:    {"relationships", "identity"},
	DomainEmotionalLife:    {"inner_world"},
	DomainWorkAndDuty:      {"work_and_duty"},
	DomainBeliefAndMeaning: {"growth_and_belief", "previous_life"},
	DomainIdentity:         {"identity"},
	DomainGeneral:          {"summary"},
}

var openingByTone = map[string]string{
	"grounded":   "Let us look at this calmly.",
	"gentle":     "This can be understood with some patience.",
	"reflective": "This question touches a deeper layer.",
}

var closingByVoice = map[string]string{
	"neutral_astrologer": "This reflects the structure of the chart.",
	"guru_like":          "This understanding unfolds over time.",
}

// BuildResponseFrame derives the response frame from intent.
func BuildResponseFrame(intent Intent) Frame {
	tone := frameTone(intent.Depth)
	voice := frameVoice(intent.Domain)

	sections, ok := allowedSectionsByDomain[intent.Domain]
	if !ok {
		sections = []string{"summary"}
	}

	return Frame{
		Tone:            tone,
		Voice:           voice,
		Length:          frameLength(intent.Depth),
		AllowedSections: sections,
		OpeningStyle:    openingByTone[tone],
		ClosingStyle:    closingByVoice[voice],
	}
}
