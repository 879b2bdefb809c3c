// Package chat implements the single-turn reflective chat pipeline: intent
// detection, response framing, context assembly, and guarded generation.
// Every stage before generation is keyword-based and deterministic.
package chat

import "strings"

// Intent domains and depths.
const (
	DomainIdentity         = "identity"
	DomainRelationships    = "relationships"
	DomainWorkAndDuty      = "work_and_duty"
	DomainEmotionalLife    = "emotional_life"
	DomainBeliefAndMeaning = "belief_and_meaning"
	DomainGeneral          = "general"

	DepthSurface     = "surface"
	DepthReflective  = "reflective"
	DepthExistential = "existential"
)

// Intent classifies a chat message for routing. Unsafe intents never reach
// the generative client.
type Intent struct {
	Domain string   `json:"domain"`
	Depth  string   `json:"depth"`
	Safe   bool     `json:"safe"`
	Flags  []string `json:"flags"`
}

// Domain keyword order matters: the first domain with a hit wins.
var (
	identityKeywords      = []string{"self", "personality", "who am i", "identity", "who i am"}
	relationshipKeywords  = []string{"love", "marriage", "partner", "breakup", "relationship", "spouse", "romance"}
	workKeywords          = []string{"job", "career", "work", "duty", "money", "income", "profession"}
	emotionalKeywords     = []string{"feelings", "emotions", "inner", "mood", "emotion", "feeling"}
	beliefKeywords        = []string{"purpose", "path", "destiny", "meaning"}
	depthSurfaceTerms     = []string{"what", "does this mean", "what does", "means"}
	depthReflectiveTerms  = []string{"why", "pattern", "feel", "understand", "sense"}
	depthExistentialTerms = []string{"purpose", "path", "destiny", "meaning of life", "why am i"}
	flagFatalismTerms     = []string{"fate", "doomed", "fixed forever"}
	flagDependencyTerms   = []string{"tell me what to do", "decide for me"}
	flagMedicalTerms      = []string{"depression", "anxiety", "illness", "suicide", "therapy", "diagnosis"}
)

func containsAny(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

func detectDomain(lower string) string {
	switch {
	case containsAny(lower, identityKeywords):
		return DomainIdentity
	case containsAny(lower, relationshipKeywords):
		return DomainRelationships
	case containsAny(lower, workKeywords):
		return DomainWorkAndDuty
	case containsAny(lower, emotionalKeywords):
		return DomainEmotionalLife
	case containsAny(lower, beliefKeywords):
		return DomainBeliefAndMeaning
	default:
		return DomainGeneral
	}
}

func detectDepth(lower string) string {
	switch {
	case containsAny(lower, depthExistentialTerms):
		return DepthExistential
	case containsAny(lower, depthReflectiveTerms):
		return DepthReflective
	case containsAny(lower, depthSurfaceTerms):
		return DepthSurface
	default:
		return DepthSurface
	}
}

func collectFlags(lower string) []string {
	flags := []string{}
	if containsAny(lower, flagFatalismTerms) {
		flags = append(flags, "fatalism")
	}
	if containsAny(lower, flagDependencyTerms) {
		flags = append(flags, "dependency")
	}
	if containsAny(lower, flagMedicalTerms) {
		flags = append(flags, "medical_or_mental")
	}
	return flags
}

// DetectIntent classifies a message by substring matching against fixed
// keyword tables. Case-insensitive; a medical_or_mental flag marks the intent
// unsafe.
func DetectIntent(message string) Intent {
	lower := strings.ToLower(strings.TrimSpace(message))
	flags := collectFlags(lower)

	safe := true
	for _, f := range flags {
		if f == "medical_or_mental" {
			safe = false
			break
		}
	}

	return Intent{
		Domain: detectDomain(lower),
		Depth:  detectDepth(lower),
		Safe:   safe,
		Flags:  flags,
	}
}
