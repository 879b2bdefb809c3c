package astro

import (
	"fmt"
	"strings"

	"github.com/lunehq/lune/internal/models"
)

// supportedSystems is the exact-match whitelist for previous-life
// derivation. Charts built by BuildWholeSignChart carry the system label
// "whole_sign", which does not match the title-cased "Whole Sign" entry
// here, so built charts yield no previous-life narrative.
// TODO: reconcile the system label with this whitelist.
var supportedSystems = []string{"Placidus", "Whole Sign", "Koch", "Equal", "Regiomontanus"}

// 12th house sign -> inherited pattern theme (brief form).
var briefSignThemes = map[string]string{
	"Aries":       "A tendency toward solitude as a forge for independence.",
	"Taurus":      "An inherited pattern of seeking quiet stability and material release.",
	"Gemini":      "An inherited pattern of mental restlessness in confinement.",
	"Cancer":      "A tendency toward emotional depth carried from private experience.",
	"Leo":         "An inherited pattern of creativity turned inward.",
	"Virgo":       "A tendency toward service rendered in obscurity.",
	"Libra":       "An inherited pattern of seeking harmony in isolation.",
	"Scorpio":     "A tendency toward transformation through hidden depths.",
	"Sagittarius": "An inherited pattern of faith tested in solitude.",
	"Capricorn":   "A tendency toward discipline earned through restriction.",
	"Aquarius":    "An inherited pattern of detachment from worldly ties.",
	"Pisces":      "A tendency toward dissolution of boundaries and surrender.",
}

var rulerStrengths = map[string]string{
	"Sun":     "A carried strength in vitality and purpose.",
	"Moon":    "A carried strength in instinct and receptivity.",
	"Mercury": "A carried strength in perception and adaptation.",
	"Venus":   "A carried strength in connection and discernment.",
	"Mars":    "A carried strength in courage and initiative.",
	"Jupiter": "A carried strength in faith and expansion.",
	"Saturn":  "A carried strength in endurance and structure.",
}

var rulerChallenges = map[string]string{
	"Sun":     "A carried challenge in expressing the core self openly.",
	"Moon":    "A carried challenge in boundaries between self and other.",
	"Mercury": "A carried challenge in quieting the restless mind.",
	"Venus":   "A carried challenge in releasing attachment to outcomes.",
	"Mars":    "A carried challenge in channeling force without aggression.",
	"Jupiter": "A carried challenge in humility amid expansion.",
	"Saturn":  "A carried challenge in softening self-imposed limits.",
}

var signShifts = map[string]string{
	"Aries":       "This life emphasizes bringing hidden fire into visible action.",
	"Taurus":      "This life emphasizes grounding what was once unmoored.",
	"Gemini":      "This life emphasizes giving voice to what was silent.",
	"Cancer":      "This life emphasizes nurturing what was held back.",
	"Leo":         "This life emphasizes shining what was kept in shadow.",
	"Virgo":       "This life emphasizes practical use of refined discernment.",
	"Libra":       "This life emphasizes balance between solitude and connection.",
	"Scorpio":     "This life emphasizes conscious use of transformative power.",
	"Sagittarius": "This life emphasizes embodying faith in daily life.",
	"Capricorn":   "This life emphasizes building structure from restriction.",
	"Aquarius":    "This life emphasizes connecting inner vision to the collective.",
	"Pisces":      "This life emphasizes navigating compassion without losing self.",
}

// 12th house sign -> inherited theme (insight form, full sentence).
var insightSignThemes = map[string]string{
	"Aries":       "The twelfth house in Aries suggests an inherited pattern of solitude as a forge for independence.",
	"Taurus":      "The twelfth house in Taurus suggests an inherited pattern of seeking quiet stability and material release.",
	"Gemini":      "The twelfth house in Gemini suggests an inherited pattern of mental restlessness within confinement.",
	"Cancer":      "The twelfth house in Cancer suggests an inherited pattern of emotional depth carried from private experience.",
	"Leo":         "The twelfth house in Leo suggests an inherited pattern of creativity turned inward.",
	"Virgo":       "The twelfth house in Virgo suggests an inherited pattern of service and refinement in obscurity.",
	"Libra":       "The twelfth house in Libra suggests an inherited pattern of seeking harmony in isolation.",
	"Scorpio":     "The twelfth house in Scorpio suggests an inherited pattern of transformation through hidden depths.",
	"Sagittarius": "The twelfth house in Sagittarius suggests an inherited pattern of faith tested in solitude.",
	"Capricorn":   "The twelfth house in Capricorn suggests an inherited pattern of discipline earned through restriction.",
	"Aquarius":    "The twelfth house in Aquarius suggests an inherited pattern of detachment from worldly ties.",
	"Pisces":      "The twelfth house in Pisces suggests an inherited pattern of dissolution, sacrifice, and surrender.",
}

var rulerUnresolved = map[string]string{
	"Sun":     "The ruler indicates a carried pattern around visibility and core expression.",
	"Moon":    "The ruler indicates a carried pattern around boundaries and receptivity.",
	"Mercury": "The ruler indicates a carried pattern around the restless mind and adaptation.",
	"Venus":   "The ruler indicates a carried pattern around attachment and discernment.",
	"Mars":    "The ruler indicates a carried pattern around force and initiative.",
	"Jupiter": "The ruler indicates a carried pattern around expansion and humility.",
	"Saturn":  "The ruler indicates a carried pattern around structure and self-imposed limits.",
}

// Ruler's own house -> where the pattern tends to reappear.
var houseDomains = map[int]string{
	1:  "identity and self-presentation",
	2:  "resources and values",
	3:  "communication and local ties",
	4:  "roots, family, and inner foundation",
	5:  "creativity and self-expression",
	6:  "service, health, and daily routine",
	7:  "partnership and open dealings",
	8:  "transformation and shared resources",
	9:  "philosophy, travel, and higher meaning",
	10: "vocation and public standing",
	11: "community, ideals, and future vision",
	12: "inner life and release",
}

var twelfthHouseModifiers = map[string]string{
	"Sun":     "The Sun here accents vitality and purpose within the inherited theme.",
	"Moon":    "The Moon here accents instinct and receptivity within the inherited theme.",
	"Mercury": "Mercury here accents perception and mental activity within the inherited theme.",
	"Venus":   "Venus here accents connection and discernment within the inherited theme.",
	"Mars":    "Mars here accents action and courage within the inherited theme.",
	"Jupiter": "Jupiter here accents expansion and faith within the inherited theme.",
	"Saturn":  "Saturn here accents structure and endurance within the inherited theme.",
}

var ascendantCorrectives = map[string]string{
	"Aries":       "assertion and initiation",
	"Taurus":      "grounding and endurance",
	"Gemini":      "curiosity and communication",
	"Cancer":      "nurturing and protection",
	"Leo":         "confidence and expression",
	"Virgo":       "discernment and service",
	"Libra":       "balance and connection",
	"Scorpio":     "depth and transformation",
	"Sagittarius": "expansion and faith",
	"Capricorn":   "structure and responsibility",
	"Aquarius":    "detachment and innovation",
	"Pisces":      "receptivity and compassion",
}

func systemSupported(system string) bool {
	trimmed := strings.TrimSpace(system)
	if trimmed == "" {
		return false
	}
	for _, s := range supportedSystems {
		if s == trimmed {
			return true
		}
	}
	return false
}

// GeneratePreviousLifeBrief derives the short carried-pattern narrative from
// the chart's 12th house. Returns nil when the chart's system is not in the
// supported whitelist, when no 12th-house sign is resolvable, or when a
// theme/shift lookup fails — an absence, never a partially-filled result.
func GeneratePreviousLifeBrief(chart *models.Chart) *models.PreviousLifeBrief {
	if !systemSupported(chart.System) {
		return nil
	}

	sign := NormalizeSign(chart.HouseSign(12))
	if sign == "" {
		return nil
	}

	theme := briefSignThemes[sign]
	shift := signShifts[sign]
	if theme == "" || shift == "" {
		return nil
	}

	ruler := RulerOf(sign)
	strengths, ok := rulerStrengths[ruler]
	if !ok {
		strengths = "A carried strength in resilience."
	}
	challenges, ok := rulerChallenges[ruler]
	if !ok {
		challenges = "A carried challenge in release."
	}

	// Planets in the 12th accent the interpretation; the verb must agree
	// with the count.
	if planets := chart.PlanetsInHouse(12); len(planets) > 0 {
		verb := "accent"
		if len(planets) == 1 {
			verb = "accents"
		}
		strengths += fmt.Sprintf(" %s in the twelfth house %s these matters.", strings.Join(planets, " and "), verb)
	}

	return &models.PreviousLifeBrief{
		Theme:             theme,
		CarriedStrengths:  strengths,
		CarriedChallenges: challenges,
		PresentLifeShift:  shift,
	}
}

// DerivePreviousLifeInsight derives the richer carried-pattern narrative,
// additionally locating the 12th-house ruler's own placement and contrasting
// it with the ascendant. Same nil-on-precondition-failure contract as the
// brief form.
func DerivePreviousLifeInsight(chart *models.Chart) *models.PreviousLifeInsight {
	if !systemSupported(chart.System) {
		return nil
	}

	sign12 := NormalizeSign(chart.HouseSign(12))
	if sign12 == "" {
		return nil
	}

	theme := insightSignThemes[sign12]
	if theme == "" {
		return nil
	}

	ruler := RulerOf(sign12)
	rulerHouse := 12
	if p := chart.Planet(ruler); p != nil {
		rulerHouse = p.House
	}
	domain, ok := houseDomains[rulerHouse]
	if !ok {
		domain = "inner life and release"
	}

	unresolved, ok := rulerUnresolved[ruler]
	if !ok {
		unresolved = "The ruler indicates a carried pattern."
	}
	unresolved += fmt.Sprintf(" This pattern tends to reappear in the domain of %s.", domain)

	var instincts string
	if planets := chart.PlanetsInHouse(12); len(planets) > 0 {
		var modifiers []string
		for _, p := range planets {
			if m, ok := twelfthHouseModifiers[p]; ok {
				modifiers = append(modifiers, m)
			}
		}
		if len(modifiers) > 0 {
			instincts = strings.Join(modifiers, " ")
		} else {
			instincts = "Planets in the twelfth house accent the inherited pattern."
		}
	} else {
		instincts = fmt.Sprintf("The ruler %s reflects the tone of the inherited instincts.", ruler)
	}

	return &models.PreviousLifeInsight{
		Theme:                 theme,
		UnresolvedPattern:     unresolved,
		CarriedInstincts:      instincts,
		PresentLifeCorrection: presentLifeCorrection(chart.Ascendant),
	}
}

func presentLifeCorrection(ascendant string) string {
	corrective, ok := ascendantCorrectives[NormalizeSign(ascendant)]
	if !ok {
		return "This life indicates a shift toward integration of the inherited pattern."
	}
	return fmt.Sprintf("The ascendant in %s suggests this life emphasizes %s as a corrective to the inherited pattern.", ascendant, corrective)
}
