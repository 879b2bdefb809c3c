package astro

import (
	"fmt"
	"strings"

	"github.com/lunehq/lune/internal/models"
)

// Life domain keys, each bound to one fixed house.
const (
	DomainIdentityAndBody = "identity_and_body"
	DomainWorkAndDuty     = "work_and_duty"
	DomainRelationships   = "relationships"
	DomainInnerWorld      = "inner_world"
	DomainGrowthAndBelief = "growth_and_belief"
)

// domainMapping binds a domain key to its house and an optional planet that
// is always counted as present there. Moon belongs to the inner world and
// Sun to growth regardless of actual placement; a symbolic augmentation, not
// an astronomical fact.
type domainMapping struct {
	key         string
	house       int
	extraPlanet string
}

var domainMappings = []domainMapping{
	{key: DomainIdentityAndBody, house: 1},
	{key: DomainWorkAndDuty, house: 6},
	{key: DomainRelationships, house: 7},
	{key: DomainInnerWorld, house: 4, extraPlanet: "Moon"},
	{key: DomainGrowthAndBelief, house: 9, extraPlanet: "Sun"},
}

var signQualities = map[string]string{
	"Aries":       "direct, pioneering, assertive",
	"Taurus":      "steady, grounded, enduring",
	"Gemini":      "versatile, communicative, curious",
	"Cancer":      "protective, nurturing, changeable",
	"Leo":         "expressive, confident, creative",
	"Virgo":       "analytical, practical, service-oriented",
	"Libra":       "diplomatic, balanced, relationship-focused",
	"Scorpio":     "intense, transformative, penetrating",
	"Sagittarius": "expansive, philosophical, freedom-seeking",
	"Capricorn":   "disciplined, structured, ambitious",
	"Aquarius":    "innovative, detached, individualistic",
	"Pisces":      "imaginative, adaptable, receptive",
}

var planetModifiers = map[string]string{
	"Sun":     "accents vitality and core expression",
	"Moon":    "accents rhythms and instincts",
	"Mercury": "accents communication and reasoning",
	"Venus":   "accents harmony and connection",
	"Mars":    "accents action and initiative",
	"Jupiter": "accents expansion and higher principles",
	"Saturn":  "accents structure and responsibility",
}

type houseMeaning struct {
	topic string
	focus string
}

var houseMeanings = map[string]houseMeaning{
	DomainIdentityAndBody: {
		topic: "The first house rules the self and the physical body.",
		focus: "self-presentation and physical presence",
	},
	DomainWorkAndDuty: {
		topic: "The sixth house rules daily work, service, and health.",
		focus: "routine, duty, and useful service",
	},
	DomainRelationships: {
		topic: "The seventh house rules partnership and open dealings with others.",
		focus: "marriage, contracts, and one-to-one ties",
	},
	DomainInnerWorld: {
		topic: "The fourth house rules home, family, and roots.",
		focus: "private life and the domestic sphere",
	},
	DomainGrowthAndBelief: {
		topic: "The ninth house rules philosophy, higher learning, and belief.",
		focus: "wisdom, travel, and the search for meaning",
	},
}

// BuildLifeDomains maps a chart into the five fixed life-domain records.
func BuildLifeDomains(chart *models.Chart) map[string]models.LifeDomain {
	result := make(map[string]models.LifeDomain, len(domainMappings))

	for _, m := range domainMappings {
		sign := chart.HouseSign(m.house)
		planets := chart.PlanetsInHouse(m.house)
		if m.extraPlanet != "" && !contains(planets, m.extraPlanet) {
			planets = append(planets, m.extraPlanet)
		}
		domain := models.LifeDomain{
			House:   m.house,
			Sign:    sign,
			Ruler:   RulerOf(sign),
			Planets: planets,
		}
		domain.Description = DescribeDomain(m.key, domain)
		result[m.key] = domain
	}

	return result
}

// DescribeDomain composes the deterministic description sentence for a
// domain. Output is one to two sentences; empty only for unknown keys.
func DescribeDomain(domainKey string, domain models.LifeDomain) string {
	meaning, ok := houseMeanings[domainKey]
	if !ok {
		return ""
	}

	quality := signQuality(domain.Sign)
	article := articleFor(quality)
	base := fmt.Sprintf("%s %s on the cusp lends %s %s quality to %s.",
		meaning.topic, domain.Sign, article, quality, meaning.focus)

	if phrase := planetPhrase(domain.Planets); phrase != "" {
		return base + phrase
	}
	return base
}

func signQuality(sign string) string {
	if q, ok := signQualities[NormalizeSign(sign)]; ok {
		return q
	}
	return "marked"
}

// articleFor picks "an" or "a" by the quality phrase's first letter.
func articleFor(quality string) string {
	trimmed := strings.TrimSpace(quality)
	if trimmed == "" {
		return "a"
	}
	switch strings.ToLower(trimmed[:1]) {
	case "a", "e", "i", "o", "u":
		return "an"
	}
	return "a"
}

func planetPhrase(planets []string) string {
	if len(planets) == 0 {
		return ""
	}
	first := planets[0]
	modifier, ok := planetModifiers[first]
	if !ok {
		return ""
	}
	if len(planets) == 1 {
		return fmt.Sprintf(" %s here %s.", first, modifier)
	}
	return fmt.Sprintf(" Planets in this house (%s) accent this area.", strings.Join(planets, ", "))
}

func contains(list []string, item string) bool {
	for _, s := range list {
		if s == item {
			return true
		}
	}
	return false
}
