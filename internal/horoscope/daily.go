package horoscope

import (
	"fmt"

	"github.com/lunehq/lune/internal/astro"
	"github.com/lunehq/lune/internal/models"
)

// Moon house meanings: traditional astrology focus by house.
var moonHouseFocus = map[int]Today{
	1: {
		Headline: "The Moon in the first house emphasizes personal presence.",
		Focus:    "self-care and how you present to the world",
		Guidance: "A calm approach to your own needs suggests a focus on grounding before outward action.",
	},
	2: {
		Headline: "The Moon in the second house brings attention to resources and values.",
		Focus:    "material security and what you hold dear",
		Guidance: "Steady attention to your foundations suggests a focus on practical steps.",
	},
	3: {
		Headline: "The Moon in the third house emphasizes communication and local matters.",
		Focus:    "exchange of ideas and nearby connections",
		Guidance: "A measured approach to speaking and listening suggests a focus on clarity.",
	},
	4: {
		Headline: "The Moon in the fourth house brings attention to home and roots.",
		Focus:    "the domestic sphere and inner security",
		Guidance: "Nurturing your base suggests a focus on simple, grounding routines.",
	},
	5: {
		Headline: "The Moon in the fifth house emphasizes creative expression.",
		Focus:    "joy, creation, and the heart's desires",
		Guidance: "Allowing space for play suggests a focus on lighthearted engagement.",
	},
	6: {
		Headline: "The Moon in the sixth house brings attention to work and service.",
		Focus:    "routine, duty, and useful contribution",
		Guidance: "Order in small matters suggests a focus on one task at a time.",
	},
	7: {
		Headline: "The Moon in the seventh house emphasizes partnership.",
		Focus:    "one-to-one connections and balance with others",
		Guidance: "Attuning to those close to you suggests a focus on harmony.",
	},
	8: {
		Headline: "The Moon in the eighth house brings attention to depth and renewal.",
		Focus:    "shared resources and inner transformation",
		Guidance: "Quiet reflection suggests a focus on what endures beneath the surface.",
	},
	9: {
		Headline: "The Moon in the ninth house emphasizes belief and exploration.",
		Focus:    "philosophy, learning, and the search for meaning",
		Guidance: "A broad perspective suggests a focus on the larger picture.",
	},
	10: {
		Headline: "The Moon in the tenth house brings attention to reputation and duty.",
		Focus:    "public role and responsible action",
		Guidance: "Steady attention to obligations suggests a focus on integrity.",
	},
	11: {
		Headline: "The Moon in the eleventh house emphasizes community and hopes.",
		Focus:    "friends, groups, and shared ideals",
		Guidance: "Connection with like-minded others suggests a focus on common ground.",
	},
	12: {
		Headline: "The Moon in the twelfth house brings attention to solitude and the unseen.",
		Focus:    "rest, reflection, and inner work",
		Guidance: "Quiet time alone suggests a focus on replenishment.",
	},
}

// Ascendant modifier: adds a filter to the daily tone.
var ascendantEmphasis = map[string]string{
	"Aries":       "A pioneering quality",
	"Taurus":      "A steady quality",
	"Gemini":      "A curious quality",
	"Cancer":      "A nurturing quality",
	"Leo":         "A confident quality",
	"Virgo":       "A careful quality",
	"Libra":       "A balanced quality",
	"Scorpio":     "An attentive quality",
	"Sagittarius": "An expansive quality",
	"Capricorn":   "A structured quality",
	"Aquarius":    "A detached quality",
	"Pisces":      "A receptive quality",
}

// DeriveDaily derives today's horoscope from Moon house and Ascendant.
// Moon absent falls back to house 4; unrecognized ascendant falls back to a
// grounded tone.
func DeriveDaily(chart *models.Chart) Today {
	moonHouse := 4
	if moon := chart.Planet("Moon"); moon != nil {
		moonHouse = moon.House
	}
	base, ok := moonHouseFocus[moonHouse]
	if !ok {
		base = moonHouseFocus[4]
	}

	emphasis, ok := ascendantEmphasis[astro.NormalizeSign(chart.Ascendant)]
	if !ok {
		emphasis = "A grounded quality"
	}

	return Today{
		Headline: fmt.Sprintf("%s colors the day. %s", emphasis, base.Headline),
		Focus:    base.Focus,
		Guidance: base.Guidance,
	}
}
