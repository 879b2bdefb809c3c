package horoscope

import (
	"fmt"

	"github.com/lunehq/lune/internal/astro"
	"github.com/lunehq/lune/internal/models"
)

// Sun house themes: traditional life-area emphasis.
var sunHouseTheme = map[int]Month{
	1: {
		Theme:          "Vitality and self-expression take center stage.",
		AreasActivated: "identity, appearance, and new beginnings",
		GroundingNote:  "Return to the body and simple movement when scattered.",
	},
	2: {
		Theme:          "Resources and values come into focus.",
		AreasActivated: "income, possessions, and what you value",
		GroundingNote:  "Practical routines and tangible goals steady the mind.",
	},
	3: {
		Theme:          "Communication and local ties are highlighted.",
		AreasActivated: "writing, speaking, siblings, and short travel",
		GroundingNote:  "A clear list and one conversation at a time.",
	},
	4: {
		Theme:          "Home and roots receive emphasis.",
		AreasActivated: "family, domestic life, and inner security",
		GroundingNote:  "Time at home and familiar rituals.",
	},
	5: {
		Theme:          "Creativity and joy are emphasized.",
		AreasActivated: "children, pleasure, and creative work",
		GroundingNote:  "Lighthearted activity and simple enjoyment.",
	},
	6: {
		Theme:          "Work and service are in focus.",
		AreasActivated: "routine, health, and useful contribution",
		GroundingNote:  "Order in the small details of daily life.",
	},
	7: {
		Theme:          "Partnership and balance are highlighted.",
		AreasActivated: "marriage, contracts, and one-to-one ties",
		GroundingNote:  "Fair exchange and clear agreements.",
	},
	8: {
		Theme:          "Depth and transformation are emphasized.",
		AreasActivated: "shared resources, inheritance, and inner change",
		GroundingNote:  "Quiet reflection and patience with process.",
	},
	9: {
		Theme:          "Philosophy and expansion are in focus.",
		AreasActivated: "higher learning, travel, and belief",
		GroundingNote:  "A single principle or book to return to.",
	},
	10: {
		Theme:          "Career and reputation receive emphasis.",
		AreasActivated: "public role, authority, and long-term goals",
		GroundingNote:  "One concrete step toward a visible aim.",
	},
	11: {
		Theme:          "Community and hopes are highlighted.",
		AreasActivated: "friends, groups, and shared ideals",
		GroundingNote:  "Connection with those who share your vision.",
	},
	12: {
		Theme:          "Solitude and the unseen are emphasized.",
		AreasActivated: "rest, retreat, and inner work",
		GroundingNote:  "Silence, sleep, and compassionate self-care.",
	},
}

// Ruler quality: what the Ascendant ruler brings to the month.
var rulerQuality = map[string]string{
	"Sun":     "Vitality accents the active domains.",
	"Moon":    "Rhythm and instinct accent the active domains.",
	"Mercury": "Clarity and exchange accent the active domains.",
	"Venus":   "Harmony and connection accent the active domains.",
	"Mars":    "Initiative and courage accent the active domains.",
	"Jupiter": "Expansion and principle accent the active domains.",
	"Saturn":  "Structure and patience accent the active domains.",
}

// DeriveMonthly derives the monthly horoscope from Sun house and Ascendant
// ruler. Sun absent falls back to house 1; unrecognized ruler falls back to
// a patience note.
func DeriveMonthly(chart *models.Chart) Month {
	sunHouse := 1
	if sun := chart.Planet("Sun"); sun != nil {
		sunHouse = sun.House
	}
	base, ok := sunHouseTheme[sunHouse]
	if !ok {
		base = sunHouseTheme[1]
	}

	ruler := astro.RulerOf(chart.Ascendant)
	if ruler == "" {
		ruler = "Saturn"
	}
	rulerNote, ok := rulerQuality[ruler]
	if !ok {
		rulerNote = "Patience accents the active domains."
	}

	return Month{
		Theme:          fmt.Sprintf("%s %s", base.Theme, rulerNote),
		AreasActivated: base.AreasActivated,
		GroundingNote:  base.GroundingNote,
	}
}
