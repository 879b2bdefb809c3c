package horoscope

import (
	"fmt"

	"github.com/lunehq/lune/internal/models"
)

// Opposite house pairs: 1-7, 2-8, 3-9, 4-10, 5-11, 6-12.
var oppositeHouse = map[int]int{
	1: 7, 2: 8, 3: 9, 4: 10, 5: 11, 6: 12,
	7: 1, 8: 2, 9: 3, 10: 4, 11: 5, 12: 6,
}

// Sun house overarching themes for the year.
var sunHouseYearly = map[int]Year{
	1: {
		OverarchingTheme:     "Integration of self and identity.",
		GrowthDirection:      "toward clearer self-expression and presence",
		StabilizingPrinciple: "Grounding in the body and simple routines.",
	},
	2: {
		OverarchingTheme:     "Integration of values and resources.",
		GrowthDirection:      "toward steadier foundations and right use of what you have",
		StabilizingPrinciple: "Practical habits and honest assessment.",
	},
	3: {
		OverarchingTheme:     "Integration of communication and connection.",
		GrowthDirection:      "toward clearer exchange and local ties",
		StabilizingPrinciple: "One clear message, one conversation.",
	},
	4: {
		OverarchingTheme:     "Integration of home and roots.",
		GrowthDirection:      "toward deeper security and belonging",
		StabilizingPrinciple: "Domestic order and family bonds.",
	},
	5: {
		OverarchingTheme:     "Integration of creativity and joy.",
		GrowthDirection:      "toward freer expression and heart-led action",
		StabilizingPrinciple: "Play, rest, and simple pleasure.",
	},
	6: {
		OverarchingTheme:     "Integration of work and service.",
		GrowthDirection:      "toward useful contribution and healthy routine",
		StabilizingPrinciple: "Order in daily tasks and care of the body.",
	},
	7: {
		OverarchingTheme:     "Integration of partnership and balance.",
		GrowthDirection:      "toward harmony in one-to-one ties",
		StabilizingPrinciple: "Fair exchange and clear agreements.",
	},
	8: {
		OverarchingTheme:     "Integration of depth and renewal.",
		GrowthDirection:      "toward acceptance of change and shared resources",
		StabilizingPrinciple: "Quiet reflection and patience.",
	},
	9: {
		OverarchingTheme:     "Integration of belief and wisdom.",
		GrowthDirection:      "toward a broader perspective and higher understanding",
		StabilizingPrinciple: "A principle or practice to return to.",
	},
	10: {
		OverarchingTheme:     "Integration of career and reputation.",
		GrowthDirection:      "toward visible achievement and responsible role",
		StabilizingPrinciple: "One step at a time toward a clear aim.",
	},
	11: {
		OverarchingTheme:     "Integration of community and hopes.",
		GrowthDirection:      "toward shared ideals and supportive bonds",
		StabilizingPrinciple: "Connection with those who share your vision.",
	},
	12: {
		OverarchingTheme:     "Integration of solitude and the unseen.",
		GrowthDirection:      "toward rest, reflection, and inner work",
		StabilizingPrinciple: "Silence, sleep, and compassionate self-care.",
	},
}

// Polarity note per axis; the same note applies to either house in a pair.
var polarityNote = map[int]string{
	1:  "The year emphasizes the balance between self and other.",
	7:  "The year emphasizes the balance between self and other.",
	2:  "The year emphasizes the balance between what you hold and what you share.",
	8:  "The year emphasizes the balance between what you hold and what you share.",
	3:  "The year emphasizes the balance between local and distant.",
	9:  "The year emphasizes the balance between local and distant.",
	4:  "The year emphasizes the balance between private and public.",
	10: "The year emphasizes the balance between private and public.",
	5:  "The year emphasizes the balance between personal joy and shared hopes.",
	11: "The year emphasizes the balance between personal joy and shared hopes.",
	6:  "The year emphasizes the balance between daily duty and greater service.",
	12: "The year emphasizes the balance between daily duty and greater service.",
}

// DeriveYearly derives the yearly horoscope from Sun house and its polarity
// axis. Sun absent falls back to house 1.
func DeriveYearly(chart *models.Chart) Year {
	sunHouse := 1
	if sun := chart.Planet("Sun"); sun != nil {
		sunHouse = sun.House
	}
	base, ok := sunHouseYearly[sunHouse]
	if !ok {
		base = sunHouseYearly[1]
	}

	note, ok := polarityNote[sunHouse]
	if !ok {
		note = polarityNote[1]
	}

	return Year{
		OverarchingTheme:     fmt.Sprintf("%s %s", note, base.OverarchingTheme),
		GrowthDirection:      base.GrowthDirection,
		StabilizingPrinciple: base.StabilizingPrinciple,
	}
}
