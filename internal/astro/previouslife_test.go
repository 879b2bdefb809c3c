package astro

import (
	"strings"
	"testing"

	"github.com/lunehq/lune/internal/models"
)

// testChart builds a chart with the given system label and ascendant, with
// houses advancing one sign per house from the ascendant.
func testChart(system, ascendant string, planets ...models.ChartPlanet) *models.Chart {
	ascIdx := SignIndex(ascendant)
	houses := make([]models.ChartHouse, 12)
	for h := 1; h <= 12; h++ {
		houses[h-1] = models.ChartHouse{Number: h, Sign: Signs[mod12(ascIdx+h-1)]}
	}
	return &models.Chart{
		System:    system,
		Ascendant: ascendant,
		Houses:    houses,
		Planets:   planets,
	}
}

func TestGeneratePreviousLifeBrief_BuiltChartYieldsNothing(t *testing.T) {
	// Charts from the builder carry the label "whole_sign", which is not in
	// the exact-match whitelist ("Whole Sign"). The derivation must return
	// nil for every built chart.
	chart := BuildWholeSignChart(date(1990, 6, 15))

	if brief := GeneratePreviousLifeBrief(chart); brief != nil {
		t.Errorf("brief = %+v, want nil for system %q", brief, chart.System)
	}
	if insight := DerivePreviousLifeInsight(chart); insight != nil {
		t.Errorf("insight = %+v, want nil for system %q", insight, chart.System)
	}
}

func TestGeneratePreviousLifeBrief_SupportedSystem(t *testing.T) {
	// Ascendant Aries puts Pisces on the 12th house.
	chart := testChart("Whole Sign", "Aries")

	brief := GeneratePreviousLifeBrief(chart)
	if brief == nil {
		t.Fatal("brief = nil, want populated for supported system")
	}
	if brief.Theme != briefSignThemes["Pisces"] {
		t.Errorf("Theme = %q, want Pisces theme", brief.Theme)
	}
	if brief.PresentLifeShift != signShifts["Pisces"] {
		t.Errorf("PresentLifeShift = %q, want Pisces shift", brief.PresentLifeShift)
	}
	// Pisces is ruled by Jupiter.
	if brief.CarriedStrengths != rulerStrengths["Jupiter"] {
		t.Errorf("CarriedStrengths = %q, want Jupiter strength", brief.CarriedStrengths)
	}
	if brief.CarriedChallenges != rulerChallenges["Jupiter"] {
		t.Errorf("CarriedChallenges = %q, want Jupiter challenge", brief.CarriedChallenges)
	}
}

func TestGeneratePreviousLifeBrief_UnsupportedSystems(t *testing.T) {
	for _, system := range []string{"vedic", "placidus", "whole sign", ""} {
		chart := testChart(system, "Aries")
		if brief := GeneratePreviousLifeBrief(chart); brief != nil {
			t.Errorf("system %q: brief = %+v, want nil", system, brief)
		}
	}
}

func TestGeneratePreviousLifeBrief_TwelfthHouseVerbAgreement(t *testing.T) {
	one := testChart("Placidus", "Aries", models.ChartPlanet{Name: "Mars", Sign: "Pisces", House: 12})
	brief := GeneratePreviousLifeBrief(one)
	if brief == nil {
		t.Fatal("brief = nil")
	}
	if !strings.Contains(brief.CarriedStrengths, "Mars in the twelfth house accents these matters.") {
		t.Errorf("single planet: CarriedStrengths = %q, want singular verb", brief.CarriedStrengths)
	}

	two := testChart("Placidus", "Aries",
		models.ChartPlanet{Name: "Mars", Sign: "Pisces", House: 12},
		models.ChartPlanet{Name: "Venus", Sign: "Pisces", House: 12},
	)
	brief = GeneratePreviousLifeBrief(two)
	if brief == nil {
		t.Fatal("brief = nil")
	}
	if !strings.Contains(brief.CarriedStrengths, "Mars and Venus in the twelfth house accent these matters.") {
		t.Errorf("two planets: CarriedStrengths = %q, want plural verb", brief.CarriedStrengths)
	}
}

func TestDerivePreviousLifeInsight_RulerPlacement(t *testing.T) {
	// Ascendant Aries, 12th house Pisces, ruler Jupiter placed in house 10.
	chart := testChart("Whole Sign", "Aries",
		models.ChartPlanet{Name: "Jupiter", Sign: "Capricorn", House: 10},
	)

	insight := DerivePreviousLifeInsight(chart)
	if insight == nil {
		t.Fatal("insight = nil, want populated")
	}
	if insight.Theme != insightSignThemes["Pisces"] {
		t.Errorf("Theme = %q, want Pisces theme", insight.Theme)
	}
	if !strings.Contains(insight.UnresolvedPattern, "vocation and public standing") {
		t.Errorf("UnresolvedPattern = %q, want house-10 domain", insight.UnresolvedPattern)
	}
	// No planets in the 12th: instincts fall back to the ruler sentence.
	if !strings.Contains(insight.CarriedInstincts, "Jupiter") {
		t.Errorf("CarriedInstincts = %q, want ruler mention", insight.CarriedInstincts)
	}
	if !strings.Contains(insight.PresentLifeCorrection, "assertion and initiation") {
		t.Errorf("PresentLifeCorrection = %q, want Aries corrective", insight.PresentLifeCorrection)
	}
}
