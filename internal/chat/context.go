package chat

import (
	"time"

	"github.com/lunehq/lune/internal/models"
)

// CorePlacement is a sign/house pair for one of the luminaries.
type CorePlacement struct {
	Sign  string `json:"sign"`
	House int    `json:"house"`
}

// ContextCore holds the ascendant and luminary placements.
type ContextCore struct {
	Ascendant string        `json:"ascendant"`
	Sun       CorePlacement `json:"sun"`
	Moon      CorePlacement `json:"moon"`
}

// ContextMeta records provenance of the assembled context.
type ContextMeta struct {
	System      string `json:"system"`
	GeneratedAt string `json:"generated_at"`
}

// Context is the stable astrology context fed to generation. Assembly only:
// no fetching, no chart math.
type Context struct {
	Core         ContextCore                  `json:"core"`
	LifeDomains  map[string]models.LifeDomain `json:"life_domains"`
	PreviousLife *models.PreviousLifeInsight  `json:"previous_life"`
	Meta         ContextMeta                  `json:"meta"`
}

func corePlacement(chart *models.Chart, name string) CorePlacement {
	placement := CorePlacement{House: 1}
	p := chart.Planet(name)
	if p != nil {
		placement.House = p.House
	}
	if p != nil && p.Sign != "" {
		placement.Sign = p.Sign
	} else {
		placement.Sign = chart.HouseSign(placement.House)
	}
	return placement
}

// BuildContext assembles already-computed astrology data into the chat
// context. The previous-life block is all-or-nothing: it appears only when
// every field of the insight is populated.
func BuildContext(chart *models.Chart, domains map[string]models.LifeDomain, insight *models.PreviousLifeInsight) Context {
	if domains == nil {
		domains = map[string]models.LifeDomain{}
	}

	var previousLife *models.PreviousLifeInsight
	if insight != nil &&
		insight.Theme != "" &&
		insight.UnresolvedPattern != "" &&
		insight.CarriedInstincts != "" &&
		insight.PresentLifeCorrection != "" {
		previousLife = insight
	}

	system := chart.System
	if system == "" {
		system = "Placidus"
	}

	return Context{
		Core: ContextCore{
			Ascendant: chart.Ascendant,
			Sun:       corePlacement(chart, "Sun"),
			Moon:      corePlacement(chart, "Moon"),
		},
		LifeDomains:  domains,
		PreviousLife: previousLife,
		Meta: ContextMeta{
			System:      system,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}
}
