package models

// WholeSignSystem is the system label emitted by the deterministic chart builder.
const WholeSignSystem = "whole_sign"

// ChartHouse is one of the 12 house slots of a natal chart.
type ChartHouse struct {
	Number int    `json:"number"`
	Sign   string `json:"sign"`
}

// ChartPlanet is a planet placement within a natal chart.
type ChartPlanet struct {
	Name  string `json:"name"`
	Sign  string `json:"sign,omitempty"`
	House int    `json:"house"`
}

// Chart is a Whole Sign natal chart. House 1 always carries the ascendant
// sign; houses advance one sign per house around the zodiac ring. Charts are
// immutable once built — rebuilding from the same birth date reproduces the
// chart bit-for-bit.
type Chart struct {
	System    string        `json:"system"`
	Ascendant string        `json:"ascendant"`
	Houses    []ChartHouse  `json:"houses"`
	Planets   []ChartPlanet `json:"planets"`
}

// HouseSign returns the sign on the given house cusp, or "" if the house is
// not present in the chart.
func (c *Chart) HouseSign(number int) string {
	for _, h := range c.Houses {
		if h.Number == number {
			return h.Sign
		}
	}
	return ""
}

// Planet returns the named planet's placement, or nil if absent.
func (c *Chart) Planet(name string) *ChartPlanet {
	for i := range c.Planets {
		if c.Planets[i].Name == name {
			return &c.Planets[i]
		}
	}
	return nil
}

// PlanetsInHouse returns the names of all planets occupying the given house,
// in chart order.
func (c *Chart) PlanetsInHouse(number int) []string {
	var names []string
	for _, p := range c.Planets {
		if p.House == number {
			names = append(names, p.Name)
		}
	}
	return names
}

// LifeDomain is one named life area derived from a chart house.
type LifeDomain struct {
	House       int      `json:"house"`
	Sign        string   `json:"sign"`
	Ruler       string   `json:"ruler"`
	Planets     []string `json:"planets"`
	Description string   `json:"description,omitempty"`
}

// PreviousLifeBrief is the short carried-pattern narrative derived from the
// 12th house.
type PreviousLifeBrief struct {
	Theme             string `json:"theme"`
	CarriedStrengths  string `json:"carried_strengths"`
	CarriedChallenges string `json:"carried_challenges"`
	PresentLifeShift  string `json:"present_life_shift"`
}

// PreviousLifeInsight is the richer carried-pattern narrative.
type PreviousLifeInsight struct {
	Theme                 string `json:"theme"`
	UnresolvedPattern     string `json:"unresolved_pattern"`
	CarriedInstincts      string `json:"carried_instincts"`
	PresentLifeCorrection string `json:"present_life_correction"`
}

// AstrologyInsight is a short tagged text fragment summarizing one symbolic
// chart feature, used as raw material for narrative assembly.
type AstrologyInsight struct {
	Domain string `json:"domain"`
	Tone   string `json:"tone"`
	Depth  string `json:"depth"`
	Source string `json:"source"`
	Text   string `json:"text"`
}
