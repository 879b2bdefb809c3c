// Package horoscope derives the daily, monthly, and yearly forecast text
// from a natal chart. The three periods are chart-relative frames, not
// calendar-relative: the output depends only on the chart, never on the
// time of query.
package horoscope

import "github.com/lunehq/lune/internal/models"

// Today is the daily forecast, keyed by the Moon's house.
type Today struct {
	Headline string `json:"headline"`
	Focus    string `json:"focus"`
	Guidance string `json:"guidance"`
}

// Month is the monthly forecast, keyed by the Sun's house.
type Month struct {
	Theme          string `json:"theme"`
	AreasActivated string `json:"areas_activated"`
	GroundingNote  string `json:"grounding_note"`
}

// Year is the yearly forecast, keyed by the Sun-house polarity axis.
type Year struct {
	OverarchingTheme     string `json:"overarching_theme"`
	GrowthDirection      string `json:"growth_direction"`
	StabilizingPrinciple string `json:"stabilizing_principle"`
}

// Response bundles all three periods. All fields are always populated.
type Response struct {
	Today Today `json:"today"`
	Month Month `json:"month"`
	Year  Year  `json:"year"`
}

// Derive produces the full horoscope for a chart.
func Derive(chart *models.Chart) Response {
	return Response{
		Today: DeriveDaily(chart),
		Month: DeriveMonthly(chart),
		Year:  DeriveYearly(chart),
	}
}
