package psychology

import (
	"github.com/lunehq/lune/internal/astro"
	"github.com/lunehq/lune/internal/models"
)

// MapChartToInsights derives psychological insights from a chart. Order is
// fixed: identity, then life theme, then emotional nature. Placements that
// cannot be resolved are skipped rather than guessed, so the result may hold
// zero to three entries.
func MapChartToInsights(chart *models.Chart) []models.AstrologyInsight {
	insights := make([]models.AstrologyInsight, 0, 3)

	if sign := astro.NormalizeSign(chart.Ascendant); sign != "" {
		if text, ok := ascendantIdentityRules[sign]; ok {
			insights = append(insights, models.AstrologyInsight{
				Domain: DomainIdentity,
				Tone:   ToneSoft,
				Depth:  DepthSimple,
				Source: SourceAstrology,
				Text:   text,
			})
		}
	}

	if sun := chart.Planet("Sun"); sun != nil && sun.House >= 1 && sun.House <= 12 {
		if text, ok := sunHouseLifeFocusRules[sun.House]; ok {
			insights = append(insights, models.AstrologyInsight{
				Domain: DomainLifeTheme,
				Tone:   ToneSoft,
				Depth:  DepthSimple,
				Source: SourceAstrology,
				Text:   text,
			})
		}
	}

	if moon := chart.Planet("Moon"); moon != nil {
		moonSign := moon.Sign
		if moonSign == "" {
			moonSign = chart.HouseSign(moon.House)
		}
		if sign := astro.NormalizeSign(moonSign); sign != "" {
			if group, ok := moonSignToGroup[sign]; ok {
				insights = append(insights, models.AstrologyInsight{
					Domain: DomainEmotionalNature,
					Tone:   ToneSoft,
					Depth:  DepthSimple,
					Source: SourceAstrology,
					Text:   moonGroupEmotionalRules[group],
				})
			}
		}
	}

	return insights
}
