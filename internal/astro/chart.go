package astro

import (
	"time"

	"github.com/lunehq/lune/internal/models"
)

// planetSignIndex holds the fixed linear formulas assigning each planet a
// sign from the calendar parts. These are intentionally simple placeholders,
// not ephemeris positions; they exist so the same birth date always yields
// the same chart.
func planetSignIndex(name string, year, month, day int) int {
	switch name {
	case "Sun":
		return mod12(month + 8)
	case "Moon":
		return mod12(day + month*7)
	case "Mercury":
		return mod12(day + 3)
	case "Venus":
		return mod12(day + 5)
	case "Mars":
		return mod12(day + 9)
	case "Jupiter":
		return mod12(year)
	case "Saturn":
		return mod12(mod12(year) + 4)
	default:
		return 0
	}
}

// mod12 normalizes to 0..11, handling negative inputs.
func mod12(x int) int {
	return ((x % 12) + 12) % 12
}

// BuildWholeSignChart derives a Whole Sign natal chart from a birth date.
// Total over any valid date; no clock, no randomness.
func BuildWholeSignChart(birthDate time.Time) *models.Chart {
	year := birthDate.Year()
	month := int(birthDate.Month())
	day := birthDate.Day()

	ascIdx := mod12(birthDate.YearDay() + year)

	houses := make([]models.ChartHouse, 12)
	for h := 1; h <= 12; h++ {
		houses[h-1] = models.ChartHouse{
			Number: h,
			Sign:   Signs[mod12(ascIdx+h-1)],
		}
	}

	planets := make([]models.ChartPlanet, len(Planets))
	for i, name := range Planets {
		signIdx := planetSignIndex(name, year, month, day)
		planets[i] = models.ChartPlanet{
			Name:  name,
			Sign:  Signs[signIdx],
			House: mod12(signIdx-ascIdx+12) + 1,
		}
	}

	return &models.Chart{
		System:    models.WholeSignSystem,
		Ascendant: Signs[ascIdx],
		Houses:    houses,
		Planets:   planets,
	}
}
