// Package astro implements the deterministic natal chart builder and the
// rule-table derivations that hang off it (life domains, previous-life
// narratives). Everything here is a pure function: same chart in, same text
// out.
package astro

import "strings"

// Signs is the zodiac ring in cyclic order, index 0-11.
var Signs = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Planets is the fixed set of placements carried by every chart.
var Planets = [7]string{"Sun", "Moon", "Mercury", "Venus", "Mars", "Jupiter", "Saturn"}

// signRulers maps each sign to its traditional ruling planet.
var signRulers = map[string]string{
	"Aries":       "Mars",
	"Taurus":      "Venus",
	"Gemini":      "Mercury",
	"Cancer":      "Moon",
	"Leo":         "Sun",
	"Virgo":       "Mercury",
	"Libra":       "Venus",
	"Scorpio":     "Mars",
	"Sagittarius": "Jupiter",
	"Capricorn":   "Saturn",
	"Aquarius":    "Saturn",
	"Pisces":      "Jupiter",
}

// NormalizeSign canonicalizes sign casing ("aries" -> "Aries").
func NormalizeSign(sign string) string {
	if sign == "" {
		return ""
	}
	return strings.ToUpper(sign[:1]) + strings.ToLower(sign[1:])
}

// RulerOf returns the traditional ruler of a sign, or "" for an unknown sign.
func RulerOf(sign string) string {
	return signRulers[NormalizeSign(sign)]
}

// SignIndex returns the position of a sign on the zodiac ring, or -1.
func SignIndex(sign string) int {
	n := NormalizeSign(sign)
	for i, s := range Signs {
		if s == n {
			return i
		}
	}
	return -1
}
