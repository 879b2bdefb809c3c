package astro

import (
	"reflect"
	"testing"
	"time"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestBuildWholeSignChart_KnownDate(t *testing.T) {
	chart := BuildWholeSignChart(date(1990, 6, 15))

	if chart.System != "whole_sign" {
		t.Errorf("System = %q, want whole_sign", chart.System)
	}
	if chart.Ascendant != "Sagittarius" {
		t.Errorf("Ascendant = %q, want Sagittarius", chart.Ascendant)
	}

	sun := chart.Planet("Sun")
	if sun == nil {
		t.Fatal("Sun missing from chart")
	}
	if sun.Sign != "Gemini" {
		t.Errorf("Sun sign = %q, want Gemini", sun.Sign)
	}
	if sun.House != 7 {
		t.Errorf("Sun house = %d, want 7", sun.House)
	}
}

func TestBuildWholeSignChart_Deterministic(t *testing.T) {
	a := BuildWholeSignChart(date(1984, 2, 29))
	b := BuildWholeSignChart(date(1984, 2, 29))

	if !reflect.DeepEqual(a, b) {
		t.Error("same birth date produced different charts")
	}
}

func TestBuildWholeSignChart_Invariants(t *testing.T) {
	dates := []time.Time{
		date(1900, 1, 1),
		date(1955, 7, 23),
		date(1984, 2, 29),
		date(1990, 6, 15),
		date(2000, 12, 31),
		date(2023, 3, 8),
	}

	for _, d := range dates {
		chart := BuildWholeSignChart(d)

		if len(chart.Houses) != 12 {
			t.Fatalf("%s: %d houses, want 12", d.Format("2006-01-02"), len(chart.Houses))
		}
		if len(chart.Planets) != 7 {
			t.Fatalf("%s: %d planets, want 7", d.Format("2006-01-02"), len(chart.Planets))
		}

		// House 1 carries the ascendant; houses advance one sign per house.
		if chart.Houses[0].Sign != chart.Ascendant {
			t.Errorf("%s: house 1 sign %q != ascendant %q", d.Format("2006-01-02"), chart.Houses[0].Sign, chart.Ascendant)
		}
		ascIdx := SignIndex(chart.Ascendant)
		for i, h := range chart.Houses {
			if h.Number != i+1 {
				t.Errorf("%s: house slot %d numbered %d", d.Format("2006-01-02"), i, h.Number)
			}
			want := Signs[mod12(ascIdx+i)]
			if h.Sign != want {
				t.Errorf("%s: house %d sign = %q, want %q", d.Format("2006-01-02"), h.Number, h.Sign, want)
			}
		}

		// Each planet's house must agree with its sign's offset from the ascendant.
		for _, p := range chart.Planets {
			if p.House < 1 || p.House > 12 {
				t.Errorf("%s: %s house = %d, out of range", d.Format("2006-01-02"), p.Name, p.House)
			}
			wantHouse := mod12(SignIndex(p.Sign)-ascIdx+12) + 1
			if p.House != wantHouse {
				t.Errorf("%s: %s in %s placed in house %d, want %d", d.Format("2006-01-02"), p.Name, p.Sign, p.House, wantHouse)
			}
		}
	}
}

func TestRulerOf(t *testing.T) {
	cases := map[string]string{
		"Aries":       "Mars",
		"leo":         "Sun",
		"SCORPIO":     "Mars",
		"Aquarius":    "Saturn",
		"Pisces":      "Jupiter",
		"NotASign":    "",
		"":            "",
	}
	for sign, want := range cases {
		if got := RulerOf(sign); got != want {
			t.Errorf("RulerOf(%q) = %q, want %q", sign, got, want)
		}
	}
}
