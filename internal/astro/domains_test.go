package astro

import (
	"strings"
	"testing"

	"github.com/lunehq/lune/internal/models"
)

func TestBuildLifeDomains_FiveFixedDomains(t *testing.T) {
	chart := BuildWholeSignChart(date(1990, 6, 15))
	domains := BuildLifeDomains(chart)

	wantHouses := map[string]int{
		DomainIdentityAndBody: 1,
		DomainWorkAndDuty:     6,
		DomainRelationships:   7,
		DomainInnerWorld:      4,
		DomainGrowthAndBelief: 9,
	}
	if len(domains) != len(wantHouses) {
		t.Fatalf("%d domains, want %d", len(domains), len(wantHouses))
	}

	for key, house := range wantHouses {
		d, ok := domains[key]
		if !ok {
			t.Errorf("domain %q missing", key)
			continue
		}
		if d.House != house {
			t.Errorf("%s: house = %d, want %d", key, d.House, house)
		}
		if d.Sign != chart.HouseSign(house) {
			t.Errorf("%s: sign = %q, want %q", key, d.Sign, chart.HouseSign(house))
		}
		if d.Ruler != RulerOf(d.Sign) {
			t.Errorf("%s: ruler = %q, want %q", key, d.Ruler, RulerOf(d.Sign))
		}
		if d.Description == "" {
			t.Errorf("%s: empty description", key)
		}
	}
}

func TestBuildLifeDomains_SymbolicPlanets(t *testing.T) {
	// Moon is always counted in the inner world, Sun in growth, regardless of
	// actual placement.
	chart := testChart("whole_sign", "Aries",
		models.ChartPlanet{Name: "Sun", Sign: "Aries", House: 1},
		models.ChartPlanet{Name: "Moon", Sign: "Taurus", House: 2},
	)
	domains := BuildLifeDomains(chart)

	inner := domains[DomainInnerWorld]
	if !contains(inner.Planets, "Moon") {
		t.Errorf("inner world planets = %v, want Moon included", inner.Planets)
	}
	growth := domains[DomainGrowthAndBelief]
	if !contains(growth.Planets, "Sun") {
		t.Errorf("growth planets = %v, want Sun included", growth.Planets)
	}

	// No duplication when the planet actually occupies the house.
	occupied := testChart("whole_sign", "Aries",
		models.ChartPlanet{Name: "Moon", Sign: "Cancer", House: 4},
	)
	inner = BuildLifeDomains(occupied)[DomainInnerWorld]
	count := 0
	for _, p := range inner.Planets {
		if p == "Moon" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Moon counted %d times in inner world, want 1", count)
	}
}

func TestDescribeDomain_ArticleAgreement(t *testing.T) {
	// "analytical, practical, service-oriented" starts with a vowel sound.
	virgo := models.LifeDomain{House: 6, Sign: "Virgo"}
	desc := DescribeDomain(DomainWorkAndDuty, virgo)
	if !strings.Contains(desc, "lends an analytical") {
		t.Errorf("Virgo description = %q, want \"an analytical\"", desc)
	}

	taurus := models.LifeDomain{House: 6, Sign: "Taurus"}
	desc = DescribeDomain(DomainWorkAndDuty, taurus)
	if !strings.Contains(desc, "lends a steady") {
		t.Errorf("Taurus description = %q, want \"a steady\"", desc)
	}
}

func TestDescribeDomain_PlanetPhrases(t *testing.T) {
	single := models.LifeDomain{House: 1, Sign: "Aries", Planets: []string{"Mars"}}
	desc := DescribeDomain(DomainIdentityAndBody, single)
	if !strings.Contains(desc, "Mars here accents action and initiative.") {
		t.Errorf("single planet description = %q", desc)
	}

	multi := models.LifeDomain{House: 1, Sign: "Aries", Planets: []string{"Mars", "Venus"}}
	desc = DescribeDomain(DomainIdentityAndBody, multi)
	if !strings.Contains(desc, "Planets in this house (Mars, Venus) accent this area.") {
		t.Errorf("multi planet description = %q", desc)
	}

	unknown := DescribeDomain("not_a_domain", single)
	if unknown != "" {
		t.Errorf("unknown domain description = %q, want empty", unknown)
	}
}
