package kundali

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// chartWith assembles a chart from sidereal longitudes. Planets not in lon
// get fixed defaults; Ketu follows Rahu unless set.
func chartWith(ascendant float64, lon map[Planet]float64) Chart {
	defaults := map[Planet]float64{
		Sun: 15, Moon: 45, Mars: 75, Mercury: 105, Jupiter: 135,
		Venus: 165, Saturn: 195, Rahu: 225,
	}
	for p, v := range lon {
		defaults[p] = v
	}
	if _, ok := lon[Ketu]; !ok {
		defaults[Ketu] = normalize(defaults[Rahu] + 180)
	}

	motions := make([]Motion, 0, len(Planets))
	for _, p := range Planets {
		m := Motion{Planet: p, Longitude: defaults[p], Speed: 1}
		if p == Rahu || p == Ketu {
			m.Speed = -0.053
			m.Retrograde = true
		}
		motions = append(motions, m)
	}
	return AssembleChart(ascendant, motions)
}

func findingNamed(t *testing.T, chart Chart, name string) Finding {
	t.Helper()
	yogas, doshas := EvaluateRules(chart, DefaultRules)
	for _, f := range append(yogas, doshas...) {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("finding %q not reported", name)
	return Finding{}
}

func TestEvaluateRulesReportsEveryRule(t *testing.T) {
	yogas, doshas := EvaluateRules(chartWith(5, nil), DefaultRules)
	require.Len(t, yogas, 11)
	require.Len(t, doshas, 6)
	for _, f := range append(yogas, doshas...) {
		require.NotNil(t, f.Planets, f.Name)
		require.GreaterOrEqual(t, f.Strength, 0.0)
		require.LessOrEqual(t, f.Strength, 100.0)
		if !f.Active {
			require.Zero(t, f.Strength, f.Name)
		}
	}
	for _, f := range doshas {
		require.Equal(t, KindDosha, f.Kind)
	}
}

func TestEvaluateRulesClampsCustomRules(t *testing.T) {
	rule := RuleFunc(func(Chart) Finding {
		return Finding{Name: "Overflow", Kind: KindDosha, Active: true, Strength: 150}
	})
	yogas, doshas := EvaluateRules(chartWith(5, nil), []Rule{rule})
	require.Empty(t, yogas)
	require.Len(t, doshas, 1)
	require.Equal(t, 100.0, doshas[0].Strength)
	require.NotNil(t, doshas[0].Planets)
}

func TestGajaKesari(t *testing.T) {
	active := findingNamed(t, chartWith(5, map[Planet]float64{Moon: 5, Jupiter: 95}), "Gaja Kesari Yoga")
	require.True(t, active.Active)
	require.Equal(t, 100.0, active.Strength)
	require.Equal(t, Benefic, active.Category)

	inactive := findingNamed(t, chartWith(5, map[Planet]float64{Moon: 5, Jupiter: 35}), "Gaja Kesari Yoga")
	require.False(t, inactive.Active)
	require.Zero(t, inactive.Strength)
}

func TestBudhaAditya(t *testing.T) {
	f := findingNamed(t, chartWith(5, map[Planet]float64{Sun: 130, Mercury: 140}), "Budha-Aditya Yoga")
	require.True(t, f.Active)
	require.Equal(t, 70.0, f.Strength)

	f = findingNamed(t, chartWith(5, map[Planet]float64{Sun: 280, Mercury: 285}), "Budha-Aditya Yoga")
	require.True(t, f.Active)
	require.Equal(t, 85.0, f.Strength)
}

func TestHamsaYoga(t *testing.T) {
	f := findingNamed(t, chartWith(5, map[Planet]float64{Jupiter: 95}), "Hamsa Yoga")
	require.True(t, f.Active)
	require.Equal(t, 90.0, f.Strength)

	f = findingNamed(t, chartWith(5, map[Planet]float64{Jupiter: 125}), "Hamsa Yoga")
	require.False(t, f.Active)
}

func TestMangalDosha(t *testing.T) {
	cases := []struct {
		name     string
		mars     float64
		active   bool
		strength float64
	}{
		{"seventh house", 190, true, 100},
		{"twelfth house", 355, true, 75},
		{"own sign in first house", 10, true, 25},
		{"second house", 40, false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := findingNamed(t, chartWith(5, map[Planet]float64{Mars: tc.mars}), "Mangal Dosha")
			require.Equal(t, tc.active, f.Active)
			require.Equal(t, tc.strength, f.Strength)
		})
	}
}

func TestKaalSarpDosha(t *testing.T) {
	hemmed := map[Planet]float64{
		Rahu: 10, Sun: 20, Moon: 40, Mars: 60, Mercury: 80,
		Jupiter: 100, Venus: 120, Saturn: 160,
	}
	f := findingNamed(t, chartWith(5, hemmed), "Kaal Sarp Dosha")
	require.True(t, f.Active)
	require.Equal(t, 85.0, f.Strength)

	hemmed[Moon] = 200
	f = findingNamed(t, chartWith(5, hemmed), "Kaal Sarp Dosha")
	require.False(t, f.Active)
}

func TestGrahanDosha(t *testing.T) {
	f := findingNamed(t, chartWith(5, map[Planet]float64{Sun: 100, Rahu: 95, Moon: 280}), "Grahan Dosha")
	require.True(t, f.Active)
	require.Equal(t, 80.0, f.Strength)
	require.ElementsMatch(t, []Planet{Sun, Moon}, f.Planets)
}

func TestMahapurushaYogas(t *testing.T) {
	cases := []struct {
		name      string
		ascendant float64
		lon       map[Planet]float64
		yoga      string
		active    bool
		strength  float64
	}{
		{"mars exalted in tenth", 5, map[Planet]float64{Mars: 280}, "Ruchaka Yoga", true, 90},
		{"mars own in first", 5, map[Planet]float64{Mars: 10}, "Ruchaka Yoga", true, 80},
		{"mars outside kendra", 5, map[Planet]float64{Mars: 75}, "Ruchaka Yoga", false, 0},
		{"mercury own in first", 65, map[Planet]float64{Mercury: 70}, "Bhadra Yoga", true, 80},
		{"mercury exalted in fourth", 65, map[Planet]float64{Mercury: 160}, "Bhadra Yoga", true, 90},
		{"mercury neutral in kendra", 5, nil, "Bhadra Yoga", false, 0},
		{"venus own in seventh", 5, map[Planet]float64{Venus: 190}, "Malavya Yoga", true, 80},
		{"venus debilitated", 5, nil, "Malavya Yoga", false, 0},
		{"saturn exalted in seventh", 5, nil, "Sasa Yoga", true, 90},
		{"saturn own in tenth", 5, map[Planet]float64{Saturn: 280}, "Sasa Yoga", true, 80},
		{"saturn debilitated in first", 5, map[Planet]float64{Saturn: 15}, "Sasa Yoga", false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := findingNamed(t, chartWith(tc.ascendant, tc.lon), tc.yoga)
			require.Equal(t, tc.active, f.Active)
			require.Equal(t, tc.strength, f.Strength)
			require.Len(t, f.Planets, 1)
		})
	}
}

func TestAdhiYoga(t *testing.T) {
	f := findingNamed(t, chartWith(5, map[Planet]float64{Mercury: 200, Jupiter: 250}), "Adhi Yoga")
	require.True(t, f.Active)
	require.Equal(t, 60.0, f.Strength)
	require.Equal(t, []Planet{Mercury, Jupiter}, f.Planets)

	f = findingNamed(t, chartWith(5, map[Planet]float64{Mercury: 200, Jupiter: 250, Venus: 220}), "Adhi Yoga")
	require.True(t, f.Active)
	require.Equal(t, 90.0, f.Strength)

	f = findingNamed(t, chartWith(5, map[Planet]float64{Mercury: 200}), "Adhi Yoga")
	require.False(t, f.Active)
	require.Zero(t, f.Strength)
	require.Equal(t, []Planet{Mercury}, f.Planets)
}

func TestDharmaKarmadhipatiYoga(t *testing.T) {
	cases := []struct {
		name      string
		ascendant float64
		lon       map[Planet]float64
		active    bool
		strength  float64
		planets   []Planet
	}{
		{"lords conjunct", 5, map[Planet]float64{Jupiter: 200}, true, 85, []Planet{Jupiter, Saturn}},
		{"lords opposed", 5, map[Planet]float64{Jupiter: 15}, true, 70, []Planet{Jupiter, Saturn}},
		{"lords apart", 5, nil, false, 0, []Planet{Jupiter, Saturn}},
		{"saturn rules ninth and tenth", 35, nil, true, 85, []Planet{Saturn}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := findingNamed(t, chartWith(tc.ascendant, tc.lon), "Dharma-Karmadhipati Yoga")
			require.Equal(t, tc.active, f.Active)
			require.Equal(t, tc.strength, f.Strength)
			require.Equal(t, tc.planets, f.Planets)
		})
	}
}

func TestKemadrumaYoga(t *testing.T) {
	f := findingNamed(t, chartWith(5, map[Planet]float64{Mars: 250}), "Kemadruma Yoga")
	require.True(t, f.Active)
	require.Equal(t, 60.0, f.Strength)
	require.Equal(t, Malefic, f.Category)

	isolatedInKendra := map[Planet]float64{Moon: 100, Mars: 250, Mercury: 310, Jupiter: 340}
	f = findingNamed(t, chartWith(5, isolatedInKendra), "Kemadruma Yoga")
	require.True(t, f.Active)
	require.Equal(t, 30.0, f.Strength)

	f = findingNamed(t, chartWith(5, nil), "Kemadruma Yoga")
	require.False(t, f.Active)
	require.Zero(t, f.Strength)
}

func TestChandraMangalaYoga(t *testing.T) {
	f := findingNamed(t, chartWith(5, map[Planet]float64{Mars: 50}), "Chandra-Mangala Yoga")
	require.True(t, f.Active)
	require.Equal(t, 65.0, f.Strength)
	require.Equal(t, Neutral, f.Category)

	f = findingNamed(t, chartWith(5, nil), "Chandra-Mangala Yoga")
	require.False(t, f.Active)
}

func TestPitraDosha(t *testing.T) {
	f := findingNamed(t, chartWith(5, map[Planet]float64{Sun: 230}), "Pitra Dosha")
	require.True(t, f.Active)
	require.Equal(t, 75.0, f.Strength)

	f = findingNamed(t, chartWith(5, map[Planet]float64{Rahu: 250}), "Pitra Dosha")
	require.True(t, f.Active)
	require.Equal(t, 60.0, f.Strength)

	f = findingNamed(t, chartWith(5, nil), "Pitra Dosha")
	require.False(t, f.Active)
	require.Zero(t, f.Strength)
}

func TestNodeConjunctionDoshas(t *testing.T) {
	f := findingNamed(t, chartWith(5, map[Planet]float64{Jupiter: 230}), "Guru Chandal Dosha")
	require.True(t, f.Active)
	require.Equal(t, 70.0, f.Strength)
	require.Equal(t, []Planet{Jupiter, Rahu}, f.Planets)

	f = findingNamed(t, chartWith(5, nil), "Guru Chandal Dosha")
	require.False(t, f.Active)

	f = findingNamed(t, chartWith(5, map[Planet]float64{Saturn: 230}), "Shrapit Dosha")
	require.True(t, f.Active)
	require.Equal(t, 80.0, f.Strength)

	f = findingNamed(t, chartWith(5, nil), "Shrapit Dosha")
	require.False(t, f.Active)
}

func TestRulesStayInactiveWhenPlanetsAreMissing(t *testing.T) {
	mangal := chartWithout(chartWith(5, map[Planet]float64{Mars: 190}), Mars)
	require.False(t, RuleFunc(mangalDosha).Evaluate(mangal).Active)

	conjunct := chartWithout(chartWith(5, map[Planet]float64{Jupiter: 230}), Jupiter, Rahu)
	require.False(t, findingNamed(t, conjunct, "Guru Chandal Dosha").Active)

	hemmed := map[Planet]float64{
		Rahu: 10, Sun: 20, Moon: 40, Mars: 60, Mercury: 80,
		Jupiter: 100, Venus: 120, Saturn: 160,
	}
	require.True(t, findingNamed(t, chartWith(5, hemmed), "Kaal Sarp Dosha").Active)
	require.False(t, findingNamed(t, chartWithout(chartWith(5, hemmed), Saturn), "Kaal Sarp Dosha").Active)

	lords := chartWithout(chartWith(35, nil), Saturn)
	require.False(t, findingNamed(t, lords, "Dharma-Karmadhipati Yoga").Active)
}

// chartWithout drops planets from an assembled chart.
func chartWithout(chart Chart, drop ...Planet) Chart {
	kept := make([]PlanetPosition, 0, len(chart.Planets))
	for _, pos := range chart.Planets {
		dropped := false
		for _, p := range drop {
			if pos.Planet == p {
				dropped = true
			}
		}
		if !dropped {
			kept = append(kept, pos)
		}
	}
	chart.Planets = kept
	return chart
}

func TestActiveFindingsSortedByStrength(t *testing.T) {
	findings := []Finding{
		{Name: "a", Active: true, Strength: 40},
		{Name: "b", Active: false},
		{Name: "c", Active: true, Strength: 90},
	}
	got := ActiveFindings(findings)
	require.Len(t, got, 2)
	require.Equal(t, "c", got[0].Name)
	require.Equal(t, "a", got[1].Name)
}
