package kundali

import (
	"fmt"
	"sort"
)

// Rule is one yoga or dosha predicate over a chart. Rules are independent;
// adding a combination means adding a Rule, not editing another one.
type Rule interface {
	Evaluate(chart Chart) Finding
}

// RuleFunc adapts a function to Rule.
type RuleFunc func(chart Chart) Finding

// Evaluate implements Rule.
func (f RuleFunc) Evaluate(chart Chart) Finding { return f(chart) }

var (
	kendraHouses  = []int{1, 4, 7, 10}
	benefics      = []Planet{Mercury, Jupiter, Venus}
	sevenGrahas   = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}
	mangalWeights = map[int]float64{1: 50, 4: 50, 7: 100, 8: 100, 12: 75}
)

// DefaultRules is the built-in rule set in reporting order.
var DefaultRules = []Rule{
	RuleFunc(gajaKesari),
	RuleFunc(budhaAditya),
	RuleFunc(chandraMangala),
	mahapurusha("Ruchaka", Mars),
	mahapurusha("Bhadra", Mercury),
	mahapurusha("Hamsa", Jupiter),
	mahapurusha("Malavya", Venus),
	mahapurusha("Sasa", Saturn),
	RuleFunc(adhiYoga),
	RuleFunc(dharmaKarmadhipati),
	RuleFunc(kemadruma),
	RuleFunc(mangalDosha),
	RuleFunc(kaalSarpDosha),
	RuleFunc(pitraDosha),
	RuleFunc(grahanDosha),
	conjunctionDosha("Guru Chandal Dosha", Jupiter, Rahu, 70),
	conjunctionDosha("Shrapit Dosha", Saturn, Rahu, 80),
}

// EvaluateRules runs every rule and splits the findings by kind.
func EvaluateRules(chart Chart, rules []Rule) (yogas, doshas []Finding) {
	yogas = []Finding{}
	doshas = []Finding{}
	for _, rule := range rules {
		finding := rule.Evaluate(chart)
		if !finding.Active {
			finding.Strength = 0
		}
		finding.Strength = clamp(finding.Strength, 0, 100)
		if finding.Planets == nil {
			finding.Planets = []Planet{}
		}
		switch finding.Kind {
		case KindDosha:
			doshas = append(doshas, finding)
		default:
			yogas = append(yogas, finding)
		}
	}
	return yogas, doshas
}

// houseDistance counts from house a to house b, 0 when they coincide.
func houseDistance(a, b int) int {
	return ((b-a)%12 + 12) % 12
}

func contains(set []int, v int) bool {
	for _, candidate := range set {
		if candidate == v {
			return true
		}
	}
	return false
}

// Gaja Kesari: Moon and Jupiter mutually angular with one of them in a
// kendra. Base 60, +20 when Jupiter is the one in a kendra, +20 when Jupiter
// is exalted or in its own sign.
func gajaKesari(chart Chart) Finding {
	houses, ok := chart.housesOf(Moon, Jupiter)
	moon, jupiter := houses[Moon], houses[Jupiter]
	angular := houseDistance(moon, jupiter)%3 == 0
	inKendra := contains(kendraHouses, moon) || contains(kendraHouses, jupiter)

	strength := 60.0
	if contains(kendraHouses, jupiter) {
		strength += 20
	}
	if d := dignityOf(Jupiter, chart.signOf()[Jupiter]); d == DignityExalted || d == DignityOwn {
		strength += 20
	}
	return Finding{
		Name:        "Gaja Kesari Yoga",
		Kind:        KindYoga,
		Category:    Benefic,
		Active:      ok && angular && inKendra,
		Strength:    strength,
		Description: "Moon and Jupiter in mutual kendras with one of them angular from the ascendant",
		Planets:     []Planet{Moon, Jupiter},
	}
}

// Budha-Aditya: Sun and Mercury in the same house. 70, +15 in a kendra.
func budhaAditya(chart Chart) Finding {
	houses, ok := chart.housesOf(Sun, Mercury)
	strength := 70.0
	if contains(kendraHouses, houses[Sun]) {
		strength += 15
	}
	return Finding{
		Name:        "Budha-Aditya Yoga",
		Kind:        KindYoga,
		Category:    Benefic,
		Active:      ok && houses[Sun] == houses[Mercury],
		Strength:    strength,
		Description: "Sun and Mercury conjunct in one house",
		Planets:     []Planet{Sun, Mercury},
	}
}

// Chandra-Mangala: Moon and Mars in the same house. Fixed 65.
func chandraMangala(chart Chart) Finding {
	houses, ok := chart.housesOf(Moon, Mars)
	return Finding{
		Name:        "Chandra-Mangala Yoga",
		Kind:        KindYoga,
		Category:    Neutral,
		Active:      ok && houses[Moon] == houses[Mars],
		Strength:    65,
		Description: "Moon and Mars conjunct in one house",
		Planets:     []Planet{Moon, Mars},
	}
}

// mahapurusha builds one of the five Pancha Mahapurusha yogas: the planet in
// a kendra and in its own or exaltation sign. 90 exalted, 80 own.
func mahapurusha(name string, planet Planet) Rule {
	return RuleFunc(func(chart Chart) Finding {
		pos, err := chart.Position(planet)
		dignity := DignityNeutral
		if err == nil {
			dignity = dignityOf(planet, pos.Sign)
		}
		strength := 80.0
		if dignity == DignityExalted {
			strength = 90
		}
		return Finding{
			Name:        name + " Yoga",
			Kind:        KindYoga,
			Category:    Benefic,
			Active:      err == nil && contains(kendraHouses, pos.House) && (dignity == DignityExalted || dignity == DignityOwn),
			Strength:    strength,
			Description: fmt.Sprintf("%s in a kendra in its own or exaltation sign", planet),
			Planets:     []Planet{planet},
		}
	})
}

// Adhi: at least two natural benefics in the 6th, 7th or 8th from the Moon.
// 30 per benefic so placed.
func adhiYoga(chart Chart) Finding {
	houses, ok := chart.housesOf(append([]Planet{Moon}, benefics...)...)
	var placed []Planet
	for _, b := range benefics {
		if !ok {
			break
		}
		if d := houseDistance(houses[Moon], houses[b]); d >= 5 && d <= 7 {
			placed = append(placed, b)
		}
	}
	return Finding{
		Name:        "Adhi Yoga",
		Kind:        KindYoga,
		Category:    Benefic,
		Active:      len(placed) >= 2,
		Strength:    30 * float64(len(placed)),
		Description: "Two or more of Mercury, Jupiter and Venus in the 6th, 7th or 8th from the Moon",
		Planets:     placed,
	}
}

// Dharma-Karmadhipati: lords of the 9th and 10th conjunct or in mutual
// opposition. 85 conjunct, 70 opposed; a single planet ruling both counts
// as conjunct.
func dharmaKarmadhipati(chart Chart) Finding {
	ninthLord := signLords[(chart.Ascendant.Sign+8)%12]
	tenthLord := signLords[(chart.Ascendant.Sign+9)%12]
	houses, ok := chart.housesOf(ninthLord, tenthLord)
	dist := houseDistance(houses[ninthLord], houses[tenthLord])

	strength := 70.0
	if dist == 0 {
		strength = 85
	}
	planets := []Planet{ninthLord}
	if tenthLord != ninthLord {
		planets = append(planets, tenthLord)
	}
	return Finding{
		Name:        "Dharma-Karmadhipati Yoga",
		Kind:        KindYoga,
		Category:    Benefic,
		Active:      ok && (dist == 0 || dist == 6),
		Strength:    strength,
		Description: "Lords of the 9th and 10th houses conjunct or opposed",
		Planets:     planets,
	}
}

// Kemadruma: no graha other than Sun and the nodes in the Moon's house or
// the houses either side of it. Fixed 60; a Moon in a kendra from the
// ascendant halves it.
func kemadruma(chart Chart) Finding {
	neighbours := []Planet{Mars, Mercury, Jupiter, Venus, Saturn}
	houses, ok := chart.housesOf(append([]Planet{Moon}, neighbours...)...)
	moon := houses[Moon]
	isolated := ok
	for _, p := range neighbours {
		if d := houseDistance(moon, houses[p]); d == 0 || d == 1 || d == 11 {
			isolated = false
			break
		}
	}
	strength := 60.0
	if contains(kendraHouses, moon) {
		strength = 30
	}
	return Finding{
		Name:        "Kemadruma Yoga",
		Kind:        KindYoga,
		Category:    Malefic,
		Active:      isolated,
		Strength:    strength,
		Description: "No planet besides the Sun and nodes with, before or after the Moon",
		Planets:     []Planet{Moon},
	}
}

// Mangal: Mars in the 1st, 4th, 7th, 8th or 12th from the ascendant, scored
// by house; halved when Mars is in its own or exaltation sign.
func mangalDosha(chart Chart) Finding {
	pos, err := chart.Position(Mars)
	weight, active := mangalWeights[pos.House]
	active = active && err == nil
	if d := dignityOf(Mars, pos.Sign); d == DignityOwn || d == DignityExalted {
		weight /= 2
	}
	return Finding{
		Name:        "Mangal Dosha",
		Kind:        KindDosha,
		Category:    Malefic,
		Active:      active,
		Strength:    weight,
		Description: "Mars in the 1st, 4th, 7th, 8th or 12th house from the ascendant",
		Planets:     []Planet{Mars},
	}
}

// Kaal Sarp: all seven classical grahas within the half of the zodiac from
// Rahu forward to Ketu (or from Ketu forward to Rahu). Fixed 85.
func kaalSarpDosha(chart Chart) Finding {
	rahu, err := chart.Position(Rahu)
	complete := err == nil
	forward, backward := 0, 0
	for _, p := range sevenGrahas {
		pos, err := chart.Position(p)
		if err != nil {
			complete = false
			break
		}
		if normalize(pos.Longitude-rahu.Longitude) < 180 {
			forward++
		} else {
			backward++
		}
	}
	return Finding{
		Name:        "Kaal Sarp Dosha",
		Kind:        KindDosha,
		Category:    Malefic,
		Active:      complete && (forward == len(sevenGrahas) || backward == len(sevenGrahas)),
		Strength:    85,
		Description: "All seven grahas hemmed on one side of the Rahu-Ketu axis",
		Planets:     []Planet{Rahu, Ketu},
	}
}

// Pitra: Sun conjunct Rahu, or Rahu in the 9th house. 75 conjunct, 60 for
// the 9th-house placement.
func pitraDosha(chart Chart) Finding {
	houses, ok := chart.housesOf(Sun, Rahu)
	conjunct := ok && houses[Sun] == houses[Rahu]
	strength := 60.0
	if conjunct {
		strength = 75
	}
	return Finding{
		Name:        "Pitra Dosha",
		Kind:        KindDosha,
		Category:    Malefic,
		Active:      conjunct || (ok && houses[Rahu] == 9),
		Strength:    strength,
		Description: "Sun conjunct Rahu, or Rahu in the 9th house",
		Planets:     []Planet{Sun, Rahu},
	}
}

// Grahan: a luminary conjunct either node. 40 per afflicted luminary.
func grahanDosha(chart Chart) Finding {
	houses, ok := chart.housesOf(Sun, Moon, Rahu, Ketu)
	var afflicted []Planet
	for _, luminary := range []Planet{Sun, Moon} {
		if ok && (houses[luminary] == houses[Rahu] || houses[luminary] == houses[Ketu]) {
			afflicted = append(afflicted, luminary)
		}
	}
	return Finding{
		Name:        "Grahan Dosha",
		Kind:        KindDosha,
		Category:    Malefic,
		Active:      len(afflicted) > 0,
		Strength:    40 * float64(len(afflicted)),
		Description: "Sun or Moon conjunct Rahu or Ketu",
		Planets:     afflicted,
	}
}

// conjunctionDosha flags two planets sharing a house at a fixed strength.
func conjunctionDosha(name string, a, b Planet, strength float64) Rule {
	return RuleFunc(func(chart Chart) Finding {
		houses, ok := chart.housesOf(a, b)
		return Finding{
			Name:        name,
			Kind:        KindDosha,
			Category:    Malefic,
			Active:      ok && houses[a] == houses[b],
			Strength:    strength,
			Description: fmt.Sprintf("%s conjunct %s", a, b),
			Planets:     []Planet{a, b},
		}
	})
}

// ActiveFindings filters to active findings, strongest first.
func ActiveFindings(findings []Finding) []Finding {
	out := make([]Finding, 0, len(findings))
	for _, f := range findings {
		if f.Active {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Strength > out[j].Strength })
	return out
}
