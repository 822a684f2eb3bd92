package kundali

import (
	"fmt"
	"math"
	"strings"
)

// Varga describes one divisional chart rule: how a D1 (sign, degree) pair
// maps to a sign in the derived chart.
type Varga struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Parts int    `json:"parts"`
	rule  func(sign int, degree float64) int
}

// Sign applies the subdivision rule.
func (v Varga) Sign(sign int, degree float64) int {
	return ((v.rule(sign, degree) % 12) + 12) % 12
}

// part returns the zero-based equal division of the sign containing degree.
func part(degree float64, parts int) int {
	return clampIndex(int(math.Floor(degree*float64(parts)/signSpan)), parts)
}

// equalVarga builds the common rule shape: a start sign chosen from the D1
// sign, then one sign per part.
func equalVarga(name, title string, parts int, start func(sign int) int) Varga {
	return Varga{
		Name:  name,
		Title: title,
		Parts: parts,
		rule: func(sign int, degree float64) int {
			return start(sign) + part(degree, parts)
		},
	}
}

const (
	aries       = 0
	taurus      = 1
	gemini      = 2
	cancer      = 3
	leo         = 4
	virgo       = 5
	libra       = 6
	scorpio     = 7
	sagittarius = 8
	capricorn   = 9
	aquarius    = 10
	pisces      = 11
)

// trimsamsaSegment is one unequal D30 division: upper bound in degrees and
// the sign it maps to.
type trimsamsaSegment struct {
	upTo float64
	sign int
}

var (
	trimsamsaOdd = []trimsamsaSegment{
		{5, aries}, {10, aquarius}, {18, sagittarius}, {25, gemini}, {30, libra},
	}
	trimsamsaEven = []trimsamsaSegment{
		{5, taurus}, {12, virgo}, {20, pisces}, {25, capricorn}, {30, scorpio},
	}
)

// Vargas is the canonical rule set, in the order results are reported.
var Vargas = []Varga{
	equalVarga("D1", "Rasi", 1, func(s int) int { return s }),
	{
		Name: "D2", Title: "Hora", Parts: 2,
		rule: func(s int, d float64) int {
			first := part(d, 2) == 0
			if isOddSign(s) == first {
				return leo
			}
			return cancer
		},
	},
	{
		Name: "D3", Title: "Drekkana", Parts: 3,
		rule: func(s int, d float64) int { return s + 4*part(d, 3) },
	},
	{
		Name: "D4", Title: "Chaturthamsa", Parts: 4,
		rule: func(s int, d float64) int { return s + 3*part(d, 4) },
	},
	equalVarga("D7", "Saptamsa", 7, func(s int) int {
		if isOddSign(s) {
			return s
		}
		return s + 6
	}),
	equalVarga("D9", "Navamsa", 9, func(s int) int {
		return s + [3]int{0, 8, 4}[modality(s)]
	}),
	equalVarga("D10", "Dasamsa", 10, func(s int) int {
		if isOddSign(s) {
			return s
		}
		return s + 8
	}),
	equalVarga("D12", "Dwadasamsa", 12, func(s int) int { return s }),
	equalVarga("D16", "Shodasamsa", 16, func(s int) int {
		return [3]int{aries, leo, sagittarius}[modality(s)]
	}),
	equalVarga("D20", "Vimsamsa", 20, func(s int) int {
		return [3]int{aries, sagittarius, leo}[modality(s)]
	}),
	equalVarga("D24", "Chaturvimsamsa", 24, func(s int) int {
		if isOddSign(s) {
			return leo
		}
		return cancer
	}),
	equalVarga("D27", "Bhamsa", 27, func(s int) int {
		return [4]int{aries, cancer, libra, capricorn}[element(s)]
	}),
	{
		Name: "D30", Title: "Trimsamsa", Parts: 5,
		rule: func(s int, d float64) int {
			segments := trimsamsaEven
			if isOddSign(s) {
				segments = trimsamsaOdd
			}
			for _, seg := range segments {
				if d < seg.upTo {
					return seg.sign
				}
			}
			return segments[len(segments)-1].sign
		},
	},
	equalVarga("D40", "Khavedamsa", 40, func(s int) int {
		if isOddSign(s) {
			return aries
		}
		return libra
	}),
	equalVarga("D45", "Akshavedamsa", 45, func(s int) int {
		return [3]int{aries, leo, sagittarius}[modality(s)]
	}),
	equalVarga("D60", "Shashtiamsa", 60, func(s int) int { return s }),
}

// DefaultVargas are derived when a request does not name any.
var DefaultVargas = []string{"D1", "D2", "D3", "D4", "D7", "D9", "D10", "D12", "D16", "D20"}

// LookupVarga finds a rule by name, case-insensitively.
func LookupVarga(name string) (Varga, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	for _, v := range Vargas {
		if v.Name == key {
			return v, nil
		}
	}
	return Varga{}, validationError(fmt.Sprintf("unsupported divisional chart %q", name), nil)
}

// Derive builds the divisional chart from a D1 chart. The varga ascendant
// is the D1 ascendant mapped through the same rule, and houses are counted
// whole-sign from it.
func (v Varga) Derive(chart Chart) DivisionalChart {
	ascSign := v.Sign(chart.Ascendant.Sign, chart.Ascendant.DegreeInSign)
	placements := make([]VargaPlacement, 0, len(chart.Planets))
	for _, pos := range chart.Planets {
		sign := v.Sign(pos.Sign, pos.DegreeInSign)
		placements = append(placements, VargaPlacement{
			Planet:   pos.Planet,
			Sign:     sign,
			SignName: SignNames[sign],
			House:    WholeSignHouse(sign, ascSign),
		})
	}
	return DivisionalChart{
		Name:          v.Name,
		Title:         v.Title,
		AscendantSign: ascSign,
		Placements:    placements,
	}
}

// DeriveVargas resolves names (deduplicated, request order) and derives each.
func DeriveVargas(chart Chart, names []string) ([]DivisionalChart, error) {
	if len(names) == 0 {
		names = DefaultVargas
	}
	seen := make(map[string]struct{}, len(names))
	out := make([]DivisionalChart, 0, len(names))
	for _, name := range names {
		v, err := LookupVarga(name)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[v.Name]; dup {
			continue
		}
		seen[v.Name] = struct{}{}
		out = append(out, v.Derive(chart))
	}
	return out, nil
}
