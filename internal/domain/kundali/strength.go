package kundali

// Strength scoring is a coarse stand-in for classical Shadbala. It keeps
// three of the six components in simplified form: positional dignity
// (sthana), natural strength (naisargika) and directional strength (dig).
// Temporal, motional and aspectual strength are not modelled.

// Dignity labels.
const (
	DignityExalted     = "exalted"
	DignityOwn         = "own"
	DignityNeutral     = "neutral"
	DignityDebilitated = "debilitated"
)

var (
	exaltationSign = map[Planet]int{
		Sun: aries, Moon: taurus, Mars: capricorn, Mercury: virgo,
		Jupiter: cancer, Venus: pisces, Saturn: libra, Rahu: gemini, Ketu: sagittarius,
	}
	ownSigns = map[Planet][]int{
		Sun:     {leo},
		Moon:    {cancer},
		Mars:    {aries, scorpio},
		Mercury: {gemini, virgo},
		Jupiter: {sagittarius, pisces},
		Venus:   {taurus, libra},
		Saturn:  {capricorn, aquarius},
		Rahu:    {aquarius},
		Ketu:    {scorpio},
	}
	dignityPoints = map[string]float64{
		DignityExalted:     40,
		DignityOwn:         30,
		DignityNeutral:     15,
		DignityDebilitated: 0,
	}
	// naisargikaVirupas is natural strength in virupas (out of 60). The
	// nodes take Saturn's value.
	naisargikaVirupas = map[Planet]float64{
		Sun: 60, Moon: 51.43, Venus: 42.86, Jupiter: 34.29, Mercury: 25.71,
		Mars: 17.14, Saturn: 8.57, Rahu: 8.57, Ketu: 8.57,
	}
	// digBalaHouse is the house where a planet gains full directional
	// strength. The nodes have none.
	digBalaHouse = map[Planet]int{
		Jupiter: 1, Mercury: 1, Moon: 4, Venus: 4, Saturn: 7, Sun: 10, Mars: 10,
	}
)

const (
	naturalMax     = 30.0
	directionalMax = 30.0
)

func dignityOf(p Planet, sign int) string {
	exalted, ok := exaltationSign[p]
	switch {
	case ok && sign == exalted:
		return DignityExalted
	case ok && sign == (exalted+6)%12:
		return DignityDebilitated
	}
	for _, own := range ownSigns[p] {
		if own == sign {
			return DignityOwn
		}
	}
	return DignityNeutral
}

// ScoreStrengths rates every planet in the chart on a 0–100 scale: dignity
// (0–40) + natural strength (0–30) + directional strength (0–30).
func ScoreStrengths(chart Chart) []StrengthScore {
	out := make([]StrengthScore, 0, len(chart.Planets))
	for _, pos := range chart.Planets {
		dignity := dignityOf(pos.Planet, pos.Sign)
		positional := dignityPoints[dignity]
		natural := naisargikaVirupas[pos.Planet] / 60 * naturalMax
		directional := directionalStrength(pos.Planet, pos.House)
		out = append(out, StrengthScore{
			Planet:      pos.Planet,
			Dignity:     dignity,
			Positional:  positional,
			Natural:     natural,
			Directional: directional,
			Total:       clamp(positional+natural+directional, 0, 100),
		})
	}
	return out
}

// directionalStrength falls linearly from full at the Dig Bala house to zero
// at the opposite house.
func directionalStrength(p Planet, house int) float64 {
	best, ok := digBalaHouse[p]
	if !ok {
		return 0
	}
	d := houseDistance(best, house)
	if d > 6 {
		d = 12 - d
	}
	return directionalMax * (1 - float64(d)/6)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
