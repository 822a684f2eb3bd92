package kundali

import (
	"math"
	"time"
)

// dashaYear is a Julian year of 365.25 days.
const dashaYear = time.Duration(365.25 * 24 * float64(time.Hour))

// CycleYears is the length of one full Vimshottari cycle.
const CycleYears = 120

// dashaOrder is the Vimshottari sequence; nakshatra i is ruled by
// dashaOrder[i%9].
var dashaOrder = [9]Planet{Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury}

// DashaYears are the fixed Mahadasha lengths in years.
var DashaYears = map[Planet]int{
	Ketu:    7,
	Venus:   20,
	Sun:     6,
	Moon:    10,
	Mars:    7,
	Rahu:    18,
	Jupiter: 16,
	Saturn:  19,
	Mercury: 17,
}

// NakshatraLord returns the planet ruling a nakshatra.
func NakshatraLord(nakshatra int) Planet {
	return dashaOrder[((nakshatra%27)+27)%27%9]
}

func orderIndex(p Planet) int {
	for i, candidate := range dashaOrder {
		if candidate == p {
			return i
		}
	}
	return 0
}

// yearsToDuration converts fractional years, rounding to the nanosecond.
func yearsToDuration(years float64) time.Duration {
	return time.Duration(math.Round(years * float64(dashaYear)))
}

// VimshottariDasha lays out the nine Mahadashas from the Moon's position at
// birth. The cycle starts before birth by the portion of the first lord's
// period already elapsed, and every later boundary sits a whole number of
// years after the cycle start, so the sequence ends exactly 120 years after
// it. Each period also carries its Antardashas.
func VimshottariDasha(moon Placement, birth, reference time.Time) DashaTimeline {
	lord := NakshatraLord(moon.Nakshatra)
	traversed := moon.DegreeInNakshatra / nakshatraSpan
	if traversed > 1 {
		traversed = 1
	}
	lordYears := float64(DashaYears[lord])
	elapsed := lordYears * traversed
	cycleStart := birth.Add(-yearsToDuration(elapsed))

	periods := make([]DashaPeriod, 0, len(dashaOrder))
	first := orderIndex(lord)
	cumulative := 0
	for i := 0; i < len(dashaOrder); i++ {
		planet := dashaOrder[(first+i)%len(dashaOrder)]
		years := DashaYears[planet]
		nominalStart := cycleStart.Add(time.Duration(cumulative) * dashaYear)
		cumulative += years
		end := cycleStart.Add(time.Duration(cumulative) * dashaYear)

		start := nominalStart
		duration := float64(years)
		if i == 0 {
			start = birth
			duration = lordYears - elapsed
		}
		periods = append(periods, DashaPeriod{
			Planet:        planet,
			Start:         start,
			End:           end,
			DurationYears: duration,
			Active:        activeAt(start, end, reference),
			SubPeriods:    antardashas(planet, nominalStart, birth, reference),
		})
	}

	return DashaTimeline{
		CycleStart:   cycleStart,
		BalanceYears: lordYears - elapsed,
		Periods:      periods,
	}
}

// antardashas splits a Mahadasha proportionally, starting from its own lord.
// Sub-periods that ended before birth are dropped and the one spanning birth
// is clipped to it.
func antardashas(maha Planet, mahaStart, birth, reference time.Time) []DashaPeriod {
	mahaYears := float64(DashaYears[maha])
	first := orderIndex(maha)
	out := make([]DashaPeriod, 0, len(dashaOrder))
	offset := 0.0
	for i := 0; i < len(dashaOrder); i++ {
		sub := dashaOrder[(first+i)%len(dashaOrder)]
		years := mahaYears * float64(DashaYears[sub]) / CycleYears
		start := mahaStart.Add(yearsToDuration(offset))
		offset += years
		end := mahaStart.Add(yearsToDuration(offset))
		if i == len(dashaOrder)-1 {
			end = mahaStart.Add(time.Duration(DashaYears[maha]) * dashaYear)
		}
		if !end.After(birth) {
			continue
		}
		if start.Before(birth) {
			years = end.Sub(birth).Hours() / dashaYear.Hours()
			start = birth
		}
		out = append(out, DashaPeriod{
			Planet:        sub,
			Start:         start,
			End:           end,
			DurationYears: years,
			Active:        activeAt(start, end, reference),
		})
	}
	return out
}

func activeAt(start, end, reference time.Time) bool {
	return !reference.Before(start) && reference.Before(end)
}
