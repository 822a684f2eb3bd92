package kundali

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPlacementBoundaries(t *testing.T) {
	p := NewPlacement(30.0)
	require.Equal(t, taurus, p.Sign)
	require.Equal(t, "Taurus", p.SignName)
	require.InDelta(t, 0, p.DegreeInSign, 1e-12)

	p = NewPlacement(0)
	require.Equal(t, aries, p.Sign)
	require.Equal(t, 0, p.Nakshatra)
	require.Equal(t, "Ashwini", p.NakshatraName)
	require.Equal(t, 1, p.Pada)

	p = NewPlacement(360)
	require.Equal(t, aries, p.Sign)
	require.InDelta(t, 0, p.Longitude, 1e-12)

	p = NewPlacement(-0.5)
	require.Equal(t, pisces, p.Sign)
	require.Equal(t, 26, p.Nakshatra)
	require.Equal(t, 4, p.Pada)

	for k := 0; k < 27; k++ {
		p = NewPlacement(float64(k) * nakshatraSpan)
		require.Equal(t, k, p.Nakshatra, "nakshatra boundary %d", k)
		require.Equal(t, 1, p.Pada)
	}

	p = NewPlacement(10.0 / 3)
	require.Equal(t, 0, p.Nakshatra)
	require.Equal(t, 2, p.Pada)
}

func TestNewPlacementPadaMatchesDegreeAtQuarterBoundaries(t *testing.T) {
	for k := 0; k < 108; k++ {
		lon := float64(k) * 360 / 108
		p := NewPlacement(lon)
		require.GreaterOrEqual(t, p.DegreeInNakshatra, 0.0, "lon %v", lon)
		require.Less(t, p.DegreeInNakshatra, nakshatraSpan, "lon %v", lon)

		quarter := int(math.Floor(p.DegreeInNakshatra * 108 / 360))
		require.Equal(t, min(quarter, 3)+1, p.Pada, "lon %v degree %v", lon, p.DegreeInNakshatra)
	}

	p := NewPlacement(270)
	require.Equal(t, 2, p.Pada)
	require.InDelta(t, padaSpan, p.DegreeInNakshatra, 1e-12)
	require.GreaterOrEqual(t, p.DegreeInNakshatra, padaSpan)
}

func TestNewPlacementMoonExample(t *testing.T) {
	p := NewPlacement(196.6616)
	require.Equal(t, libra, p.Sign)
	require.Equal(t, 14, p.Nakshatra)
	require.Equal(t, "Swati", p.NakshatraName)
	require.Equal(t, 3, p.Pada)
	require.InDelta(t, 16.6616, p.DegreeInSign, 1e-9)
	require.InDelta(t, 196.6616-14*nakshatraSpan, p.DegreeInNakshatra, 1e-9)
}

func TestNewPlacementRanges(t *testing.T) {
	for lon := 0.0; lon < 360; lon += 0.37 {
		p := NewPlacement(lon)
		require.GreaterOrEqual(t, p.Sign, 0)
		require.Less(t, p.Sign, 12)
		require.GreaterOrEqual(t, p.DegreeInSign, 0.0)
		require.Less(t, p.DegreeInSign, signSpan)
		require.GreaterOrEqual(t, p.Nakshatra, 0)
		require.Less(t, p.Nakshatra, 27)
		require.GreaterOrEqual(t, p.Pada, 1)
		require.LessOrEqual(t, p.Pada, 4)
		require.Less(t, p.DegreeInNakshatra, nakshatraSpan+1e-9)
	}
}

func TestWholeSignHouse(t *testing.T) {
	for asc := 0; asc < 12; asc++ {
		require.Equal(t, 1, WholeSignHouse(asc, asc))
		require.Equal(t, 12, WholeSignHouse((asc+11)%12, asc))
		for sign := 0; sign < 12; sign++ {
			house := WholeSignHouse(sign, asc)
			require.Equal(t, (sign-asc+12)%12+1, house)
		}
	}
}

func TestParsePlanet(t *testing.T) {
	for _, p := range Planets {
		got, err := ParsePlanet(string(p))
		require.NoError(t, err)
		require.Equal(t, p, got)
	}

	_, err := ParsePlanet("Pluto")
	require.Error(t, err)
	require.True(t, IsDomainError(err))
}

func TestAssembleChartPlacesEveryPlanetOnce(t *testing.T) {
	chart := chartWith(100, nil)

	require.Len(t, chart.Houses, 12)
	require.Equal(t, cancer, chart.Ascendant.Sign)
	require.Equal(t, 1, chart.Ascendant.House)

	seen := map[Planet]int{}
	for i, h := range chart.Houses {
		require.Equal(t, i+1, h.Number)
		require.Equal(t, (cancer+i)%12, h.Sign)
		for _, p := range h.Planets {
			seen[p]++
			pos, err := chart.Position(p)
			require.NoError(t, err)
			require.Equal(t, h.Number, pos.House)
		}
	}
	require.Len(t, seen, len(Planets))
	for _, count := range seen {
		require.Equal(t, 1, count)
	}
}
