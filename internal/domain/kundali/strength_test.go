package kundali

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDignityOf(t *testing.T) {
	cases := []struct {
		planet Planet
		sign   int
		want   string
	}{
		{Sun, aries, DignityExalted},
		{Sun, libra, DignityDebilitated},
		{Sun, leo, DignityOwn},
		{Mars, scorpio, DignityOwn},
		{Saturn, aries, DignityDebilitated},
		{Venus, gemini, DignityNeutral},
		{Rahu, gemini, DignityExalted},
		{Ketu, gemini, DignityDebilitated},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, dignityOf(tc.planet, tc.sign), "%s in %s", tc.planet, SignNames[tc.sign])
	}
}

func TestScoreStrengths(t *testing.T) {
	// Cancer rising puts Aries in the 10th and Libra in the 4th.
	chart := chartWith(95, map[Planet]float64{Sun: 10, Saturn: 190})
	scores := ScoreStrengths(chart)
	require.Len(t, scores, len(Planets))

	byPlanet := map[Planet]StrengthScore{}
	for i, s := range scores {
		require.Equal(t, Planets[i], s.Planet)
		require.GreaterOrEqual(t, s.Total, 0.0)
		require.LessOrEqual(t, s.Total, 100.0)
		byPlanet[s.Planet] = s
	}

	sun := byPlanet[Sun]
	require.Equal(t, DignityExalted, sun.Dignity)
	require.InDelta(t, 100, sun.Total, 1e-9)

	saturn := byPlanet[Saturn]
	require.Equal(t, DignityExalted, saturn.Dignity)
	require.InDelta(t, 15, saturn.Directional, 1e-9)
	require.InDelta(t, 40+8.57/2+15, saturn.Total, 1e-9)

	require.Zero(t, byPlanet[Rahu].Directional)
	require.Zero(t, byPlanet[Ketu].Directional)
}

func TestDirectionalStrength(t *testing.T) {
	require.InDelta(t, 30, directionalStrength(Sun, 10), 1e-9)
	require.InDelta(t, 0, directionalStrength(Sun, 4), 1e-9)
	require.InDelta(t, 15, directionalStrength(Sun, 1), 1e-9)
	require.InDelta(t, 15, directionalStrength(Sun, 7), 1e-9)
}
