package kundali

// AssembleChart places the ascendant and planets into whole-sign houses.
func AssembleChart(ascendant float64, motions []Motion) Chart {
	lagna := LagnaPosition{Placement: NewPlacement(ascendant), House: 1}

	houses := make([]House, 12)
	for i := range houses {
		houses[i] = House{
			Number:  i + 1,
			Sign:    (lagna.Sign + i) % 12,
			Planets: []Planet{},
		}
	}

	positions := make([]PlanetPosition, 0, len(motions))
	for _, m := range motions {
		placement := NewPlacement(m.Longitude)
		house := WholeSignHouse(placement.Sign, lagna.Sign)
		positions = append(positions, PlanetPosition{
			Planet:     m.Planet,
			Placement:  placement,
			Speed:      m.Speed,
			Retrograde: m.Retrograde,
			House:      house,
		})
		houses[house-1].Planets = append(houses[house-1].Planets, m.Planet)
	}

	return Chart{Ascendant: lagna, Planets: positions, Houses: houses}
}

// housesOf indexes planet houses for rule evaluation. ok is false when any
// of the required planets is missing from the chart.
func (c Chart) housesOf(required ...Planet) (houses map[Planet]int, ok bool) {
	houses = make(map[Planet]int, len(c.Planets))
	for _, p := range c.Planets {
		houses[p.Planet] = p.House
	}
	for _, p := range required {
		if _, found := houses[p]; !found {
			return houses, false
		}
	}
	return houses, true
}

// signOf indexes planet signs for rule evaluation.
func (c Chart) signOf() map[Planet]int {
	out := make(map[Planet]int, len(c.Planets))
	for _, p := range c.Planets {
		out[p.Planet] = p.Sign
	}
	return out
}
