package kundali

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// orbit holds J2000 mean Keplerian elements and their rates per Julian
// century (JPL "approximate positions of the planets", 1800–2050 fit).
// Angles are in degrees, a in AU.
type orbit struct {
	a, aRate         float64
	e, eRate         float64
	incl, inclRate   float64
	meanLon, lonRate float64
	peri, periRate   float64
	node, nodeRate   float64
}

var (
	earthOrbit = orbit{
		a: 1.00000261, aRate: 0.00000562,
		e: 0.01671123, eRate: -0.00004392,
		incl: -0.00001531, inclRate: -0.01294668,
		meanLon: 100.46457166, lonRate: 35999.37244981,
		peri: 102.93768193, periRate: 0.32327364,
	}
	planetOrbits = map[Planet]orbit{
		Mercury: {
			a: 0.38709927, aRate: 0.00000037,
			e: 0.20563593, eRate: 0.00001906,
			incl: 7.00497902, inclRate: -0.00594749,
			meanLon: 252.25032350, lonRate: 149472.67411175,
			peri: 77.45779628, periRate: 0.16047689,
			node: 48.33076593, nodeRate: -0.12534081,
		},
		Venus: {
			a: 0.72333566, aRate: 0.00000390,
			e: 0.00677672, eRate: -0.00004107,
			incl: 3.39467605, inclRate: -0.00078890,
			meanLon: 181.97909950, lonRate: 58517.81538729,
			peri: 131.60246718, periRate: 0.00268329,
			node: 76.67984255, nodeRate: -0.27769418,
		},
		Mars: {
			a: 1.52371034, aRate: 0.00001847,
			e: 0.09339410, eRate: 0.00007882,
			incl: 1.84969142, inclRate: -0.00813131,
			meanLon: -4.55343205, lonRate: 19140.30268499,
			peri: -23.94362959, periRate: 0.44441088,
			node: 49.55953891, nodeRate: -0.29257343,
		},
		Jupiter: {
			a: 5.20288700, aRate: -0.00011607,
			e: 0.04838624, eRate: -0.00013253,
			incl: 1.30439695, inclRate: -0.00183714,
			meanLon: 34.39644051, lonRate: 3034.74612775,
			peri: 14.72847983, periRate: 0.21252668,
			node: 100.47390909, nodeRate: 0.20469106,
		},
		Saturn: {
			a: 9.53667594, aRate: -0.00125060,
			e: 0.05386179, eRate: -0.00050991,
			incl: 2.48599187, inclRate: 0.00193609,
			meanLon: 49.95424423, lonRate: 1222.49362201,
			peri: 92.59887831, periRate: -0.41897216,
			node: 113.66242448, nodeRate: -0.28867794,
		},
	}
)

type vec3 struct{ x, y, z float64 }

// heliocentric returns the J2000 ecliptic position of the body at T.
func (o orbit) heliocentric(t float64) vec3 {
	a := o.a + o.aRate*t
	e := o.e + o.eRate*t
	incl := o.incl + o.inclRate*t
	meanLon := o.meanLon + o.lonRate*t
	peri := o.peri + o.periRate*t
	node := o.node + o.nodeRate*t

	m := normalize(meanLon - peri)
	v := m + toDeg(equationOfCenter(toRad(m), e))
	r := a * (1 - e*e) / (1 + e*cosd(v))
	u := v + peri - node

	return vec3{
		x: r * (cosd(node)*cosd(u) - sind(node)*sind(u)*cosd(incl)),
		y: r * (sind(node)*cosd(u) + cosd(node)*sind(u)*cosd(incl)),
		z: r * sind(u) * sind(incl),
	}
}

// equationOfCenter is the true-minus-mean anomaly as a Fourier series in the
// mean anomaly m, truncated after e^5.
func equationOfCenter(m, e float64) float64 {
	e2 := e * e
	e3 := e2 * e
	e4 := e3 * e
	e5 := e4 * e
	return (2*e-e3/4+5*e5/96)*math.Sin(m) +
		(5*e2/4-11*e4/24)*math.Sin(2*m) +
		(13*e3/12-43*e5/64)*math.Sin(3*m) +
		(103*e4/96)*math.Sin(4*m) +
		(1097*e5/960)*math.Sin(5*m)
}

// tropicalLongitude is the geocentric longitude of p referred to the mean
// equinox of date.
func tropicalLongitude(p Planet, jd float64) float64 {
	t := centuries(jd)
	switch p {
	case Moon:
		return moonLongitude(t)
	case Rahu:
		return meanNode(jd)
	case Ketu:
		return normalize(meanNode(jd) + 180)
	}

	earth := earthOrbit.heliocentric(t)
	var geo vec3
	if p == Sun {
		geo = vec3{x: -earth.x, y: -earth.y, z: -earth.z}
	} else {
		body := planetOrbits[p].heliocentric(t)
		geo = vec3{x: body.x - earth.x, y: body.y - earth.y, z: body.z - earth.z}
	}
	return normalize(toDeg(math.Atan2(geo.y, geo.x)) + precession(jd))
}

// moonLongitude sums the leading periodic terms of the lunar longitude on
// top of the mean longitude. D, M, M' and F are the Delaunay arguments.
func moonLongitude(t float64) float64 {
	l := 218.3164477 + 481267.88123421*t - 0.0015786*t*t
	d := 297.8501921 + 445267.1114034*t - 0.0018819*t*t
	m := 357.5291092 + 35999.0502909*t - 0.0001536*t*t
	mp := 134.9633964 + 477198.8675055*t + 0.0087414*t*t
	f := 93.2720950 + 483202.0175233*t - 0.0036539*t*t

	l += 6.288774*sind(mp) +
		1.274027*sind(2*d-mp) +
		0.658314*sind(2*d) +
		0.213618*sind(2*mp) -
		0.185116*sind(m) -
		0.114332*sind(2*f) +
		0.058793*sind(2*d-2*mp) +
		0.057066*sind(2*d-m-mp) +
		0.053322*sind(2*d+mp) +
		0.045758*sind(2*d-m)
	return normalize(l)
}

// meanNode is the longitude of the Moon's mean ascending node (Rahu).
func meanNode(jd float64) float64 {
	t := centuries(jd)
	return normalize(125.0445479 - 1934.1362891*t + 0.0020754*t*t + t*t*t/467441)
}

// Motion is one planet's sidereal longitude and daily speed in degrees.
type Motion struct {
	Planet     Planet
	Longitude  float64
	Speed      float64
	Retrograde bool
}

// ComputeMotions evaluates all nine grahas in canonical order. Planets are
// independent, so each gets its own goroutine and slot.
func ComputeMotions(jd, ayanamsa float64) ([]Motion, error) {
	out := make([]Motion, len(Planets))
	var g errgroup.Group
	for i, p := range Planets {
		g.Go(func() error {
			m, err := planetMotion(p, jd, ayanamsa)
			if err != nil {
				return err
			}
			out[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func planetMotion(p Planet, jd, ayanamsa float64) (Motion, error) {
	if p == Ketu {
		m, err := planetMotion(Rahu, jd, ayanamsa)
		if err != nil {
			return Motion{}, err
		}
		m.Planet = Ketu
		m.Longitude = normalize(m.Longitude + 180)
		return m, nil
	}

	const halfDay = 0.5
	speed := signedDelta(tropicalLongitude(p, jd+halfDay) - tropicalLongitude(p, jd-halfDay))
	lon := normalize(tropicalLongitude(p, jd) - ayanamsa)
	if !finite(lon) || !finite(speed) {
		return Motion{}, domainError(fmt.Sprintf("%s position undefined at julian day %v", p, jd))
	}

	retrograde := speed < 0
	switch p {
	case Sun, Moon:
		retrograde = false
	case Rahu, Ketu:
		retrograde = true
	}
	return Motion{
		Planet:     p,
		Longitude:  lon,
		Speed:      speed,
		Retrograde: retrograde,
	}, nil
}
