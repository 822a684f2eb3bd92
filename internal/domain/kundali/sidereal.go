package kundali

import "math"

const (
	j2000           = 2451545.0
	daysPerCentury  = 36525.0
	arcsecPerDegree = 3600.0
)

// JulianDay converts the civil birth time to a Julian Day in UT.
func JulianDay(b BirthInput) (float64, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	ut := float64(b.Hour) + float64(b.Minute)/60 + float64(b.Second)/3600 - b.UTCOffset
	return julianDay(b.Year, b.Month, float64(b.Day)+ut/24), nil
}

// julianDay is the Gregorian calendar algorithm; day may carry a fraction
// (or spill outside [1, 31]) since the result is linear in it.
func julianDay(year, month int, day float64) float64 {
	if month <= 2 {
		year--
		month += 12
	}
	a := math.Floor(float64(year) / 100)
	b := 2 - a + math.Floor(a/4)
	return math.Floor(365.25*float64(year+4716)) + math.Floor(30.6001*float64(month+1)) + day + b - 1524.5
}

// centuries returns T, Julian centuries since J2000.0.
func centuries(jd float64) float64 {
	return (jd - j2000) / daysPerCentury
}

// GreenwichSiderealTime is the mean sidereal time at Greenwich in degrees.
func GreenwichSiderealTime(jd float64) float64 {
	t := centuries(jd)
	gmst := 280.46061837 + 360.98564736629*(jd-j2000) + 0.000387933*t*t - t*t*t/38710000
	return normalize(gmst)
}

// LocalSiderealTime adds the east longitude of the site to GMST. With
// apparent set, the equation of the equinoxes is applied as well.
func LocalSiderealTime(jd, longitude float64, apparent bool) float64 {
	lst := GreenwichSiderealTime(jd) + longitude
	if apparent {
		lst += nutationInLongitude(jd) * cosd(Obliquity(jd))
	}
	return normalize(lst)
}

// nutationInLongitude keeps only the leading 18.6-year node term.
func nutationInLongitude(jd float64) float64 {
	return -17.20 * sind(meanNode(jd)) / arcsecPerDegree
}

// Obliquity is the mean obliquity of the ecliptic in degrees.
func Obliquity(jd float64) float64 {
	t := centuries(jd)
	return 23.439291 - 0.0130042*t - 1.64e-7*t*t + 5.04e-7*t*t*t
}

// Ayanamsa is the Lahiri (Chitrapaksha) offset between the tropical and
// sidereal zodiacs in degrees.
func Ayanamsa(jd float64) float64 {
	return 23.85305 + precession(jd)
}

// precession is the general precession in longitude accumulated since
// J2000.0, in degrees.
func precession(jd float64) float64 {
	t := centuries(jd)
	return (5028.796195*t + 1.1054348*t*t) / arcsecPerDegree
}

func normalize(d float64) float64 {
	r := math.Mod(d, 360)
	if r < 0 {
		r += 360
	}
	if r >= 360 {
		r -= 360
	}
	return r
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// signedDelta maps an angular difference into [-180, 180).
func signedDelta(delta float64) float64 {
	d := normalize(delta)
	if d >= 180 {
		d -= 360
	}
	return d
}

func toRad(d float64) float64 { return d * math.Pi / 180 }
func toDeg(r float64) float64 { return r * 180 / math.Pi }
func sind(d float64) float64  { return math.Sin(toRad(d)) }
func cosd(d float64) float64  { return math.Cos(toRad(d)) }
