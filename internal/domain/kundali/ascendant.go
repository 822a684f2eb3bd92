package kundali

import (
	"fmt"
	"math"
)

// polarLatitude is where tan(latitude) diverges and the horizon stops
// intersecting the ecliptic in a useful way.
const polarLatitude = 90.0

// TropicalAscendant returns the ecliptic longitude rising on the eastern
// horizon for the given local sidereal time, latitude and obliquity.
func TropicalAscendant(lst, latitude, obliquity float64) (float64, error) {
	if math.Abs(latitude) >= polarLatitude || math.IsNaN(latitude) {
		return 0, domainError(fmt.Sprintf("ascendant undefined at latitude %.4f", latitude))
	}
	y := cosd(lst)
	x := -(sind(obliquity)*math.Tan(toRad(latitude)) + cosd(obliquity)*sind(lst))
	asc := toDeg(math.Atan2(y, x))
	if !finite(asc) {
		return 0, domainError(fmt.Sprintf("ascendant undefined at latitude %.4f", latitude))
	}
	return normalize(asc), nil
}

// SiderealAscendant is the Lagna longitude in the sidereal zodiac.
func SiderealAscendant(jd, latitude, longitude, ayanamsa float64, apparent bool) (float64, error) {
	lst := LocalSiderealTime(jd, longitude, apparent)
	asc, err := TropicalAscendant(lst, latitude, Obliquity(jd))
	if err != nil {
		return 0, err
	}
	return normalize(asc - ayanamsa), nil
}
