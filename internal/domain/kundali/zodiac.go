package kundali

import "math"

const (
	signSpan      = 30.0
	nakshatraSpan = 360.0 / 27
	padaSpan      = nakshatraSpan / 4
)

// SignNames are the twelve rashis starting from Aries.
var SignNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// NakshatraNames are the 27 lunar mansions starting from Ashwini.
var NakshatraNames = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni",
	"Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha",
	"Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

// signLords maps each sign to its ruling planet.
var signLords = [12]Planet{Mars, Venus, Mercury, Moon, Sun, Mercury, Venus, Mars, Jupiter, Saturn, Saturn, Jupiter}

// NewPlacement breaks a sidereal longitude into sign, nakshatra and pada.
// Boundaries belong to the following division, so 30° is Taurus 0°.
func NewPlacement(longitude float64) Placement {
	lon := normalize(longitude)
	sign := clampIndex(int(math.Floor(lon/signSpan)), 12)
	// Multiplying first keeps exact boundaries exact; 360/27 is not
	// representable. DegreeInNakshatra is scaled the same way so it agrees
	// with Pada at every quarter boundary.
	nak := clampIndex(int(math.Floor(lon*27/360)), 27)
	quarter := clampIndex(int(math.Floor(lon*108/360)), 108)

	inNak := (lon*27 - float64(nak)*360) / 27
	if inNak < 0 {
		inNak = 0
	}
	return Placement{
		Longitude:         lon,
		Sign:              sign,
		SignName:          SignNames[sign],
		DegreeInSign:      lon - float64(sign)*signSpan,
		Nakshatra:         nak,
		NakshatraName:     NakshatraNames[nak],
		DegreeInNakshatra: inNak,
		Pada:              quarter%4 + 1,
	}
}

// WholeSignHouse counts houses from the ascendant sign.
func WholeSignHouse(sign, ascendantSign int) int {
	return ((sign-ascendantSign)%12+12)%12 + 1
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// isOddSign reports the masculine signs (Aries, Gemini, ...), which have an
// even zero-based index.
func isOddSign(sign int) bool { return sign%2 == 0 }

// modality: 0 movable, 1 fixed, 2 dual.
func modality(sign int) int { return sign % 3 }

// element: 0 fire, 1 earth, 2 air, 3 water.
func element(sign int) int { return sign % 4 }
