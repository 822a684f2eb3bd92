package kundali

import (
	"fmt"
	"math"
	"time"

	apperrors "github.com/yanqian/kundali/pkg/errors"
)

// Planet identifies one of the nine grahas.
type Planet string

const (
	Sun     Planet = "Sun"
	Moon    Planet = "Moon"
	Mars    Planet = "Mars"
	Mercury Planet = "Mercury"
	Jupiter Planet = "Jupiter"
	Venus   Planet = "Venus"
	Saturn  Planet = "Saturn"
	Rahu    Planet = "Rahu"
	Ketu    Planet = "Ketu"
)

// Planets lists the grahas in canonical order. Every ordered output of the
// engine follows this order.
var Planets = [...]Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}

// ParsePlanet resolves a planet identifier, rejecting anything outside the
// fixed nine-symbol set.
func ParsePlanet(name string) (Planet, error) {
	for _, p := range Planets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", domainError(fmt.Sprintf("unknown planet %q", name))
}

// BirthInput is the civil birth moment and place.
type BirthInput struct {
	Year      int     `json:"year" validate:"gte=1600,lte=2400"`
	Month     int     `json:"month" validate:"gte=1,lte=12"`
	Day       int     `json:"day" validate:"gte=1,lte=31"`
	Hour      int     `json:"hour" validate:"gte=0,lte=23"`
	Minute    int     `json:"minute" validate:"gte=0,lte=59"`
	Second    int     `json:"second" validate:"gte=0,lte=59"`
	UTCOffset float64 `json:"utcOffset" validate:"gte=-14,lte=14"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// Instant returns the birth moment in UTC.
func (b BirthInput) Instant() time.Time {
	offset := int(math.Round(b.UTCOffset * 3600))
	zone := time.FixedZone("birth", offset)
	return time.Date(b.Year, time.Month(b.Month), b.Day, b.Hour, b.Minute, b.Second, 0, zone).UTC()
}

// Placement is the zodiacal breakdown of a sidereal longitude.
type Placement struct {
	Longitude         float64 `json:"longitude"`
	Sign              int     `json:"sign"`
	SignName          string  `json:"signName"`
	DegreeInSign      float64 `json:"degreeInSign"`
	Nakshatra         int     `json:"nakshatra"`
	NakshatraName     string  `json:"nakshatraName"`
	DegreeInNakshatra float64 `json:"degreeInNakshatra"`
	Pada              int     `json:"pada"`
}

// PlanetPosition is a graha placed in the chart.
type PlanetPosition struct {
	Planet Planet `json:"planet"`
	Placement
	Speed      float64 `json:"speed"`
	Retrograde bool    `json:"retrograde"`
	House      int     `json:"house"`
}

// LagnaPosition is the ascendant. Its sign defines house 1.
type LagnaPosition struct {
	Placement
	House int `json:"house"`
}

// House lists the planets occupying one whole-sign house.
type House struct {
	Number  int      `json:"number"`
	Sign    int      `json:"sign"`
	Planets []Planet `json:"planets"`
}

// Chart is the D1 birth chart.
type Chart struct {
	Ascendant LagnaPosition    `json:"ascendant"`
	Planets   []PlanetPosition `json:"planets"`
	Houses    []House          `json:"houses"`
}

// Position returns the placement of p.
func (c Chart) Position(p Planet) (PlanetPosition, error) {
	for _, pos := range c.Planets {
		if pos.Planet == p {
			return pos, nil
		}
	}
	return PlanetPosition{}, domainError(fmt.Sprintf("planet %q not in chart", p))
}

// VargaPlacement is a planet's sign and house in a divisional chart.
type VargaPlacement struct {
	Planet   Planet `json:"planet"`
	Sign     int    `json:"sign"`
	SignName string `json:"signName"`
	House    int    `json:"house"`
}

// DivisionalChart is a varga derived from the D1 chart.
type DivisionalChart struct {
	Name          string           `json:"name"`
	Title         string           `json:"title"`
	AscendantSign int              `json:"ascendantSign"`
	Placements    []VargaPlacement `json:"placements"`
}

// DashaPeriod is one Mahadasha or Antardasha.
type DashaPeriod struct {
	Planet        Planet        `json:"planet"`
	Start         time.Time     `json:"start"`
	End           time.Time     `json:"end"`
	DurationYears float64       `json:"durationYears"`
	Active        bool          `json:"active"`
	SubPeriods    []DashaPeriod `json:"subPeriods,omitempty"`
}

// DashaTimeline is the Vimshottari sequence seeded by the birth Moon.
type DashaTimeline struct {
	CycleStart   time.Time     `json:"cycleStart"`
	BalanceYears float64       `json:"balanceYears"`
	Periods      []DashaPeriod `json:"periods"`
}

// Category classifies a finding.
type Category string

const (
	Benefic Category = "benefic"
	Malefic Category = "malefic"
	Neutral Category = "neutral"
)

// Kind separates yogas from doshas.
type Kind string

const (
	KindYoga  Kind = "yoga"
	KindDosha Kind = "dosha"
)

// Finding is the outcome of one yoga or dosha rule.
type Finding struct {
	Name        string   `json:"name"`
	Kind        Kind     `json:"kind"`
	Category    Category `json:"category"`
	Active      bool     `json:"active"`
	Strength    float64  `json:"strength"`
	Description string   `json:"description"`
	Planets     []Planet `json:"planets"`
}

// StrengthScore is the approximate Shadbala score of one planet.
type StrengthScore struct {
	Planet      Planet  `json:"planet"`
	Dignity     string  `json:"dignity"`
	Positional  float64 `json:"positional"`
	Natural     float64 `json:"natural"`
	Directional float64 `json:"directional"`
	Total       float64 `json:"total"`
}

// Result is everything computed for one birth input.
type Result struct {
	Input        BirthInput        `json:"input"`
	Reference    time.Time         `json:"reference"`
	JulianDay    float64           `json:"julianDay"`
	Ayanamsa     float64           `json:"ayanamsa"`
	SiderealTime float64           `json:"siderealTime"`
	Chart        Chart             `json:"chart"`
	Vargas       []DivisionalChart `json:"vargas"`
	Dasha        DashaTimeline     `json:"dasha"`
	Yogas        []Finding         `json:"yogas"`
	Doshas       []Finding         `json:"doshas"`
	Strengths    []StrengthScore   `json:"strengths"`
}

// ActiveDasha returns the running Mahadasha, if any.
func (r Result) ActiveDasha() (DashaPeriod, bool) {
	for _, p := range r.Dasha.Periods {
		if p.Active {
			return p, true
		}
	}
	return DashaPeriod{}, false
}

// Error codes surfaced by the engine.
const (
	CodeValidation = "validation_error"
	CodeDomain     = "domain_error"
)

func validationError(message string, err error) error {
	return apperrors.Wrap(CodeValidation, message, err)
}

func domainError(message string) error {
	return apperrors.Wrap(CodeDomain, message, nil)
}

// IsValidationError reports malformed input.
func IsValidationError(err error) bool {
	return apperrors.IsCode(err, CodeValidation)
}

// IsDomainError reports inputs outside the engine's domain.
func IsDomainError(err error) bool {
	return apperrors.IsCode(err, CodeDomain)
}
