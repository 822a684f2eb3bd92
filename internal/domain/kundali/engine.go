package kundali

import "time"

// Options tune a single computation.
type Options struct {
	// Vargas names the divisional charts to derive; empty means DefaultVargas.
	Vargas []string
	// ApparentSiderealTime applies the nutation correction to sidereal time.
	ApparentSiderealTime bool
	// Rules overrides DefaultRules.
	Rules []Rule
}

// Compute builds the full result for one birth input. The reference instant
// only decides which dasha periods are active; everything else depends on
// the input alone. Either the whole result is returned or an error.
func Compute(input BirthInput, reference time.Time, opts Options) (Result, error) {
	jd, err := JulianDay(input)
	if err != nil {
		return Result{}, err
	}
	ayanamsa := Ayanamsa(jd)
	lst := LocalSiderealTime(jd, input.Longitude, opts.ApparentSiderealTime)

	ascendant, err := SiderealAscendant(jd, input.Latitude, input.Longitude, ayanamsa, opts.ApparentSiderealTime)
	if err != nil {
		return Result{}, err
	}

	motions, err := ComputeMotions(jd, ayanamsa)
	if err != nil {
		return Result{}, err
	}
	chart := AssembleChart(ascendant, motions)

	vargas, err := DeriveVargas(chart, opts.Vargas)
	if err != nil {
		return Result{}, err
	}

	moon, err := chart.Position(Moon)
	if err != nil {
		return Result{}, err
	}
	reference = reference.UTC()
	dasha := VimshottariDasha(moon.Placement, input.Instant(), reference)

	rules := opts.Rules
	if len(rules) == 0 {
		rules = DefaultRules
	}
	yogas, doshas := EvaluateRules(chart, rules)

	return Result{
		Input:        input,
		Reference:    reference,
		JulianDay:    jd,
		Ayanamsa:     ayanamsa,
		SiderealTime: lst,
		Chart:        chart,
		Vargas:       vargas,
		Dasha:        dasha,
		Yogas:        yogas,
		Doshas:       doshas,
		Strengths:    ScoreStrengths(chart),
	}, nil
}
