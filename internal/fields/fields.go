// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fields extracts typed vehicle attributes from free-text
// specification strings such as "2.0L Turbo I4 250HP 6-Speed Automatic".
//
// Each extractor is a pure function over one string. It reports the first
// (leftmost) vocabulary match, keeping the casing found in the source, or
// NotFound. Extractors never substitute category defaults; callers collapse
// NotFound into a default at their own boundary (see package record).
package fields

import (
	"regexp"
	"strconv"
)

// FuelType matches Electric, Motor, Battery, gasoline, hybrid, flex or EV.
func FuelType(text string) Field[string] {
	return matchTerm(fuelTypeRe, text)
}

// Horsepower returns the number immediately preceding "HP".
func Horsepower(text string) Field[float64] {
	return matchFloat(horsepowerRe, text)
}

// Displacement returns the engine size from "2.0L", "3.5 L" or "5 Liter".
func Displacement(text string) Field[float64] {
	return matchFloat(displacementRe, text)
}

// Cylinder matches "<N> Cylinder" (optionally prefixed by "straight" or
// "flat"), V<N>, V-<N>, H<N>, I<N>, I-<N> or W<N>.
func Cylinder(text string) Field[string] {
	return matchTerm(cylinderRe, text)
}

// FuelInjection matches PDI, GDI, MPFI, TFSI, DDI, SIDI, GTDI or TSI.
func FuelInjection(text string) Field[string] {
	return matchTerm(injectionRe, text)
}

// Induction matches Turbo, Twin Turbo, Intercooled, Supercharged, SC or T/C.
func Induction(text string) Field[string] {
	return matchTerm(inductionRe, text)
}

// Transmission matches Automatic CVT, Automatic, A/T, M/T (slash optional),
// CVT, Variable, manual, fixed or dual.
func Transmission(text string) Field[string] {
	return matchTerm(transmissionRe, text)
}

// Speed returns the gear count. A number attached to "speed" ("6-Speed")
// wins; "Single-Speed" means 1; otherwise the first digit group in the text
// is used.
func Speed(text string) Field[int] {
	if m := speedKeywordRe.FindStringSubmatch(text); m != nil {
		return parseInt(m[1])
	}
	if singleSpeedRe.MatchString(text) {
		return Found(1)
	}
	if m := speedDigitsRe.FindStringSubmatch(text); m != nil {
		return parseInt(m[1])
	}
	return NotFound[int]()
}

// Color matches one of thirteen exterior color names.
func Color(text string) Field[string] {
	return matchTerm(colorRe, text)
}

// Finish matches Metallic, Metal or chrome.
func Finish(text string) Field[string] {
	return matchTerm(finishRe, text)
}

// No vocabulary can match the empty string, so "" means no match.
func matchTerm(re *regexp.Regexp, text string) Field[string] {
	if m := re.FindString(text); m != "" {
		return Found(m)
	}
	return NotFound[string]()
}

func matchFloat(re *regexp.Regexp, text string) Field[float64] {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return NotFound[float64]()
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return NotFound[float64]()
	}
	return Found(v)
}

// parseInt treats digit groups too large for int as absent.
func parseInt(s string) Field[int] {
	v, err := strconv.Atoi(s)
	if err != nil {
		return NotFound[int]()
	}
	return Found(v)
}
