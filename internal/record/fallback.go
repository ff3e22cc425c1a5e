// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import (
	"github.com/pdiddy/specfields/internal/fields"
	"github.com/pdiddy/specfields/pkg/types"
)

// Missing is the text form of an absent numeric field.
const Missing = "null"

// Field extracts the named field from text as a string, substituting the
// default from d for an absent string field and Missing for an absent
// numeric one.
func Field(name, text string, d types.Defaults) (string, error) {
	e, err := fields.Lookup(name)
	if err != nil {
		return "", err
	}
	if v, ok := e.Extract(text); ok {
		return v, nil
	}
	return fallback(name, d.WithFallbacks()), nil
}

func fallback(name string, d types.Defaults) string {
	switch name {
	case fields.NameFuelType:
		return d.FuelType
	case fields.NameCylinder:
		return d.Cylinder
	case fields.NameInjection:
		return d.Injection
	case fields.NameInduction:
		return d.Induction
	case fields.NameTransmission:
		return d.Transmission
	case fields.NameColor:
		return d.Color
	case fields.NameFinish:
		return d.Finish
	default:
		return Missing
	}
}
