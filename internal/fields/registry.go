// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fields

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned by Lookup for a name no extractor carries.
var ErrUnknownField = errors.New("unknown field")

// Field names, matching the VehicleSpec serialization keys.
const (
	NameFuelType     = "fuel_type"
	NameHorsepower   = "horsepower"
	NameDisplacement = "displacement"
	NameCylinder     = "cylinder"
	NameInjection    = "injection"
	NameInduction    = "induction"
	NameTransmission = "transmission"
	NameSpeeds       = "speeds"
	NameColor        = "color"
	NameFinish       = "finish"
)

// Extractor pairs a field name with an extractor rendering its result as
// text. Extract returns false when the field is absent.
type Extractor struct {
	Name    string
	Extract func(text string) (string, bool)
}

func named[T any](name string, fn func(string) Field[T]) Extractor {
	return Extractor{
		Name: name,
		Extract: func(text string) (string, bool) {
			f := fn(text)
			return f.String(), f.OK()
		},
	}
}

var registry = []Extractor{
	named(NameFuelType, FuelType),
	named(NameHorsepower, Horsepower),
	named(NameDisplacement, Displacement),
	named(NameCylinder, Cylinder),
	named(NameInjection, FuelInjection),
	named(NameInduction, Induction),
	named(NameTransmission, Transmission),
	named(NameSpeeds, Speed),
	named(NameColor, Color),
	named(NameFinish, Finish),
}

// All returns every extractor in declaration order.
func All() []Extractor {
	out := make([]Extractor, len(registry))
	copy(out, registry)
	return out
}

// Names returns every field name in declaration order.
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.Name
	}
	return names
}

// Lookup returns the extractor registered under name.
func Lookup(name string) (Extractor, error) {
	for _, e := range registry {
		if e.Name == name {
			return e, nil
		}
	}
	return Extractor{}, fmt.Errorf("%w %q: valid fields are %v", ErrUnknownField, name, Names())
}
