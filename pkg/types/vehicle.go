// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// VehicleSpec holds every attribute extracted from one specification string.
// String fields carry the matched term (source casing) or the configured
// default. Numeric fields are nil when the source text does not state them.
type VehicleSpec struct {
	// Source is the specification text the record was built from.
	Source string `json:"source" yaml:"source"`

	// FuelType is Electric, Motor, Battery, gasoline, hybrid, flex or EV.
	FuelType string `json:"fuel_type" yaml:"fuel_type"`

	// Horsepower is the number preceding "HP".
	Horsepower *float64 `json:"horsepower" yaml:"horsepower"`

	// Displacement is the engine size in liters.
	Displacement *float64 `json:"displacement" yaml:"displacement"`

	// Cylinder is the cylinder layout (e.g. "V8", "I4", "flat 6 Cylinder").
	Cylinder string `json:"cylinder" yaml:"cylinder"`

	// Injection is the fuel injection system (e.g. "GDI", "TSI").
	Injection string `json:"injection" yaml:"injection"`

	// Induction is the forced-induction type (e.g. "Turbo", "Supercharged").
	Induction string `json:"induction" yaml:"induction"`

	// Transmission is the gearbox type (e.g. "Automatic", "CVT").
	Transmission string `json:"transmission" yaml:"transmission"`

	// Speeds is the gear count.
	Speeds *int `json:"speeds" yaml:"speeds"`

	// Color is the exterior color.
	Color string `json:"color" yaml:"color"`

	// Finish is the paint finish (e.g. "Metallic").
	Finish string `json:"finish" yaml:"finish"`
}

// Defaults holds the values substituted for string fields whose vocabulary
// does not appear in the source text.
type Defaults struct {
	FuelType     string `json:"fuel_type" yaml:"fuel_type" mapstructure:"fuel_type"`
	Cylinder     string `json:"cylinder" yaml:"cylinder" mapstructure:"cylinder"`
	Injection    string `json:"injection" yaml:"injection" mapstructure:"injection"`
	Induction    string `json:"induction" yaml:"induction" mapstructure:"induction"`
	Transmission string `json:"transmission" yaml:"transmission" mapstructure:"transmission"`
	Color        string `json:"color" yaml:"color" mapstructure:"color"`
	Finish       string `json:"finish" yaml:"finish" mapstructure:"finish"`
}

// Built-in defaults for absent string fields.
const (
	DefaultNA           = "NA"
	DefaultTransmission = "M/T"
	DefaultColor        = "Miscellaneous"
	DefaultFinish       = "Gloss"
)

// DefaultDefaults returns the built-in defaults.
func DefaultDefaults() Defaults {
	return Defaults{
		FuelType:     DefaultNA,
		Cylinder:     DefaultNA,
		Injection:    DefaultNA,
		Induction:    DefaultNA,
		Transmission: DefaultTransmission,
		Color:        DefaultColor,
		Finish:       DefaultFinish,
	}
}

// WithFallbacks returns d with every empty field replaced by its built-in
// default. A partially configured Defaults therefore only overrides the
// fields it names.
func (d Defaults) WithFallbacks() Defaults {
	base := DefaultDefaults()
	fill := func(v *string, fallback string) {
		if *v == "" {
			*v = fallback
		}
	}
	fill(&d.FuelType, base.FuelType)
	fill(&d.Cylinder, base.Cylinder)
	fill(&d.Injection, base.Injection)
	fill(&d.Induction, base.Induction)
	fill(&d.Transmission, base.Transmission)
	fill(&d.Color, base.Color)
	fill(&d.Finish, base.Finish)
	return d
}
