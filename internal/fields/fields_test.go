// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuelType(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{name: "electric", text: "Electric Motor, 402HP", want: "Electric", found: true},
		{name: "upper case keeps casing", text: "ELECTRIC DRIVE", want: "ELECTRIC", found: true},
		{name: "lower case keeps casing", text: "electric drive", want: "electric", found: true},
		{name: "gasoline", text: "3.5L V6 Gasoline Fuel", want: "Gasoline", found: true},
		{name: "hybrid", text: "2.5L I4 Hybrid", want: "Hybrid", found: true},
		{name: "flex fuel", text: "5.3L V8 Flex Fuel", want: "Flex", found: true},
		{name: "leftmost wins over alternation order", text: "Battery Electric", want: "Battery", found: true},
		{name: "absent", text: "2.0L Turbo I4 250HP 6-Speed Automatic", found: false},
		{name: "empty text", text: "", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FuelType(tt.text).Get()
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHorsepower(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  float64
		found bool
	}{
		{name: "integer", text: "300HP", want: 300, found: true},
		{name: "decimal", text: "295.5HP 3.6L", want: 295.5, found: true},
		{name: "embedded", text: "2.0L Turbo I4 250HP 6-Speed", want: 250, found: true},
		{name: "lower case unit", text: "181hp", want: 181, found: true},
		{name: "first of two", text: "402HP front, 200HP rear", want: 402, found: true},
		{name: "space before unit is not horsepower", text: "300 HP", found: false},
		{name: "absent", text: "Electric Motor", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Horsepower(tt.text).Get()
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplacement(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  float64
		found bool
	}{
		{name: "liters suffix", text: "2.0L", want: 2.0, found: true},
		{name: "space before unit", text: "3.5 L V6", want: 3.5, found: true},
		{name: "spelled out", text: "5 Liter V8", want: 5, found: true},
		{name: "after horsepower", text: "300HP 3.0L I6", want: 3.0, found: true},
		{name: "absent", text: "Electric Motor, 402HP", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Displacement(tt.text).Get()
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCylinder(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{name: "V8 before N Cylinder", text: "V8 4 Cylinder", want: "V8", found: true},
		{name: "inline four", text: "2.0L Turbo I4 250HP", want: "I4", found: true},
		{name: "hyphenated inline", text: "1.5L i-3", want: "i-3", found: true},
		{name: "hyphenated vee", text: "6.2L V-8", want: "V-8", found: true},
		{name: "flat prefix", text: "3.0L Flat 6 Cylinder", want: "Flat 6 Cylinder", found: true},
		{name: "straight prefix", text: "Straight 6 Cylinder Engine", want: "Straight 6 Cylinder", found: true},
		{name: "plain count", text: "4 Cylinder Engine", want: "4 Cylinder", found: true},
		{name: "horizontally opposed", text: "2.4L H4", want: "H4", found: true},
		{name: "w engine", text: "6.0L W12", want: "W12", found: true},
		{name: "absent", text: "Electric Motor", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Cylinder(tt.text).Get()
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFuelInjection(t *testing.T) {
	tests := []struct {
		text  string
		want  string
		found bool
	}{
		{text: "2.0L I4 GDI DOHC", want: "GDI", found: true},
		{text: "1.4L TSI", want: "TSI", found: true},
		{text: "2.0L tfsi", want: "tfsi", found: true},
		{text: "3.6L V6 MPFI", want: "MPFI", found: true},
		{text: "1.5L GTDI", want: "GTDI", found: true},
		{text: "2.0L I4", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := FuelInjection(tt.text).Get()
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInduction(t *testing.T) {
	tests := []struct {
		text  string
		want  string
		found bool
	}{
		{text: "2.0L Turbo I4", want: "Turbo", found: true},
		{text: "3.0L Twin Turbo I6", want: "Twin Turbo", found: true},
		{text: "6.2L Supercharged V8", want: "Supercharged", found: true},
		{text: "2.0L Intercooled Turbo", want: "Intercooled", found: true},
		{text: "3.5L V6 T/C", want: "T/C", found: true},
		{text: "3.6L V6 Engine", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := Induction(tt.text).Get()
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransmission(t *testing.T) {
	tests := []struct {
		text  string
		want  string
		found bool
	}{
		{text: "6-Speed Automatic", want: "Automatic", found: true},
		{text: "Automatic CVT", want: "Automatic CVT", found: true},
		{text: "6-Speed A/T", want: "A/T", found: true},
		{text: "6-Speed M/T", want: "M/T", found: true},
		{text: "CVT Transmission", want: "CVT", found: true},
		{text: "6-Speed Manual", want: "Manual", found: true},
		{text: "Variable", want: "Variable", found: true},
		{text: "7-Speed Dual Clutch", want: "Dual", found: true},
		{text: "Single-Speed Fixed Gear", want: "Fixed", found: true},
		{text: "402HP", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := Transmission(tt.text).Get()
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpeed(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  int
		found bool
	}{
		{name: "hyphenated", text: "6-speed", want: 6, found: true},
		{name: "space separated", text: "8 Speed Automatic", want: 8, found: true},
		{name: "joined", text: "10speed", want: 10, found: true},
		{name: "keyword beats earlier digits", text: "2.0L Turbo I4 250HP 6-Speed Automatic", want: 6, found: true},
		{name: "single speed", text: "Electric Motor, 402HP, Single-Speed Automatic", want: 1, found: true},
		{name: "bare digits fallback", text: "Automatic 7", want: 7, found: true},
		{name: "first bare digit group", text: "CVT 2024 model", want: 2024, found: true},
		{name: "overflow is absent", text: "99999999999999999999999 Automatic", found: false},
		{name: "absent", text: "Automatic", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Speed(tt.text).Get()
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		text  string
		want  string
		found bool
	}{
		{text: "Metallic Red", want: "Red", found: true},
		{text: "Jet BLACK", want: "BLACK", found: true},
		{text: "Ebony Interior", want: "Ebony", found: true},
		{text: "Silver Ice over White", want: "Silver", found: true},
		{text: "Midnight Purple", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := Color(tt.text).Get()
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFinish(t *testing.T) {
	tests := []struct {
		text  string
		want  string
		found bool
	}{
		{text: "Metallic Red", want: "Metallic", found: true},
		{text: "Liquid Metal Gray", want: "Metal", found: true},
		{text: "Chrome Silver", want: "Chrome", found: true},
		{text: "Solid White", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := Finish(tt.text).Get()
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEndToEndTurboFour(t *testing.T) {
	text := "2.0L Turbo I4 250HP 6-Speed Automatic, Metallic Red"

	assert.False(t, FuelType(text).OK())
	assert.Equal(t, 250.0, Horsepower(text).Or(0))
	assert.Equal(t, 2.0, Displacement(text).Or(0))
	assert.Equal(t, "I4", Cylinder(text).Or(""))
	assert.Equal(t, "Turbo", Induction(text).Or(""))
	assert.Equal(t, "Automatic", Transmission(text).Or(""))
	assert.Equal(t, 6, Speed(text).Or(0))
	assert.Equal(t, "Red", Color(text).Or(""))
	assert.Equal(t, "Metallic", Finish(text).Or(""))
}

func TestEndToEndElectric(t *testing.T) {
	text := "Electric Motor, 402HP, Single-Speed Automatic"

	assert.Equal(t, "Electric", FuelType(text).Or(""))
	assert.Equal(t, 402.0, Horsepower(text).Or(0))
	assert.Equal(t, 1, Speed(text).Or(0))
	assert.Equal(t, "Automatic", Transmission(text).Or(""))
	assert.False(t, Displacement(text).OK())
}
