// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package record builds a VehicleSpec from one specification string by
// running every field extractor and collapsing absent string fields into
// the configured defaults. Absent numeric fields stay nil.
package record

import (
	"context"

	"github.com/pdiddy/specfields/internal/fields"
	"github.com/pdiddy/specfields/pkg/types"
)

// Build extracts every field from text. Empty entries in d fall back to the
// built-in defaults.
func Build(text string, d types.Defaults) types.VehicleSpec {
	d = d.WithFallbacks()
	return types.VehicleSpec{
		Source:       text,
		FuelType:     fields.FuelType(text).Or(d.FuelType),
		Horsepower:   fields.Horsepower(text).Ptr(),
		Displacement: fields.Displacement(text).Ptr(),
		Cylinder:     fields.Cylinder(text).Or(d.Cylinder),
		Injection:    fields.FuelInjection(text).Or(d.Injection),
		Induction:    fields.Induction(text).Or(d.Induction),
		Transmission: fields.Transmission(text).Or(d.Transmission),
		Speeds:       fields.Speed(text).Ptr(),
		Color:        fields.Color(text).Or(d.Color),
		Finish:       fields.Finish(text).Or(d.Finish),
	}
}

// BuildAll builds one record per text, in input order. It stops at the
// first cancelled context check and returns the records built so far.
func BuildAll(ctx context.Context, texts []string, d types.Defaults) ([]types.VehicleSpec, error) {
	out := make([]types.VehicleSpec, 0, len(texts))
	for _, text := range texts {
		select {
		case <-ctx.Done():
			return out, ctx.Err()
		default:
		}
		out = append(out, Build(text, d))
	}
	return out, nil
}
