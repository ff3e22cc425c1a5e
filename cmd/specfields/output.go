// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/specfields/pkg/types"
)

func writeSpecs(w io.Writer, specs []types.VehicleSpec, format types.OutputFormat) error {
	switch format {
	case types.OutputYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(specs); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	case types.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(specs)
	case types.OutputTable:
		writeTable(w, specs)
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use yaml, json, or table", format)
	}
}

func writeTable(w io.Writer, specs []types.VehicleSpec) {
	fmt.Fprintf(w, "%-10s  %-6s  %-5s  %-16s  %-5s  %-12s  %-13s  %-4s  %-13s  %s\n",
		"Fuel", "HP", "Liter", "Cylinder", "Inj", "Induction", "Transmission", "Spd", "Color", "Finish")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for _, s := range specs {
		fmt.Fprintf(w, "%-10s  %-6s  %-5s  %-16s  %-5s  %-12s  %-13s  %-4s  %-13s  %s\n",
			truncate(s.FuelType, 10), floatCell(s.Horsepower), floatCell(s.Displacement),
			truncate(s.Cylinder, 16), truncate(s.Injection, 5), truncate(s.Induction, 12),
			truncate(s.Transmission, 13), intCell(s.Speeds), truncate(s.Color, 13), s.Finish)
	}

	fmt.Fprintf(w, "\n%d records\n", len(specs))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func floatCell(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func intCell(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
