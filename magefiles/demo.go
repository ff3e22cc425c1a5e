//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var demoTexts = []string{
	"2.0L Turbo I4 250HP 6-Speed Automatic, Metallic Red",
	"Electric Motor, 402HP, Single-Speed Automatic",
	"3.0L Twin Turbo I6 382HP 8-Speed A/T, Black",
}

// Demo builds the CLI and prints a table for a few sample strings.
func Demo() error {
	mg.Deps(Build)
	args := append([]string{"extract", "--format", "table"}, demoTexts...)
	return sh.RunV("bin/specfields", args...)
}
