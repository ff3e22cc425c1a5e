// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fields

import "regexp"

// Vocabularies. Alternation order decides overlaps (leftmost-first), so the
// order of every alternative below is significant.
var (
	fuelTypeRe = regexp.MustCompile(`(?i)Electric|Motor|Battery|gasoline|hybrid|flex|EV`)

	horsepowerRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)HP`)

	displacementRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s?L(?:iter)?`)

	cylinderRe = regexp.MustCompile(`(?i)(?:straight\s+|flat\s+)?\d+ Cylinder|V\d+|V-\d+|h\d+|i-?\d+|w\d+`)

	injectionRe = regexp.MustCompile(`(?i)PDI|GDI|MPFI|TFSI|DDI|SIDI|GTDI|TSI`)

	inductionRe = regexp.MustCompile(`(?i)Turbo|Twin Turbo|Intercooled|Supercharged|sc|T/C`)

	transmissionRe = regexp.MustCompile(`(?i)Automatic cvt|Automatic|a/?t|m/?t|cvt|Variable|manual|fixed|dual`)

	colorRe = regexp.MustCompile(`(?i)Black|White|Gray|Silver|Blue|Red|Green|Gold|Brown|Orange|Beige|Yellow|Ebony`)

	finishRe = regexp.MustCompile(`(?i)Metallic|Metal|chrome`)
)

// Gear count patterns, tried in order.
var (
	// speedKeywordRe binds the digit group to the word "speed": "6-Speed", "8 speed".
	speedKeywordRe = regexp.MustCompile(`(?i)(\d+)\s?-?\s?speed`)

	// singleSpeedRe matches the single-gear wording common to EV drivetrains.
	singleSpeedRe = regexp.MustCompile(`(?i)single\s?-?\s?speed`)

	// speedDigitsRe is the bare fallback: the first digit group anywhere.
	speedDigitsRe = regexp.MustCompile(`(?i)(\d+)-?\s?(?:speed)?`)
)
