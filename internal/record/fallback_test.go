// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/specfields/internal/fields"
	"github.com/pdiddy/specfields/pkg/types"
)

func TestField(t *testing.T) {
	text := "2.0L Turbo I4 250HP 6-Speed Automatic, Metallic Red"
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: fields.NameHorsepower, text: text, want: "250"},
		{name: fields.NameDisplacement, text: text, want: "2"},
		{name: fields.NameSpeeds, text: text, want: "6"},
		{name: fields.NameCylinder, text: text, want: "I4"},
		{name: fields.NameFuelType, text: text, want: "NA"},
		{name: fields.NameInjection, text: text, want: "NA"},
		{name: fields.NameColor, text: "Midnight Purple", want: "Miscellaneous"},
		{name: fields.NameFinish, text: "Solid White", want: "Gloss"},
		{name: fields.NameTransmission, text: "402HP", want: "M/T"},
		{name: fields.NameInduction, text: "V6", want: "NA"},
		{name: fields.NameHorsepower, text: "Electric Motor", want: Missing},
		{name: fields.NameSpeeds, text: "Automatic", want: Missing},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.text, func(t *testing.T) {
			got, err := Field(tt.name, tt.text, types.Defaults{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFieldConfiguredDefault(t *testing.T) {
	got, err := Field(fields.NameColor, "Midnight Purple", types.Defaults{Color: "Other"})
	require.NoError(t, err)
	assert.Equal(t, "Other", got)
}

func TestFieldUnknown(t *testing.T) {
	_, err := Field("wheelbase", "V8", types.Defaults{})
	require.ErrorIs(t, err, fields.ErrUnknownField)
}
