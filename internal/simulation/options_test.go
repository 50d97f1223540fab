package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-sim/internal/units"
)

func TestParseTimestep(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"year", units.Year, false},
		{"month", units.Month, false},
		{"0.016", 0.016, false},
		{"86400", 86400, false},
		{"0", 0, true},
		{"-5", 0, true},
		{"fortnight", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseTimestep(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{"2d", "2d-grid", "3d", "3d-black-holes"}, PresetNames())
	for _, name := range PresetNames() {
		o, err := Preset(name)
		require.NoError(t, err)
		assert.NoError(t, o.Validate(), name)
		assert.Zero(t, o.Timestep, name)
	}

	o, err := Preset("3d-black-holes")
	require.NoError(t, err)
	assert.True(t, o.EnableBlackHoles)
	assert.Equal(t, 3, o.Dimensions)

	_, err = Preset("4d")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, DefaultOptions().Validate())
	assert.Error(t, Options{Dimensions: 1}.Validate())
	assert.Error(t, Options{Dimensions: 2, Timestep: -1}.Validate())
}
