package physics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateChelyabinsk(t *testing.T) {
	e := testEngine()

	res, err := e.Simulate(ImpactParameters{
		DiameterM:     20,
		DensityKgM3:   2600,
		VelocityKmS:   19.16,
		EntryAngleDeg: 18,
	})
	require.NoError(t, err)

	// A 20m stony bolide at a shallow angle delivers well under a megaton.
	assert.InDelta(t, 0.0148, res.Energy.Megatons, 0.0005)
	assert.Equal(t, "Minimal damage", res.Classification)
	assert.Nil(t, res.Tsunami)
	assert.LessOrEqual(t, res.Seismic.Magnitude, 10.0)
}

func TestSimulateChicxulub(t *testing.T) {
	e := testEngine()

	res, err := e.Simulate(ImpactParameters{
		DiameterM:     10000,
		DensityKgM3:   2600,
		VelocityKmS:   20,
		EntryAngleDeg: 60,
	})
	require.NoError(t, err)

	assert.Greater(t, res.Energy.Megatons, 1e7)
	assert.Equal(t, "Mass extinction event", res.Classification)
	assert.Greater(t, res.Seismic.Magnitude, 8.0)
	assert.LessOrEqual(t, res.Seismic.Magnitude, 10.0)
}

func TestSimulateWaterTarget(t *testing.T) {
	e := testEngine()

	params := ImpactParameters{
		DiameterM:     300,
		DensityKgM3:   3000,
		VelocityKmS:   22,
		EntryAngleDeg: 45,
	}

	land, err := e.Simulate(params)
	require.NoError(t, err)
	assert.Nil(t, land.Tsunami, "tsunami must be absent for land targets")

	params.TargetIsWater = true
	water, err := e.Simulate(params)
	require.NoError(t, err)
	require.NotNil(t, water.Tsunami, "tsunami must be present for water targets")
	assert.Greater(t, water.Tsunami.WaveHeightM, 0.0)
	assert.LessOrEqual(t, water.Tsunami.WaveHeightM, 500.0)
	assert.LessOrEqual(t, water.Tsunami.AffectedRadiusKm, 10000.0)

	// Target type never changes the delivered energy.
	assert.Equal(t, land.Energy, water.Energy)
}

func TestSimulateDeterministic(t *testing.T) {
	e := testEngine()

	params := ImpactParameters{
		DiameterM:               150,
		DensityKgM3:             3300,
		VelocityKmS:             25,
		EntryAngleDeg:           37.5,
		TargetIsWater:           true,
		PopulationDensityPerKm2: 120,
	}

	first, err := e.Simulate(params)
	require.NoError(t, err)
	second, err := e.Simulate(params)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs must yield identical output")
}

func TestSimulateAppliesDefaults(t *testing.T) {
	e := testEngine()

	res, err := e.Simulate(ImpactParameters{
		DiameterM:     100,
		VelocityKmS:   20,
		EntryAngleDeg: 45,
	})
	require.NoError(t, err)

	assert.Equal(t, e.Constants().DefaultDensityKgM3, res.Parameters.DensityKgM3)
	assert.Equal(t, e.Constants().DefaultPopulationPerKm2, res.Parameters.PopulationDensityPerKm2)
}

func TestSimulateRejectsInvalidParameters(t *testing.T) {
	e := testEngine()

	tests := []struct {
		name      string
		params    ImpactParameters
		wantField string
	}{
		{
			name:      "zero diameter",
			params:    ImpactParameters{VelocityKmS: 20, EntryAngleDeg: 45},
			wantField: "diameter_m",
		},
		{
			name:      "negative diameter",
			params:    ImpactParameters{DiameterM: -5, VelocityKmS: 20, EntryAngleDeg: 45},
			wantField: "diameter_m",
		},
		{
			name:      "zero velocity",
			params:    ImpactParameters{DiameterM: 100, EntryAngleDeg: 45},
			wantField: "velocity_km_s",
		},
		{
			name:      "negative density",
			params:    ImpactParameters{DiameterM: 100, DensityKgM3: -1, VelocityKmS: 20, EntryAngleDeg: 45},
			wantField: "density_kg_m3",
		},
		{
			name:      "zero angle",
			params:    ImpactParameters{DiameterM: 100, VelocityKmS: 20},
			wantField: "entry_angle_deg",
		},
		{
			name:      "angle above vertical",
			params:    ImpactParameters{DiameterM: 100, VelocityKmS: 20, EntryAngleDeg: 90.1},
			wantField: "entry_angle_deg",
		},
		{
			name:      "negative population density",
			params:    ImpactParameters{DiameterM: 100, VelocityKmS: 20, EntryAngleDeg: 45, PopulationDensityPerKm2: -10},
			wantField: "population_density_per_km2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := e.Simulate(tt.params)
			require.Error(t, err)
			assert.Nil(t, res, "no partial result on rejection")

			var ipe *InvalidParameterError
			require.True(t, errors.As(err, &ipe))
			assert.Equal(t, tt.wantField, ipe.Field)
		})
	}
}

func TestClassificationTableBoundaries(t *testing.T) {
	table := DefaultClassification()

	tests := []struct {
		megatons float64
		want     string
	}{
		{0, "Minimal damage"},
		{0.0999, "Minimal damage"},
		{0.1, "Local damage"},
		{0.9999, "Local damage"},
		{1, "City-wide damage"},
		{99.99, "City-wide damage"},
		{100, "Regional devastation"},
		{1000, "Continental impact"},
		{1e4, "Global climate effects"},
		{1e7, "Mass extinction event"},
		{1e12, "Mass extinction event"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, table.Classify(tt.megatons), "at %g Mt", tt.megatons)
	}
}

func TestEngineCustomClassificationTable(t *testing.T) {
	// The four-band legacy table remains constructible by callers.
	legacy := ClassificationTable{
		{MaxMegatons: 1, Label: "Local damage"},
		{MaxMegatons: 100, Label: "Regional damage"},
		{MaxMegatons: 1e4, Label: "Continental damage"},
		{MaxMegatons: 1e8, Label: "Global climate effects"},
		{Label: "Mass extinction event"},
	}
	e := NewEngine(DefaultConstants(), legacy)

	assert.Equal(t, "Local damage", e.Classify(0.5))
	assert.Equal(t, "Regional damage", e.Classify(50))
	assert.Equal(t, "Global climate effects", e.Classify(5e7))
}
