package deflection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateKineticImpactor(t *testing.T) {
	res, err := Calculate(Request{
		Strategy:          KineticImpactor,
		TimeAvailableDays: 360,
		AsteroidMassKg:    1e9,
	})
	require.NoError(t, err)

	// Δv = 2.0 * 1000 * 10000 / 1e9 = 2e-2 m/s.
	assert.InEpsilon(t, 0.02, res.DeltaVMS, 1e-12)
	// Twice the nominal duration available: full 0.85 ceiling.
	assert.InEpsilon(t, 0.85, res.SuccessProbability, 1e-12)
	assert.Equal(t, 10000, res.RequiredMissions)
}

func TestCalculateGravityTractorScalesWithTime(t *testing.T) {
	short, err := Calculate(Request{Strategy: GravityTractor, TimeAvailableDays: 100, AsteroidMassKg: 1e10})
	require.NoError(t, err)
	long, err := Calculate(Request{Strategy: GravityTractor, TimeAvailableDays: 400, AsteroidMassKg: 1e10})
	require.NoError(t, err)

	assert.InEpsilon(t, 4.0, long.DeltaVMS/short.DeltaVMS, 1e-9)
	assert.Less(t, short.SuccessProbability, long.SuccessProbability)
	assert.Equal(t, 1, short.RequiredMissions)
}

func TestCalculateLaserAblation(t *testing.T) {
	res, err := Calculate(Request{Strategy: LaserAblation, TimeAvailableDays: 270, AsteroidMassKg: 5e9})
	require.NoError(t, err)

	assert.Greater(t, res.DeltaVMS, 0.0)
	assert.InEpsilon(t, 0.70, res.SuccessProbability, 1e-12)
	assert.Equal(t, 5, res.RequiredMissions)
}

func TestCalculateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{"unknown strategy", Request{Strategy: "nuke", TimeAvailableDays: 100, AsteroidMassKg: 1e9}},
		{"zero mass", Request{Strategy: KineticImpactor, TimeAvailableDays: 100}},
		{"zero time", Request{Strategy: KineticImpactor, AsteroidMassKg: 1e9}},
		{"negative mass", Request{Strategy: GravityTractor, TimeAvailableDays: 100, AsteroidMassKg: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Calculate(tt.req)
			assert.Error(t, err)
			assert.Nil(t, res)
		})
	}
}

func TestStrategiesCatalog(t *testing.T) {
	catalog := Strategies()
	require.Len(t, catalog, 3)

	ids := map[string]bool{}
	for _, s := range catalog {
		ids[s.ID] = true
		assert.NotEmpty(t, s.Name)
		assert.Greater(t, s.Effectiveness, 0.0)
	}
	assert.True(t, ids[KineticImpactor])
	assert.True(t, ids[GravityTractor])
	assert.True(t, ids[LaserAblation])
}
