package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCraterMonotonicInVelocity(t *testing.T) {
	e := testEngine()

	prev := 0.0
	for _, v := range []float64{5, 10, 15, 20, 30, 50, 72} {
		res := e.ComputeCrater(100, 2600, v, false)
		assert.GreaterOrEqual(t, res.DiameterM, prev, "velocity %v", v)
		prev = res.DiameterM
	}
}

func TestComputeCraterMonotonicInDensity(t *testing.T) {
	e := testEngine()

	prev := 0.0
	for _, density := range []float64{1000, 2000, 3000, 5000, 8000} {
		res := e.ComputeCrater(100, density, 20, false)
		assert.GreaterOrEqual(t, res.DiameterM, prev, "density %v", density)
		prev = res.DiameterM
	}
}

func TestComputeCraterRadiusClamp(t *testing.T) {
	e := testEngine()

	// Arbitrarily extreme inputs must never produce a crater wider than
	// 50x the projectile radius (100x its diameter).
	tests := []struct {
		name     string
		diameter float64
		density  float64
		velocity float64
		isWater  bool
	}{
		{"extreme velocity rock", 10, 2600, 1e6, false},
		{"extreme velocity water", 10, 2600, 1e6, true},
		{"extreme density", 50, 1e8, 72, false},
		{"everything extreme", 1, 1e9, 1e9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.ComputeCrater(tt.diameter, tt.density, tt.velocity, tt.isWater)
			maxDiameter := tt.diameter * e.Constants().MaxRadiusMultiple
			assert.LessOrEqual(t, res.DiameterM, maxDiameter+1e-9)
		})
	}
}

func TestComputeCraterWaterLargerThanRock(t *testing.T) {
	e := testEngine()

	// Water has no strength and a lower density, so the cavity is larger
	// until both hit the clamp.
	rock := e.ComputeCrater(400, 2600, 20, false)
	water := e.ComputeCrater(400, 2600, 20, true)
	assert.Greater(t, water.DiameterM, rock.DiameterM)
}

func TestComputeCraterDepthRatio(t *testing.T) {
	e := testEngine()

	// Small impactor: simple crater, depth = diameter/5.
	simple := e.ComputeCrater(30, 2600, 15, false)
	require.LessOrEqual(t, simple.DiameterM, e.Constants().ComplexDepthThresholdM)
	assert.InEpsilon(t, simple.DiameterM/5, simple.DepthM, 1e-12)

	// Large impactor: complex crater, depth = diameter/8.
	complexCrater := e.ComputeCrater(2000, 2600, 25, false)
	require.Greater(t, complexCrater.DiameterM, e.Constants().ComplexDepthThresholdM)
	assert.InEpsilon(t, complexCrater.DiameterM/8, complexCrater.DepthM, 1e-12)

	// Depth never exceeds diameter in either regime.
	assert.Less(t, simple.DepthM, simple.DiameterM)
	assert.Less(t, complexCrater.DepthM, complexCrater.DiameterM)
}
