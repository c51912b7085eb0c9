package physics

import "math"

// ComputeSeismic converts impact energy into a Richter-equivalent magnitude
// and felt radius, after Schultz & Gault (1975). Impacts couple far less
// energy into seismic waves than buried explosions, so the kinetic energy is
// scaled by the coupling fraction before the Gutenberg-Richter relation:
//
//	M = (log10(E_seismic) − 5.87) / 1.5
func (e *Engine) ComputeSeismic(energyJoules float64) SeismicResult {
	seismicEnergy := energyJoules * e.c.SeismicCouplingFraction

	var magnitude float64
	if seismicEnergy > 0 {
		magnitude = (math.Log10(seismicEnergy) - 5.87) / 1.5
		magnitude = math.Max(0, math.Min(magnitude, 10))
	}

	// Impact-generated waves attenuate differently from tectonic quakes;
	// piecewise regimes with a detection floor and a global-distance cap.
	var radius float64
	switch {
	case magnitude < 3:
		radius = 10
	case magnitude < 5:
		radius = 50 * (magnitude - 2)
	case magnitude < 7:
		radius = 100 * (magnitude - 3)
	default:
		radius = math.Min(2000, 300*(magnitude-5))
	}

	return SeismicResult{
		Magnitude:        magnitude,
		AffectedRadiusKm: radius,
	}
}
