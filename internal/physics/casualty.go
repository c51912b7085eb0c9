package physics

import "math"

// ComputeCasualties estimates population exposure inside the overpressure
// zone. The fixed fatality rate is a declared simplification: everyone inside
// the 5 psi radius faces the same per-capita risk.
// EstimatedCasualties never exceeds AffectedPopulation.
func (e *Engine) ComputeCasualties(overpressureRadiusKm, populationPerKm2 float64) CasualtyResult {
	area := math.Pi * overpressureRadiusKm * overpressureRadiusKm
	affected := int64(math.Round(area * populationPerKm2))
	casualties := int64(math.Round(float64(affected) * e.c.OverpressureCasualtyRate))

	return CasualtyResult{
		AffectedPopulation:  affected,
		EstimatedCasualties: casualties,
	}
}
