package physics

import "math"

// ComputeAtmospheric converts yield into fireball, thermal-radiation
// (third-degree burns) and overpressure (5 psi structural damage) radii.
// All three are pure power laws of the megaton yield.
func (e *Engine) ComputeAtmospheric(energyMegatons float64) AtmosphericResult {
	return AtmosphericResult{
		FireballRadiusKm:     0.28 * math.Pow(energyMegatons, 0.4),
		ThermalRadiusKm:      2.2 * math.Pow(energyMegatons, 0.41),
		OverpressureRadiusKm: 2.2 * math.Pow(energyMegatons, 0.33),
	}
}
