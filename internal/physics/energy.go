package physics

import "math"

// ComputeEnergy converts projectile size, density, velocity and entry angle
// into the kinetic energy delivered at the surface:
//
//	E = ½ · m_eff · v² · sin(θ)
//
// where m_eff is the mass surviving atmospheric ablation. Only the vertical
// velocity component does work at the surface; grazing entries dissipate the
// rest in the atmosphere.
func (e *Engine) ComputeEnergy(diameterM, densityKgM3, velocityKmS, angleDeg float64) EnergyResult {
	radius := diameterM / 2
	volume := (4.0 / 3.0) * math.Pi * radius * radius * radius
	mass := volume * densityKgM3
	velocityMS := velocityKmS * 1000

	effectiveMass := mass * (1 - ablationFraction(diameterM))
	angleFactor := math.Sin(angleDeg * math.Pi / 180)

	joules := 0.5 * effectiveMass * velocityMS * velocityMS * angleFactor
	return EnergyResult{
		Joules:   joules,
		Megatons: joules / e.c.JoulesPerMegaton(),
	}
}

// ablationFraction is the fraction of impactor mass lost to atmospheric
// heating, a step function of diameter. Larger bodies retain more mass.
func ablationFraction(diameterM float64) float64 {
	switch {
	case diameterM < 50:
		return 0.9
	case diameterM < 100:
		return 0.7
	case diameterM < 500:
		return 0.3
	default:
		return 0.1
	}
}
