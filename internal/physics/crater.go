package physics

import "math"

// ComputeCrater estimates final crater dimensions via pi-group scaling,
// after Holsapple (1993) and Collins et al. (2005):
//
//	R_t = C · L · (ρ_p/ρ_t)^0.44 · (v²/gD)^0.22 · (Y/ρ_t·g·D)^-0.11
//
// with L the projectile radius and D its diameter. Water targets use a larger
// coupling coefficient and no strength term (water has no cohesive strength).
func (e *Engine) ComputeCrater(diameterM, densityKgM3, velocityKmS float64, isWater bool) CraterResult {
	projectileRadius := diameterM / 2
	velocityMS := velocityKmS * 1000

	targetDensity := e.c.RockTargetDensityKgM3
	if isWater {
		targetDensity = e.c.WaterTargetDensityKgM3
	}

	densityRatio := densityKgM3 / targetDensity
	gravityTerm := velocityMS * velocityMS / (e.c.GravityMS2 * 2 * projectileRadius)

	var transientRadius float64
	if isWater {
		transientRadius = projectileRadius * 8.0 *
			math.Pow(densityRatio, 0.44) * math.Pow(gravityTerm, 0.22)
	} else {
		strengthTerm := e.c.RockTargetStrengthPa / (targetDensity * e.c.GravityMS2 * 2 * projectileRadius)
		transientRadius = projectileRadius * 1.6 *
			math.Pow(densityRatio, 0.44) * math.Pow(gravityTerm, 0.22) * math.Pow(strengthTerm, -0.11)
	}

	// Rim collapse: complex craters (final diameter over ~4 km) collapse less.
	finalRadius := transientRadius
	if transientRadius > e.c.ComplexTransientRadiusM {
		finalRadius = transientRadius * e.c.ComplexCollapseFactor
	}

	// Craters cannot exceed ~100x the projectile diameter.
	if max := projectileRadius * e.c.MaxRadiusMultiple; finalRadius > max {
		finalRadius = max
	}

	finalDiameter := finalRadius * 2
	depthRatio := 5.0
	if finalDiameter > e.c.ComplexDepthThresholdM {
		depthRatio = 8.0
	}

	return CraterResult{
		DiameterM: finalDiameter,
		DepthM:    finalDiameter / depthRatio,
	}
}
