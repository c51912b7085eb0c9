package physics

import "math"

// ComputeTsunami estimates wave height and reach for a water-target impact.
// Callers must only invoke it when the target is water; Simulate omits the
// result otherwise.
func (e *Engine) ComputeTsunami(energyMegatons float64) TsunamiResult {
	waveHeight := 10 * math.Pow(energyMegatons/1000, 0.25)
	if waveHeight > 500 {
		waveHeight = 500
	}

	// Capped at ocean-basin scale.
	affectedRadius := 15 * math.Sqrt(energyMegatons)
	if affectedRadius > 10000 {
		affectedRadius = 10000
	}

	return TsunamiResult{
		WaveHeightM:      waveHeight,
		AffectedRadiusKm: affectedRadius,
	}
}
