// Package physics implements the asteroid impact calculation engine: a
// pipeline of closed-form stages converting projectile parameters into
// kinetic energy, crater dimensions, seismic, tsunami, atmospheric and
// casualty estimates. Every stage is a pure function of its inputs and the
// engine's constants, so the engine is safe for unlimited concurrent use.
package physics

// Engine evaluates the impact effect pipeline against a fixed constant set
// and classification table.
type Engine struct {
	c       Constants
	classes ClassificationTable
}

// NewEngine creates an engine. A nil or empty classification table selects
// the default seven-band table.
func NewEngine(c Constants, classes ClassificationTable) *Engine {
	if len(classes) == 0 {
		classes = DefaultClassification()
	}
	return &Engine{c: c, classes: classes}
}

// Constants returns the engine's constant set.
func (e *Engine) Constants() Constants {
	return e.c
}

// Classify maps a megaton yield to its severity label.
func (e *Engine) Classify(energyMegatons float64) string {
	return e.classes.Classify(energyMegatons)
}

// applyDefaults fills zero-valued optional fields. An omitted population
// density means the contextual default, not an unpopulated target.
func (e *Engine) applyDefaults(p ImpactParameters) ImpactParameters {
	if p.DensityKgM3 == 0 {
		p.DensityKgM3 = e.c.DefaultDensityKgM3
	}
	if p.PopulationDensityPerKm2 == 0 {
		p.PopulationDensityPerKm2 = e.c.DefaultPopulationPerKm2
	}
	return p
}

// Simulate runs the full pipeline: validation, then
// energy → crater → seismic → [tsunami] → atmospheric → casualties.
// Either every stage succeeds or the parameters are rejected up front;
// there are no partial results.
func (e *Engine) Simulate(params ImpactParameters) (*SimulationResult, error) {
	params = e.applyDefaults(params)
	if err := params.Validate(); err != nil {
		return nil, err
	}

	energy := e.ComputeEnergy(params.DiameterM, params.DensityKgM3, params.VelocityKmS, params.EntryAngleDeg)
	crater := e.ComputeCrater(params.DiameterM, params.DensityKgM3, params.VelocityKmS, params.TargetIsWater)
	seismic := e.ComputeSeismic(energy.Joules)

	var tsunami *TsunamiResult
	if params.TargetIsWater {
		t := e.ComputeTsunami(energy.Megatons)
		tsunami = &t
	}

	atmospheric := e.ComputeAtmospheric(energy.Megatons)
	casualties := e.ComputeCasualties(atmospheric.OverpressureRadiusKm, params.PopulationDensityPerKm2)

	return &SimulationResult{
		Parameters:     params,
		Energy:         energy,
		Crater:         crater,
		Seismic:        seismic,
		Tsunami:        tsunami,
		Atmospheric:    atmospheric,
		Casualties:     casualties,
		Classification: e.Classify(energy.Megatons),
	}, nil
}
