// Package deflection estimates mitigation-mission outcomes for the three
// studied strategy families. Like the impact engine, every calculation is a
// closed-form pure function of its inputs.
package deflection

import (
	"fmt"
	"math"
)

// Strategy identifiers accepted by Calculate.
const (
	KineticImpactor = "kinetic-impactor"
	GravityTractor  = "gravity-tractor"
	LaserAblation   = "laser-ablation"
)

// Mission parameters held fixed per strategy.
const (
	gravitationalConstant = 6.67430e-11

	impactorMassKg     = 1000  // spacecraft mass
	impactorVelocityMS = 10000 // relative closing velocity
	momentumBeta       = 2.0   // momentum enhancement factor

	tractorMassKg    = 20000
	tractorDistanceM = 100
	laserPowerW      = 100000
	laserEfficiency  = 0.1
	speedOfLightMS   = 3e8
	secondsPerDay    = 86400.0
)

// daysNeeded holds the nominal mission duration per strategy; success
// probability scales with the time available against it.
var daysNeeded = map[string]float64{
	KineticImpactor: 180,
	GravityTractor:  365,
	LaserAblation:   270,
}

// Request describes a deflection calculation.
type Request struct {
	Strategy          string  `json:"strategy"`
	TimeAvailableDays float64 `json:"time_available_days"`
	AsteroidMassKg    float64 `json:"asteroid_mass_kg"`
}

// Result is the outcome estimate for one strategy against one asteroid.
type Result struct {
	Strategy           string  `json:"strategy"`
	DeltaVMS           float64 `json:"delta_v_ms"`
	SuccessProbability float64 `json:"success_probability"`
	RequiredMissions   int     `json:"required_missions"`
}

// StrategyInfo describes a catalog entry for client display.
type StrategyInfo struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	Effectiveness       float64 `json:"effectiveness"`
	MinTimeRequiredDays float64 `json:"min_time_required_days"`
	TechnologyReadiness string  `json:"technology_readiness"`
	Example             string  `json:"example"`
}

// Strategies returns the static strategy catalog.
func Strategies() []StrategyInfo {
	return []StrategyInfo{
		{
			ID:                  KineticImpactor,
			Name:                "Kinetic Impactor",
			Description:         "Ram the asteroid with a spacecraft to change its velocity vector",
			Effectiveness:       0.8,
			MinTimeRequiredDays: 180,
			TechnologyReadiness: "proven",
			Example:             "NASA DART mission (2022)",
		},
		{
			ID:                  GravityTractor,
			Name:                "Gravity Tractor",
			Description:         "Use spacecraft's gravitational pull to slowly alter orbit",
			Effectiveness:       0.9,
			MinTimeRequiredDays: 365,
			TechnologyReadiness: "theoretical",
			Example:             "None (proposed concept)",
		},
		{
			ID:                  LaserAblation,
			Name:                "Laser Ablation",
			Description:         "Vaporize surface material with laser to create thrust",
			Effectiveness:       0.7,
			MinTimeRequiredDays: 270,
			TechnologyReadiness: "experimental",
			Example:             "DE-STAR concept",
		},
	}
}

// Calculate evaluates the requested strategy. Unknown strategies and
// non-positive mass or time are rejected.
func Calculate(req Request) (*Result, error) {
	if req.AsteroidMassKg <= 0 || math.IsNaN(req.AsteroidMassKg) || math.IsInf(req.AsteroidMassKg, 0) {
		return nil, fmt.Errorf("asteroid_mass_kg must be positive")
	}
	if req.TimeAvailableDays <= 0 || math.IsNaN(req.TimeAvailableDays) || math.IsInf(req.TimeAvailableDays, 0) {
		return nil, fmt.Errorf("time_available_days must be positive")
	}

	switch req.Strategy {
	case KineticImpactor:
		return kineticImpactor(req), nil
	case GravityTractor:
		return gravityTractor(req), nil
	case LaserAblation:
		return laserAblation(req), nil
	default:
		return nil, fmt.Errorf("unknown deflection strategy %q", req.Strategy)
	}
}

// kineticImpactor: Δv = β·m_i·v_i / m_a, momentum transfer with enhancement
// from excavated ejecta.
func kineticImpactor(req Request) *Result {
	deltaV := momentumBeta * impactorMassKg * impactorVelocityMS / req.AsteroidMassKg
	missions := int(req.AsteroidMassKg / (impactorMassKg * 100))
	if missions < 1 {
		missions = 1
	}
	return &Result{
		Strategy:           KineticImpactor,
		DeltaVMS:           deltaV,
		SuccessProbability: successProbability(req, 0.85),
		RequiredMissions:   missions,
	}
}

// gravityTractor: station-keep a spacecraft near the asteroid and let its
// gravity tug over the whole mission duration.
func gravityTractor(req Request) *Result {
	force := gravitationalConstant * tractorMassKg * req.AsteroidMassKg / (tractorDistanceM * tractorDistanceM)
	acceleration := force / req.AsteroidMassKg
	deltaV := acceleration * req.TimeAvailableDays * secondsPerDay
	return &Result{
		Strategy:           GravityTractor,
		DeltaVMS:           deltaV,
		SuccessProbability: successProbability(req, 0.95),
		RequiredMissions:   1,
	}
}

// laserAblation: sustained surface vaporization produces a small photon-scale
// thrust over the mission duration.
func laserAblation(req Request) *Result {
	thrust := laserPowerW * laserEfficiency / speedOfLightMS
	deltaV := thrust * req.TimeAvailableDays * secondsPerDay / req.AsteroidMassKg
	missions := int(req.AsteroidMassKg / 1e9)
	if missions < 1 {
		missions = 1
	}
	return &Result{
		Strategy:           LaserAblation,
		DeltaVMS:           deltaV,
		SuccessProbability: successProbability(req, 0.70),
		RequiredMissions:   missions,
	}
}

// successProbability scales the strategy's ceiling by how much of the nominal
// mission duration fits in the time available.
func successProbability(req Request, ceiling float64) float64 {
	fraction := req.TimeAvailableDays / daysNeeded[req.Strategy]
	if fraction > 1 {
		fraction = 1
	}
	return fraction * ceiling
}
